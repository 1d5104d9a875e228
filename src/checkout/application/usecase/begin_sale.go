package usecase

import (
	"log"

	"caixa/src/checkout/application/response"
	"caixa/src/checkout/infrastructure/cache"
)

// BeginSaleUseCase caso de uso para abrir una venta nueva (carrito vacío)
type BeginSaleUseCase struct {
	carts *cache.CartStore
}

// NewBeginSaleUseCase crea una nueva instancia del caso de uso
func NewBeginSaleUseCase(carts *cache.CartStore) *BeginSaleUseCase {
	return &BeginSaleUseCase{carts: carts}
}

// Execute abre una venta vacía en estado ABERTA y retorna su cart_id
func (uc *BeginSaleUseCase) Execute() *response.CartResponse {
	cartID, sale := uc.carts.Begin()
	log.Printf("🛒 Venta abierta: cart_id=%s", cartID)
	return response.NewCartResponse(cartID, sale)
}
