package usecase

import (
	"log"

	"caixa/src/checkout/application/response"
	"caixa/src/checkout/domain/entity"
	"caixa/src/checkout/infrastructure/cache"

	"github.com/google/uuid"
)

// RemoveItemUseCase caso de uso para quitar una línea del carrito
type RemoveItemUseCase struct {
	carts *cache.CartStore
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(carts *cache.CartStore) *RemoveItemUseCase {
	return &RemoveItemUseCase{carts: carts}
}

// Execute quita la línea del carrito y recalcula el total.
// Si la línea no existe retorna ErrItemNotFound (condición reportada,
// el operador decide el próximo paso).
func (uc *RemoveItemUseCase) Execute(cartID, itemID uuid.UUID) (*response.CartResponse, error) {
	sale, ok := uc.carts.Get(cartID)
	if !ok {
		return nil, entity.ErrSaleNotFound
	}

	if !sale.RemoveItem(itemID) {
		return nil, entity.ErrItemNotFound
	}

	log.Printf("🛒 Línea %s removida: cart_id=%s total=%s", itemID, cartID, sale.CurrentTotal())
	return response.NewCartResponse(cartID, sale), nil
}
