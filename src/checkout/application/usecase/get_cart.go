package usecase

import (
	"caixa/src/checkout/application/response"
	"caixa/src/checkout/domain/entity"
	"caixa/src/checkout/infrastructure/cache"

	"github.com/google/uuid"
)

// GetCartUseCase caso de uso para consultar el carrito en curso
type GetCartUseCase struct {
	carts *cache.CartStore
}

// NewGetCartUseCase crea una nueva instancia del caso de uso
func NewGetCartUseCase(carts *cache.CartStore) *GetCartUseCase {
	return &GetCartUseCase{carts: carts}
}

// Execute retorna el estado actual del carrito
func (uc *GetCartUseCase) Execute(cartID uuid.UUID) (*response.CartResponse, error) {
	sale, ok := uc.carts.Get(cartID)
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	return response.NewCartResponse(cartID, sale), nil
}
