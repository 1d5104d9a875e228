package usecase

import (
	"context"

	"caixa/src/catalog/application/response"
	"caixa/src/catalog/domain/port"
)

// ListProductsUseCase caso de uso para listar el catálogo ordenado por nombre
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute retorna todos los productos del catálogo
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*response.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return response.NewProductListResponse(products), nil
}
