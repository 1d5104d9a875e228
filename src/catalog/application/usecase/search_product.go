package usecase

import (
	"context"

	"caixa/src/catalog/application/response"
	"caixa/src/catalog/domain/port"

	"github.com/google/uuid"
)

// SearchProductUseCase caso de uso para buscar un producto por ID o por nombre
type SearchProductUseCase struct {
	productRepo port.ProductRepository
}

// NewSearchProductUseCase crea una nueva instancia del caso de uso
func NewSearchProductUseCase(productRepo port.ProductRepository) *SearchProductUseCase {
	return &SearchProductUseCase{productRepo: productRepo}
}

// ByID busca un producto por su ID
func (uc *SearchProductUseCase) ByID(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.NewProductResponse(product), nil
}

// ByName busca el primer producto cuyo nombre contenga el texto
// (case-insensitive, semántica first-match)
func (uc *SearchProductUseCase) ByName(ctx context.Context, name string) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return response.NewProductResponse(product), nil
}
