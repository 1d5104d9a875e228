package usecase

import (
	"context"
	"fmt"
	"log"

	"caixa/src/catalog/application/request"
	"caixa/src/catalog/application/response"
	"caixa/src/catalog/domain/entity"
	"caixa/src/catalog/domain/port"

	"github.com/google/uuid"
)

// UpdateProductUseCase caso de uso para editar un producto existente
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute reemplaza los campos mutables del producto. Las mismas validaciones
// del alta aplican al nuevo estado; en error no se muta nada.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validar el estado nuevo completo antes de tocar el existente
	updated, err := entity.NewProduct(
		req.Name,
		req.Price,
		entity.UnitKind(req.UnitKind),
		req.Stock,
	)
	if err != nil {
		return nil, err
	}
	updated.ID = product.ID

	persisted, err := uc.productRepo.Save(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("error updating product %q: %w", updated.Name, err)
	}

	log.Printf("✅ Producto actualizado: id=%s nombre=%q", persisted.ID, persisted.Name)
	return response.NewProductResponse(persisted), nil
}
