package usecase

import (
	"context"
	"fmt"
	"log"

	"caixa/src/catalog/application/request"
	"caixa/src/catalog/application/response"
	"caixa/src/catalog/domain/entity"
	"caixa/src/catalog/domain/port"
)

// CreateProductUseCase caso de uso para dar de alta un producto en el catálogo
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// Execute valida y persiste el producto nuevo. El nombre es único:
// un duplicado se rechaza con ErrProductNameTaken sin mutar nada.
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	product, err := entity.NewProduct(
		req.Name,
		req.Price,
		entity.UnitKind(req.UnitKind),
		req.Stock,
	)
	if err != nil {
		return nil, err
	}

	persisted, err := uc.productRepo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("error saving product %q: %w", product.Name, err)
	}

	log.Printf("✅ Producto creado: id=%s nombre=%q precio=%s stock=%s",
		persisted.ID, persisted.Name, persisted.Price, persisted.Stock)

	return response.NewProductResponse(persisted), nil
}
