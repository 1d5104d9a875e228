package usecase

import (
	"context"
	"fmt"
	"log"

	"caixa/src/catalog/application/response"
	"caixa/src/catalog/domain/entity"
	"caixa/src/catalog/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestockProductUseCase caso de uso para reponer stock de un producto
type RestockProductUseCase struct {
	productRepo port.ProductRepository
}

// NewRestockProductUseCase crea una nueva instancia del caso de uso
func NewRestockProductUseCase(productRepo port.ProductRepository) *RestockProductUseCase {
	return &RestockProductUseCase{productRepo: productRepo}
}

// Execute suma la cantidad al stock del producto y persiste.
// Solo acepta cantidades positivas: el descuento por venta pasa por el
// cierre de venta, nunca por acá.
func (uc *RestockProductUseCase) Execute(ctx context.Context, id uuid.UUID, quantity decimal.Decimal) (*response.ProductResponse, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrInvalidQuantity
	}

	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.UnitKind == entity.UnitKindUnit && !quantity.IsInteger() {
		return nil, entity.ErrInvalidQuantity
	}

	newStock, err := product.AdjustStock(quantity)
	if err != nil {
		return nil, err
	}

	persisted, err := uc.productRepo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("error saving restock for product %q: %w", product.Name, err)
	}

	log.Printf("📦 Reposición: producto=%q +%s stock=%s", product.Name, quantity, newStock)
	return response.NewProductResponse(persisted), nil
}
