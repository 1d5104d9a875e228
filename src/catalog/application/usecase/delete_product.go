package usecase

import (
	"context"
	"log"

	"caixa/src/catalog/domain/port"

	"github.com/google/uuid"
)

// DeleteProductUseCase caso de uso para eliminar un producto del catálogo.
// Un producto referenciado por líneas de venta históricas no se puede
// eliminar (ErrProductInUse): el historial mantiene integridad referencial.
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute elimina el producto. Retorna false si no existe (condición
// reportada, no fatal).
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Printf("🗑️  Producto eliminado: id=%s", id)
	}
	return deleted, nil
}
