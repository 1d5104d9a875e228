package usecase

import (
	"context"
	"log"

	"caixa/src/checkout/domain/port"

	"github.com/google/uuid"
)

// DeleteSaleUseCase caso de uso para eliminar una venta del historial.
// La eliminación arrastra sus líneas en la misma transacción.
type DeleteSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewDeleteSaleUseCase crea una nueva instancia del caso de uso
func NewDeleteSaleUseCase(saleRepo port.SaleRepository) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{saleRepo: saleRepo}
}

// Execute elimina la venta. Retorna false si no existe (condición reportada).
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (bool, error) {
	deleted, err := uc.saleRepo.Delete(ctx, saleID)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Printf("🗑️  Venta eliminada: sale_id=%s", saleID)
	}
	return deleted, nil
}
