package usecase

import (
	"context"

	"caixa/src/checkout/application/response"
	"caixa/src/checkout/domain/entity"
	"caixa/src/checkout/domain/port"
)

// ListSalesUseCase caso de uso para listar ventas (historial)
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute lista las ventas más recientes primero, sin líneas.
// status en "" lista todas; un valor desconocido es error de validación.
func (uc *ListSalesUseCase) Execute(ctx context.Context, status string) ([]*response.SaleListItem, error) {
	var filter *entity.SaleStatus
	if status != "" {
		s := entity.SaleStatus(status)
		if s != entity.SaleStatusOpen && s != entity.SaleStatusFinalized && s != entity.SaleStatusCancelled {
			return nil, entity.ErrInvalidStatusFilter
		}
		filter = &s
	}

	sales, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*response.SaleListItem, 0, len(sales))
	for _, sale := range sales {
		items = append(items, &response.SaleListItem{
			SaleID:        sale.ID,
			Timestamp:     sale.CreatedAt,
			Total:         sale.Total,
			Status:        sale.Status,
			PaymentMethod: sale.PaymentMethod,
		})
	}
	return items, nil
}
