package usecase

import (
	"context"

	"caixa/src/checkout/application/response"
	"caixa/src/checkout/domain/port"

	"github.com/google/uuid"
)

// GetSaleUseCase caso de uso para consultar una venta persistida con sus líneas
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute busca la venta por ID, con líneas cargadas
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return response.NewSaleResponse(sale), nil
}
