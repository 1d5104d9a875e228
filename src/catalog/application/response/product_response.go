package response

import (
	"caixa/src/catalog/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse representa un producto del catálogo en las respuestas HTTP
type ProductResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	UnitKind entity.UnitKind `json:"unit_kind"`
	Stock    decimal.Decimal `json:"stock"`
}

// NewProductResponse arma la respuesta a partir de la entidad
func NewProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		UnitKind: product.UnitKind,
		Stock:    product.Stock,
	}
}

// NewProductListResponse arma la respuesta de listado
func NewProductListResponse(products []*entity.Product) []*ProductResponse {
	items := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return items
}
