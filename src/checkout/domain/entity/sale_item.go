package entity

import (
	catalog "caixa/src/catalog/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa una línea dentro de una venta (Entity dentro del Aggregate).
// El precio unitario se congela al momento de agregar la línea: cambios
// posteriores de precio en el catálogo no afectan ventas en curso ni históricas.
// Una línea es inmutable: se elimina entera, nunca se edita.
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price_at_sale"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewSaleItem crea una línea de venta a partir del producto del catálogo.
// El subtotal SIEMPRE se calcula como precio × cantidad, nunca se setea aparte.
func NewSaleItem(saleID uuid.UUID, product *catalog.Product, quantity decimal.Decimal) (*SaleItem, error) {
	if product == nil || !product.IsPersisted() {
		return nil, catalog.ErrProductNotFound
	}

	subtotal, err := product.LineValue(quantity)
	if err != nil {
		return nil, err
	}

	return &SaleItem{
		ID:          uuid.New(),
		SaleID:      saleID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		Subtotal:    subtotal,
	}, nil
}
