package response

import (
	"caixa/src/checkout/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemResponse representa una línea del carrito en las respuestas HTTP
type CartItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse representa el carrito en curso en las respuestas HTTP
type CartResponse struct {
	CartID     uuid.UUID          `json:"cart_id"`
	Status     entity.SaleStatus  `json:"status"`
	Total      decimal.Decimal    `json:"total"`
	TotalItems int                `json:"total_items"`
	Items      []CartItemResponse `json:"items"`
}

// NewCartResponse arma la respuesta del carrito a partir del aggregate
func NewCartResponse(cartID uuid.UUID, sale *entity.Sale) *CartResponse {
	items := make([]CartItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, CartItemResponse{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return &CartResponse{
		CartID:     cartID,
		Status:     sale.Status,
		Total:      sale.CurrentTotal(),
		TotalItems: sale.TotalItems(),
		Items:      items,
	}
}
