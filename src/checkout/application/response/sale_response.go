package response

import (
	"time"

	"caixa/src/checkout/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleResponse representa una venta persistida con sus líneas
type SaleResponse struct {
	SaleID        uuid.UUID            `json:"sale_id"`
	Timestamp     time.Time            `json:"timestamp"`
	Total         decimal.Decimal      `json:"total"`
	Status        entity.SaleStatus    `json:"status"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	TotalItems    int                  `json:"total_items"`
	Items         []CartItemResponse   `json:"items,omitempty"`
}

// NewSaleResponse arma la respuesta a partir de la venta persistida
func NewSaleResponse(sale *entity.Sale) *SaleResponse {
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

	return &SaleResponse{
		SaleID:        sale.ID,
		Timestamp:     sale.CreatedAt,
		Total:         sale.Total,
		Status:        sale.Status,
		PaymentMethod: sale.PaymentMethod,
		TotalItems:    sale.TotalItems(),
		Items:         items,
	}
}

// FinalizeSaleResponse representa el resultado de finalizar una venta:
// la venta persistida más el cart_id del carrito nuevo para el próximo cliente
type FinalizeSaleResponse struct {
	Sale       *SaleResponse `json:"sale"`
	NextCartID uuid.UUID     `json:"next_cart_id"`
}

// SaleListItem representa una venta en el listado (sin líneas, carga lazy)
type SaleListItem struct {
	SaleID        uuid.UUID            `json:"sale_id"`
	Timestamp     time.Time            `json:"timestamp"`
	Total         decimal.Decimal      `json:"total"`
	Status        entity.SaleStatus    `json:"status"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
}
