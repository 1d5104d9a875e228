package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest representa el request para agregar una línea al carrito
type AddItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}
