package request

import "github.com/shopspring/decimal"

// CreateProductRequest representa el request para dar de alta un producto
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	UnitKind string          `json:"unit_kind" binding:"required"`
	Stock    decimal.Decimal `json:"stock"`
}

// UpdateProductRequest representa el request para editar los campos mutables
// de un producto existente
type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	UnitKind string          `json:"unit_kind" binding:"required"`
	Stock    decimal.Decimal `json:"stock"`
}

// RestockRequest representa el request para reponer stock de un producto
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}
