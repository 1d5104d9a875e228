package entity

import "errors"

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductNameTaken    = errors.New("product name is already taken")
	ErrInvalidPrice        = errors.New("price must be greater than 0")
	ErrInvalidUnitKind     = errors.New("unit_kind must be UNIDADE or KG")
	ErrInvalidStock        = errors.New("stock must be greater than or equal to 0")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductInUse        = errors.New("product is referenced by sale line items")
)
