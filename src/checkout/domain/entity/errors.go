package entity

import "errors"

var (
	ErrEmptySale            = errors.New("sale must have at least one item")
	ErrInvalidPaymentMethod = errors.New("payment_method must be DINHEIRO, CARTAO or PIX")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrItemNotFound         = errors.New("sale item not found")
	ErrSaleNotOpen          = errors.New("sale is not in ABERTA state")
	ErrInvalidStatusFilter  = errors.New("status must be ABERTA, FINALIZADA or CANCELADA")
	ErrSaleAlreadyFinalized = errors.New("sale was already finalized")
)
