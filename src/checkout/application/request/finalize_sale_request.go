package request

// FinalizeSaleRequest representa el request para finalizar la venta en curso
type FinalizeSaleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}
