package entity

import (
	"time"

	catalog "caixa/src/catalog/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus representa el estado de una venta
type SaleStatus string

const (
	SaleStatusOpen      SaleStatus = "ABERTA"
	SaleStatusFinalized SaleStatus = "FINALIZADA"
	SaleStatusCancelled SaleStatus = "CANCELADA"
)

// PaymentMethod representa la forma de pago de una venta finalizada
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "DINHEIRO"
	PaymentCard PaymentMethod = "CARTAO"
	PaymentPix  PaymentMethod = "PIX"
)

// IsValid verifica que la forma de pago sea una de las conocidas
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentPix
}

// Sale representa una venta (Aggregate Root). Mientras está ABERTA funciona
// como carrito en memoria; al finalizar se persiste junto con sus líneas.
// El ID queda en uuid.Nil hasta el persist; lo asigna el repositorio.
type Sale struct {
	ID            uuid.UUID       `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Total         decimal.Decimal `json:"total"`
	Status        SaleStatus      `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Items         []SaleItem      `json:"items"`
}

// NewSale crea una venta vacía en estado ABERTA
func NewSale() *Sale {
	return &Sale{
		ID:        uuid.Nil,
		CreatedAt: time.Now(),
		Total:     decimal.Zero,
		Status:    SaleStatusOpen,
		Items:     []SaleItem{},
	}
}

// recalcTotal recalcula el total desde cero como suma de subtotales.
// Nunca se acumula por resta para evitar drift del total.
func (s *Sale) recalcTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal)
	}
	s.Total = total
}

// AddItem agrega una línea congelando el precio actual del producto
// y recalcula el total de la venta
func (s *Sale) AddItem(product *catalog.Product, quantity decimal.Decimal) (*SaleItem, error) {
	if s.Status != SaleStatusOpen {
		return nil, ErrSaleNotOpen
	}

	item, err := NewSaleItem(s.ID, product, quantity)
	if err != nil {
		return nil, err
	}

	s.Items = append(s.Items, *item)
	s.recalcTotal()
	return item, nil
}

// RemoveItem elimina la línea con el ID dado y recalcula el total.
// Retorna false si no hay match (condición reportada, no fatal).
func (s *Sale) RemoveItem(itemID uuid.UUID) bool {
	if s.Status != SaleStatusOpen {
		return false
	}

	for i, item := range s.Items {
		if item.ID == itemID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			s.recalcTotal()
			return true
		}
	}
	return false
}

// CurrentTotal retorna el total derivado de la venta
func (s *Sale) CurrentTotal() decimal.Decimal {
	return s.Total
}

// TotalItems retorna el número de líneas de la venta
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

// Finalize transiciona la venta ABERTA → FINALIZADA exactamente una vez.
// Requiere al menos una línea y una forma de pago conocida. La hora de la
// venta la estampa el repositorio al persistir: si el persist falla y el
// carrito se reabre, acá no queda un timestamp adelantado.
func (s *Sale) Finalize(method PaymentMethod) error {
	if s.Status == SaleStatusFinalized {
		return ErrSaleAlreadyFinalized
	}
	if s.Status != SaleStatusOpen {
		return ErrSaleNotOpen
	}
	if len(s.Items) == 0 {
		return ErrEmptySale
	}
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}

	s.PaymentMethod = method
	s.Status = SaleStatusFinalized
	return nil
}
