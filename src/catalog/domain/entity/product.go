package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitKind indica cómo se vende un producto: por unidad o por peso
type UnitKind string

const (
	UnitKindUnit UnitKind = "UNIDADE" // venta por unidad, stock entero
	UnitKindKg   UnitKind = "KG"      // venta por peso, stock fraccionario
)

// IsValid verifica que el tipo de unidad sea uno de los conocidos
func (k UnitKind) IsValid() bool {
	return k == UnitKindUnit || k == UnitKindKg
}

// Product representa un producto del catálogo (Aggregate Root)
// El ID queda en uuid.Nil hasta el primer persist; lo asigna el repositorio.
type Product struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	UnitKind UnitKind        `json:"unit_kind"`
	Stock    decimal.Decimal `json:"stock"`
}

// NewProduct crea un producto nuevo con validaciones de catálogo
func NewProduct(name string, price decimal.Decimal, unitKind UnitKind, stock decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if !unitKind.IsValid() {
		return nil, ErrInvalidUnitKind
	}
	if stock.LessThan(decimal.Zero) {
		return nil, ErrInvalidStock
	}
	// Para venta por unidad el stock tiene que ser entero
	if unitKind == UnitKindUnit && !stock.IsInteger() {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:       uuid.Nil, // lo asigna el repositorio al persistir
		Name:     name,
		Price:    price,
		UnitKind: unitKind,
		Stock:    stock,
	}, nil
}

// AdjustStock suma delta al stock (positivo = reposición, negativo = venta).
// Si el resultado quedara negativo no muta nada y retorna ErrInsufficientStock.
// Retorna el stock resultante.
func (p *Product) AdjustStock(delta decimal.Decimal) (decimal.Decimal, error) {
	newStock := p.Stock.Add(delta)
	if newStock.LessThan(decimal.Zero) {
		return p.Stock, ErrInsufficientStock
	}
	p.Stock = newStock
	return p.Stock, nil
}

// ValidateQuantity verifica que una cantidad sea vendible para este producto
func (p *Product) ValidateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidQuantity
	}
	// Los productos por unidad no se venden fraccionados
	if p.UnitKind == UnitKindUnit && !quantity.IsInteger() {
		return ErrInvalidQuantity
	}
	return nil
}

// LineValue calcula precio unitario × cantidad para una línea de venta
func (p *Product) LineValue(quantity decimal.Decimal) (decimal.Decimal, error) {
	if err := p.ValidateQuantity(quantity); err != nil {
		return decimal.Zero, err
	}
	return p.Price.Mul(quantity), nil
}

// HasStockFor indica si el stock conocido alcanza para la cantidad pedida
func (p *Product) HasStockFor(quantity decimal.Decimal) bool {
	return p.Stock.GreaterThanOrEqual(quantity)
}

// IsPersisted indica si el producto ya fue guardado en el catálogo
func (p *Product) IsPersisted() bool {
	return p.ID != uuid.Nil
}
