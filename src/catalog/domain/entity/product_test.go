package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	// Act
	product, err := NewProduct("Arroz 5kg", decimal.NewFromFloat(25.00), UnitKindUnit, decimal.NewFromInt(100))

	// Assert
	assert.NoError(t, err)
	assert.False(t, product.IsPersisted())
	assert.Equal(t, "Arroz 5kg", product.Name)
	assert.Equal(t, UnitKindUnit, product.UnitKind)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(100)))
}

func TestNewProductValidations(t *testing.T) {
	price := decimal.NewFromFloat(7.90)
	stock := decimal.NewFromInt(50)

	tests := []struct {
		name     string
		prodName string
		price    decimal.Decimal
		unitKind UnitKind
		stock    decimal.Decimal
		wantErr  error
	}{
		{"empty name", "", price, UnitKindKg, stock, ErrProductNameRequired},
		{"blank name", "   ", price, UnitKindKg, stock, ErrProductNameRequired},
		{"zero price", "Banana Prata", decimal.Zero, UnitKindKg, stock, ErrInvalidPrice},
		{"negative price", "Banana Prata", decimal.NewFromFloat(-1.50), UnitKindKg, stock, ErrInvalidPrice},
		{"unknown unit kind", "Banana Prata", price, UnitKind("LITRO"), stock, ErrInvalidUnitKind},
		{"negative stock", "Banana Prata", price, UnitKindKg, decimal.NewFromInt(-1), ErrInvalidStock},
		{"fractional stock for unit product", "Feijao 1kg", price, UnitKindUnit, decimal.NewFromFloat(1.5), ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.prodName, tt.price, tt.unitKind, tt.stock)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, product)
		})
	}
}

func TestNewProductAllowsFractionalStockForKg(t *testing.T) {
	product, err := NewProduct("Banana Prata", decimal.NewFromFloat(7.90), UnitKindKg, decimal.NewFromFloat(12.350))

	assert.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromFloat(12.350)))
}

func TestAdjustStock(t *testing.T) {
	product, _ := NewProduct("Arroz 5kg", decimal.NewFromFloat(25.00), UnitKindUnit, decimal.NewFromInt(100))

	// Venta de 5 unidades
	newStock, err := product.AdjustStock(decimal.NewFromInt(-5))
	assert.NoError(t, err)
	assert.True(t, newStock.Equal(decimal.NewFromInt(95)))
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(95)))

	// Reposición de 10
	newStock, err = product.AdjustStock(decimal.NewFromInt(10))
	assert.NoError(t, err)
	assert.True(t, newStock.Equal(decimal.NewFromInt(105)))
}

func TestAdjustStockNeverGoesNegative(t *testing.T) {
	product, _ := NewProduct("Feijao 1kg", decimal.NewFromFloat(8.50), UnitKindUnit, decimal.NewFromInt(3))

	// Un descuento mayor al stock no muta nada
	newStock, err := product.AdjustStock(decimal.NewFromInt(-4))
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.True(t, newStock.Equal(decimal.NewFromInt(3)))
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(3)), "stock must be unchanged on failure")

	// Descontar exactamente el stock deja cero, no error
	newStock, err = product.AdjustStock(decimal.NewFromInt(-3))
	assert.NoError(t, err)
	assert.True(t, newStock.IsZero())
}

func TestLineValue(t *testing.T) {
	product, _ := NewProduct("Arroz 5kg", decimal.NewFromFloat(25.00), UnitKindUnit, decimal.NewFromInt(100))

	value, err := product.LineValue(decimal.NewFromInt(2))
	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(50.00)))
}

func TestLineValueRejectsInvalidQuantities(t *testing.T) {
	unit, _ := NewProduct("Arroz 5kg", decimal.NewFromFloat(25.00), UnitKindUnit, decimal.NewFromInt(100))
	kg, _ := NewProduct("Banana Prata", decimal.NewFromFloat(7.90), UnitKindKg, decimal.NewFromInt(50))

	_, err := unit.LineValue(decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = unit.LineValue(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Producto por unidad no se vende fraccionado
	_, err = unit.LineValue(decimal.NewFromFloat(1.5))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Producto por peso sí
	value, err := kg.LineValue(decimal.NewFromFloat(0.5))
	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(3.95)))
}

func TestHasStockFor(t *testing.T) {
	product, _ := NewProduct("Feijao 1kg", decimal.NewFromFloat(8.50), UnitKindUnit, decimal.NewFromInt(5))

	assert.True(t, product.HasStockFor(decimal.NewFromInt(5)))
	assert.False(t, product.HasStockFor(decimal.NewFromInt(6)))
}
