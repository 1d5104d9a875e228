package entity

import (
	"testing"

	catalog "caixa/src/catalog/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistedProduct(t *testing.T, name string, price float64, stock int64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, decimal.NewFromFloat(price), catalog.UnitKindUnit, decimal.NewFromInt(stock))
	require.NoError(t, err)
	product.ID = uuid.New() // simula el persist del catálogo
	return product
}

func TestNewSale(t *testing.T) {
	sale := NewSale()

	assert.Equal(t, SaleStatusOpen, sale.Status)
	assert.Equal(t, uuid.Nil, sale.ID)
	assert.True(t, sale.Total.IsZero())
	assert.Empty(t, sale.Items)
}

func TestAddItemFreezesPriceAndRecomputesTotal(t *testing.T) {
	sale := NewSale()
	arroz := persistedProduct(t, "Arroz 5kg", 25.00, 100)

	item, err := sale.AddItem(arroz, decimal.NewFromInt(2))
	require.NoError(t, err)

	assert.True(t, item.UnitPrice.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, item.Subtotal.Equal(decimal.NewFromFloat(50.00)))
	assert.True(t, sale.CurrentTotal().Equal(decimal.NewFromFloat(50.00)))

	// Un cambio de precio posterior en el catálogo no afecta la línea
	arroz.Price = decimal.NewFromFloat(30.00)
	assert.True(t, sale.Items[0].UnitPrice.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, sale.CurrentTotal().Equal(decimal.NewFromFloat(50.00)))
}

func TestAddItemRejectsUnpersistedProduct(t *testing.T) {
	sale := NewSale()
	unpersisted, err := catalog.NewProduct("Arroz 5kg", decimal.NewFromFloat(25.00), catalog.UnitKindUnit, decimal.NewFromInt(10))
	require.NoError(t, err)

	_, err = sale.AddItem(unpersisted, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	_, err = sale.AddItem(nil, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

// El total nunca es estado independiente: para cualquier secuencia de
// agregados y quitas, siempre es la suma de los subtotales que quedan.
func TestTotalAlwaysEqualsSumOfSubtotals(t *testing.T) {
	sale := NewSale()
	arroz := persistedProduct(t, "Arroz 5kg", 25.00, 100)
	feijao := persistedProduct(t, "Feijao 1kg", 8.50, 150)
	banana := persistedProduct(t, "Banana Prata", 7.90, 50)

	sumOfSubtotals := func() decimal.Decimal {
		sum := decimal.Zero
		for _, item := range sale.Items {
			sum = sum.Add(item.Subtotal)
		}
		return sum
	}

	item1, err := sale.AddItem(arroz, decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.True(t, sale.CurrentTotal().Equal(sumOfSubtotals()))

	_, err = sale.AddItem(feijao, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, sale.CurrentTotal().Equal(sumOfSubtotals()))

	item3, err := sale.AddItem(banana, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, sale.CurrentTotal().Equal(sumOfSubtotals()))

	assert.True(t, sale.RemoveItem(item1.ID))
	assert.True(t, sale.CurrentTotal().Equal(sumOfSubtotals()))

	assert.True(t, sale.RemoveItem(item3.ID))
	assert.True(t, sale.CurrentTotal().Equal(sumOfSubtotals()))
	assert.True(t, sale.CurrentTotal().Equal(decimal.NewFromFloat(25.50)))

	assert.Equal(t, 1, sale.TotalItems())
}

func TestRemoveItemNotFoundIsReported(t *testing.T) {
	sale := NewSale()
	arroz := persistedProduct(t, "Arroz 5kg", 25.00, 100)

	_, err := sale.AddItem(arroz, decimal.NewFromInt(1))
	require.NoError(t, err)

	removed := sale.RemoveItem(uuid.New())
	assert.False(t, removed)
	assert.Equal(t, 1, sale.TotalItems())
	assert.True(t, sale.CurrentTotal().Equal(decimal.NewFromFloat(25.00)))
}

func TestFinalize(t *testing.T) {
	sale := NewSale()
	arroz := persistedProduct(t, "Arroz 5kg", 25.00, 100)
	_, err := sale.AddItem(arroz, decimal.NewFromInt(2))
	require.NoError(t, err)

	err = sale.Finalize(PaymentCash)
	assert.NoError(t, err)
	assert.Equal(t, SaleStatusFinalized, sale.Status)
	assert.Equal(t, PaymentCash, sale.PaymentMethod)
}

// La hora de la venta no es responsabilidad del aggregate: la estampa el
// repositorio al persistir. Finalizar no puede adelantar el timestamp,
// porque un persist fallido reabre el carrito y el valor quedaría pegado.
func TestFinalizeDoesNotAdvanceSaleTime(t *testing.T) {
	sale := NewSale()
	openedAt := sale.CreatedAt
	arroz := persistedProduct(t, "Arroz 5kg", 25.00, 100)
	_, err := sale.AddItem(arroz, decimal.NewFromInt(1))
	require.NoError(t, err)

	require.NoError(t, sale.Finalize(PaymentCash))
	assert.True(t, sale.CreatedAt.Equal(openedAt))
}

func TestFinalizeEmptySale(t *testing.T) {
	sale := NewSale()

	err := sale.Finalize(PaymentCash)
	assert.ErrorIs(t, err, ErrEmptySale)
	assert.Equal(t, SaleStatusOpen, sale.Status)
}

func TestFinalizeUnknownPaymentMethod(t *testing.T) {
	sale := NewSale()
	arroz := persistedProduct(t, "Arroz 5kg", 25.00, 100)
	_, err := sale.AddItem(arroz, decimal.NewFromInt(1))
	require.NoError(t, err)

	err = sale.Finalize(PaymentMethod("CHEQUE"))
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.Equal(t, SaleStatusOpen, sale.Status)
	assert.Empty(t, sale.PaymentMethod)
}

func TestFinalizeExactlyOnce(t *testing.T) {
	sale := NewSale()
	arroz := persistedProduct(t, "Arroz 5kg", 25.00, 100)
	_, err := sale.AddItem(arroz, decimal.NewFromInt(1))
	require.NoError(t, err)

	require.NoError(t, sale.Finalize(PaymentPix))

	err = sale.Finalize(PaymentPix)
	assert.ErrorIs(t, err, ErrSaleAlreadyFinalized)

	// Una venta finalizada no acepta más líneas ni quitas
	_, err = sale.AddItem(arroz, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrSaleNotOpen)
	assert.False(t, sale.RemoveItem(sale.Items[0].ID))
}
