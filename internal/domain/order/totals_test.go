package order_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/order"
)

func item(name string, price string, qty int) entity.LineItem {
	return entity.LineItem{
		ProductName: name,
		Price:       decimal.RequireFromString(price),
		Quantity:    qty,
	}
}

func TestComputeTotals_VentaConIVA(t *testing.T) {
	// 2 x 50.00 + 3 x 50.00 = 250.00; IVA 19% = 47.50; total 297.50
	items := []entity.LineItem{
		item("Cemento", "50.00", 2),
		item("Varilla", "50.00", 3),
	}

	totals := order.ComputeTotals(items, decimal.Zero, true)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("250.00")),
		"subtotal debe ser 250.00, fue %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("47.50")),
		"IVA debe ser 47.50, fue %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("297.50")),
		"total debe ser 297.50, fue %s", totals.Total)
}

func TestComputeTotals_ConTransporte(t *testing.T) {
	items := []entity.LineItem{item("Cemento", "100.00", 1)}
	transport := decimal.RequireFromString("15.50")

	totals := order.ComputeTotals(items, transport, true)

	// 100 + 19 + 15.50 = 134.50
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("134.50")),
		"total con transporte debe ser 134.50, fue %s", totals.Total)
}

func TestComputeTotals_CompraSinIVA(t *testing.T) {
	items := []entity.LineItem{item("Cemento", "100.00", 3)}

	totals := order.ComputeTotals(items, decimal.Zero, false)

	assert.True(t, totals.Tax.IsZero(), "las compras no llevan IVA")
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("300.00")))
}

func TestComputeTotals_SubtotalExactoSinRedondeoIntermedio(t *testing.T) {
	// 3 x 0.335 = 1.005 exacto; el IVA se redondea sobre el subtotal exacto.
	items := []entity.LineItem{item("Tornillo", "0.335", 3)}

	totals := order.ComputeTotals(items, decimal.Zero, true)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("1.005")),
		"el subtotal no se redondea, fue %s", totals.Subtotal)
	// 1.005 * 0.19 = 0.19095 -> 0.19
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("0.19")))
	// 1.005 + 0.19 = 1.195 -> 1.20 (half-up)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("1.20")),
		"el total se redondea half-up, fue %s", totals.Total)
}

func TestValidateItems_SinLineas(t *testing.T) {
	err := order.ValidateItems(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidateItems_CantidadCero(t *testing.T) {
	err := order.ValidateItems([]entity.LineItem{item("Cemento", "10.00", 0)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Cemento")
}

func TestValidateItems_PrecioNegativo(t *testing.T) {
	err := order.ValidateItems([]entity.LineItem{item("Cemento", "-1.00", 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidateItems_SinNombre(t *testing.T) {
	err := order.ValidateItems([]entity.LineItem{item("", "10.00", 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidateItems_LineasValidas(t *testing.T) {
	err := order.ValidateItems([]entity.LineItem{
		item("Cemento", "10.00", 1),
		item("Varilla", "0.00", 5), // precio cero es válido
	})
	assert.NoError(t, err)
}
