package order

import (
	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
)

// TaxRate es el IVA fijo del 19% aplicado a ventas y cotizaciones.
// Las compras no llevan línea de impuesto.
var TaxRate = decimal.New(19, -2)

// Totals agrupa los montos derivados de una orden.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals calcula subtotal, impuesto y total de un conjunto de líneas.
// El subtotal es la suma exacta de precio×cantidad, sin redondeo intermedio;
// tax = round(subtotal × 0.19, 2) y total = round(subtotal + tax + transporte, 2),
// con redondeo half-up a 2 decimales.
func ComputeTotals(items []entity.LineItem, transport decimal.Decimal, withTax bool) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	tax := decimal.Zero
	if withTax {
		tax = subtotal.Mul(TaxRate).Round(2)
	}
	total := subtotal.Add(tax).Add(transport).Round(2)

	return Totals{Subtotal: subtotal, Tax: tax, Total: total}
}

// ValidateItems valida las líneas de una orden antes de cualquier mutación:
// al menos una línea, nombre de producto presente, cantidad positiva y precio
// no negativo. Falla con la primera línea inválida.
func ValidateItems(items []entity.LineItem) error {
	if len(items) == 0 {
		return domain.NewValidation("items", "debe agregar al menos un producto")
	}
	for _, it := range items {
		if it.ProductName == "" {
			return domain.NewValidation("productName", "nombre de producto requerido")
		}
		if it.Quantity <= 0 {
			return domain.NewValidation("quantity",
				"cantidad del producto '"+it.ProductName+"' debe ser mayor a 0")
		}
		if it.Price.IsNegative() {
			return domain.NewValidation("price", "el precio no puede ser negativo")
		}
	}
	return nil
}
