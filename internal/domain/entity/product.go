package entity

import "github.com/shopspring/decimal"

// Estados derivados del stock de un producto.
const (
	StockStatusEnStock = "En Stock"   // stock > 10
	StockStatusBajo    = "Stock Bajo" // 0 < stock <= 10
	StockStatusSin     = "Sin Stock"  // stock <= 0
)

// Product representa un producto del catálogo. Status es siempre función pura
// del stock actual (StockStatus); nunca se edita directamente.
type Product struct {
	ID     int64
	Name   string
	SKU    string
	Price  decimal.Decimal
	Stock  int
	Status string
	Active bool
}

// StockStatus devuelve la etiqueta de estado derivada del stock.
func StockStatus(stock int) string {
	switch {
	case stock > 10:
		return StockStatusEnStock
	case stock > 0:
		return StockStatusBajo
	default:
		return StockStatusSin
	}
}
