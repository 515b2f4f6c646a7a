package entity

import "time"

// Direcciones de movimiento de inventario.
const (
	MovementTypeEntrada = "ENTRADA" // entrada de stock
	MovementTypeSalida  = "SALIDA"  // salida de stock
)

// InventoryMovement es una entrada inmutable del libro de inventario: se crea,
// nunca se actualiza ni se borra. ProductName es un snapshot del nombre al
// momento del evento, no una relación viva.
type InventoryMovement struct {
	ID            int64
	TransactionID string // agrupa los movimientos de una misma venta/compra
	ProductName   string
	Type          string
	Quantity      int // siempre positivo; la dirección la da Type
	Reason        string
	Date          time.Time
}
