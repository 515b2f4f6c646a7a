package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de los tres tipos de orden. Cada tipo tiene su propia máquina:
//   Cotización: Borrador -> Enviada (terminal)
//   Compra:     Pendiente -> Recibido (terminal)
//   Venta:      Completada (se crea ya completa, sin transiciones)
const (
	QuoteStatusBorrador = "Borrador"
	QuoteStatusEnviada  = "Enviada"

	PurchaseStatusPendiente = "Pendiente"
	PurchaseStatusRecibido  = "Recibido"

	SaleStatusCompletada = "Completada"
)

// LineItem es una línea de orden: snapshot de nombre y precio del producto al
// momento de la transacción (no cambia si el producto se renombra o reprecia).
type LineItem struct {
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// Sale es una venta. Subtotal/Tax/Total son derivados (motor de totales).
type Sale struct {
	ID           int64
	ClientID     string
	ClientName   string
	EmployeeName string
	Items        []LineItem
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Transport    decimal.Decimal
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

// Purchase es una orden de compra. No lleva línea de IVA.
type Purchase struct {
	ID           int64
	SupplierID   int64
	SupplierName string
	Items        []LineItem
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

// Quote es una cotización. Editable solo en estado Borrador.
type Quote struct {
	ID           int64
	ClientID     string
	ClientName   string
	Items        []LineItem
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Transport    decimal.Decimal
	Total        decimal.Decimal
	Status       string
	ValidityDays int
	CreatedAt    time.Time
}
