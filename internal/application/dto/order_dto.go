package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/domain/entity"
)

// LineItemRequest línea de una orden (venta, compra o cotización).
// Name es el alias que algunos clientes envían en lugar de productName.
type LineItemRequest struct {
	ProductName string          `json:"productName"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// LineItemResponse línea de orden en respuestas.
type LineItemResponse struct {
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// ToLineItems convierte las líneas de la petición a entidades.
func ToLineItems(items []LineItemRequest) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		name := it.ProductName
		if name == "" {
			name = it.Name
		}
		out = append(out, entity.LineItem{
			ProductName: name,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return out
}

func newLineItemResponses(items []entity.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return out
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	ClientID  string            `json:"clientId"`
	Employee  string            `json:"employee"`
	Items     []LineItemRequest `json:"items"`
	Transport decimal.Decimal   `json:"transport"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID        int64              `json:"id"`
	ClientID  string             `json:"clientId"`
	Client    string             `json:"client"`
	Employee  string             `json:"employee"`
	Items     []LineItemResponse `json:"items"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Tax       decimal.Decimal    `json:"tax"`
	Transport decimal.Decimal    `json:"transport"`
	Total     decimal.Decimal    `json:"total"`
	Status    string             `json:"status"`
	Date      time.Time          `json:"date"`
}

// NewSaleResponse mapea la entidad a la respuesta.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		Client:    s.ClientName,
		Employee:  s.EmployeeName,
		Items:     newLineItemResponses(s.Items),
		Subtotal:  s.Subtotal,
		Tax:       s.Tax,
		Transport: s.Transport,
		Total:     s.Total,
		Status:    s.Status,
		Date:      s.CreatedAt,
	}
}

// NewSaleListResponse mapea una lista de ventas.
func NewSaleListResponse(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewSaleResponse(s))
	}
	return out
}

// CreatePurchaseRequest entrada para registrar una orden de compra.
type CreatePurchaseRequest struct {
	SupplierID int64             `json:"supplierId"`
	Items      []LineItemRequest `json:"items"`
}

// PurchaseResponse salida de una orden de compra.
type PurchaseResponse struct {
	ID       int64              `json:"id"`
	Supplier string             `json:"supplier"`
	Items    []LineItemResponse `json:"items"`
	Total    decimal.Decimal    `json:"total"`
	Status   string             `json:"status"`
	Date     time.Time          `json:"date"`
}

// NewPurchaseResponse mapea la entidad a la respuesta.
func NewPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:       p.ID,
		Supplier: p.SupplierName,
		Items:    newLineItemResponses(p.Items),
		Total:    p.Total,
		Status:   p.Status,
		Date:     p.CreatedAt,
	}
}

// NewPurchaseListResponse mapea una lista de órdenes de compra.
func NewPurchaseListResponse(purchases []*entity.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, NewPurchaseResponse(p))
	}
	return out
}

// QuoteRequest entrada para crear o editar una cotización.
type QuoteRequest struct {
	ClientID     string            `json:"clientId"`
	Items        []LineItemRequest `json:"items"`
	Transport    decimal.Decimal   `json:"transport"`
	ValidityDays int               `json:"validityDays"`
}

// QuoteResponse salida de una cotización.
type QuoteResponse struct {
	ID           int64              `json:"id"`
	ClientID     string             `json:"clientId"`
	Client       string             `json:"client"`
	Items        []LineItemResponse `json:"items"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	Tax          decimal.Decimal    `json:"tax"`
	Transport    decimal.Decimal    `json:"transport"`
	Total        decimal.Decimal    `json:"total"`
	Status       string             `json:"status"`
	ValidityDays int                `json:"validityDays"`
	Date         time.Time          `json:"date"`
}

// NewQuoteResponse mapea la entidad a la respuesta.
func NewQuoteResponse(q *entity.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		ClientID:     q.ClientID,
		Client:       q.ClientName,
		Items:        newLineItemResponses(q.Items),
		Subtotal:     q.Subtotal,
		Tax:          q.Tax,
		Transport:    q.Transport,
		Total:        q.Total,
		Status:       q.Status,
		ValidityDays: q.ValidityDays,
		Date:         q.CreatedAt,
	}
}

// NewQuoteListResponse mapea una lista de cotizaciones.
func NewQuoteListResponse(quotes []*entity.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}
	return out
}
