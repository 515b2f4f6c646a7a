package dto

import (
	"time"

	"github.com/melkar/melkar-api/internal/domain/entity"
)

// MovementRequest entrada para registrar un movimiento manual de inventario.
type MovementRequest struct {
	ProductName string `json:"productName"`
	Type        string `json:"type"` // ENTRADA o SALIDA
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
}

// RestockRequest entrada para reposición rápida desde el dashboard.
type RestockRequest struct {
	Quantity int `json:"quantity"` // 0 usa la cantidad por defecto
}

// RestockResponse salida de una reposición: mensaje y producto actualizado.
type RestockResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// MovementResponse salida de un movimiento del libro de inventario.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transactionId,omitempty"`
	ProductName   string    `json:"productName"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason"`
	Date          time.Time `json:"date"`
}

// NewMovementResponse mapea la entidad a la respuesta.
func NewMovementResponse(m *entity.InventoryMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ProductName:   m.ProductName,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		Date:          m.Date,
	}
}

// NewMovementListResponse mapea una lista de movimientos.
func NewMovementListResponse(movements []*entity.InventoryMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, NewMovementResponse(m))
	}
	return out
}
