package postgres

import (
	"context"
	"fmt"

	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: solo INSERT y SELECT.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario y asigna ID y fecha generados.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (transaction_id, product_name, type, quantity, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, movement_date`
	txID := (*string)(nil)
	if movement.TransactionID != "" {
		txID = &movement.TransactionID
	}
	err := r.q.QueryRow(context.Background(), query,
		txID, movement.ProductName, movement.Type, movement.Quantity, movement.Reason,
	).Scan(&movement.ID, &movement.Date)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos, más recientes primero.
func (r *InventoryMovementRepo) List() ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, transaction_id, product_name, type, quantity, reason, movement_date
		FROM inventory_movements
		ORDER BY movement_date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var txID *string
		if err := rows.Scan(&m.ID, &txID, &m.ProductName, &m.Type, &m.Quantity, &m.Reason, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if txID != nil {
			m.TransactionID = *txID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
