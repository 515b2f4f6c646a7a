package repository

import "github.com/melkar/melkar-api/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia del libro de
// movimientos. Solo inserta y lista: el libro es append-only.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	// List devuelve los movimientos ordenados por fecha e ID descendentes.
	List() ([]*entity.InventoryMovement, error)
}
