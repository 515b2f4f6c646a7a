package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, nit, phone, location, rating, email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Name, supplier.NIT, supplier.Phone, supplier.Location,
		supplier.Rating, supplier.Email, supplier.Status,
	).Scan(&supplier.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("ya existe un proveedor con ese NIT")
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor. Devuelve nil si no existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT id, name, nit, phone, location, rating, email, status FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.NIT, &s.Phone, &s.Location, &s.Rating, &s.Email, &s.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List filtra por nombre o NIT (búsqueda parcial, case-insensitive) y estado.
func (r *SupplierRepo) List(search, status string) ([]*entity.Supplier, error) {
	query := `SELECT id, name, nit, phone, location, rating, email, status FROM suppliers`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE (name ILIKE $%d OR nit ILIKE $%d)", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	if status != "" {
		if pos == 1 {
			query += fmt.Sprintf(" WHERE status = $%d", pos)
		} else {
			query += fmt.Sprintf(" AND status = $%d", pos)
		}
		args = append(args, status)
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.NIT, &s.Phone, &s.Location, &s.Rating, &s.Email, &s.Status); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los datos del proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, nit = $3, phone = $4, location = $5, email = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.NIT, supplier.Phone, supplier.Location, supplier.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("otro proveedor ya tiene ese NIT")
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado Activo/Inactivo.
func (r *SupplierRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update supplier status: %w", err)
	}
	return nil
}

// Delete elimina un proveedor. ErrNotFound si no existe.
func (r *SupplierRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("proveedor", "")
	}
	return nil
}

// ExistsByNIT verifica si otro proveedor ya tiene el NIT.
func (r *SupplierRepo) ExistsByNIT(nit string, excludeID int64) (bool, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM suppliers WHERE nit = $1 AND id <> $2`,
		nit, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("exists by nit: %w", err)
	}
	return count > 0, nil
}
