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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado y asigna el ID generado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (name, document, phone, email, position, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		employee.Name, employee.Document, employee.Phone,
		employee.Email, employee.Position, employee.Status,
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("ya existe un empleado con ese documento")
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado. Devuelve nil si no existe.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	query := `SELECT id, name, document, phone, email, position, status FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Document, &e.Phone, &e.Email, &e.Position, &e.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List lista empleados, opcionalmente por estado, ordenados por ID.
func (r *EmployeeRepo) List(status string) ([]*entity.Employee, error) {
	query := `SELECT id, name, document, phone, email, position, status FROM employees`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Document, &e.Phone, &e.Email, &e.Position, &e.Status); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza los datos del empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, document = $3, phone = $4, email = $5, position = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Document, employee.Phone, employee.Email, employee.Position)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado Activo/Inactivo.
func (r *EmployeeRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update employee status: %w", err)
	}
	return nil
}

// Delete elimina un empleado. ErrNotFound si no existe.
func (r *EmployeeRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("empleado", "")
	}
	return nil
}
