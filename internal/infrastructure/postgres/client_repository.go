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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente (el ID CL-N viene asignado por NextID).
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, email, phone, address, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Address, client.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("ya existe un cliente con ese email")
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente. Devuelve nil si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT id, name, email, phone, address, status FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista clientes, opcionalmente por estado, ordenados por ID.
func (r *ClientRepo) List(status string) ([]*entity.Client, error) {
	query := `SELECT id, name, email, phone, address, status FROM clients`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Status); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto del cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, email = $3, phone = $4, address = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Address)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado Activo/Inactivo.
func (r *ClientRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clients SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update client status: %w", err)
	}
	return nil
}

// Delete elimina un cliente. ErrNotFound si no existe.
func (r *ClientRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("cliente", id)
	}
	return nil
}

// ExistsByEmail verifica si otro cliente ya usa el email.
func (r *ClientRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM clients WHERE email = $1 AND id <> $2`,
		email, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return count > 0, nil
}

// NextID genera el siguiente ID con formato CL-N a partir del máximo actual.
func (r *ClientRepo) NextID() (string, error) {
	var maxNum int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(CAST(REPLACE(id, 'CL-', '') AS INTEGER)), 0) FROM clients`,
	).Scan(&maxNum)
	if err != nil {
		return "", fmt.Errorf("next client id: %w", err)
	}
	return fmt.Sprintf("CL-%d", maxNum+1), nil
}
