package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository sobre PostgreSQL (usable con pool o tx).
// Los permisos se almacenan como texto separado por comas.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func joinPermissions(perms []string) string {
	return strings.Join(perms, ",")
}

func splitPermissions(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// Create persiste un nuevo rol y asigna el ID generado.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (name, permissions, is_system, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		role.Name, joinPermissions(role.Permissions), role.IsSystem, role.Status,
	).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("ya existe un rol con ese nombre")
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol. Devuelve nil si no existe.
func (r *RoleRepo) GetByID(id int64) (*entity.Role, error) {
	return r.scanOne(`SELECT id, name, permissions, is_system, status FROM roles WHERE id = $1`, id)
}

// GetByName obtiene un rol por nombre. Devuelve nil si no existe.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.scanOne(`SELECT id, name, permissions, is_system, status FROM roles WHERE name = $1`, name)
}

func (r *RoleRepo) scanOne(query string, arg any) (*entity.Role, error) {
	var role entity.Role
	var raw string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&role.ID, &role.Name, &raw, &role.IsSystem, &role.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	role.Permissions = splitPermissions(raw)
	return &role, nil
}

// List devuelve todos los roles ordenados por ID.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, permissions, is_system, status FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		var raw string
		if err := rows.Scan(&role.ID, &role.Name, &raw, &role.IsSystem, &role.Status); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.Permissions = splitPermissions(raw)
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update actualiza nombre y permisos del rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `UPDATE roles SET name = $2, permissions = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, joinPermissions(role.Permissions))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("otro rol ya tiene ese nombre")
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina un rol. ErrNotFound si no existe.
func (r *RoleRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("rol", "")
	}
	return nil
}

// ExistsByName verifica si otro rol ya usa el nombre.
func (r *RoleRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM roles WHERE name = $1 AND id <> $2`,
		name, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("exists by name: %w", err)
	}
	return count > 0, nil
}
