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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (name, email, password, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.Name, user.Email, user.Password, user.Role, user.Status,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("ya existe un usuario con ese email")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario. Devuelve nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.scanOne(`SELECT id, name, email, password, role, status FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email. Devuelve nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.scanOne(`SELECT id, name, email, password, role, status FROM users WHERE email = $1`, email)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List lista usuarios, opcionalmente por estado, ordenados por ID.
func (r *UserRepo) List(status string) ([]*entity.User, error) {
	query := `SELECT id, name, email, password, role, status FROM users`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza nombre, email y rol del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `UPDATE users SET name = $2, email = $3, role = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("otro usuario ya tiene ese email")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza la contraseña del usuario.
func (r *UserRepo) UpdatePassword(id int64, password string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET password = $2 WHERE id = $1`, id, password)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado Activo/Inactivo.
func (r *UserRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	return nil
}

// Delete elimina un usuario. ErrNotFound si no existe.
func (r *UserRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("usuario", "")
	}
	return nil
}

// ExistsByEmail verifica si otro usuario ya usa el email.
func (r *UserRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE email = $1 AND id <> $2`,
		email, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return count > 0, nil
}

// CountByRole cuenta los usuarios asignados a un rol.
func (r *UserRepo) CountByRole(role string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE role = $1`, role,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by role: %w", err)
	}
	return count, nil
}
