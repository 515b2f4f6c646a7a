package repository

import "github.com/melkar/melkar-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(status string) ([]*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id int64, password string) error
	UpdateStatus(id int64, status string) error
	Delete(id int64) error
	ExistsByEmail(email string, excludeID int64) (bool, error)
	// CountByRole cuenta usuarios asignados a un rol (bloquea el borrado del rol).
	CountByRole(roleName string) (int, error)
}

// RoleRepository define el puerto de persistencia para roles.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id int64) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id int64) error
	ExistsByName(name string, excludeID int64) (bool, error)
}
