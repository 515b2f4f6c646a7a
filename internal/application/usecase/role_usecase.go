package usecase

import (
	"context"
	"strconv"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// RoleInput datos para crear o actualizar un rol.
type RoleInput struct {
	Name        string
	Permissions []string
}

// RoleUseCase CRUD de roles. Los roles de sistema (Administrador) no se
// editan ni se borran, y un rol con usuarios asignados no se puede eliminar.
type RoleUseCase struct {
	roles repository.RoleRepository
	users repository.UserRepository
	log   *logger.Logger
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roles repository.RoleRepository, users repository.UserRepository, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{roles: roles, users: users, log: log}
}

func (uc *RoleUseCase) validate(input RoleInput) error {
	if input.Name == "" {
		return domain.NewValidation("name", "el nombre es requerido")
	}
	if len(input.Permissions) == 0 {
		return domain.NewValidation("permissions", "debe asignar al menos un permiso")
	}
	return nil
}

// Create registra un rol nuevo, no de sistema, con estado Activo.
func (uc *RoleUseCase) Create(ctx context.Context, input RoleInput) (*entity.Role, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	exists, err := uc.roles.ExistsByName(input.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("ya existe un rol con ese nombre")
	}

	role := &entity.Role{
		Name:        input.Name,
		Permissions: input.Permissions,
		IsSystem:    false,
		Status:      entity.StatusActivo,
	}
	if err := uc.roles.Create(role); err != nil {
		return nil, err
	}

	uc.log.Info().Str("rol", role.Name).Msg("Rol creado")
	return role, nil
}

// Update actualiza nombre y permisos. Los roles de sistema son inmutables.
func (uc *RoleUseCase) Update(ctx context.Context, id int64, input RoleInput) (*entity.Role, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NewNotFound("rol", strconv.FormatInt(id, 10))
	}
	if role.IsSystem {
		return nil, domain.NewConflict("un rol de sistema no se puede modificar")
	}
	exists, err := uc.roles.ExistsByName(input.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("otro rol ya tiene ese nombre")
	}

	role.Name = input.Name
	role.Permissions = input.Permissions
	if err := uc.roles.Update(role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete elimina un rol. Bloqueado para roles de sistema y para roles con
// usuarios asignados.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.NewNotFound("rol", strconv.FormatInt(id, 10))
	}
	if role.IsSystem {
		return domain.NewConflict("un rol de sistema no se puede eliminar")
	}
	count, err := uc.users.CountByRole(role.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewConflict("el rol tiene usuarios asignados")
	}
	return uc.roles.Delete(id)
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NewNotFound("rol", strconv.FormatInt(id, 10))
	}
	return role, nil
}

// List devuelve todos los roles.
func (uc *RoleUseCase) List(ctx context.Context) ([]*entity.Role, error) {
	return uc.roles.List()
}
