package usecase

import (
	"context"
	"strconv"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// DefaultUserPassword contraseña inicial cuando el administrador no indica una.
const DefaultUserPassword = "123456"

// UserInput datos para crear o actualizar un usuario.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserUseCase CRUD de usuarios de la aplicación.
type UserUseCase struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, log: log}
}

func (uc *UserUseCase) validate(input UserInput) error {
	if input.Name == "" {
		return domain.NewValidation("name", "el nombre es requerido")
	}
	if input.Email == "" {
		return domain.NewValidation("email", "el email es requerido")
	}
	return nil
}

// Create registra un usuario nuevo. Sin contraseña usa la inicial por defecto;
// sin rol queda como Vendedor.
func (uc *UserUseCase) Create(ctx context.Context, input UserInput) (*entity.User, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	exists, err := uc.users.ExistsByEmail(input.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("ya existe un usuario con ese email")
	}

	if input.Password == "" {
		input.Password = DefaultUserPassword
	}
	if input.Role == "" {
		input.Role = entity.RoleVendedor
	}
	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Status:   entity.StatusActivo,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario", user.Email).Str("rol", user.Role).Msg("Usuario creado")
	return user, nil
}

// Update actualiza nombre, email y rol de un usuario existente.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input UserInput) (*entity.User, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("usuario", strconv.FormatInt(id, 10))
	}
	exists, err := uc.users.ExistsByEmail(input.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("otro usuario ya tiene ese email")
	}

	user.Name = input.Name
	user.Email = input.Email
	if input.Role != "" {
		user.Role = input.Role
	}
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword reemplaza la contraseña del usuario.
func (uc *UserUseCase) ChangePassword(ctx context.Context, id int64, password string) error {
	if password == "" {
		return domain.NewValidation("password", "la contraseña es requerida")
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFound("usuario", strconv.FormatInt(id, 10))
	}
	return uc.users.UpdatePassword(id, password)
}

// UpdateStatus cambia el estado Activo/Inactivo. Un usuario inactivo no puede
// iniciar sesión.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*entity.User, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.NewValidation("status", "estado inválido")
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("usuario", strconv.FormatInt(id, 10))
	}
	if err := uc.users.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	user.Status = status
	return user, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("usuario", strconv.FormatInt(id, 10))
	}
	return user, nil
}

// List lista usuarios, opcionalmente filtrados por estado.
func (uc *UserUseCase) List(ctx context.Context, status string) ([]*entity.User, error) {
	return uc.users.List(status)
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.users.Delete(id)
}
