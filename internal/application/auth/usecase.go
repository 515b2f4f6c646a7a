package auth

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// defaultPermissions permisos por rol cuando el rol no existe en la tabla.
var defaultPermissions = map[string][]string{
	entity.RoleAdministrador: {
		"dashboard", "inventario", "ventas", "compras", "cotizaciones",
		"clientes", "proveedores", "empleados", "usuarios", "roles", "reportes",
	},
	entity.RoleGerente: {
		"dashboard", "inventario", "ventas", "compras", "cotizaciones",
		"clientes", "proveedores", "reportes",
	},
	entity.RoleVendedor: {
		"dashboard", "ventas", "cotizaciones", "clientes",
	},
}

// Session es el resultado de un login exitoso.
type Session struct {
	User        *entity.User
	Permissions []string
}

// UseCase autenticación por email y contraseña. Las contraseñas se comparan
// en texto plano y la sesión no emite token: el frontend conserva usuario y
// permisos y los envía por cabecera en cada petición.
type UseCase struct {
	users repository.UserRepository
	roles repository.RoleRepository
	log   *logger.Logger
}

// New construye el caso de uso.
func New(users repository.UserRepository, roles repository.RoleRepository, log *logger.Logger) *UseCase {
	return &UseCase{users: users, roles: roles, log: log}
}

// Login valida credenciales y devuelve el usuario con sus permisos efectivos.
// Email desconocido y contraseña incorrecta responden igual; un usuario
// inactivo se rechaza con acceso denegado.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidation("email", "email y contraseña son requeridos")
	}

	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActivo {
		return nil, domain.ErrForbidden
	}

	perms, err := uc.permissionsFor(user.Role)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario", user.Email).Str("rol", user.Role).Msg("Inicio de sesión")
	return &Session{User: user, Permissions: perms}, nil
}

// permissionsFor resuelve los permisos desde la tabla de roles, con los
// permisos por defecto como respaldo si el rol no está registrado.
func (uc *UseCase) permissionsFor(roleName string) ([]string, error) {
	role, err := uc.roles.GetByName(roleName)
	if err != nil {
		return nil, err
	}
	if role != nil && len(role.Permissions) > 0 {
		return role.Permissions, nil
	}
	if perms, ok := defaultPermissions[roleName]; ok {
		return perms, nil
	}
	return []string{"dashboard"}, nil
}

// ForgotPassword genera una contraseña temporal de 6 dígitos y la persiste.
// La contraseña se devuelve en la respuesta porque no hay canal de correo.
func (uc *UseCase) ForgotPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", domain.NewValidation("email", "el email es requerido")
	}
	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.NewNotFound("usuario", email)
	}

	temp := fmt.Sprintf("%06d", rand.IntN(1000000))
	if err := uc.users.UpdatePassword(user.ID, temp); err != nil {
		return "", err
	}

	uc.log.Warn().Str("usuario", user.Email).Msg("Contraseña temporal generada")
	return temp, nil
}
