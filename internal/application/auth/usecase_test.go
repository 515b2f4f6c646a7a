package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melkar/melkar-api/internal/application/auth"
	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/pkg/logger"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(*entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(int64) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUserRepo) List(string) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(*entity.User) error           { return nil }
func (r *fakeUserRepo) UpdatePassword(id int64, password string) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.Password = password
			return nil
		}
	}
	return domain.NewNotFound("usuario", "")
}
func (r *fakeUserRepo) UpdateStatus(int64, string) error            { return nil }
func (r *fakeUserRepo) Delete(int64) error                          { return nil }
func (r *fakeUserRepo) ExistsByEmail(string, int64) (bool, error) { return false, nil }
func (r *fakeUserRepo) CountByRole(string) (int, error) { return 0, nil }

type fakeRoleRepo struct {
	byName map[string]*entity.Role
}

func (r *fakeRoleRepo) Create(*entity.Role) error            { return nil }
func (r *fakeRoleRepo) GetByID(int64) (*entity.Role, error) { return nil, nil }
func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	role, ok := r.byName[name]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}
func (r *fakeRoleRepo) List() ([]*entity.Role, error) { return nil, nil }
func (r *fakeRoleRepo) Update(*entity.Role) error               { return nil }
func (r *fakeRoleRepo) Delete(int64) error                      { return nil }
func (r *fakeRoleRepo) ExistsByName(string, int64) (bool, error) { return false, nil }

func buildAuth(users *fakeUserRepo, roles *fakeRoleRepo) *auth.UseCase {
	if roles == nil {
		roles = &fakeRoleRepo{byName: map[string]*entity.Role{}}
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return auth.New(users, roles, log)
}

func user(email, password, role, status string) *entity.User {
	return &entity.User{ID: 1, Name: "Ana", Email: email, Password: password, Role: role, Status: status}
}

func TestLogin_CredencialesValidas(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@melkar.com": user("ana@melkar.com", "123456", entity.RoleVendedor, entity.StatusActivo),
	}}
	uc := buildAuth(users, nil)

	session, err := uc.Login(context.Background(), "ana@melkar.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, "ana@melkar.com", session.User.Email)
	assert.ElementsMatch(t, []string{"dashboard", "ventas", "cotizaciones", "clientes"},
		session.Permissions, "el vendedor recibe sus permisos por defecto")
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@melkar.com": user("ana@melkar.com", "123456", entity.RoleVendedor, entity.StatusActivo),
	}}
	uc := buildAuth(users, nil)

	_, err := uc.Login(context.Background(), "ana@melkar.com", "otra")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_EmailDesconocidoMismoError(t *testing.T) {
	uc := buildAuth(&fakeUserRepo{byEmail: map[string]*entity.User{}}, nil)

	// Email inexistente y contraseña mala responden idéntico.
	_, err := uc.Login(context.Background(), "nadie@melkar.com", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@melkar.com": user("ana@melkar.com", "123456", entity.RoleVendedor, entity.StatusInactivo),
	}}
	uc := buildAuth(users, nil)

	_, err := uc.Login(context.Background(), "ana@melkar.com", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestLogin_PermisosDesdeTablaDeRoles(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@melkar.com": user("ana@melkar.com", "123456", "Bodeguero", entity.StatusActivo),
	}}
	roles := &fakeRoleRepo{byName: map[string]*entity.Role{
		"Bodeguero": {ID: 4, Name: "Bodeguero", Permissions: []string{"dashboard", "inventario"}},
	}}
	uc := buildAuth(users, roles)

	session, err := uc.Login(context.Background(), "ana@melkar.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard", "inventario"}, session.Permissions,
		"la tabla de roles manda sobre los permisos por defecto")
}

func TestLogin_RolDesconocidoSoloDashboard(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@melkar.com": user("ana@melkar.com", "123456", "Practicante", entity.StatusActivo),
	}}
	uc := buildAuth(users, nil)

	session, err := uc.Login(context.Background(), "ana@melkar.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard"}, session.Permissions)
}

func TestForgotPassword_GeneraYPersisteTemporal(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@melkar.com": user("ana@melkar.com", "123456", entity.RoleVendedor, entity.StatusActivo),
	}}
	uc := buildAuth(users, nil)

	temp, err := uc.ForgotPassword(context.Background(), "ana@melkar.com")
	require.NoError(t, err)

	assert.Len(t, temp, 6, "la contraseña temporal es de 6 dígitos")
	stored, _ := users.GetByEmail("ana@melkar.com")
	assert.Equal(t, temp, stored.Password, "la temporal reemplaza a la anterior")
}

func TestForgotPassword_UsuarioInexistente(t *testing.T) {
	uc := buildAuth(&fakeUserRepo{byEmail: map[string]*entity.User{}}, nil)

	_, err := uc.ForgotPassword(context.Background(), "nadie@melkar.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
