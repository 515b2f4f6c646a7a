package entity

// Roles con permisos por defecto cuando el rol no existe en la tabla roles.
const (
	RoleAdministrador = "Administrador"
	RoleVendedor      = "Vendedor"
	RoleGerente       = "Gerente"
)

// User es un usuario de la aplicación. La contraseña se almacena en texto
// plano; la aplicación corre en red interna y no es frontera de seguridad.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     string
	Status   string
}

// Role define un rol y su lista de permisos (nombres de módulo).
// IsSystem protege al rol de Administrador contra edición y borrado.
type Role struct {
	ID          int64
	Name        string
	Permissions []string
	IsSystem    bool
	Status      string
}
