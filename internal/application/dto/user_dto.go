package dto

import "github.com/melkar/melkar-api/internal/domain/entity"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse sesión resultante del login.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	Permissions []string     `json:"permissions"`
}

// ForgotPasswordRequest entrada para recuperar contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse la contraseña temporal se devuelve en la respuesta
// porque no hay canal de correo configurado.
type ForgotPasswordResponse struct {
	Message      string `json:"message"`
	TempPassword string `json:"tempPassword"`
}

// UserRequest entrada para crear o actualizar un usuario.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ChangePasswordRequest entrada para cambiar contraseña.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña.
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// NewUserResponse mapea la entidad a la respuesta.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: u.Status,
	}
}

// NewUserListResponse mapea una lista de usuarios.
func NewUserListResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// RoleRequest entrada para crear o actualizar un rol.
type RoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	IsSystem    bool     `json:"isSystem"`
	Status      string   `json:"status"`
}

// NewRoleResponse mapea la entidad a la respuesta.
func NewRoleResponse(r *entity.Role) RoleResponse {
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: perms,
		IsSystem:    r.IsSystem,
		Status:      r.Status,
	}
}

// NewRoleListResponse mapea una lista de roles.
func NewRoleListResponse(roles []*entity.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, NewRoleResponse(r))
	}
	return out
}
