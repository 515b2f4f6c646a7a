package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/auth"
	"github.com/melkar/melkar-api/internal/application/dto"
)

// AuthHandler maneja login y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	session, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		User:        dto.NewUserResponse(session.User),
		Permissions: session.Permissions,
	})
}

// ForgotPassword godoc
// @Summary      Recuperar contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "Email del usuario"
// @Success      200   {object}  dto.ForgotPasswordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	temp, err := h.uc.ForgotPassword(c.Context(), in.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ForgotPasswordResponse{
		Message:      "Contraseña temporal generada",
		TempPassword: temp,
	})
}
