package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/application/usecase"
)

// RoleHandler maneja las peticiones HTTP de roles.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoleRequest  true  "Datos del rol"
// @Success      201   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	role, err := h.uc.Create(c.Context(), usecase.RoleInput{
		Name:        in.Name,
		Permissions: in.Permissions,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewRoleResponse(role))
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewRoleListResponse(roles))
}

// GetByID godoc
// @Summary      Obtener rol por ID
// @Tags         roles
// @Produce      json
// @Param        id   path  int  true  "ID del rol"
// @Success      200  {object}  dto.RoleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	role, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewRoleResponse(role))
}

// Update godoc
// @Summary      Actualizar rol
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del rol"
// @Param        body  body  dto.RoleRequest  true  "Datos del rol"
// @Success      200   {object}  dto.RoleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	role, err := h.uc.Update(c.Context(), id, usecase.RoleInput{
		Name:        in.Name,
		Permissions: in.Permissions,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewRoleResponse(role))
}

// Delete godoc
// @Summary      Eliminar rol
// @Tags         roles
// @Produce      json
// @Param        id   path  int  true  "ID del rol"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Rol eliminado"})
}
