package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Create(c.Context(), usecase.ClientInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewClientResponse(client))
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Produce      json
// @Param        status  query  string  false  "Activo o Inactivo"
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewClientListResponse(clients))
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "ID del cliente (CL-N)"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewClientResponse(client))
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.ClientRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Update(c.Context(), c.Params("id"), usecase.ClientInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewClientResponse(client))
}

// UpdateStatus godoc
// @Summary      Cambiar estado del cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.StatusRequest  true  "Activo o Inactivo"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/status [patch]
func (h *ClientHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewClientResponse(client))
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado"})
}
