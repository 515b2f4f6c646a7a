package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP de empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	employee, err := h.uc.Create(c.Context(), usecase.EmployeeInput{
		Name:     in.Name,
		Document: in.Document,
		Phone:    in.Phone,
		Email:    in.Email,
		Position: in.Position,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewEmployeeResponse(employee))
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Param        status  query  string  false  "Activo o Inactivo"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewEmployeeListResponse(employees))
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	employee, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewEmployeeResponse(employee))
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	employee, err := h.uc.Update(c.Context(), id, usecase.EmployeeInput{
		Name:     in.Name,
		Document: in.Document,
		Phone:    in.Phone,
		Email:    in.Email,
		Position: in.Position,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewEmployeeResponse(employee))
}

// UpdateStatus godoc
// @Summary      Cambiar estado del empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del empleado"
// @Param        body  body  dto.StatusRequest  true  "Activo o Inactivo"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/status [patch]
func (h *EmployeeHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	employee, err := h.uc.UpdateStatus(c.Context(), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewEmployeeResponse(employee))
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Empleado eliminado"})
}
