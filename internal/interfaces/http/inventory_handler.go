package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/application/inventory"
	"github.com/melkar/melkar-api/internal/application/usecase"
)

// InventoryHandler maneja la vista de inventario y el libro de movimientos.
type InventoryHandler struct {
	products  *usecase.ProductUseCase
	movements *inventory.RegisterMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(products *usecase.ProductUseCase, movements *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{products: products, movements: movements}
}

// List godoc
// @Summary      Listar inventario activo por nivel de stock
// @Tags         inventory
// @Produce      json
// @Param        filter  query  string  false  "critical o low"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	products, err := h.products.ListInventory(c.Context(), c.Query("filter"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewProductListResponse(products))
}

// ListMovements godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.movements.ListMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewMovementListResponse(movements))
}

// RegisterMovement godoc
// @Summary      Registrar movimiento manual ENTRADA/SALIDA
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	movement, err := h.movements.ApplyMovement(c.Context(), inventory.MovementInput{
		ProductName: in.ProductName,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(movement))
}

// Restock godoc
// @Summary      Reposición rápida de stock de un producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true   "ID del producto"
// @Param        body  body  dto.RestockRequest  false  "Cantidad (0 usa el valor por defecto)"
// @Success      200   {object}  dto.RestockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	// El cuerpo es opcional: sin cantidad se usa el valor por defecto.
	var in dto.RestockRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	product, movement, err := h.movements.Restock(c.Context(), id, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RestockResponse{
		Message: fmt.Sprintf("Se repusieron %d unidades de %s", movement.Quantity, product.Name),
		Product: dto.NewProductResponse(product),
	})
}
