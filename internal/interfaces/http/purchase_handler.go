package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/application/orders"
)

// PurchaseHandler maneja las peticiones HTTP de órdenes de compra.
type PurchaseHandler struct {
	uc *orders.CreatePurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *orders.CreatePurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar orden de compra
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	purchase, err := h.uc.Create(c.Context(), orders.PurchaseInput{
		SupplierID: in.SupplierID,
		Items:      dto.ToLineItems(in.Items),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPurchaseResponse(purchase))
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	purchases, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPurchaseListResponse(purchases))
}

// GetByID godoc
// @Summary      Obtener orden de compra por ID
// @Tags         purchases
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	purchase, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPurchaseResponse(purchase))
}

// UpdateStatus godoc
// @Summary      Actualizar estado de la orden (Pendiente -> Recibido)
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID de la orden"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/status [patch]
func (h *PurchaseHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	purchase, err := h.uc.UpdateStatus(c.Context(), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPurchaseResponse(purchase))
}
