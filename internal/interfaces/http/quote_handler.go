package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/application/orders"
)

// QuoteHandler maneja las peticiones HTTP de cotizaciones.
type QuoteHandler struct {
	uc *orders.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *orders.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cotización
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Datos de la cotización"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	quote, err := h.uc.Create(c.Context(), orders.QuoteInput{
		ClientID:     in.ClientID,
		Items:        dto.ToLineItems(in.Items),
		Transport:    in.Transport,
		ValidityDays: in.ValidityDays,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuoteResponse(quote))
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	quotes, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewQuoteListResponse(quotes))
}

// GetByID godoc
// @Summary      Obtener cotización por ID
// @Tags         quotes
// @Produce      json
// @Param        id   path  int  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	quote, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewQuoteResponse(quote))
}

// Update godoc
// @Summary      Editar cotización en borrador
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la cotización"
// @Param        body  body  dto.QuoteRequest  true  "Datos de la cotización"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [put]
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	quote, err := h.uc.Update(c.Context(), id, orders.QuoteInput{
		ClientID:     in.ClientID,
		Items:        dto.ToLineItems(in.Items),
		Transport:    in.Transport,
		ValidityDays: in.ValidityDays,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewQuoteResponse(quote))
}

// Send godoc
// @Summary      Enviar cotización
// @Tags         quotes
// @Produce      json
// @Param        id   path  int  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	quote, err := h.uc.Send(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewQuoteResponse(quote))
}
