package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/application/orders"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc *orders.CreateSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *orders.CreateSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale, err := h.uc.Create(c.Context(), orders.SaleInput{
		ClientID:     in.ClientID,
		EmployeeName: in.Employee,
		Items:        dto.ToLineItems(in.Items),
		Transport:    in.Transport,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSaleResponse(sale))
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (YYYY-MM-DD, exclusiva)"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	sales, err := h.uc.List(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleListResponse(sales))
}

// parseDateRange lee from/to (YYYY-MM-DD) de la query. to es exclusivo: se
// interpreta como la medianoche del día siguiente.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, errInvalidDate("from")
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, errInvalidDate("to")
		}
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, nil
}
