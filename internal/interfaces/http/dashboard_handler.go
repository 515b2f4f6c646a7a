package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/analytics"
	"github.com/melkar/melkar-api/internal/application/dto"
)

// DashboardHandler maneja el tablero y los reportes de ventas.
type DashboardHandler struct {
	uc *analytics.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Agregados del tablero principal
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDashboardResponse(data))
}

// InventoryStats godoc
// @Summary      Agregados de la vista de inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsResponse
// @Router       /api/inventory/stats [get]
func (h *DashboardHandler) InventoryStats(c *fiber.Ctx) error {
	stats, err := h.uc.InventoryStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InventoryStatsResponse{
		TotalSKUs:  stats.TotalSKUs,
		Alerts:     stats.Alerts,
		TotalValue: stats.TotalValue,
	})
}

// SalesReport godoc
// @Summary      Reporte de ventas por período
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (YYYY-MM-DD, exclusiva)"
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/reports/sales [get]
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	report, err := h.uc.SalesByPeriod(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SalesReportResponse{
		Sales:        dto.NewSaleListResponse(report.Sales),
		TotalGeneral: report.TotalGeneral,
	})
}
