package dto

import (
	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/application/analytics"
)

// LowStockAlertResponse alerta de stock bajo en el dashboard.
type LowStockAlertResponse struct {
	Product string `json:"product"`
	Stock   int    `json:"stock"`
	Level   string `json:"level"`
}

// DashboardResponse agregados del tablero principal.
type DashboardResponse struct {
	TotalSales      decimal.Decimal         `json:"totalSales"`
	TotalStock      int                     `json:"totalStock"`
	ActiveQuotes    int                     `json:"activeQuotes"`
	ActivePurchases int                     `json:"activePurchases"`
	WeeklyTrend     []int                   `json:"weeklyTrend"`
	LowStockAlerts  []LowStockAlertResponse `json:"lowStockAlerts"`
}

// NewDashboardResponse mapea los datos del tablero a la respuesta.
func NewDashboardResponse(d *analytics.DashboardData) DashboardResponse {
	alerts := make([]LowStockAlertResponse, 0, len(d.LowStockAlerts))
	for _, a := range d.LowStockAlerts {
		alerts = append(alerts, LowStockAlertResponse{Product: a.Product, Stock: a.Stock, Level: a.Level})
	}
	return DashboardResponse{
		TotalSales:      d.Stats.TotalSales,
		TotalStock:      d.Stats.TotalStock,
		ActiveQuotes:    d.Stats.ActiveQuotes,
		ActivePurchases: d.Stats.ActivePurchases,
		WeeklyTrend:     d.WeeklyTrend,
		LowStockAlerts:  alerts,
	}
}

// InventoryStatsResponse agregados de la vista de inventario.
type InventoryStatsResponse struct {
	TotalSKUs  int             `json:"totalSKUs"`
	Alerts     int             `json:"alerts"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// SalesReportResponse ventas de un período con total general.
type SalesReportResponse struct {
	Sales        []SaleResponse  `json:"sales"`
	TotalGeneral decimal.Decimal `json:"totalGeneral"`
}
