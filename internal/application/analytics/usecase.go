package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// Niveles de alerta de stock bajo en el tablero.
const (
	AlertLevelCritico = "Crítico" // stock <= 3
	AlertLevelBajo    = "Bajo"    // 3 < stock <= 10
)

// weeklyTrend serie fija que dibuja la tendencia semanal del tablero.
// El tablero no persiste histórico por día, la serie es ilustrativa.
var weeklyTrend = []int{40, 60, 50, 45, 100, 70, 80}

// LowStockAlert alerta de stock bajo para el tablero.
type LowStockAlert struct {
	Product string
	Stock   int
	Level   string
}

// DashboardData agregados y alertas del tablero principal.
type DashboardData struct {
	Stats          *repository.DashboardStats
	WeeklyTrend    []int
	LowStockAlerts []LowStockAlert
}

// SalesReport ventas de un período con su total general.
type SalesReport struct {
	Sales        []*entity.Sale
	TotalGeneral decimal.Decimal
}

// UseCase consultas de solo lectura para el tablero y los reportes.
type UseCase struct {
	analytics repository.AnalyticsRepository
	sales     repository.SaleRepository
	log       *logger.Logger
}

// New construye el caso de uso.
func New(analytics repository.AnalyticsRepository, sales repository.SaleRepository, log *logger.Logger) *UseCase {
	return &UseCase{analytics: analytics, sales: sales, log: log}
}

// Dashboard arma los agregados del tablero: totales, tendencia semanal y
// alertas de stock bajo con su nivel.
func (uc *UseCase) Dashboard(ctx context.Context) (*DashboardData, error) {
	stats, err := uc.analytics.DashboardStats()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analytics.LowStockProducts()
	if err != nil {
		return nil, err
	}

	alerts := make([]LowStockAlert, 0, len(lowStock))
	for _, p := range lowStock {
		level := AlertLevelBajo
		if p.Stock <= 3 {
			level = AlertLevelCritico
		}
		alerts = append(alerts, LowStockAlert{Product: p.Name, Stock: p.Stock, Level: level})
	}

	return &DashboardData{
		Stats:          stats,
		WeeklyTrend:    weeklyTrend,
		LowStockAlerts: alerts,
	}, nil
}

// InventoryStats devuelve los agregados de la vista de inventario.
func (uc *UseCase) InventoryStats(ctx context.Context) (*repository.InventoryStats, error) {
	return uc.analytics.InventoryStats()
}

// SalesByPeriod devuelve las ventas del rango con el total general del período.
func (uc *UseCase) SalesByPeriod(ctx context.Context, from, to *time.Time) (*SalesReport, error) {
	sales, err := uc.sales.List(from, to)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return &SalesReport{Sales: sales, TotalGeneral: total}, nil
}
