package repository

import (
	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/domain/entity"
)

// DashboardStats agregados para el tablero principal.
type DashboardStats struct {
	TotalSales      decimal.Decimal
	TotalStock      int
	ActiveQuotes    int
	ActivePurchases int
}

// InventoryStats agregados para la vista de inventario.
type InventoryStats struct {
	TotalSKUs  int
	Alerts     int // productos activos con stock <= 5
	TotalValue decimal.Decimal
}

// AnalyticsRepository define el puerto de consultas agregadas (solo lectura).
type AnalyticsRepository interface {
	DashboardStats() (*DashboardStats, error)
	InventoryStats() (*InventoryStats, error)
	// LowStockProducts lista productos activos con stock entre 0 y 10,
	// ordenados por stock ascendente (alertas del tablero).
	LowStockProducts() ([]*entity.Product, error)
}
