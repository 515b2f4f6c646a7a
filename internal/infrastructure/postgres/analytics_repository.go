package postgres

import (
	"context"
	"fmt"

	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas para el dashboard y reportes.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// DashboardStats calcula los agregados principales del dashboard.
func (r *AnalyticsRepo) DashboardStats() (*repository.DashboardStats, error) {
	ctx := context.Background()
	var stats repository.DashboardStats

	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales`,
	).Scan(&stats.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("sum sales: %w", err)
	}

	err = r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(stock), 0) FROM products WHERE active`,
	).Scan(&stats.TotalStock)
	if err != nil {
		return nil, fmt.Errorf("sum stock: %w", err)
	}

	err = r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM quotes WHERE status IN ($1, $2)`,
		entity.QuoteStatusBorrador, entity.QuoteStatusEnviada,
	).Scan(&stats.ActiveQuotes)
	if err != nil {
		return nil, fmt.Errorf("count quotes: %w", err)
	}

	err = r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM purchases WHERE status = $1`,
		entity.PurchaseStatusPendiente,
	).Scan(&stats.ActivePurchases)
	if err != nil {
		return nil, fmt.Errorf("count purchases: %w", err)
	}

	return &stats, nil
}

// InventoryStats calcula los agregados del inventario activo.
func (r *AnalyticsRepo) InventoryStats() (*repository.InventoryStats, error) {
	ctx := context.Background()
	var stats repository.InventoryStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock <= 5),
		       COALESCE(SUM(price * stock), 0)
		FROM products WHERE active`,
	).Scan(&stats.TotalSKUs, &stats.Alerts, &stats.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	return &stats, nil
}

// LowStockProducts devuelve los productos activos con stock en el rango 0..10,
// los más escasos primero.
func (r *AnalyticsRepo) LowStockProducts() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE active AND stock <= 10
		ORDER BY stock, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Status, &p.Active); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
