package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y asigna ID y fecha generados.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (client_id, client_name, employee_name, subtotal, tax, transport, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		sale.ClientID, sale.ClientName, sale.EmployeeName,
		sale.Subtotal, sale.Tax, sale.Transport, sale.Total, sale.Status,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta (snapshot de nombre y precio).
func (r *SaleRepo) CreateItem(saleID int64, item entity.LineItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_name, price, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, saleID, item.ProductName, item.Price, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// List devuelve ventas con sus líneas, filtradas por rango de creación,
// ordenadas por ID descendente.
func (r *SaleRepo) List(from, to *time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, client_id, client_name, employee_name, subtotal, tax, transport, total, status, created_at
		FROM sales`
	var args []any
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" WHERE created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		if pos == 1 {
			query += fmt.Sprintf(" WHERE created_at < $%d", pos)
		} else {
			query += fmt.Sprintf(" AND created_at < $%d", pos)
		}
		args = append(args, *to)
	}
	query += " ORDER BY id DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.EmployeeName,
			&s.Subtotal, &s.Tax, &s.Transport, &s.Total, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.listItems(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *SaleRepo) listItems(saleID int64) ([]entity.LineItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_name, price, quantity FROM sale_items WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ProductName, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
