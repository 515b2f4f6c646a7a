package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la orden de compra y asigna ID y fecha generados.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (supplier_id, supplier_name, total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		purchase.SupplierID, purchase.SupplierName, purchase.Total, purchase.Status,
	).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden de compra.
func (r *PurchaseRepo) CreateItem(purchaseID int64, item entity.LineItem) error {
	query := `
		INSERT INTO purchase_items (purchase_id, product_name, price, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, purchaseID, item.ProductName, item.Price, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de compra con sus líneas. Devuelve nil si no existe.
func (r *PurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	query := `
		SELECT id, supplier_id, supplier_name, total, status, created_at
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.SupplierName, &p.Total, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	items, err := r.listItems(p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

// List devuelve las órdenes de compra con sus líneas, más recientes primero.
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	query := `
		SELECT id, supplier_id, supplier_name, total, status, created_at
		FROM purchases ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.SupplierName, &p.Total, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		items, err := r.listItems(p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return list, nil
}

// UpdateStatus actualiza el estado de la orden.
func (r *PurchaseRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) listItems(purchaseID int64) ([]entity.LineItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_name, price, quantity FROM purchase_items WHERE purchase_id = $1 ORDER BY id`, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var items []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ProductName, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
