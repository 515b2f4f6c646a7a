package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository sobre PostgreSQL (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste la cabecera de la cotización y asigna ID y fecha generados.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (client_id, client_name, subtotal, tax, transport, total, status, validity_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		quote.ClientID, quote.ClientName, quote.Subtotal, quote.Tax,
		quote.Transport, quote.Total, quote.Status, quote.ValidityDays,
	).Scan(&quote.ID, &quote.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la cotización.
func (r *QuoteRepo) CreateItem(quoteID int64, item entity.LineItem) error {
	query := `
		INSERT INTO quote_items (quote_id, product_name, price, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, quoteID, item.ProductName, item.Price, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización con sus líneas. Devuelve nil si no existe.
func (r *QuoteRepo) GetByID(id int64) (*entity.Quote, error) {
	query := `
		SELECT id, client_id, client_name, subtotal, tax, transport, total, status, validity_days, created_at
		FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.ClientID, &q.ClientName, &q.Subtotal, &q.Tax,
		&q.Transport, &q.Total, &q.Status, &q.ValidityDays, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	items, err := r.ListItems(q.ID)
	if err != nil {
		return nil, err
	}
	q.Items = items
	return &q, nil
}

// List devuelve las cotizaciones con sus líneas, ordenadas por ID.
func (r *QuoteRepo) List() ([]*entity.Quote, error) {
	query := `
		SELECT id, client_id, client_name, subtotal, tax, transport, total, status, validity_days, created_at
		FROM quotes ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.ClientID, &q.ClientName, &q.Subtotal, &q.Tax,
			&q.Transport, &q.Total, &q.Status, &q.ValidityDays, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, q := range list {
		items, err := r.ListItems(q.ID)
		if err != nil {
			return nil, err
		}
		q.Items = items
	}
	return list, nil
}

// ListItems devuelve las líneas de una cotización.
func (r *QuoteRepo) ListItems(quoteID int64) ([]entity.LineItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_name, price, quantity FROM quote_items WHERE quote_id = $1 ORDER BY id`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()
	var items []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ProductName, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteItems elimina todas las líneas de la cotización (reemplazo total).
func (r *QuoteRepo) DeleteItems(quoteID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quote_items WHERE quote_id = $1`, quoteID)
	if err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	return nil
}

// Update persiste cabecera y totales recalculados.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET client_id = $2, client_name = $3, subtotal = $4, tax = $5,
			transport = $6, total = $7, validity_days = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.ClientID, quote.ClientName, quote.Subtotal, quote.Tax,
		quote.Transport, quote.Total, quote.ValidityDays,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// UpdateStatus actualiza el estado de la cotización.
func (r *QuoteRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}
