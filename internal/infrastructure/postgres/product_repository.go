package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, sku, price, stock, status, active"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, sku, price, stock, status, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.SKU, product.Price, product.Stock, product.Status, product.Active,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("ya existe un producto con ese nombre")
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByName obtiene un producto por nombre exacto. Devuelve nil si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get product by name")
}

// GetByNameForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetByNameForUpdate(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get product for update")
}

// Update actualiza nombre, sku, precio, stock y estado derivado.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, sku = $3, price = $4, stock = $5, status = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Price, product.Stock, product.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicate("ya existe otro producto con ese nombre")
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock persiste stock y etiqueta de estado como par (invariante del libro).
func (r *ProductRepo) UpdateStock(id int64, stock int, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, status = $3 WHERE id = $1`,
		id, stock, status,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// SetActive habilita o inhabilita el producto.
func (r *ProductRepo) SetActive(id int64, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	return nil
}

// List lista productos del catálogo según el filtro, ordenados por ID.
func (r *ProductRepo) List(filter string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	switch filter {
	case repository.ProductFilterInStock:
		query += ` WHERE active AND stock > 10`
	case repository.ProductFilterLow:
		query += ` WHERE active AND stock > 0 AND stock <= 10`
	case repository.ProductFilterActive:
		query += ` WHERE active`
	case repository.ProductFilterInactive:
		query += ` WHERE NOT active`
	}
	query += ` ORDER BY id`
	return r.list(query, "list products")
}

// ListInventory lista productos activos por nivel de stock, ordenados por stock.
func (r *ProductRepo) ListInventory(filter string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active`
	switch filter {
	case repository.InventoryFilterCritical:
		query += ` AND stock < 5`
	case repository.InventoryFilterLow:
		query += ` AND stock >= 5 AND stock <= 10`
	}
	query += ` ORDER BY stock`
	return r.list(query, "list inventory")
}

// ExistsByName verifica unicidad de nombre (case-insensitive), excluyendo un ID.
func (r *ProductRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE UPPER(name) = UPPER($1) AND id <> $2`,
		name, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("exists by name: %w", err)
	}
	return count > 0, nil
}

// Delete elimina un producto por ID. ErrNotFound si no existe.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("producto", "")
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Status, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) list(query, op string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
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
