package dto

import (
	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// SetActiveRequest entrada para activar/desactivar un producto.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// ProductResponse salida de un producto. Status es derivado del stock.
type ProductResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	SKU    string          `json:"sku"`
	Price  decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
	Status string          `json:"status"`
	Active bool            `json:"active"`
}

// NewProductResponse mapea la entidad a la respuesta.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:     p.ID,
		Name:   p.Name,
		SKU:    p.SKU,
		Price:  p.Price,
		Stock:  p.Stock,
		Status: p.Status,
		Active: p.Active,
	}
}

// NewProductListResponse mapea una lista de entidades.
func NewProductListResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
