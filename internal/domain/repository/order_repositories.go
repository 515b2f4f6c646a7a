package repository

import (
	"time"

	"github.com/melkar/melkar-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
// Las líneas pertenecen a la venta (borrado en cascada).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(saleID int64, item entity.LineItem) error
	// List devuelve las ventas con sus líneas, opcionalmente filtradas por
	// rango de fecha de creación, ordenadas por ID descendente.
	List(from, to *time.Time) ([]*entity.Sale, error)
}

// PurchaseRepository define el puerto de persistencia para órdenes de compra.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(purchaseID int64, item entity.LineItem) error
	GetByID(id int64) (*entity.Purchase, error)
	List() ([]*entity.Purchase, error)
	UpdateStatus(id int64, status string) error
}

// QuoteRepository define el puerto de persistencia para cotizaciones.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	CreateItem(quoteID int64, item entity.LineItem) error
	GetByID(id int64) (*entity.Quote, error)
	List() ([]*entity.Quote, error)
	ListItems(quoteID int64) ([]entity.LineItem, error)
	// DeleteItems elimina todas las líneas de una cotización (semántica de
	// reemplazo total al editar).
	DeleteItems(quoteID int64) error
	// Update persiste cabecera y totales recalculados.
	Update(quote *entity.Quote) error
	UpdateStatus(id int64, status string) error
}
