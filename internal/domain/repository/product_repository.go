package repository

import "github.com/melkar/melkar-api/internal/domain/entity"

// Filtros de listado de productos (catálogo e inventario).
const (
	ProductFilterInStock  = "in-stock" // activos con stock > 10
	ProductFilterLow      = "low"      // activos con 0 < stock <= 10
	ProductFilterActive   = "active"
	ProductFilterInactive = "inactive"

	InventoryFilterCritical = "critical" // activos con stock < 5
	InventoryFilterLow      = "low"      // activos con 5 <= stock <= 10
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetByNameForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByNameForUpdate(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock persiste stock y la etiqueta de estado derivada como par.
	UpdateStock(id int64, stock int, status string) error
	SetActive(id int64, active bool) error
	List(filter string) ([]*entity.Product, error)
	// ListInventory lista productos activos por nivel de stock (critical/low/todos),
	// ordenados por stock ascendente.
	ListInventory(filter string) ([]*entity.Product, error)
	// ExistsByName verifica unicidad de nombre (case-insensitive), excluyendo un ID.
	ExistsByName(name string, excludeID int64) (bool, error)
	Delete(id int64) error
}
