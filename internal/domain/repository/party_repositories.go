package repository

import "github.com/melkar/melkar-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(status string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	ExistsByEmail(email, excludeID string) (bool, error)
	// NextID genera el siguiente identificador con formato CL-N.
	NextID() (string, error)
}

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	// List filtra por nombre o NIT (búsqueda parcial) y por estado.
	List(search, status string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	UpdateStatus(id int64, status string) error
	Delete(id int64) error
	ExistsByNIT(nit string, excludeID int64) (bool, error)
}

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	List(status string) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	UpdateStatus(id int64, status string) error
	Delete(id int64) error
}
