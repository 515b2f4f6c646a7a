package entity

// Estado común de activación para clientes, proveedores, empleados y usuarios.
const (
	StatusActivo   = "Activo"
	StatusInactivo = "Inactivo"
)

// Client es un cliente. El ID es generado con el formato CL-N.
type Client struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
	Status  string
}

// Supplier es un proveedor. El NIT es único.
type Supplier struct {
	ID       int64
	Name     string
	NIT      string
	Phone    string
	Location string
	Rating   float64
	Email    string
	Status   string
}

// Employee es un empleado.
type Employee struct {
	ID       int64
	Name     string
	Document string
	Phone    string
	Email    string
	Position string
	Status   string
}
