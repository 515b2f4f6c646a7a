package dto

import "github.com/melkar/melkar-api/internal/domain/entity"

// ClientRequest entrada para crear o actualizar un cliente.
type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// NewClientResponse mapea la entidad a la respuesta.
func NewClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Status:  c.Status,
	}
}

// NewClientListResponse mapea una lista de clientes.
func NewClientListResponse(clients []*entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, NewClientResponse(c))
	}
	return out
}

// SupplierRequest entrada para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name     string `json:"name"`
	NIT      string `json:"nit"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	NIT      string  `json:"nit"`
	Phone    string  `json:"phone"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
	Email    string  `json:"email"`
	Status   string  `json:"status"`
}

// NewSupplierResponse mapea la entidad a la respuesta.
func NewSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		NIT:      s.NIT,
		Phone:    s.Phone,
		Location: s.Location,
		Rating:   s.Rating,
		Email:    s.Email,
		Status:   s.Status,
	}
}

// NewSupplierListResponse mapea una lista de proveedores.
func NewSupplierListResponse(suppliers []*entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, NewSupplierResponse(s))
	}
	return out
}

// EmployeeRequest entrada para crear o actualizar un empleado.
type EmployeeRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

// NewEmployeeResponse mapea la entidad a la respuesta.
func NewEmployeeResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Document: e.Document,
		Phone:    e.Phone,
		Email:    e.Email,
		Position: e.Position,
		Status:   e.Status,
	}
}

// NewEmployeeListResponse mapea una lista de empleados.
func NewEmployeeListResponse(employees []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

// StatusRequest entrada para cambiar estado Activo/Inactivo.
type StatusRequest struct {
	Status string `json:"status"`
}
