package usecase

import (
	"context"
	"strconv"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// SupplierInput datos para crear o actualizar un proveedor.
type SupplierInput struct {
	Name     string
	NIT      string
	Phone    string
	Location string
	Email    string
}

// SupplierUseCase CRUD de proveedores. El NIT es único.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	log       *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, log: log}
}

func (uc *SupplierUseCase) validate(input SupplierInput) error {
	if input.Name == "" {
		return domain.NewValidation("name", "el nombre es requerido")
	}
	if input.NIT == "" {
		return domain.NewValidation("nit", "el NIT es requerido")
	}
	return nil
}

// Create registra un proveedor nuevo con estado Activo.
func (uc *SupplierUseCase) Create(ctx context.Context, input SupplierInput) (*entity.Supplier, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	exists, err := uc.suppliers.ExistsByNIT(input.NIT, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("ya existe un proveedor con ese NIT")
	}

	supplier := &entity.Supplier{
		Name:     input.Name,
		NIT:      input.NIT,
		Phone:    input.Phone,
		Location: input.Location,
		Email:    input.Email,
		Status:   entity.StatusActivo,
	}
	if err := uc.suppliers.Create(supplier); err != nil {
		return nil, err
	}

	uc.log.Info().Str("proveedor", supplier.Name).Msg("Proveedor creado")
	return supplier, nil
}

// Update actualiza los datos de un proveedor existente.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, input SupplierInput) (*entity.Supplier, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound("proveedor", strconv.FormatInt(id, 10))
	}
	exists, err := uc.suppliers.ExistsByNIT(input.NIT, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("otro proveedor ya tiene ese NIT")
	}

	supplier.Name = input.Name
	supplier.NIT = input.NIT
	supplier.Phone = input.Phone
	supplier.Location = input.Location
	supplier.Email = input.Email
	if err := uc.suppliers.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateStatus cambia el estado Activo/Inactivo.
func (uc *SupplierUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Supplier, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.NewValidation("status", "estado inválido")
	}
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound("proveedor", strconv.FormatInt(id, 10))
	}
	if err := uc.suppliers.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	supplier.Status = status
	return supplier, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound("proveedor", strconv.FormatInt(id, 10))
	}
	return supplier, nil
}

// List lista proveedores con búsqueda por nombre o NIT y filtro por estado.
func (uc *SupplierUseCase) List(ctx context.Context, search, status string) ([]*entity.Supplier, error) {
	return uc.suppliers.List(search, status)
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return uc.suppliers.Delete(id)
}
