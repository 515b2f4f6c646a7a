package usecase

import (
	"context"
	"strconv"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// EmployeeInput datos para crear o actualizar un empleado.
type EmployeeInput struct {
	Name     string
	Document string
	Phone    string
	Email    string
	Position string
}

// EmployeeUseCase CRUD de empleados.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	log       *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository, log *logger.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, log: log}
}

func (uc *EmployeeUseCase) validate(input EmployeeInput) error {
	if input.Name == "" {
		return domain.NewValidation("name", "el nombre es requerido")
	}
	if input.Document == "" {
		return domain.NewValidation("document", "el documento es requerido")
	}
	return nil
}

// Create registra un empleado nuevo con estado Activo.
func (uc *EmployeeUseCase) Create(ctx context.Context, input EmployeeInput) (*entity.Employee, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		Name:     input.Name,
		Document: input.Document,
		Phone:    input.Phone,
		Email:    input.Email,
		Position: input.Position,
		Status:   entity.StatusActivo,
	}
	if err := uc.employees.Create(employee); err != nil {
		return nil, err
	}

	uc.log.Info().Str("empleado", employee.Name).Msg("Empleado creado")
	return employee, nil
}

// Update actualiza los datos de un empleado existente.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, input EmployeeInput) (*entity.Employee, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NewNotFound("empleado", strconv.FormatInt(id, 10))
	}

	employee.Name = input.Name
	employee.Document = input.Document
	employee.Phone = input.Phone
	employee.Email = input.Email
	employee.Position = input.Position
	if err := uc.employees.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateStatus cambia el estado Activo/Inactivo.
func (uc *EmployeeUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Employee, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.NewValidation("status", "estado inválido")
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NewNotFound("empleado", strconv.FormatInt(id, 10))
	}
	if err := uc.employees.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	employee.Status = status
	return employee, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NewNotFound("empleado", strconv.FormatInt(id, 10))
	}
	return employee, nil
}

// List lista empleados, opcionalmente filtrados por estado.
func (uc *EmployeeUseCase) List(ctx context.Context, status string) ([]*entity.Employee, error) {
	return uc.employees.List(status)
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	return uc.employees.Delete(id)
}
