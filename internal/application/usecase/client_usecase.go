package usecase

import (
	"context"
	"regexp"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ClientInput datos para crear o actualizar un cliente.
type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ClientUseCase CRUD de clientes. Los IDs se generan con el formato CL-N.
type ClientUseCase struct {
	clients repository.ClientRepository
	log     *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, log *logger.Logger) *ClientUseCase {
	return &ClientUseCase{clients: clients, log: log}
}

func (uc *ClientUseCase) validate(input ClientInput) error {
	if input.Name == "" {
		return domain.NewValidation("name", "el nombre es requerido")
	}
	if input.Email == "" {
		return domain.NewValidation("email", "el email es requerido")
	}
	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		return domain.NewValidation("phone", "el teléfono debe tener 10 dígitos")
	}
	return nil
}

// Create registra un cliente nuevo con ID generado y estado Activo.
func (uc *ClientUseCase) Create(ctx context.Context, input ClientInput) (*entity.Client, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	exists, err := uc.clients.ExistsByEmail(input.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("ya existe un cliente con ese email")
	}

	id, err := uc.clients.NextID()
	if err != nil {
		return nil, err
	}
	client := &entity.Client{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Status:  entity.StatusActivo,
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}

	uc.log.Info().Str("cliente", client.ID).Msg("Cliente creado")
	return client, nil
}

// Update actualiza los datos de contacto de un cliente existente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, input ClientInput) (*entity.Client, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound("cliente", id)
	}
	exists, err := uc.clients.ExistsByEmail(input.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("otro cliente ya tiene ese email")
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateStatus cambia el estado Activo/Inactivo.
func (uc *ClientUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Client, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.NewValidation("status", "estado inválido")
	}
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound("cliente", id)
	}
	if err := uc.clients.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	client.Status = status
	return client, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound("cliente", id)
	}
	return client, nil
}

// List lista clientes, opcionalmente filtrados por estado.
func (uc *ClientUseCase) List(ctx context.Context, status string) ([]*entity.Client, error) {
	return uc.clients.List(status)
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.clients.Delete(id)
}
