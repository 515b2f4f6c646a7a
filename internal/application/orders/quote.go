package orders

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/order"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// DefaultQuoteValidityDays vigencia por defecto de una cotización.
const DefaultQuoteValidityDays = 30

// QuoteInput datos para crear o editar una cotización.
type QuoteInput struct {
	ClientID     string
	Items        []entity.LineItem
	Transport    decimal.Decimal
	ValidityDays int
}

// QuoteUseCase gestiona cotizaciones. Las cotizaciones no tocan stock: son
// documentos de precio con los mismos totales que una venta. Solo se editan
// en estado Borrador; Enviada es terminal e inmutable.
type QuoteUseCase struct {
	quotes   repository.QuoteRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
	tx       OrderTxRunner
	log      *logger.Logger
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	quotes repository.QuoteRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	tx OrderTxRunner,
	log *logger.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, products: products, clients: clients, tx: tx, log: log}
}

// validate valida cliente y líneas. Los productos deben existir y estar
// activos, pero no se exige stock: cotizar no compromete inventario.
func (uc *QuoteUseCase) validate(input QuoteInput) (*entity.Client, error) {
	if input.ClientID == "" {
		return nil, domain.NewValidation("clientId", "el cliente es requerido")
	}
	if err := order.ValidateItems(input.Items); err != nil {
		return nil, err
	}
	if input.Transport.IsNegative() {
		return nil, domain.NewValidation("transport", "el transporte no puede ser negativo")
	}

	client, err := uc.clients.GetByID(input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound("cliente", input.ClientID)
	}

	for _, item := range input.Items {
		product, err := uc.products.GetByName(item.ProductName)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NewNotFound("producto", item.ProductName)
		}
		if !product.Active {
			return nil, &domain.InactiveEntityError{Entity: "producto", Name: product.Name}
		}
	}
	return client, nil
}

// Create crea una cotización en estado Borrador con vigencia por defecto de
// 30 días si no se indica otra.
func (uc *QuoteUseCase) Create(ctx context.Context, input QuoteInput) (*entity.Quote, error) {
	client, err := uc.validate(input)
	if err != nil {
		return nil, err
	}
	if input.ValidityDays <= 0 {
		input.ValidityDays = DefaultQuoteValidityDays
	}

	totals := order.ComputeTotals(input.Items, input.Transport, true)
	quote := &entity.Quote{
		ClientID:     client.ID,
		ClientName:   client.Name,
		Items:        input.Items,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Transport:    input.Transport,
		Total:        totals.Total,
		Status:       entity.QuoteStatusBorrador,
		ValidityDays: input.ValidityDays,
	}

	err = uc.tx.RunQuote(ctx, func(quoteRepo repository.QuoteRepository) error {
		if err := quoteRepo.Create(quote); err != nil {
			return err
		}
		for _, item := range quote.Items {
			if err := quoteRepo.CreateItem(quote.ID, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("cotizacion", quote.ID).
		Str("cliente", quote.ClientName).
		Msg("Cotización creada")
	return quote, nil
}

// Update reemplaza cliente, líneas y transporte de una cotización Borrador y
// recalcula los totales. Las líneas anteriores se descartan por completo.
func (uc *QuoteUseCase) Update(ctx context.Context, id int64, input QuoteInput) (*entity.Quote, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.NewNotFound("cotización", strconv.FormatInt(id, 10))
	}
	if quote.Status != entity.QuoteStatusBorrador {
		return nil, domain.NewConflict("una cotización enviada no se puede modificar")
	}

	client, err := uc.validate(input)
	if err != nil {
		return nil, err
	}
	if input.ValidityDays <= 0 {
		input.ValidityDays = quote.ValidityDays
	}

	totals := order.ComputeTotals(input.Items, input.Transport, true)
	quote.ClientID = client.ID
	quote.ClientName = client.Name
	quote.Items = input.Items
	quote.Subtotal = totals.Subtotal
	quote.Tax = totals.Tax
	quote.Transport = input.Transport
	quote.Total = totals.Total
	quote.ValidityDays = input.ValidityDays

	err = uc.tx.RunQuote(ctx, func(quoteRepo repository.QuoteRepository) error {
		if err := quoteRepo.Update(quote); err != nil {
			return err
		}
		if err := quoteRepo.DeleteItems(quote.ID); err != nil {
			return err
		}
		for _, item := range quote.Items {
			if err := quoteRepo.CreateItem(quote.ID, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// Send transiciona la cotización Borrador -> Enviada. Enviada es terminal.
func (uc *QuoteUseCase) Send(ctx context.Context, id int64) (*entity.Quote, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.NewNotFound("cotización", strconv.FormatInt(id, 10))
	}
	if quote.Status != entity.QuoteStatusBorrador {
		return nil, domain.NewConflict("la cotización ya fue enviada")
	}
	if err := uc.quotes.UpdateStatus(id, entity.QuoteStatusEnviada); err != nil {
		return nil, err
	}
	quote.Status = entity.QuoteStatusEnviada
	return quote, nil
}

// GetByID obtiene una cotización con sus líneas.
func (uc *QuoteUseCase) GetByID(ctx context.Context, id int64) (*entity.Quote, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.NewNotFound("cotización", strconv.FormatInt(id, 10))
	}
	return quote, nil
}

// List devuelve todas las cotizaciones con sus líneas.
func (uc *QuoteUseCase) List(ctx context.Context) ([]*entity.Quote, error) {
	return uc.quotes.List()
}
