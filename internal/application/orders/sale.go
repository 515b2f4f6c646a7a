package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/application/inventory"
	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/order"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// SaleInput datos para registrar una venta.
type SaleInput struct {
	ClientID     string
	EmployeeName string
	Items        []entity.LineItem
	Transport    decimal.Decimal
}

// CreateSaleUseCase registra ventas. La venta nace Completada: valida todas
// las líneas contra el catálogo, calcula totales con IVA y descuenta stock en
// una sola transacción, todo o nada.
type CreateSaleUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
	tx       OrderTxRunner
	log      *logger.Logger
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	tx OrderTxRunner,
	log *logger.Logger,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{sales: sales, products: products, clients: clients, tx: tx, log: log}
}

// Create valida la venta completa antes de tocar stock: cliente existente,
// cada producto existente, activo y con stock suficiente. Si todo pasa,
// persiste cabecera, líneas, débitos de stock y movimientos en una transacción.
func (uc *CreateSaleUseCase) Create(ctx context.Context, input SaleInput) (*entity.Sale, error) {
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

	// Prevalidación de todas las líneas antes de abrir la transacción.
	// Una sola línea inválida rechaza la venta entera sin efectos.
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
		if product.Stock < item.Quantity {
			return nil, &domain.InsufficientStockError{
				Product:   product.Name,
				Available: product.Stock,
				Requested: item.Quantity,
			}
		}
	}

	totals := order.ComputeTotals(input.Items, input.Transport, true)
	sale := &entity.Sale{
		ClientID:     client.ID,
		ClientName:   client.Name,
		EmployeeName: input.EmployeeName,
		Items:        input.Items,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Transport:    input.Transport,
		Total:        totals.Total,
		Status:       entity.SaleStatusCompletada,
	}

	transactionID := uuid.NewString()
	err = uc.tx.RunSale(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range sale.Items {
			if err := saleRepo.CreateItem(sale.ID, item); err != nil {
				return err
			}
		}
		return inventory.DebitForSale(movRepo, productRepo, transactionID, sale.ID, sale.Items)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("venta", sale.ID).
		Str("cliente", sale.ClientName).
		Str("total", sale.Total.String()).
		Msg("Venta registrada")
	return sale, nil
}

// List devuelve las ventas, opcionalmente filtradas por rango de fechas.
func (uc *CreateSaleUseCase) List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	return uc.sales.List(from, to)
}
