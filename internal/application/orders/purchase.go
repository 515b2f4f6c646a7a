package orders

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/application/inventory"
	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/order"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// PurchaseInput datos para registrar una orden de compra.
type PurchaseInput struct {
	SupplierID int64
	Items      []entity.LineItem
}

// CreatePurchaseUseCase registra órdenes de compra. La orden nace Pendiente y
// el stock se acredita al momento de crearla, registrando los movimientos
// ENTRADA en la misma transacción.
type CreatePurchaseUseCase struct {
	purchases repository.PurchaseRepository
	suppliers repository.SupplierRepository
	tx        OrderTxRunner
	log       *logger.Logger
}

// NewCreatePurchaseUseCase construye el caso de uso.
func NewCreatePurchaseUseCase(
	purchases repository.PurchaseRepository,
	suppliers repository.SupplierRepository,
	tx OrderTxRunner,
	log *logger.Logger,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{purchases: purchases, suppliers: suppliers, tx: tx, log: log}
}

// Create valida proveedor y líneas, calcula el total sin IVA y persiste
// cabecera, líneas, créditos de stock y movimientos en una transacción.
// Una línea cuyo producto no existe en catálogo no bloquea la orden: el
// movimiento queda registrado sin afectar stock.
func (uc *CreatePurchaseUseCase) Create(ctx context.Context, input PurchaseInput) (*entity.Purchase, error) {
	if input.SupplierID == 0 {
		return nil, domain.NewValidation("supplierId", "el proveedor es requerido")
	}
	if err := order.ValidateItems(input.Items); err != nil {
		return nil, err
	}

	supplier, err := uc.suppliers.GetByID(input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound("proveedor", strconv.FormatInt(input.SupplierID, 10))
	}

	totals := order.ComputeTotals(input.Items, decimal.Zero, false)
	purchase := &entity.Purchase{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Items:        input.Items,
		Total:        totals.Total,
		Status:       entity.PurchaseStatusPendiente,
	}

	transactionID := uuid.NewString()
	err = uc.tx.RunPurchase(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, item := range purchase.Items {
			if err := purchaseRepo.CreateItem(purchase.ID, item); err != nil {
				return err
			}
		}
		return inventory.CreditForPurchase(movRepo, productRepo, transactionID, purchase.ID, purchase.Items)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("compra", purchase.ID).
		Str("proveedor", purchase.SupplierName).
		Str("total", purchase.Total.String()).
		Msg("Orden de compra registrada")
	return purchase, nil
}

// UpdateStatus cambia el estado de la orden. La única transición legal es
// Pendiente -> Recibido; cualquier otro estado solicitado se rechaza.
func (uc *CreatePurchaseUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Purchase, error) {
	if status == "" {
		return nil, domain.NewValidation("status", "el estado es requerido")
	}
	if status != entity.PurchaseStatusRecibido {
		return nil, domain.NewConflict("transición de estado inválida")
	}
	return uc.MarkReceived(ctx, id)
}

// MarkReceived transiciona la orden Pendiente -> Recibido. Es la única
// transición legal; Recibido es terminal.
func (uc *CreatePurchaseUseCase) MarkReceived(ctx context.Context, id int64) (*entity.Purchase, error) {
	purchase, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.NewNotFound("orden de compra", strconv.FormatInt(id, 10))
	}
	if purchase.Status != entity.PurchaseStatusPendiente {
		return nil, domain.NewConflict("la orden ya fue recibida")
	}
	if err := uc.purchases.UpdateStatus(id, entity.PurchaseStatusRecibido); err != nil {
		return nil, err
	}
	purchase.Status = entity.PurchaseStatusRecibido
	return purchase, nil
}

// GetByID obtiene una orden de compra con sus líneas.
func (uc *CreatePurchaseUseCase) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	purchase, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.NewNotFound("orden de compra", strconv.FormatInt(id, 10))
	}
	return purchase, nil
}

// List devuelve todas las órdenes de compra, más recientes primero.
func (uc *CreatePurchaseUseCase) List(ctx context.Context) ([]*entity.Purchase, error) {
	return uc.purchases.List()
}
