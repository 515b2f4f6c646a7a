package inventory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// DefaultRestockQuantity unidades que se reponen cuando el cliente no indica cantidad.
const DefaultRestockQuantity = 20

// RestockReason motivo registrado en el libro para reposiciones rápidas.
const RestockReason = "Reposición desde dashboard"

// TxRunner ejecuta fn dentro de una transacción, entregando los repos del
// libro de inventario atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// MovementInput datos de un movimiento manual de inventario.
type MovementInput struct {
	ProductName string
	Type        string
	Quantity    int
	Reason      string
}

// RegisterMovementUseCase aplica movimientos manuales sobre el stock y mantiene
// el libro de movimientos. Toda mutación de stock pasa por aquí o por las
// funciones de débito/crédito que usan las órdenes.
type RegisterMovementUseCase struct {
	movements repository.InventoryMovementRepository
	products  repository.ProductRepository
	tx        TxRunner
	log       *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	movements repository.InventoryMovementRepository,
	products repository.ProductRepository,
	tx TxRunner,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{movements: movements, products: products, tx: tx, log: log}
}

// ApplyMovement valida y aplica un movimiento manual ENTRADA/SALIDA en una
// transacción: bloquea la fila del producto, recalcula stock y estado, y
// registra la entrada del libro. Una SALIDA mayor al stock disponible se
// rechaza completa, nunca se aplica parcial.
func (uc *RegisterMovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.InventoryMovement, error) {
	if input.ProductName == "" {
		return nil, domain.NewValidation("product", "el producto es requerido")
	}
	if input.Type != entity.MovementTypeEntrada && input.Type != entity.MovementTypeSalida {
		return nil, domain.NewValidation("type", "el tipo debe ser ENTRADA o SALIDA")
	}
	if input.Quantity <= 0 {
		return nil, domain.NewValidation("quantity", "la cantidad debe ser mayor a cero")
	}

	var movement *entity.InventoryMovement
	err := uc.tx.Run(ctx, func(movRepo repository.InventoryMovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByNameForUpdate(input.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewNotFound("producto", input.ProductName)
		}

		var newStock int
		switch input.Type {
		case entity.MovementTypeEntrada:
			newStock = product.Stock + input.Quantity
		case entity.MovementTypeSalida:
			if product.Stock < input.Quantity {
				return &domain.InsufficientStockError{
					Product:   product.Name,
					Available: product.Stock,
					Requested: input.Quantity,
				}
			}
			newStock = product.Stock - input.Quantity
			if newStock < 0 {
				newStock = 0
			}
		}

		if err := productRepo.UpdateStock(product.ID, newStock, entity.StockStatus(newStock)); err != nil {
			return err
		}

		movement = &entity.InventoryMovement{
			ProductName: product.Name,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Reason:      input.Reason,
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("producto", movement.ProductName).
		Str("tipo", movement.Type).
		Int("cantidad", movement.Quantity).
		Msg("Movimiento de inventario registrado")
	return movement, nil
}

// Restock repone stock de un producto desde el dashboard. Si quantity es cero
// o negativa se usa la cantidad por defecto. Devuelve el producto actualizado
// junto con el movimiento registrado.
func (uc *RegisterMovementUseCase) Restock(ctx context.Context, productID int64, quantity int) (*entity.Product, *entity.InventoryMovement, error) {
	if quantity <= 0 {
		quantity = DefaultRestockQuantity
	}

	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.NewNotFound("producto", strconv.FormatInt(productID, 10))
	}

	movement, err := uc.ApplyMovement(ctx, MovementInput{
		ProductName: product.Name,
		Type:        entity.MovementTypeEntrada,
		Quantity:    quantity,
		Reason:      RestockReason,
	})
	if err != nil {
		return nil, nil, err
	}

	product.Stock += quantity
	product.Status = entity.StockStatus(product.Stock)
	return product, movement, nil
}

// ListMovements devuelve el libro completo, más recientes primero.
func (uc *RegisterMovementUseCase) ListMovements(ctx context.Context) ([]*entity.InventoryMovement, error) {
	return uc.movements.List()
}

// DebitForSale descuenta el stock de cada línea dentro de la transacción de la
// venta y registra los movimientos SALIDA agrupados por transactionID. Asume
// que la venta ya fue prevalidada: cualquier faltante aquí aborta la tx entera.
func DebitForSale(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	transactionID string,
	saleID int64,
	items []entity.LineItem,
) error {
	for _, item := range items {
		product, err := productRepo.GetByNameForUpdate(item.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewNotFound("producto", item.ProductName)
		}
		if !product.Active {
			return &domain.InactiveEntityError{Entity: "producto", Name: product.Name}
		}
		if product.Stock < item.Quantity {
			return &domain.InsufficientStockError{
				Product:   product.Name,
				Available: product.Stock,
				Requested: item.Quantity,
			}
		}

		newStock := product.Stock - item.Quantity
		if err := productRepo.UpdateStock(product.ID, newStock, entity.StockStatus(newStock)); err != nil {
			return err
		}
		movement := &entity.InventoryMovement{
			TransactionID: transactionID,
			ProductName:   product.Name,
			Type:          entity.MovementTypeSalida,
			Quantity:      item.Quantity,
			Reason:        fmt.Sprintf("Venta #%d", saleID),
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
	}
	return nil
}

// CreditForPurchase acredita el stock de cada línea dentro de la transacción de
// la compra y registra los movimientos ENTRADA. Una línea cuyo producto no
// existe en catálogo no actualiza stock, pero el movimiento queda registrado
// igual para conservar la trazabilidad de la orden.
func CreditForPurchase(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	transactionID string,
	purchaseID int64,
	items []entity.LineItem,
) error {
	for _, item := range items {
		product, err := productRepo.GetByNameForUpdate(item.ProductName)
		if err != nil {
			return err
		}
		if product != nil {
			newStock := product.Stock + item.Quantity
			if err := productRepo.UpdateStock(product.ID, newStock, entity.StockStatus(newStock)); err != nil {
				return err
			}
		}
		movement := &entity.InventoryMovement{
			TransactionID: transactionID,
			ProductName:   item.ProductName,
			Type:          entity.MovementTypeEntrada,
			Quantity:      item.Quantity,
			Reason:        fmt.Sprintf("Compra #%d", purchaseID),
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
	}
	return nil
}
