package orders

import (
	"context"

	"github.com/melkar/melkar-api/internal/domain/repository"
)

// OrderTxRunner entrega los repos atados a una transacción para cada tipo de
// orden. Cada Run hace Commit si fn devuelve nil y Rollback en caso contrario.
type OrderTxRunner interface {
	RunSale(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error

	RunPurchase(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error

	RunQuote(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
	) error) error
}
