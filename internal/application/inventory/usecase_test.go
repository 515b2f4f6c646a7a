package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melkar/melkar-api/internal/application/inventory"
	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byName map[string]*entity.Product
	nextID int64
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byName: map[string]*entity.Product{}, nextID: 1}
	for _, p := range products {
		cp := *p
		cp.ID = r.nextID
		r.nextID++
		r.byName[strings.ToUpper(cp.Name)] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.byName[strings.ToUpper(p.Name)] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.byName {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	p, ok := r.byName[strings.ToUpper(name)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByNameForUpdate(name string) (*entity.Product, error) {
	return r.GetByName(name)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.byName[strings.ToUpper(p.Name)] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(id int64, stock int, status string) error {
	for _, p := range r.byName {
		if p.ID == id {
			p.Stock = stock
			p.Status = status
			return nil
		}
	}
	return domain.NewNotFound("producto", "")
}

func (r *fakeProductRepo) SetActive(id int64, active bool) error {
	for _, p := range r.byName {
		if p.ID == id {
			p.Active = active
			return nil
		}
	}
	return domain.NewNotFound("producto", "")
}

func (r *fakeProductRepo) List(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListInventory(string) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	p, ok := r.byName[strings.ToUpper(name)]
	return ok && p.ID != excludeID, nil
}

func (r *fakeProductRepo) Delete(id int64) error { return nil }

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
	nextID    int64
}

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List() ([]*entity.InventoryMovement, error) {
	return r.movements, nil
}

// fakeTxRunner ejecuta el callback directamente con los repos en memoria.
type fakeTxRunner struct {
	movements *fakeMovementRepo
	products  *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movements, r.products)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func buildUseCase(products ...*entity.Product) (*inventory.RegisterMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movementRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{movements: movementRepo, products: productRepo}
	uc := inventory.NewRegisterMovementUseCase(movementRepo, productRepo, tx, testLogger())
	return uc, productRepo, movementRepo
}

func product(name string, stock int) *entity.Product {
	return &entity.Product{
		Name:   name,
		Price:  decimal.RequireFromString("10.00"),
		Stock:  stock,
		Status: entity.StockStatus(stock),
		Active: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSumaStock(t *testing.T) {
	uc, products, movements := buildUseCase(product("Cemento", 5))

	m, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductName: "Cemento",
		Type:        entity.MovementTypeEntrada,
		Quantity:    10,
		Reason:      "Ajuste",
	})
	require.NoError(t, err)

	p, _ := products.GetByName("Cemento")
	assert.Equal(t, 15, p.Stock)
	assert.Equal(t, entity.StockStatusEnStock, p.Status, "15 unidades deben quedar En Stock")
	assert.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementTypeEntrada, m.Type)
	assert.Empty(t, m.TransactionID, "movimiento manual no lleva transactionID")
}

func TestApplyMovement_SalidaDescuentaStock(t *testing.T) {
	uc, products, _ := buildUseCase(product("Cemento", 12))

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductName: "Cemento",
		Type:        entity.MovementTypeSalida,
		Quantity:    4,
	})
	require.NoError(t, err)

	p, _ := products.GetByName("Cemento")
	assert.Equal(t, 8, p.Stock)
	assert.Equal(t, entity.StockStatusBajo, p.Status, "8 unidades deben quedar Stock Bajo")
}

func TestApplyMovement_SalidaInsuficienteRechazaCompleta(t *testing.T) {
	uc, products, movements := buildUseCase(product("Cemento", 3))

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductName: "Cemento",
		Type:        entity.MovementTypeSalida,
		Quantity:    5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "Disponible: 3")

	// Nada cambió: ni stock ni libro.
	p, _ := products.GetByName("Cemento")
	assert.Equal(t, 3, p.Stock, "una salida rechazada no aplica parcial")
	assert.Empty(t, movements.movements, "una salida rechazada no registra movimiento")
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductName: "Fantasma",
		Type:        entity.MovementTypeEntrada,
		Quantity:    1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestApplyMovement_ValidaEntrada(t *testing.T) {
	uc, _, _ := buildUseCase(product("Cemento", 5))

	cases := []inventory.MovementInput{
		{ProductName: "", Type: entity.MovementTypeEntrada, Quantity: 1},
		{ProductName: "Cemento", Type: "TRASLADO", Quantity: 1},
		{ProductName: "Cemento", Type: entity.MovementTypeSalida, Quantity: 0},
		{ProductName: "Cemento", Type: entity.MovementTypeEntrada, Quantity: -5},
	}
	for _, in := range cases {
		_, err := uc.ApplyMovement(context.Background(), in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "entrada %+v debe fallar validación", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_CantidadPorDefecto(t *testing.T) {
	uc, products, movements := buildUseCase(product("Cemento", 2))

	updated, m, err := uc.Restock(context.Background(), 1, 0)
	require.NoError(t, err)

	p, _ := products.GetByName("Cemento")
	assert.Equal(t, 22, p.Stock, "sin cantidad se reponen 20 unidades")
	assert.Equal(t, inventory.RestockReason, m.Reason)
	require.Len(t, movements.movements, 1, "la reposición registra exactamente un movimiento")
	assert.Equal(t, entity.MovementTypeEntrada, movements.movements[0].Type)

	// La respuesta incluye el producto ya actualizado.
	assert.Equal(t, 22, updated.Stock)
	assert.Equal(t, entity.StockStatusEnStock, updated.Status)
}

func TestRestock_CantidadExplicita(t *testing.T) {
	uc, products, _ := buildUseCase(product("Cemento", 2))

	updated, _, err := uc.Restock(context.Background(), 1, 7)
	require.NoError(t, err)

	p, _ := products.GetByName("Cemento")
	assert.Equal(t, 9, p.Stock)
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, entity.StockStatusBajo, updated.Status)
}

func TestRestock_ProductoInexistente(t *testing.T) {
	uc, _, movements := buildUseCase(product("Cemento", 2))

	_, _, err := uc.Restock(context.Background(), 99, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, movements.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Débito y crédito dentro de órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestDebitForSale_DescuentaYRegistraAgrupado(t *testing.T) {
	products := newFakeProductRepo(product("Cemento", 20), product("Varilla", 15))
	movements := &fakeMovementRepo{}

	items := []entity.LineItem{
		{ProductName: "Cemento", Price: decimal.RequireFromString("10.00"), Quantity: 5},
		{ProductName: "Varilla", Price: decimal.RequireFromString("8.00"), Quantity: 3},
	}
	err := inventory.DebitForSale(movements, products, "tx-123", 7, items)
	require.NoError(t, err)

	cemento, _ := products.GetByName("Cemento")
	varilla, _ := products.GetByName("Varilla")
	assert.Equal(t, 15, cemento.Stock)
	assert.Equal(t, 12, varilla.Stock)
	require.Len(t, movements.movements, 2)
	for _, m := range movements.movements {
		assert.Equal(t, "tx-123", m.TransactionID, "los movimientos de una venta comparten transactionID")
		assert.Equal(t, entity.MovementTypeSalida, m.Type)
		assert.Equal(t, "Venta #7", m.Reason)
	}
}

func TestDebitForSale_StockInsuficienteFalla(t *testing.T) {
	products := newFakeProductRepo(product("Cemento", 2))
	movements := &fakeMovementRepo{}

	items := []entity.LineItem{
		{ProductName: "Cemento", Price: decimal.RequireFromString("10.00"), Quantity: 5},
	}
	err := inventory.DebitForSale(movements, products, "tx-1", 1, items)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestCreditForPurchase_AcreditaYRegistra(t *testing.T) {
	products := newFakeProductRepo(product("Cemento", 5))
	movements := &fakeMovementRepo{}

	items := []entity.LineItem{
		{ProductName: "Cemento", Price: decimal.RequireFromString("10.00"), Quantity: 10},
	}
	err := inventory.CreditForPurchase(movements, products, "tx-9", 4, items)
	require.NoError(t, err)

	p, _ := products.GetByName("Cemento")
	assert.Equal(t, 15, p.Stock)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementTypeEntrada, movements.movements[0].Type)
	assert.Equal(t, "Compra #4", movements.movements[0].Reason)
}

func TestCreditForPurchase_ProductoFueraDeCatalogoRegistraIgual(t *testing.T) {
	products := newFakeProductRepo()
	movements := &fakeMovementRepo{}

	items := []entity.LineItem{
		{ProductName: "Nuevo material", Price: decimal.RequireFromString("10.00"), Quantity: 10},
	}
	err := inventory.CreditForPurchase(movements, products, "tx-9", 4, items)
	require.NoError(t, err, "una línea fuera de catálogo no bloquea la compra")

	require.Len(t, movements.movements, 1, "el movimiento queda en el libro aunque no afecte stock")
	assert.Equal(t, "Nuevo material", movements.movements[0].ProductName)
}
