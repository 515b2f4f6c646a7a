package orders_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melkar/melkar-api/internal/application/orders"
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

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }

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

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

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

func (r *fakeProductRepo) SetActive(int64, bool) error                     { return nil }
func (r *fakeProductRepo) List(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListInventory(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ExistsByName(string, int64) (bool, error) { return false, nil }
func (r *fakeProductRepo) Delete(int64) error                              { return nil }

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

func (r *fakeMovementRepo) List() ([]*entity.InventoryMovement, error) { return r.movements, nil }

type fakeClientRepo struct {
	byID map[string]*entity.Client
}

func (r *fakeClientRepo) Create(*entity.Client) error { return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeClientRepo) List(string) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(*entity.Client) error               { return nil }
func (r *fakeClientRepo) UpdateStatus(string, string) error         { return nil }
func (r *fakeClientRepo) Delete(string) error                       { return nil }
func (r *fakeClientRepo) ExistsByEmail(string, string) (bool, error) { return false, nil }
func (r *fakeClientRepo) NextID() (string, error) { return "CL-1", nil }

type fakeSupplierRepo struct {
	byID map[int64]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (r *fakeSupplierRepo) List(string, string) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error                   { return nil }
func (r *fakeSupplierRepo) UpdateStatus(int64, string) error                { return nil }
func (r *fakeSupplierRepo) Delete(int64) error                              { return nil }
func (r *fakeSupplierRepo) ExistsByNIT(string, int64) (bool, error) { return false, nil }

type fakeSaleRepo struct {
	sales  []*entity.Sale
	items  map[int64][]entity.LineItem
	nextID int64
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{items: map[int64][]entity.LineItem{}}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) CreateItem(saleID int64, item entity.LineItem) error {
	r.items[saleID] = append(r.items[saleID], item)
	return nil
}

func (r *fakeSaleRepo) List(from, to *time.Time) ([]*entity.Sale, error) { return r.sales, nil }

type fakePurchaseRepo struct {
	purchases []*entity.Purchase
	items     map[int64][]entity.LineItem
	nextID    int64
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{items: map[int64][]entity.LineItem{}}
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	cp := *p
	r.purchases = append(r.purchases, &cp)
	return nil
}

func (r *fakePurchaseRepo) CreateItem(purchaseID int64, item entity.LineItem) error {
	r.items[purchaseID] = append(r.items[purchaseID], item)
	return nil
}

func (r *fakePurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	for _, p := range r.purchases {
		if p.ID == id {
			cp := *p
			cp.Items = r.items[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePurchaseRepo) List() ([]*entity.Purchase, error) { return r.purchases, nil }

func (r *fakePurchaseRepo) UpdateStatus(id int64, status string) error {
	for _, p := range r.purchases {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return domain.NewNotFound("orden de compra", "")
}

type fakeQuoteRepo struct {
	quotes []*entity.Quote
	items  map[int64][]entity.LineItem
	nextID int64
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{items: map[int64][]entity.LineItem{}}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	r.nextID++
	q.ID = r.nextID
	q.CreatedAt = time.Now()
	cp := *q
	r.quotes = append(r.quotes, &cp)
	return nil
}

func (r *fakeQuoteRepo) CreateItem(quoteID int64, item entity.LineItem) error {
	r.items[quoteID] = append(r.items[quoteID], item)
	return nil
}

func (r *fakeQuoteRepo) GetByID(id int64) (*entity.Quote, error) {
	for _, q := range r.quotes {
		if q.ID == id {
			cp := *q
			cp.Items = r.items[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeQuoteRepo) List() ([]*entity.Quote, error) { return r.quotes, nil }

func (r *fakeQuoteRepo) ListItems(quoteID int64) ([]entity.LineItem, error) {
	return r.items[quoteID], nil
}

func (r *fakeQuoteRepo) DeleteItems(quoteID int64) error {
	delete(r.items, quoteID)
	return nil
}

func (r *fakeQuoteRepo) Update(q *entity.Quote) error {
	for i, stored := range r.quotes {
		if stored.ID == q.ID {
			cp := *q
			r.quotes[i] = &cp
			return nil
		}
	}
	return domain.NewNotFound("cotización", "")
}

func (r *fakeQuoteRepo) UpdateStatus(id int64, status string) error {
	for _, q := range r.quotes {
		if q.ID == id {
			q.Status = status
			return nil
		}
	}
	return domain.NewNotFound("cotización", "")
}

// fakeOrderTx ejecuta los callbacks directamente con los repos en memoria.
type fakeOrderTx struct {
	movements *fakeMovementRepo
	products  *fakeProductRepo
	sales     *fakeSaleRepo
	purchases *fakePurchaseRepo
	quotes    *fakeQuoteRepo
}

func (r *fakeOrderTx) RunSale(ctx context.Context, fn func(
	repository.InventoryMovementRepository,
	repository.ProductRepository,
	repository.SaleRepository,
) error) error {
	return fn(r.movements, r.products, r.sales)
}

func (r *fakeOrderTx) RunPurchase(ctx context.Context, fn func(
	repository.InventoryMovementRepository,
	repository.ProductRepository,
	repository.PurchaseRepository,
) error) error {
	return fn(r.movements, r.products, r.purchases)
}

func (r *fakeOrderTx) RunQuote(ctx context.Context, fn func(
	repository.QuoteRepository,
) error) error {
	return fn(r.quotes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func product(name string, stock int, active bool) *entity.Product {
	return &entity.Product{
		Name:   name,
		Price:  decimal.RequireFromString("10.00"),
		Stock:  stock,
		Status: entity.StockStatus(stock),
		Active: active,
	}
}

func line(name, price string, qty int) entity.LineItem {
	return entity.LineItem{
		ProductName: name,
		Price:       decimal.RequireFromString(price),
		Quantity:    qty,
	}
}

type fixture struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
	sales     *fakeSaleRepo
	purchases *fakePurchaseRepo
	quotes    *fakeQuoteRepo
	clients   *fakeClientRepo
	suppliers *fakeSupplierRepo
	tx        *fakeOrderTx
}

func newFixture(products ...*entity.Product) *fixture {
	f := &fixture{
		products:  newFakeProductRepo(products...),
		movements: &fakeMovementRepo{},
		sales:     newFakeSaleRepo(),
		purchases: newFakePurchaseRepo(),
		quotes:    newFakeQuoteRepo(),
		clients: &fakeClientRepo{byID: map[string]*entity.Client{
			"CL-1": {ID: "CL-1", Name: "Constructora Andina", Status: entity.StatusActivo},
		}},
		suppliers: &fakeSupplierRepo{byID: map[int64]*entity.Supplier{
			1: {ID: 1, Name: "Aceros del Sur", NIT: "900123456", Status: entity.StatusActivo},
		}},
	}
	f.tx = &fakeOrderTx{
		movements: f.movements,
		products:  f.products,
		sales:     f.sales,
		purchases: f.purchases,
		quotes:    f.quotes,
	}
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaStockYCalculaTotales(t *testing.T) {
	f := newFixture(product("Cemento", 20, true), product("Varilla", 15, true))
	uc := orders.NewCreateSaleUseCase(f.sales, f.products, f.clients, f.tx, testLogger())

	sale, err := uc.Create(context.Background(), orders.SaleInput{
		ClientID: "CL-1",
		Items: []entity.LineItem{
			line("Cemento", "50.00", 2),
			line("Varilla", "50.00", 3),
		},
		Transport: decimal.Zero,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCompletada, sale.Status, "la venta nace completada")
	assert.Equal(t, "Constructora Andina", sale.ClientName)
	assert.True(t, sale.Subtotal.Equal(decimal.RequireFromString("250.00")))
	assert.True(t, sale.Tax.Equal(decimal.RequireFromString("47.50")))
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("297.50")))

	cemento, _ := f.products.GetByName("Cemento")
	varilla, _ := f.products.GetByName("Varilla")
	assert.Equal(t, 18, cemento.Stock)
	assert.Equal(t, 12, varilla.Stock)

	require.Len(t, f.movements.movements, 2)
	assert.Equal(t, f.movements.movements[0].TransactionID, f.movements.movements[1].TransactionID,
		"los movimientos de una venta comparten transactionID")
	assert.Len(t, f.sales.items[sale.ID], 2)
}

func TestCreateSale_TodoONada(t *testing.T) {
	f := newFixture(product("Cemento", 20, true), product("Varilla", 1, true))
	uc := orders.NewCreateSaleUseCase(f.sales, f.products, f.clients, f.tx, testLogger())

	_, err := uc.Create(context.Background(), orders.SaleInput{
		ClientID: "CL-1",
		Items: []entity.LineItem{
			line("Cemento", "50.00", 2),
			line("Varilla", "50.00", 5), // insuficiente
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	// Ninguna línea se aplicó, aunque la primera sí tenía stock.
	cemento, _ := f.products.GetByName("Cemento")
	assert.Equal(t, 20, cemento.Stock, "una venta rechazada no toca stock")
	assert.Empty(t, f.sales.sales, "una venta rechazada no se persiste")
	assert.Empty(t, f.movements.movements)
}

func TestCreateSale_ProductoInactivo(t *testing.T) {
	f := newFixture(product("Cemento", 20, false))
	uc := orders.NewCreateSaleUseCase(f.sales, f.products, f.clients, f.tx, testLogger())

	_, err := uc.Create(context.Background(), orders.SaleInput{
		ClientID: "CL-1",
		Items:    []entity.LineItem{line("Cemento", "50.00", 1)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInactive))
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	f := newFixture(product("Cemento", 20, true))
	uc := orders.NewCreateSaleUseCase(f.sales, f.products, f.clients, f.tx, testLogger())

	_, err := uc.Create(context.Background(), orders.SaleInput{
		ClientID: "CL-99",
		Items:    []entity.LineItem{line("Cemento", "50.00", 1)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_AcreditaStockAlCrear(t *testing.T) {
	f := newFixture(product("Cemento", 5, true))
	uc := orders.NewCreatePurchaseUseCase(f.purchases, f.suppliers, f.tx, testLogger())

	purchase, err := uc.Create(context.Background(), orders.PurchaseInput{
		SupplierID: 1,
		Items:      []entity.LineItem{line("Cemento", "30.00", 10)},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseStatusPendiente, purchase.Status, "la compra nace pendiente")
	assert.True(t, purchase.Total.Equal(decimal.RequireFromString("300.00")), "las compras no llevan IVA")

	cemento, _ := f.products.GetByName("Cemento")
	assert.Equal(t, 15, cemento.Stock, "el stock se acredita al crear la orden")
	require.Len(t, f.movements.movements, 1)
	assert.Equal(t, entity.MovementTypeEntrada, f.movements.movements[0].Type)
}

func TestCreatePurchase_LineaFueraDeCatalogoNoBloqueaOrden(t *testing.T) {
	f := newFixture()
	uc := orders.NewCreatePurchaseUseCase(f.purchases, f.suppliers, f.tx, testLogger())

	purchase, err := uc.Create(context.Background(), orders.PurchaseInput{
		SupplierID: 1,
		Items:      []entity.LineItem{line("Material nuevo", "30.00", 10)},
	})
	require.NoError(t, err)

	assert.NotZero(t, purchase.ID)
	require.Len(t, f.movements.movements, 1, "el movimiento queda registrado aunque no afecte stock")
}

func TestCreatePurchase_ProveedorInexistente(t *testing.T) {
	f := newFixture(product("Cemento", 5, true))
	uc := orders.NewCreatePurchaseUseCase(f.purchases, f.suppliers, f.tx, testLogger())

	_, err := uc.Create(context.Background(), orders.PurchaseInput{
		SupplierID: 99,
		Items:      []entity.LineItem{line("Cemento", "30.00", 1)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdateStatus_TransicionUnica(t *testing.T) {
	f := newFixture(product("Cemento", 5, true))
	uc := orders.NewCreatePurchaseUseCase(f.purchases, f.suppliers, f.tx, testLogger())

	purchase, err := uc.Create(context.Background(), orders.PurchaseInput{
		SupplierID: 1,
		Items:      []entity.LineItem{line("Cemento", "30.00", 2)},
	})
	require.NoError(t, err)

	received, err := uc.UpdateStatus(context.Background(), purchase.ID, entity.PurchaseStatusRecibido)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusRecibido, received.Status)

	// Recibido es terminal.
	_, err = uc.UpdateStatus(context.Background(), purchase.ID, entity.PurchaseStatusRecibido)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	// Recibir no vuelve a acreditar stock.
	cemento, _ := f.products.GetByName("Cemento")
	assert.Equal(t, 7, cemento.Stock, "recibir la orden no duplica el crédito de stock")
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	f := newFixture(product("Cemento", 5, true))
	uc := orders.NewCreatePurchaseUseCase(f.purchases, f.suppliers, f.tx, testLogger())

	purchase, err := uc.Create(context.Background(), orders.PurchaseInput{
		SupplierID: 1,
		Items:      []entity.LineItem{line("Cemento", "30.00", 2)},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), purchase.ID, "Cancelada")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict), "Recibido es el único estado destino")

	_, err = uc.UpdateStatus(context.Background(), purchase.ID, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	got, err := uc.GetByID(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusPendiente, got.Status, "un estado rechazado no modifica la orden")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cotizaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateQuote_BorradorConVigenciaPorDefecto(t *testing.T) {
	f := newFixture(product("Cemento", 0, true))
	uc := orders.NewQuoteUseCase(f.quotes, f.products, f.clients, f.tx, testLogger())

	quote, err := uc.Create(context.Background(), orders.QuoteInput{
		ClientID: "CL-1",
		Items:    []entity.LineItem{line("Cemento", "100.00", 1)},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.QuoteStatusBorrador, quote.Status)
	assert.Equal(t, orders.DefaultQuoteValidityDays, quote.ValidityDays)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("119.00")))

	// Cotizar no toca stock ni libro: producto sin stock se cotiza igual.
	cemento, _ := f.products.GetByName("Cemento")
	assert.Equal(t, 0, cemento.Stock)
	assert.Empty(t, f.movements.movements)
}

func TestUpdateQuote_ReemplazaLineasYRecalcula(t *testing.T) {
	f := newFixture(product("Cemento", 10, true), product("Varilla", 10, true))
	uc := orders.NewQuoteUseCase(f.quotes, f.products, f.clients, f.tx, testLogger())

	quote, err := uc.Create(context.Background(), orders.QuoteInput{
		ClientID: "CL-1",
		Items:    []entity.LineItem{line("Cemento", "100.00", 1)},
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), quote.ID, orders.QuoteInput{
		ClientID: "CL-1",
		Items: []entity.LineItem{
			line("Varilla", "80.00", 2),
			line("Cemento", "60.00", 2),
		},
	})
	require.NoError(t, err)

	// Subtotal 280; IVA 53.20; total 333.20. Las líneas anteriores desaparecen.
	assert.True(t, updated.Subtotal.Equal(decimal.RequireFromString("280.00")))
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("333.20")))
	items, _ := f.quotes.ListItems(quote.ID)
	require.Len(t, items, 2, "la edición reemplaza las líneas por completo")
	assert.Equal(t, "Varilla", items[0].ProductName)
}

func TestSendQuote_EnviadaEsInmutable(t *testing.T) {
	f := newFixture(product("Cemento", 10, true))
	uc := orders.NewQuoteUseCase(f.quotes, f.products, f.clients, f.tx, testLogger())

	quote, err := uc.Create(context.Background(), orders.QuoteInput{
		ClientID: "CL-1",
		Items:    []entity.LineItem{line("Cemento", "100.00", 1)},
	})
	require.NoError(t, err)

	sent, err := uc.Send(context.Background(), quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusEnviada, sent.Status)

	// Ni editar ni reenviar.
	_, err = uc.Update(context.Background(), quote.ID, orders.QuoteInput{
		ClientID: "CL-1",
		Items:    []entity.LineItem{line("Cemento", "100.00", 2)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict), "una cotización enviada no se edita")

	_, err = uc.Send(context.Background(), quote.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestCreateQuote_ProductoInactivoRechazado(t *testing.T) {
	f := newFixture(product("Cemento", 10, false))
	uc := orders.NewQuoteUseCase(f.quotes, f.products, f.clients, f.tx, testLogger())

	_, err := uc.Create(context.Background(), orders.QuoteInput{
		ClientID: "CL-1",
		Items:    []entity.LineItem{line("Cemento", "100.00", 1)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInactive))
}
