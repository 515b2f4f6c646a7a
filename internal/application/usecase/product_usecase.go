package usecase

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/melkar/melkar-api/internal/domain"
	"github.com/melkar/melkar-api/internal/domain/entity"
	"github.com/melkar/melkar-api/internal/domain/repository"
	"github.com/melkar/melkar-api/pkg/logger"
)

// ProductInput datos para crear o actualizar un producto.
type ProductInput struct {
	Name  string
	SKU   string
	Price decimal.Decimal
	Stock int
}

// ProductUseCase CRUD del catálogo de productos. El estado de stock
// (En Stock / Stock Bajo / Sin Stock) es derivado y se recalcula en cada
// mutación de stock.
type ProductUseCase struct {
	products repository.ProductRepository
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, log: log}
}

func (uc *ProductUseCase) validate(input ProductInput) error {
	if input.Name == "" {
		return domain.NewValidation("name", "el nombre es requerido")
	}
	if input.Price.IsNegative() {
		return domain.NewValidation("price", "el precio no puede ser negativo")
	}
	if input.Stock < 0 {
		return domain.NewValidation("stock", "el stock no puede ser negativo")
	}
	return nil
}

// Create registra un producto nuevo, activo, con estado de stock derivado.
// El nombre es único sin distinguir mayúsculas.
func (uc *ProductUseCase) Create(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	exists, err := uc.products.ExistsByName(input.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("ya existe un producto con ese nombre")
	}

	product := &entity.Product{
		Name:   input.Name,
		SKU:    input.SKU,
		Price:  input.Price,
		Stock:  input.Stock,
		Status: entity.StockStatus(input.Stock),
		Active: true,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}

	uc.log.Info().Str("producto", product.Name).Msg("Producto creado")
	return product, nil
}

// Update actualiza nombre, SKU, precio y stock. Un cambio de stock recalcula
// el estado derivado.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, input ProductInput) (*entity.Product, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("producto", strconv.FormatInt(id, 10))
	}
	exists, err := uc.products.ExistsByName(input.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("otro producto ya tiene ese nombre")
	}

	product.Name = input.Name
	product.SKU = input.SKU
	product.Price = input.Price
	product.Stock = input.Stock
	product.Status = entity.StockStatus(input.Stock)
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetActive activa o desactiva un producto. Los inactivos no se venden ni
// cotizan, pero conservan su historial.
func (uc *ProductUseCase) SetActive(ctx context.Context, id int64, active bool) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("producto", strconv.FormatInt(id, 10))
	}
	if err := uc.products.SetActive(id, active); err != nil {
		return nil, err
	}
	product.Active = active
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("producto", strconv.FormatInt(id, 10))
	}
	return product, nil
}

// List lista el catálogo según el filtro (in-stock, low, active, inactive o todos).
func (uc *ProductUseCase) List(ctx context.Context, filter string) ([]*entity.Product, error) {
	return uc.products.List(filter)
}

// ListInventory lista productos activos por nivel de stock (critical, low o todos).
func (uc *ProductUseCase) ListInventory(ctx context.Context, filter string) ([]*entity.Product, error) {
	return uc.products.ListInventory(filter)
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.products.Delete(id)
}
