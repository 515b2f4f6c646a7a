package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/analytics"
	"github.com/melkar/melkar-api/internal/application/auth"
	"github.com/melkar/melkar-api/internal/application/inventory"
	"github.com/melkar/melkar-api/internal/application/orders"
	"github.com/melkar/melkar-api/internal/application/usecase"
	"github.com/melkar/melkar-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	ClientUC         *usecase.ClientUseCase
	SupplierUC       *usecase.SupplierUseCase
	EmployeeUC       *usecase.EmployeeUseCase
	UserUC           *usecase.UserUseCase
	RoleUC           *usecase.RoleUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	CreateSale       *orders.CreateSaleUseCase
	CreatePurchase   *orders.CreatePurchaseUseCase
	QuoteUC          *orders.QuoteUseCase
	AuthUC           *auth.UseCase
	AnalyticsUC      *analytics.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdministrador)
	managers := RequireRole(entity.RoleAdministrador, entity.RoleGerente)
	allRoles := RequireRole(entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	api.Get("/dashboard", allRoles, dashboardHandler.Dashboard)
	api.Get("/reports/sales", managers, dashboardHandler.SalesReport)

	// Products
	products := api.Group("/products", managers)
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.ProductUC, deps.RegisterMovement)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/active", productHandler.SetActive)
	products.Post("/:id/restock", inventoryHandler.Restock)
	products.Delete("/:id", productHandler.Delete)

	// Inventory (vista y libro de movimientos)
	invGroup := api.Group("/inventory", managers)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/stats", dashboardHandler.InventoryStats)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)

	// Sales
	sales := api.Group("/sales", allRoles)
	saleHandler := NewSaleHandler(deps.CreateSale)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)

	// Purchases
	purchases := api.Group("/purchases", managers)
	purchaseHandler := NewPurchaseHandler(deps.CreatePurchase)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Patch("/:id/status", purchaseHandler.UpdateStatus)

	// Quotes
	quotes := api.Group("/quotes", allRoles)
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Post("/:id/send", quoteHandler.Send)

	// Clients
	clients := api.Group("/clients", allRoles)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id/status", clientHandler.UpdateStatus)
	clients.Delete("/:id", clientHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers", managers)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Patch("/:id/status", supplierHandler.UpdateStatus)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Employees
	employees := api.Group("/employees", adminOnly)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Patch("/:id/status", employeeHandler.UpdateStatus)
	employees.Delete("/:id", employeeHandler.Delete)

	// Users (administración)
	users := api.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/password", userHandler.ChangePassword)
	users.Patch("/:id/status", userHandler.UpdateStatus)
	users.Delete("/:id", userHandler.Delete)

	// Roles (administración)
	roles := api.Group("/roles", adminOnly)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)
}
