package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/melkar/melkar-api/internal/application/analytics"
	"github.com/melkar/melkar-api/internal/application/auth"
	"github.com/melkar/melkar-api/internal/application/inventory"
	"github.com/melkar/melkar-api/internal/application/orders"
	"github.com/melkar/melkar-api/internal/application/usecase"
	"github.com/melkar/melkar-api/internal/infrastructure/postgres"
	httpRouter "github.com/melkar/melkar-api/internal/interfaces/http"
	"github.com/melkar/melkar-api/pkg/config"
	"github.com/melkar/melkar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(movementRepo, productRepo, txRunner, log)
	createSaleUC := orders.NewCreateSaleUseCase(saleRepo, productRepo, clientRepo, txRunner, log)
	createPurchaseUC := orders.NewCreatePurchaseUseCase(purchaseRepo, supplierRepo, txRunner, log)
	quoteUC := orders.NewQuoteUseCase(quoteRepo, productRepo, clientRepo, txRunner, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	clientUC := usecase.NewClientUseCase(clientRepo, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, log)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, log)
	userUC := usecase.NewUserUseCase(userRepo, log)
	roleUC := usecase.NewRoleUseCase(roleRepo, userRepo, log)
	authUC := auth.New(userRepo, roleRepo, log)
	analyticsUC := appanalytics.New(analyticsRepo, saleRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Melkar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		ClientUC:         clientUC,
		SupplierUC:       supplierUC,
		EmployeeUC:       employeeUC,
		UserUC:           userUC,
		RoleUC:           roleUC,
		RegisterMovement: registerMovementUC,
		CreateSale:       createSaleUC,
		CreatePurchase:   createPurchaseUC,
		QuoteUC:          quoteUC,
		AuthUC:           authUC,
		AnalyticsUC:      analyticsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
