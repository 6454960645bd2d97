package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/inventory"
	"github.com/Jwerthe/chocorocks-inventory/internal/application/sales"
	"github.com/Jwerthe/chocorocks-inventory/internal/application/usecase"
	dominv "github.com/Jwerthe/chocorocks-inventory/internal/domain/inventory"
	infrapdf "github.com/Jwerthe/chocorocks-inventory/internal/infrastructure/pdf"
	"github.com/Jwerthe/chocorocks-inventory/internal/infrastructure/restapi"
	httpRouter "github.com/Jwerthe/chocorocks-inventory/internal/interfaces/http"
	"github.com/Jwerthe/chocorocks-inventory/pkg/config"
	"github.com/Jwerthe/chocorocks-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	backend := restapi.NewClient(cfg.Backend, log)

	productRepo := restapi.NewProductRepository(backend)
	storeRepo := restapi.NewStoreRepository(backend)
	relationRepo := restapi.NewProductStoreRepository(backend)
	batchRepo := restapi.NewBatchRepository(backend)
	movementRepo := restapi.NewMovementRepository(backend)
	clientRepo := restapi.NewClientRepository(backend)
	saleRepo := restapi.NewSaleRepository(backend)
	categoryRepo := restapi.NewCategoryRepository(backend)
	userRepo := restapi.NewUserRepository(backend)

	policy := dominv.LowStockFixed
	if cfg.Inventory.LowStockPolicy == "per-store" {
		policy = dominv.LowStockPerStore
	}

	stockLookup := inventory.NewStockLookup(productRepo, batchRepo, relationRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(
		stockLookup, movementRepo, productRepo, relationRepo, batchRepo,
		dominv.MovementValidator{Policy: policy}, log,
	)
	batchUC := inventory.NewBatchLifecycle(batchRepo, productRepo, relationRepo, log)
	lowStockUC := inventory.NewLowStockUseCase(productRepo, storeRepo, relationRepo, policy)

	productUC := usecase.NewProductUseCase(productRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	saleUC := sales.NewSaleUseCase(saleRepo, productRepo)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(saleRepo, storeRepo, clientRepo, productRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chocorocks Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		StoreUC:          storeUC,
		CategoryUC:       categoryUC,
		ClientUC:         clientUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		StockLookup:      stockLookup,
		LowStock:         lowStockUC,
		BatchUC:          batchUC,
		SaleUC:           saleUC,
		ReceiptUC:        receiptUC,
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
