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

	"github.com/jdvalencia/almacen-api/internal/application/export"
	"github.com/jdvalencia/almacen-api/internal/application/purchasing"
	"github.com/jdvalencia/almacen-api/internal/application/remission"
	"github.com/jdvalencia/almacen-api/internal/application/stock"
	"github.com/jdvalencia/almacen-api/internal/application/transfer"
	"github.com/jdvalencia/almacen-api/internal/application/usecase"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/csvexport"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/memory"
	infrapdf "github.com/jdvalencia/almacen-api/internal/infrastructure/pdf"
	httpRouter "github.com/jdvalencia/almacen-api/internal/interfaces/http"
	"github.com/jdvalencia/almacen-api/pkg/config"
	"github.com/jdvalencia/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)
	userRepo := memory.NewUserRepository(store)
	transferRepo := memory.NewTransferRepository(store)
	remissionRepo := memory.NewRemissionRepository(store)
	orderRepo := memory.NewPurchaseOrderRepository(store)
	txRunner := memory.NewTxRunner(store)

	if cfg.Seed.Demo {
		if err := memory.SeedDemo(store); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	productUC := usecase.NewProductUseCase(productRepo, warehouseRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	stockQuery := stock.NewQueryUseCase(productRepo, warehouseRepo)
	transferUC := transfer.NewUseCase(txRunner, productRepo, warehouseRepo, transferRepo, userRepo)
	remissionUC := remission.NewUseCase(txRunner, productRepo, warehouseRepo, remissionRepo)
	purchasingUC := purchasing.NewUseCase(orderRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	csvExporter := csvexport.NewExporter()
	exportUC := export.NewUseCase(transferRepo, orderRepo, warehouseRepo, pdfGenerator, csvExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		WarehouseUC:     warehouseUC,
		UserUC:          userUC,
		StockQuery:      stockQuery,
		TransferUC:      transferUC,
		RemissionUC:     remissionUC,
		PurchaseOrderUC: purchasingUC,
		ExportUC:        exportUC,
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
