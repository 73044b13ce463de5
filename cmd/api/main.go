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

	"github.com/tu-usuario/supply-chain-api/internal/application/forecast"
	"github.com/tu-usuario/supply-chain-api/internal/application/importer"
	"github.com/tu-usuario/supply-chain-api/internal/application/inventory"
	"github.com/tu-usuario/supply-chain-api/internal/infrastructure/forecastengine"
	"github.com/tu-usuario/supply-chain-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/supply-chain-api/internal/interfaces/http"
	"github.com/tu-usuario/supply-chain-api/pkg/config"
	"github.com/tu-usuario/supply-chain-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema")
	}

	itemRepo := postgres.NewInventoryItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, itemRepo, movementRepo)
	reportUC := inventory.NewReportUseCase(itemRepo, inventory.ReportPolicy{
		ReorderMultiplier: cfg.Inventory.ReorderMultiplier,
	})
	importerUC := importer.NewUseCase(ledgerUC, cfg.Inventory.ImportMaxRows, log.Zerolog())

	// Motor de pronóstico: opcional. Sin FORECAST_BASE_URL el endpoint responde 503.
	var engine forecast.Engine
	if cfg.Forecast.BaseURL != "" {
		engine = forecastengine.NewHTTPEngine(
			cfg.Forecast.BaseURL,
			time.Duration(cfg.Forecast.TimeoutSeconds)*time.Second,
		)
	} else {
		log.Warn().Msg("FORECAST_BASE_URL no configurado, pronóstico deshabilitado")
	}
	forecastUC := forecast.NewUseCase(itemRepo, movementRepo, engine)

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
		Title:    "Supply Chain API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:   ledgerUC,
		Reports:  reportUC,
		Importer: importerUC,
		Forecast: forecastUC,
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
