package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/forecast"
	"github.com/tu-usuario/supply-chain-api/internal/application/importer"
	"github.com/tu-usuario/supply-chain-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger   *inventory.LedgerUseCase
	Reports  *inventory.ReportUseCase
	Importer *importer.UseCase
	Forecast *forecast.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ítems y movimientos
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/:sku", inventoryHandler.Get)
	inv.Put("/:sku", inventoryHandler.Update)
	inv.Delete("/:sku", inventoryHandler.Delete)
	inv.Post("/:sku/movements", inventoryHandler.RecordMovement)
	inv.Get("/:sku/movements", inventoryHandler.ListMovements)

	// Pronóstico
	forecastHandler := NewForecastHandler(deps.Forecast)
	inv.Get("/:sku/forecast", forecastHandler.Forecast)
	inv.Get("/:sku/history", forecastHandler.History)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/duplicates", reportHandler.Duplicates)
	reports.Get("/quality", reportHandler.Quality)
	reports.Get("/summary", reportHandler.Summary)
	api.Get("/categories", reportHandler.Categories)

	// Importación masiva
	imports := api.Group("/imports")
	importHandler := NewImportHandler(deps.Importer)
	imports.Post("/file", importHandler.ImportFile)
	imports.Post("/rows", importHandler.ImportRows)
}
