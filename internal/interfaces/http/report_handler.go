package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/inventory"
)

// ReportHandler expone los reportes derivados del ledger.
type ReportHandler struct {
	reports *inventory.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *inventory.ReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// LowStock godoc
// @Summary      Reporte de stock bajo
// @Description  SKUs en o por debajo de su mínimo, con cantidad sugerida de reorden y costo estimado. Agotados primero.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.LowStockReport}
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	report, err := h.reports.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", report))
}

// Duplicates godoc
// @Summary      Posibles ítems duplicados
// @Description  Agrupa ítems por nombre normalizado (minúsculas, sin tildes, espacios colapsados) y categoría.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.DuplicateReport}
// @Router       /api/reports/duplicates [get]
func (h *ReportHandler) Duplicates(c *fiber.Ctx) error {
	report, err := h.reports.FindDuplicates(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", report))
}

// Quality godoc
// @Summary      Calidad de datos del catálogo
// @Description  Puntaje 0-100 según la proporción de ítems con descripción o categoría en blanco.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.QualityReport}
// @Router       /api/reports/quality [get]
func (h *ReportHandler) Quality(c *fiber.Ctx) error {
	report, err := h.reports.Quality(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", report))
}

// Summary godoc
// @Summary      Resumen general del inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.SummaryReport}
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	report, err := h.reports.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", report))
}

// Categories godoc
// @Summary      Categorías existentes
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]string}
// @Router       /api/categories [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.reports.Categories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", categories))
}
