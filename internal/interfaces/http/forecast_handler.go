package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/forecast"
)

// ForecastHandler expone el historial por día y el pronóstico delegado.
type ForecastHandler struct {
	forecast *forecast.UseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(fc *forecast.UseCase) *ForecastHandler {
	return &ForecastHandler{forecast: fc}
}

// Forecast godoc
// @Summary      Pronóstico de demanda de un SKU
// @Description  Construye la serie de cantidades netas por día y la delega al motor externo; la respuesta del motor se devuelve sin interpretar. 503 si el motor no está configurado o no responde.
// @Tags         forecast
// @Produce      json
// @Param        sku           path   string  true   "SKU del ítem"
// @Param        days          query  int     false  "Días de historia (por defecto 90)"
// @Param        horizon_days  query  int     false  "Días a pronosticar (por defecto 30)"
// @Success      200  {object}  dto.APIResponse{data=dto.ForecastResponse}
// @Failure      404  {object}  dto.APIResponse
// @Failure      503  {object}  dto.APIResponse
// @Router       /api/inventory/{sku}/forecast [get]
func (h *ForecastHandler) Forecast(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days"))
	horizon, _ := strconv.Atoi(c.Query("horizon_days"))
	resp, err := h.forecast.Forecast(c.Context(), c.Params("sku"), days, horizon)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", resp))
}

// History godoc
// @Summary      Serie histórica de cantidades netas por día
// @Tags         forecast
// @Produce      json
// @Param        sku   path   string  true   "SKU del ítem"
// @Param        days  query  int     false  "Días hacia atrás (por defecto 90)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.SeriesPoint}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/inventory/{sku}/history [get]
func (h *ForecastHandler) History(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days"))
	series, err := h.forecast.HistoryForSKU(c.Context(), c.Params("sku"), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", series))
}
