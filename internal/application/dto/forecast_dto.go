package dto

import (
	"encoding/json"
	"time"
)

// SeriesPoint un punto de la serie histórica: suma neta de deltas de un día.
type SeriesPoint struct {
	Date time.Time `json:"date"`
	Net  int       `json:"net_quantity"`
}

// ForecastRequestPayload lo que el ledger entrega al motor externo de pronóstico:
// la serie cronológica de cantidades netas. Nada más; el motor es caja negra.
type ForecastRequestPayload struct {
	SKU         string        `json:"sku"`
	HorizonDays int           `json:"horizon_days"`
	Series      []SeriesPoint `json:"series"`
}

// ForecastResponse respuesta del motor, devuelta sin interpretar.
type ForecastResponse struct {
	SKU         string          `json:"sku"`
	HistoryDays int             `json:"history_days"`
	Forecast    json.RawMessage `json:"forecast"`
}
