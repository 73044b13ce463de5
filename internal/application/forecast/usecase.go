package forecast

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/domain"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

// Engine puerto de salida hacia el motor externo de pronóstico de demanda.
// El ledger solo entrega la serie histórica; la respuesta del motor se devuelve
// sin interpretar ni validar (caja negra).
type Engine interface {
	Forecast(ctx context.Context, payload dto.ForecastRequestPayload) (json.RawMessage, error)
}

// UseCase construye la serie histórica de un SKU y la delega al motor.
type UseCase struct {
	itemRepo repository.InventoryItemRepository
	movRepo  repository.StockMovementRepository
	engine   Engine
}

// NewUseCase construye el caso de uso. engine puede ser nil si el motor no está
// configurado; en ese caso Forecast devuelve ErrForecastUnavailable.
func NewUseCase(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
	engine Engine,
) *UseCase {
	return &UseCase{itemRepo: itemRepo, movRepo: movRepo, engine: engine}
}

// HistoryForSKU serie cronológica de cantidades netas por día de los últimos
// `days` días: la única obligación del ledger hacia el colaborador de pronóstico.
func (uc *UseCase) HistoryForSKU(ctx context.Context, sku string, days int) ([]dto.SeriesPoint, error) {
	if days <= 0 {
		days = 90
	}
	item, err := uc.itemRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	since := time.Now().AddDate(0, 0, -days)
	deltas, err := uc.movRepo.NetDeltasByDay(sku, since)
	if err != nil {
		return nil, err
	}
	series := make([]dto.SeriesPoint, 0, len(deltas))
	for _, d := range deltas {
		series = append(series, dto.SeriesPoint{Date: d.Day, Net: d.Net})
	}
	return series, nil
}

// Forecast envía la serie al motor externo y devuelve su respuesta tal cual.
func (uc *UseCase) Forecast(ctx context.Context, sku string, days, horizonDays int) (*dto.ForecastResponse, error) {
	if uc.engine == nil {
		return nil, domain.ErrForecastUnavailable
	}
	if days <= 0 {
		days = 90
	}
	if horizonDays <= 0 {
		horizonDays = 30
	}
	series, err := uc.HistoryForSKU(ctx, sku, days)
	if err != nil {
		return nil, err
	}
	raw, err := uc.engine.Forecast(ctx, dto.ForecastRequestPayload{
		SKU:         sku,
		HorizonDays: horizonDays,
		Series:      series,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ForecastResponse{SKU: sku, HistoryDays: days, Forecast: raw}, nil
}
