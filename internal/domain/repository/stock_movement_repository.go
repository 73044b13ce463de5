package repository

import (
	"time"

	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
)

// DailyNetDelta suma neta de deltas de un SKU en un día (serie para pronóstico).
type DailyNetDelta struct {
	Day time.Time
	Net int
}

// StockMovementRepository define el puerto de persistencia del libro de auditoría.
// Solo inserción y lectura: los movimientos nunca se modifican ni se borran.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListBySKU(sku string, limit int) ([]*entity.StockMovement, error)
	NetDeltasByDay(sku string, since time.Time) ([]DailyNetDelta, error)
}
