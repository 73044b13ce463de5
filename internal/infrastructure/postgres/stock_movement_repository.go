package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de auditoría sobre PostgreSQL.
// Solo INSERT y SELECT: los movimientos son inmutables.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create añade un registro al libro.
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, sku, delta, resulting_stock, reason, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.SKU, mov.Delta, mov.ResultingStock, mov.Reason, mov.Actor, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListBySKU historial de un SKU, más reciente primero.
func (r *StockMovementRepo) ListBySKU(sku string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, sku, delta, resulting_stock, reason, actor, created_at
		FROM stock_movements WHERE sku = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, sku, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.SKU, &m.Delta, &m.ResultingStock, &m.Reason, &m.Actor, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// NetDeltasByDay serie de sumas netas de deltas por día desde `since`
// (insumo del colaborador de pronóstico).
func (r *StockMovementRepo) NetDeltasByDay(sku string, since time.Time) ([]repository.DailyNetDelta, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COALESCE(SUM(delta), 0)
		FROM stock_movements
		WHERE sku = $1 AND created_at >= $2
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(context.Background(), query, sku, since)
	if err != nil {
		return nil, fmt.Errorf("net deltas by day: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyNetDelta
	for rows.Next() {
		var d repository.DailyNetDelta
		if err := rows.Scan(&d.Day, &d.Net); err != nil {
			return nil, fmt.Errorf("scan net delta: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
