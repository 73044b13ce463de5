package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/domain"
	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

// RecordMovement aplica un delta firmado al stock de un SKU: único camino legal
// para cambiar current_stock. Dentro de una transacción bloquea la fila del ítem
// (SELECT FOR UPDATE), valida que el resultado no sea negativo, actualiza el
// stock y añade el registro de auditoría con el snapshot resultante.
// Un rechazo (ErrInsufficientStock, ErrNotFound, ErrInvalidInput) no deja
// ningún estado a medias: Rollback de todo.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, sku string, in dto.RecordMovementRequest) (*dto.MovementResult, error) {
	if in.Delta == 0 || strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}

	var (
		updated *entity.InventoryItem
		mov     *entity.StockMovement
	)
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		item, err := itemRepo.GetBySKUForUpdate(sku)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newStock := item.CurrentStock + in.Delta
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		if err := itemRepo.UpdateStock(sku, newStock); err != nil {
			return err
		}
		now := time.Now()
		mov = &entity.StockMovement{
			ID:             uuid.New().String(),
			SKU:            item.SKU,
			Delta:          in.Delta,
			ResultingStock: newStock,
			Reason:         strings.TrimSpace(in.Reason),
			Actor:          in.Actor,
			CreatedAt:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		item.CurrentStock = newStock
		item.UpdatedAt = now
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovementResult{
		Item:     *toItemResponse(updated),
		Movement: *toMovementResponse(mov),
	}, nil
}

// ListMovements historial de auditoría de un SKU, más reciente primero.
// Se permite consultar SKUs ya borrados del catálogo: la historia sobrevive.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, sku string, limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	movs, err := uc.movRepo.ListBySKU(sku, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{SKU: sku, Movements: out}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:             m.ID,
		SKU:            m.SKU,
		Delta:          m.Delta,
		ResultingStock: m.ResultingStock,
		Reason:         m.Reason,
		Actor:          m.Actor,
		CreatedAt:      m.CreatedAt,
	}
}
