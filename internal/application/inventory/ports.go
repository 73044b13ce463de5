package inventory

import (
	"context"

	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del ledger: actualización
// de stock y registro de auditoría se confirman o deshacen juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
