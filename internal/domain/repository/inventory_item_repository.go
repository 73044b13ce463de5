package repository

import (
	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
)

// ItemFilter filtros de listado. Category es coincidencia exacta; Search es
// substring case-insensitive sobre SKU y nombre. El filtro por estado derivado
// se aplica después de leer, en el caso de uso (el estado no se almacena).
type ItemFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// InventoryItemRepository define el puerto de persistencia del catálogo (DIP).
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetBySKU(sku string) (*entity.InventoryItem, error)
	// GetBySKUForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) dentro de la
	// transacción en curso: exclusión mutua por SKU para mutaciones de stock.
	GetBySKUForUpdate(sku string) (*entity.InventoryItem, error)
	List(filter ItemFilter) ([]*entity.InventoryItem, error)
	ListAll() ([]*entity.InventoryItem, error)
	ListBelowMinimum() ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateStock ajusta solo current_stock; único camino legal junto con el
	// registro del movimiento en la misma transacción.
	UpdateStock(sku string, newStock int) error
	Delete(sku string) error
	Categories() ([]string, error)
}
