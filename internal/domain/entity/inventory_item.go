package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa una unidad de inventario (SKU) del catálogo.
// CurrentStock solo se modifica a través de movimientos de stock; las ediciones
// de ficha (nombre, precios, categoría) nunca tocan el stock.
type InventoryItem struct {
	ID           string
	SKU          string // código único en todo el catálogo
	Name         string
	Description  string
	Category     string
	CurrentStock int // invariante: >= 0 siempre
	MinimumStock int // punto de reorden, >= 0
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	WarehouseID  string // referencia externa, no puntero vivo
	SupplierID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
