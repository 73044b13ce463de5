package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem de inventario.
// Las restricciones numéricas se validan antes de tocar el ledger.
type CreateItemRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock" validate:"gte=0"`
	MinimumStock int             `json:"minimum_stock" validate:"gte=0"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	WarehouseID  string          `json:"warehouse_id"`
	SupplierID   string          `json:"supplier_id"`
	Actor        string          `json:"actor"`
}

// UpdateItemRequest edición parcial de ficha. Nunca toca el stock:
// CurrentStock se declara solo para detectar el intento y rechazarlo
// (el stock se cambia únicamente vía movimientos).
type UpdateItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	MinimumStock *int             `json:"minimum_stock" validate:"omitempty,gte=0"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	WarehouseID  *string          `json:"warehouse_id"`
	SupplierID   *string          `json:"supplier_id"`
	CurrentStock *int             `json:"current_stock"`
}

// ListItemsRequest filtros de listado.
type ListItemsRequest struct {
	Category string `query:"category"`
	Status   string `query:"status" validate:"omitempty,oneof=in-stock low-stock out-of-stock"`
	Search   string `query:"search"`
	PageRequest
}

// ItemResponse salida de un ítem con su estado derivado.
type ItemResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock"`
	MinimumStock int             `json:"minimum_stock"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	WarehouseID  string          `json:"warehouse_id,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse listado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
