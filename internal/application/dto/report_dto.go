package dto

import "github.com/shopspring/decimal"

// LowStockEntry un ítem bajo mínimo con su sugerencia de reposición.
type LowStockEntry struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	CurrentStock      int             `json:"current_stock"`
	MinimumStock      int             `json:"minimum_stock"`
	Status            string          `json:"status"`
	SuggestedQuantity int             `json:"suggested_quantity"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	SupplierID        string          `json:"supplier_id,omitempty"`
}

// LowStockReport reporte de reposición: out-of-stock primero, luego por urgencia.
type LowStockReport struct {
	Total              int             `json:"total"`
	TotalEstimatedCost decimal.Decimal `json:"total_estimated_cost"`
	Items              []LowStockEntry `json:"items"`
}

// DuplicateMember un ítem dentro de un grupo de candidatos a duplicado.
type DuplicateMember struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// DuplicateGroup grupo de ítems cuyo nombre normalizado y categoría coinciden.
// Solo detección: la fusión es decisión manual del operador.
type DuplicateGroup struct {
	NormalizedName string            `json:"normalized_name"`
	Category       string            `json:"category"`
	Items          []DuplicateMember `json:"items"`
}

// DuplicateReport resultado del escaneo de duplicados.
type DuplicateReport struct {
	TotalAnalyzed int              `json:"total_analyzed"`
	GroupsFound   int              `json:"groups_found"`
	Groups        []DuplicateGroup `json:"groups"`
}

// QualityReport métrica de calidad de datos del catálogo.
type QualityReport struct {
	Score        float64  `json:"score"` // 0..100
	TotalItems   int      `json:"total_items"`
	MissingItems int      `json:"missing_items"`
	MissingSKUs  []string `json:"missing_skus,omitempty"` // ítems sin descripción o categoría
}

// SummaryReport resumen agregado del inventario para el dashboard.
type SummaryReport struct {
	TotalItems        int             `json:"total_items"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`   // Σ stock * costo
	TotalSellingValue decimal.Decimal `json:"total_selling_value"` // Σ stock * precio venta
	LowStockItems     int             `json:"low_stock_items"`
	OutOfStockItems   int             `json:"out_of_stock_items"`
	TotalCategories   int             `json:"total_categories"`
}
