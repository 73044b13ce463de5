package dto

import "github.com/shopspring/decimal"

// ImportRowRequest una fila estructurada de importación (hoja de cálculo u OCR).
type ImportRowRequest struct {
	SKU          string          `json:"sku" validate:"required"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	MinimumStock int             `json:"minimum_stock" validate:"gte=0"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// ImportRowsRequest body para POST /api/imports/rows (p. ej. líneas extraídas por OCR).
type ImportRowsRequest struct {
	Rows           []ImportRowRequest `json:"rows" validate:"required,min=1,dive"`
	UpdateExisting bool               `json:"update_existing"`
	Actor          string             `json:"actor"`
}

// ImportRowError error de una fila concreta; el lote continúa con el resto.
type ImportRowError struct {
	Line    int    `json:"line"`
	SKU     string `json:"sku,omitempty"`
	Message string `json:"message"`
}

// ImportSummary resultado acumulado de un lote de importación.
type ImportSummary struct {
	ImportedCount int              `json:"imported_count"`
	UpdatedCount  int              `json:"updated_count"`
	SkippedCount  int              `json:"skipped_count"`
	ErrorCount    int              `json:"error_count"`
	Errors        []ImportRowError `json:"errors,omitempty"`
}
