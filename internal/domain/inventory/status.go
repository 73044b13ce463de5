package inventory

import "math"

// StockStatus estado derivado de un ítem. Nunca se almacena: se calcula en cada lectura.
type StockStatus string

const (
	StatusInStock    StockStatus = "in-stock"
	StatusLowStock   StockStatus = "low-stock"
	StatusOutOfStock StockStatus = "out-of-stock"
)

// Status calcula el estado derivado a partir de (stock actual, stock mínimo).
// Regla con frontera inclusiva: stock == mínimo ya es low-stock.
// Única fuente de verdad del estado: reportes, lecturas y filtros usan esta función.
func Status(currentStock, minimumStock int) StockStatus {
	switch {
	case currentStock == 0:
		return StatusOutOfStock
	case currentStock <= minimumStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ReorderQuantity calcula la cantidad sugerida de reposición:
// max(mínimo*multiplicador - actual, 0). El multiplicador es política configurable
// (REORDER_MULTIPLIER, por defecto 2); no es un valor descubierto del negocio.
func ReorderQuantity(currentStock, minimumStock int, multiplier float64) int {
	target := int(math.Round(float64(minimumStock) * multiplier))
	if qty := target - currentStock; qty > 0 {
		return qty
	}
	return 0
}

// QualityScore métrica determinista de calidad de datos del catálogo:
// 100 * (1 - faltantes/total), acotado a [0,100]. Catálogo vacío = 100 (vacuamente limpio).
func QualityScore(totalItems, missingItems int) float64 {
	if totalItems <= 0 {
		return 100
	}
	score := 100 * (1 - float64(missingItems)/float64(totalItems))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
