package entity

import "time"

// Razones estándar de movimientos generados por el propio sistema.
const (
	ReasonInitialStock = "stock inicial"
	ReasonImport       = "importación"
)

// StockMovement representa una transacción del libro de inventario.
// Inmutable una vez creado: la suma de todos los deltas de un SKU más su stock
// inicial debe ser igual a su CurrentStock (pista de auditoría).
type StockMovement struct {
	ID             string
	SKU            string // clave de búsqueda, no FK (la historia sobrevive al borrado del ítem)
	Delta          int    // positivo = entrada, negativo = salida
	ResultingStock int    // snapshot del stock resultante al aplicar el delta
	Reason         string
	Actor          string
	CreatedAt      time.Time
}
