package dto

import "time"

// RecordMovementRequest body para POST /api/inventory/:sku/movements.
// Delta firmado: positivo entrada, negativo salida. Cero se rechaza.
type RecordMovementRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"required,min=1,max=300"`
	Actor  string `json:"actor"`
}

// MovementResponse un registro del libro de auditoría.
type MovementResponse struct {
	ID             string    `json:"id"`
	SKU            string    `json:"sku"`
	Delta          int       `json:"delta"`
	ResultingStock int       `json:"resulting_stock"`
	Reason         string    `json:"reason"`
	Actor          string    `json:"actor,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementResult resultado de registrar un movimiento: el ítem actualizado
// (con su nuevo estado derivado) más el registro recién añadido.
type MovementResult struct {
	Item     ItemResponse     `json:"item"`
	Movement MovementResponse `json:"movement"`
}

// MovementListResponse historial de movimientos de un SKU, más reciente primero.
type MovementListResponse struct {
	SKU       string             `json:"sku"`
	Movements []MovementResponse `json:"movements"`
}
