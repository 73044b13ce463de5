package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicateSKU        = errors.New("SKU duplicado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrInvalidOperation    = errors.New("operación no permitida")
	ErrForecastUnavailable = errors.New("motor de pronóstico no disponible")
)
