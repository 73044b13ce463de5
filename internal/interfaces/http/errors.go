package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/domain"
)

// respondError traduce errores del dominio a códigos HTTP. Los conflictos de
// estado (SKU duplicado, stock insuficiente) son 409: la petición era válida
// pero el estado actual del ledger la rechaza.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error(), nil))
	case errors.Is(err, domain.ErrInvalidOperation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_OPERATION", err.Error(), nil))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", err.Error(), nil))
	case errors.Is(err, domain.ErrDuplicateSKU):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE_SKU", err.Error(), nil))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("INSUFFICIENT_STOCK", err.Error(), nil))
	case errors.Is(err, domain.ErrForecastUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("FORECAST_UNAVAILABLE", err.Error(), nil))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "error interno", nil))
	}
}
