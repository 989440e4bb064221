package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/domain"
)

// writeError traduce errores de dominio a status HTTP y dto.ErrorResponse.
// Los errores de infraestructura no exponen su detalle al cliente.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoInventory):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_INVENTORY", Message: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
			Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
		})
	case errors.Is(err, domain.ErrGeneration):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "GENERATION_FAILED", Message: "no se pudo generar el menú; intenta de nuevo",
		})
	case errors.Is(err, domain.ErrSettlementIncomplete):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "SETTLEMENT_INCOMPLETE", Message: domain.ErrSettlementIncomplete.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
}
