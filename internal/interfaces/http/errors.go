package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rolexfittings/pipestock-api/internal/application/dto"
	"github.com/rolexfittings/pipestock-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP y respuesta uniforme.
// Todo error llega al usuario como mensaje visible; nada se traga en silencio.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoBatchSelected):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_BATCH_SELECTED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrNegativeStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrSameLocation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SAME_LOCATION", Message: err.Error()})
	case errors.Is(err, domain.ErrImmutableEntry):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IMMUTABLE_ENTRY", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	default:
		// Fallo del commit atómico u otro error de infraestructura: la
		// operación aborta sin estado parcial por construcción.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "COMMIT_FAILURE", Message: err.Error()})
	}
}
