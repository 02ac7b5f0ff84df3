package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// errorStatus traduce errores de dominio a status HTTP y código estable para el cliente.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock insuficiente para la salida"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "ITEM_HAS_MOVEMENTS", "el item tiene movimientos registrados"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrStorageFailure):
		return fiber.StatusServiceUnavailable, "STORAGE_FAILURE", "almacenamiento no disponible, reintente"
	}
	return fiber.StatusInternalServerError, "INTERNAL", "error interno"
}

// writeError responde con dto.ErrorResponse. Los 5xx se registran con el error completo.
func writeError(c *fiber.Ctx, err error) error {
	status, code, msg := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		requestLogger(c).Error().Err(err).Str("code", code).Msg("error atendiendo petición")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
