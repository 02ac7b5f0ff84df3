package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger verifica que el almacenamiento responde (*pgxpool.Pool o memory.Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reporta el estado del servicio y del store.
func HealthHandler(service string, store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			requestLogger(c).Error().Err(err).Msg("health: store no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": service})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
