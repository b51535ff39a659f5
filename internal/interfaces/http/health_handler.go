package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthDeps sondas para el endpoint de salud. PingDB es nil cuando el backend
// no tiene conexión que sondear (archivos JSON); en ese caso se reporta el
// chequeo de directorio que el constructor del store ya hizo.
type HealthDeps struct {
	ServiceName string
	PingDB      func(ctx context.Context) error
	MediaDriver string
}

// HealthHandler reporta el estado del servicio y sus dependencias.
type HealthHandler struct {
	deps HealthDeps
}

// NewHealthHandler construye el handler.
func NewHealthHandler(deps HealthDeps) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         salud
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	database := "connected"
	if h.deps.PingDB != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.deps.PingDB(ctx); err != nil {
			database = "disconnected"
		}
	}
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.deps.ServiceName,
		"database":  database,
		"storage":   h.deps.MediaDriver,
		"cors":      "enabled",
	})
}
