package handler

import (
	"time"

	"design-radar/internal/config"
	"design-radar/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	cfg     config.Config
	started time.Time
}

func NewHealthHandler(cfg config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg, started: time.Now()}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"app":    h.cfg.App.AppName,
		"env":    h.cfg.App.Environment,
		"uptime": time.Since(h.started).Round(time.Second).String(),
	}
	return response.OK(c, data)
}
