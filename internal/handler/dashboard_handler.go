package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/veloxrent/rental-admin/internal/model"
)

// DashboardServiceInterface defines the interface for dashboard counters.
type DashboardServiceInterface interface {
	Counts(ctx context.Context) (model.DashboardCounts, error)
}

// DashboardHandler serves the admin dashboard counters.
type DashboardHandler struct {
	service DashboardServiceInterface
}

// NewDashboardHandler creates a new DashboardHandler with the given service.
func NewDashboardHandler(svc DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Counts handles GET /admin/dashboard/counts.
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.service.Counts(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load dashboard counts")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}
	return success(c, "counts retrieved", counts)
}
