package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/observability"
	"github.com/spec-kit/storefront-service/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	dataset     *persistence.Dataset
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, dataset *persistence.Dataset, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, dataset: dataset, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The stores are seeded in memory at startup, so
// once the process serves traffic it is ready; the response reports dataset
// sizes and request counters for inspection.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"status": "ready",
		"dataset": fiber.Map{
			"brands":   len(h.dataset.Brands),
			"products": len(h.dataset.Products),
			"users":    len(h.dataset.Users),
		},
		"requests_served": requests,
		"errors_served":   errors,
	})
}
