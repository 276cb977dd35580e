package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"docuagent/internal/client"
)

// HealthCheck reports whether the DocuAgent backend answers the stats endpoint.
//
// @Summary  Backend readiness
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} errorPayload
// @Router   /health [get]
func HealthCheck(stats client.StatsAPI) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if _, err := stats.Dashboard(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RedirectRoot sends the bare root to the dashboard.
func RedirectRoot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusTemporaryRedirect)
	}
}
