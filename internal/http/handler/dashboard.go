package handler

import (
	"github.com/gofiber/fiber/v2"

	"docuagent/internal/service"
)

// GetDashboard returns stats with the most recent documents and risks.
//
// @Summary  Dashboard overview
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} service.Overview
// @Failure  502 {object} errorPayload
// @Router   /dashboard [get]
func GetDashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Overview(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
