package handler

import (
	"github.com/gofiber/fiber/v2"

	"docuagent/internal/model"
	"docuagent/internal/service"
)

// ListReports returns filtered risk reports plus a summary of all of them.
//
// @Summary  List risk reports
// @Tags     reports
// @Produce  json
// @Param    severity query string false "all, High, Medium or Low"
// @Param    status   query string false "all, Open, Reviewing or Resolved"
// @Param    search   query string false "Match against title, document name or description"
// @Success  200 {object} service.RiskListResult
// @Failure  400 {object} errorPayload
// @Router   /reports [get]
func ListReports(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := service.RiskFilter{
			Severity: c.Query("severity", service.FilterAll),
			Status:   c.Query("status", service.FilterAll),
			Search:   c.Query("search"),
		}
		res, err := svc.List(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetReport returns one risk report with its suggested next statuses.
//
// @Summary  Get risk report
// @Tags     reports
// @Produce  json
// @Param    id path string true "Risk report ID"
// @Success  200 {object} service.RiskItem
// @Failure  404 {object} errorPayload
// @Router   /reports/{id} [get]
func GetReport(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		r, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// UpdateReportStatus changes a report's review status.
//
// @Summary  Update risk status
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    id   path string            true "Risk report ID"
// @Param    body body model.StatusUpdate true "New status"
// @Success  200 {object} service.RiskItem
// @Failure  400 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Router   /reports/{id}/status [patch]
func UpdateReportStatus(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		var body model.StatusUpdate
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		r, err := svc.UpdateStatus(c.UserContext(), id, body.Status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}
