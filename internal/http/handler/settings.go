package handler

import (
	"github.com/gofiber/fiber/v2"

	"docuagent/internal/model"
	"docuagent/internal/service"
)

// GetSettings returns the backend settings bag as stored.
//
// @Summary  Get settings
// @Tags     settings
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /settings [get]
func GetSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Get(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(s)
	}
}

// ReplaceSettings stores a new settings bag. Unknown keys pass through.
//
// @Summary  Replace settings
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    body body map[string]interface{} true "Settings bag"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} errorPayload
// @Router   /settings [put]
func ReplaceSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.Settings
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		s, err := svc.Replace(c.UserContext(), body)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(s)
	}
}
