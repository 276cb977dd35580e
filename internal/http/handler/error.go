package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"docuagent/internal/client"
	"docuagent/internal/http/middleware"
	"docuagent/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// idParam returns the decoded :id segment; Fiber leaves route params escaped.
func idParam(c *fiber.Ctx) (string, error) {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		return "", client.ErrIDRequired
	}
	return id, nil
}

// writeError writes a standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "BAD_GATEWAY")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// validationErrors maps gate and input errors onto client-facing statuses.
var validationErrors = []struct {
	err    error
	status int
	code   string
}{
	{client.ErrIDRequired, fiber.StatusBadRequest, "INVALID_ID"},
	{client.ErrInvalidStatus, fiber.StatusBadRequest, "INVALID_STATUS"},
	{service.ErrInvalidSort, fiber.StatusBadRequest, "INVALID_SORT"},
	{service.ErrInvalidFilter, fiber.StatusBadRequest, "INVALID_FILTER"},
	{service.ErrSettingsRequired, fiber.StatusBadRequest, "INVALID_BODY"},
	{service.ErrFileRequired, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{service.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
	{service.ErrUnsupportedType, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_FILE_TYPE"},
}

// writeServiceError renders an error returned by a service call.
// Backend errors keep their status and message; anything that never got a
// backend response is reported as 502.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, v := range validationErrors {
		if errors.Is(err, v.err) {
			return writeError(c, v.status, v.code, err.Error())
		}
	}

	if apiErr, ok := client.AsAPIError(err); ok {
		return writeError(c, apiErr.StatusCode, statusCode(apiErr.StatusCode), apiErr.Message)
	}

	return writeError(c, fiber.StatusBadGateway, "BAD_GATEWAY", "backend unavailable")
}

// statusCode turns 404 into "NOT_FOUND", 409 into "CONFLICT" and so on.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UPSTREAM_ERROR"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "FILE_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
