package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"layoutlens/internal/http/middleware"
)

// msgProjectNotFound is sent as a plain-text body for unknown project IDs.
const msgProjectNotFound = "Project not found"

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_BODY", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeProjectNotFound answers 404 with the plain-text message clients match on.
func writeProjectNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString(msgProjectNotFound)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Panics recovered by the recover middleware arrive here as plain errors and become 500.
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
		}

		// Other client errors raised by fiber itself (413, 415, 431, ...) keep their status.
		if status >= 400 && status < 500 {
			text := utils.StatusMessage(status)
			return writeError(c, status, errorCode(text), strings.ToLower(text))
		}
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// errorCode turns a status text such as "Request Entity Too Large" into
// "REQUEST_ENTITY_TOO_LARGE".
func errorCode(text string) string {
	if text == "" {
		return "REQUEST_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
