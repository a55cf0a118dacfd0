package httputil

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Error codes shared by every handler. The envelope carries exactly one of
// data or error, never both.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeValidation      = "validation"
	CodeNotFound        = "not_found"
	CodeStoreFailure    = "store_failure"
	CodeComputeFailure  = "compute_failure"
	CodeConfigMissing   = "config_missing"
	CodeQuotaExceeded   = "quota_exceeded"
)

type ErrorBody struct {
	Code    string `json:"code" example:"validation"`
	Message string `json:"message" example:"date is required"`
}

type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// Data writes a 200 (or the given status) envelope with a data payload.
func Data(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(Envelope{Data: payload})
}

// Fail writes an error envelope with the status implied by the code.
func Fail(c *fiber.Ctx, code, message string) error {
	return c.Status(StatusFor(code)).JSON(Envelope{
		Error: &ErrorBody{Code: code, Message: message},
	})
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeQuotaExceeded:
		return http.StatusTooManyRequests
	case CodeConfigMissing:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
