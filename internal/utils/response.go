package utils

import (
	"brokerfee/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// BadRequest sends an INVALID_REQUEST error with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return DomainError(c, errors.InvalidRequest(message))
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{
		"error": errors.DomainError{Code: "INTERNAL", Message: message},
	})
}

// DomainError sends de with the status matching its code.
func DomainError(c *fiber.Ctx, de *errors.DomainError) error {
	return Respond(c, StatusFor(de), fiber.Map{"error": de})
}

// Fail sends err as a DomainError response, or a 500 for anything else.
func Fail(c *fiber.Ctx, err error) error {
	if de, ok := errors.AsDomainError(err); ok {
		return DomainError(c, de)
	}
	return InternalError(c, "internal server error")
}

// StatusFor maps a DomainError code to an HTTP status.
func StatusFor(de *errors.DomainError) int {
	switch de.Code {
	case errors.ErrInvalidInput.Code:
		return fiber.StatusUnprocessableEntity
	case errors.ErrInvalidRequest.Code:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
