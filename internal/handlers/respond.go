package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Every response body is the same envelope: {success, message, data} on
// success, {success, message, error} on failure.

func respondSuccess(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondFailure(c *fiber.Ctx, status int, message, reason string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   reason,
	})
}

// validationReason flattens validator errors into one readable string.
func validationReason(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	reason := ""
	for i, e := range validationErrors {
		if i > 0 {
			reason += "; "
		}
		reason += fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return reason
}

// ServerError is the app-level error handler: anything a handler did not
// map itself (including panics surfaced by the recover middleware) becomes
// a 500 with the failure envelope.
func ServerError(c *fiber.Ctx, err error) error {
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return respondFailure(c, fiber.StatusInternalServerError, "Server error", err.Error())
}
