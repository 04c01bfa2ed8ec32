package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse builds the JSON error envelope used by all controllers.
func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"code":  code,
		"error": message,
	}
}

// ErrorHandlerMiddleware recovers panics from downstream handlers and maps
// them to a 500 so a single bad request never takes the process down.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = c.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, fmt.Sprintf("internal error: %v", r)))
			}
		}()
		return c.Next()
	}
}
