package helper

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// TranslateError renders an error coming out of a service call or a
// DB.Transaction (usually a *fiber.Error) as a consistent JSON response.
// Deadline errors surface as 504 — the transaction has already been rolled
// back by the time the caller sees them.
func TranslateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return JsonError(c, fiber.StatusGatewayTimeout, "storage did not respond within the request budget")
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
