package serverutils

import (
	"errors"

	"helpdesk-chatbot-be/internal/service"
	"helpdesk-chatbot-be/pkg/matching"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into HTTP responses so
// controllers can simply return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  ve.Fields,
			})
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrSessionNotFound),
			errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrEntryNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, service.ErrSessionClosed),
			errors.Is(err, service.ErrInvalidSessionState),
			errors.Is(err, service.ErrSelfDeletion):
			status = fiber.StatusConflict
		case errors.Is(err, service.ErrInvalidCredentials):
			status = fiber.StatusUnauthorized
		case errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrEmailTaken):
			status = fiber.StatusBadRequest
		case errors.Is(err, matching.ErrIndexNotReady):
			status = fiber.StatusServiceUnavailable
		}

		return ctx.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
}
