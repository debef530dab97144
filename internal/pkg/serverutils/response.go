package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"brightside-be/internal/service"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorHandlerMiddleware maps service errors onto HTTP statuses so
// controllers can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			status = fiber.StatusConflict
		case errors.Is(err, service.ErrInvalidCredentials):
			status = fiber.StatusUnauthorized
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTopicNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, service.ErrTopicForbidden):
			status = fiber.StatusForbidden
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			status = fiber.StatusBadRequest
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		return ctx.Status(status).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}
}
