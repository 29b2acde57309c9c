package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"yt-video-chat-be/pkg/rag"
	"yt-video-chat-be/pkg/transcript"
)

// NotFoundError marks lookups that found nothing (no video loaded yet, no
// such resource).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// ErrorHandlerMiddleware converts handler errors into the response
// envelope. Nothing escapes as a bare 500 with a stack trace.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		var notFoundErr *NotFoundError

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Message))

		case errors.As(err, &notFoundErr):
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse(fiber.StatusNotFound, notFoundErr.Message))

		case errors.Is(err, transcript.ErrCaptionsDisabled):
			return ctx.Status(fiber.StatusUnprocessableEntity).
				JSON(ErrorResponse(fiber.StatusUnprocessableEntity,
					"Captions are disabled for this video. No transcript will ever be available."))

		case errors.Is(err, transcript.ErrNoTranscript):
			return ctx.Status(fiber.StatusUnprocessableEntity).
				JSON(ErrorResponse(fiber.StatusUnprocessableEntity,
					"Could not fetch transcript. The video might not have captions enabled."))

		case errors.Is(err, rag.ErrEmptyTranscript):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, "Transcript cannot be empty."))

		default:
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}
	}
}
