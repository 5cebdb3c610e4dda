package serverutils

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ErrorHandlerMiddleware turns errors returned by handlers into JSON responses.
// Domain sentinels map to their status; anything unknown becomes a 500 whose
// body does not expose the underlying error.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(log.Fields{
					"panic":      fmt.Sprintf("%v", r),
					"stack":      string(debug.Stack()),
					"request_id": RequestID(c),
				}).Error("panic recovered")
				err = c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, ErrInternal.Error()))
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, ErrNotFound.Error()))
		case errors.Is(err, ErrAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, ErrAlreadyExists.Error()))
		case errors.Is(err, ErrCreationFailed):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, ErrCreationFailed.Error()))
		case errors.Is(err, ErrBadRequest):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case errors.Is(err, ErrStorageUnavailable):
			log.WithError(err).WithField("request_id", RequestID(c)).Warn("storage unavailable")
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(fiber.StatusServiceUnavailable, ErrStorageUnavailable.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse(ve.ToErrorDetails()))
		}

		log.WithError(err).WithField("request_id", RequestID(c)).Error("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(
			fiber.StatusInternalServerError, ErrInternal.Error(),
		))
	}
}
