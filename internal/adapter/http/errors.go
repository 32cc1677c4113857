package http

import (
	"log/slog"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"career-hub/internal/auth"
	"career-hub/internal/domain"
	"career-hub/internal/usecase"
)

const genericDescription = "Something went wrong. Please try again."

// ErrorHandler renders every error returned by a route as a destructive
// notification.
func ErrorHandler(trans ut.Translator) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, n := classify(err, trans)
		if status >= fiber.StatusInternalServerError {
			slog.Error("request failed", "method", c.Method(), "path", c.Path(), "status", status, "error", err)
		} else {
			slog.Debug("request rejected", "method", c.Method(), "path", c.Path(), "status", status, "error", err)
		}
		return c.Status(status).JSON(n)
	}
}

func classify(err error, trans ut.Translator) (int, usecase.Notification) {
	n := usecase.Notification{Variant: usecase.VariantDestructive}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		n.Title = "Invalid input"
		n.Description = "Please check the highlighted fields."
		n.Fields = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			n.Fields[fe.Field()] = fe.Translate(trans)
		}
		return fiber.StatusBadRequest, n
	}

	status := statusOf(err)
	n.Title = http.StatusText(status)
	n.Description = genericDescription

	var fe *fiber.Error
	var ne *usecase.NotifyError
	switch {
	case errors.As(err, &ne):
		n.Title = ne.Title
		n.Description = ne.Description
	case errors.As(err, &fe):
		n.Description = fe.Message
	case status < fiber.StatusInternalServerError:
		n.Description = err.Error()
	}
	return status, n
}

func statusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, auth.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalid),
		errors.Is(err, usecase.ErrUnknownTemplate),
		errors.Is(err, auth.ErrUnknownProvider):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
