package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps service errors onto the JSON error envelope. Anything
// unrecognised is logged, reported to Sentry and answered with a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, dto.KindValidation, verr.Message)
	case errors.Is(err, services.ErrEmailTaken):
		return writeError(c, fiber.StatusBadRequest, dto.KindConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, dto.KindInvalidCredentials, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, dto.KindUnauthorized, err.Error())
	case errors.Is(err, services.ErrFoodNotFound), errors.Is(err, services.ErrPetNotFound):
		return writeError(c, fiber.StatusNotFound, dto.KindNotFound, err.Error())
	}

	attrs := []any{
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	}
	if user, ok := middleware.CurrentUser(c); ok {
		attrs = append(attrs, "user_id", user.ID.String())
	}
	slog.Error("request failed", attrs...)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return writeError(c, fiber.StatusInternalServerError, dto.KindInternal, "Internal server error")
}

func writeError(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Kind: kind, Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, dto.KindValidation, "Invalid request body")
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, validation.Errorf("invalid id %q", c.Params("id"))
	}
	return id, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
