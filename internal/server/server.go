// Package server assembles the Fiber application: services, handlers,
// middleware and routes over a repository.Store.
package server

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/security"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Options struct {
	// AccessLog enables the per-request access log line.
	AccessLog bool
}

func New(cfg *config.Config, store *repository.Store, opts Options) *fiber.App {
	v := validation.New()

	// Services
	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAccessExpiry)
	authService := services.NewAuthService(store.Users, security.NewBcryptHasher(cfg.BcryptCost), tokens, v)
	foodService := services.NewFoodService(store.Foods, v, cfg.BuyLinkSearchURL)
	petService := services.NewPetService(store.Pets, v)
	notificationService := services.NewNotificationService(store.Pets)

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, middleware.JWTProtected(cfg, authService), routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Food:         handlers.NewFoodHandler(foodService),
		Pet:          handlers.NewPetHandler(petService),
		Notification: handlers.NewNotificationHandler(notificationService, cfg.LowStockThresholdDays),
		Health:       handlers.NewHealthHandler(store),
	})

	return app
}

// errorHandler renders errors that escape the handlers, including unknown
// routes and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error",
			"request_id", c.Locals("requestid"),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Kind:    kindForStatus(code),
		Message: message,
	})
}

func kindForStatus(code int) string {
	switch {
	case code == fiber.StatusNotFound:
		return dto.KindNotFound
	case code == fiber.StatusUnauthorized:
		return dto.KindUnauthorized
	case code == fiber.StatusTooManyRequests:
		return dto.KindRateLimited
	case code >= 500:
		return dto.KindInternal
	}
	return dto.KindValidation
}
