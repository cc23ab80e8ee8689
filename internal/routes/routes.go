package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Food         *handlers.FoodHandler
	Pet          *handlers.PetHandler
	Notification *handlers.NotificationHandler
	Health       *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, protected fiber.Handler, h Handlers) {
	app.Get("/", h.Health.Banner)

	api := app.Group("/api")

	// General API rate limiter per IP
	api.Use(perIPLimiter(cfg.RateLimitPerMin))

	api.Get("/health", h.Health.Check)

	// Auth: stricter limit on the credential endpoints
	auth := api.Group("/auth")
	auth.Post("/register", perIPLimiter(cfg.AuthRateLimitPerMin), h.Auth.Register)
	auth.Post("/login", perIPLimiter(cfg.AuthRateLimitPerMin), h.Auth.Login)
	auth.Get("/me", protected, h.Auth.Me)

	foods := api.Group("/foods", protected)
	foods.Get("/", h.Food.List)
	foods.Post("/", h.Food.Create)
	foods.Get("/:id", h.Food.Get)
	foods.Put("/:id", h.Food.Update)
	foods.Delete("/:id", h.Food.Delete)
	foods.Patch("/:id/toggle-open", h.Food.ToggleOpen)

	pets := api.Group("/pets", protected)
	pets.Get("/", h.Pet.List)
	pets.Post("/", h.Pet.Create)
	pets.Get("/:id", h.Pet.Get)
	pets.Put("/:id", h.Pet.Update)
	pets.Delete("/:id", h.Pet.Delete)

	api.Get("/notifications/low-stock", protected, h.Notification.LowStock)
}

func perIPLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error:   true,
				Kind:    dto.KindRateLimited,
				Message: "Too many requests, please try again later",
			})
		},
	})
}
