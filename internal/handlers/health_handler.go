package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store *repository.Store
}

func NewHealthHandler(store *repository.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.store.Ping(c.UserContext()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Driver:    h.store.Driver,
	})
}

// Banner answers the bare root path.
func (h *HealthHandler) Banner(c *fiber.Ctx) error {
	return c.SendString("Pet feeding API is running")
}
