package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	service          *services.NotificationService
	defaultThreshold int
}

func NewNotificationHandler(service *services.NotificationService, defaultThreshold int) *NotificationHandler {
	return &NotificationHandler{service: service, defaultThreshold: defaultThreshold}
}

// LowStock lists low-stock alerts. ?threshold=N overrides the configured
// number of days.
func (h *NotificationHandler) LowStock(c *fiber.Ctx) error {
	threshold := h.defaultThreshold
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(c, validation.Errorf("threshold must be a whole number of days"))
		}
		threshold = n
	}

	alerts, err := h.service.LowStockAlerts(c.UserContext(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LowStockResponse{Alerts: alerts, ThresholdDays: threshold})
}
