package services

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/lowstock"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
)

// NotificationService derives low-stock alerts from the stored pets and the
// food packages they eat from. Nothing is persisted.
type NotificationService struct {
	pets repository.PetRepository
}

func NewNotificationService(pets repository.PetRepository) *NotificationService {
	return &NotificationService{pets: pets}
}

// LowStockAlerts returns one alert per pet whose open food lasts at most
// thresholdDays more days, in pet creation order. Pets without a food or
// with a closed one are skipped.
func (s *NotificationService) LowStockAlerts(ctx context.Context, thresholdDays int) ([]dto.Alert, error) {
	if thresholdDays < 0 {
		return nil, validation.Errorf("threshold must not be negative")
	}

	pets, err := s.pets.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	alerts := make([]dto.Alert, 0)
	for _, pet := range pets {
		if pet.Food == nil || !pet.Food.IsOpen {
			continue
		}
		days := lowstock.DaysRemaining(pet.Food.Weight, pet.GramsPerMeal, pet.MealsPerDay)
		if !lowstock.ShouldNotify(days, thresholdDays) {
			continue
		}
		alerts = append(alerts, dto.Alert{
			PetID:         pet.ID,
			PetName:       pet.Name,
			DaysRemaining: days,
			Message:       lowstock.Message(pet.Name, days),
		})
	}
	return alerts, nil
}
