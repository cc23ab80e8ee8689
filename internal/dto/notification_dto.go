package dto

import "github.com/google/uuid"

// Alert warns that a pet's open food package runs out within the threshold.
type Alert struct {
	PetID         uuid.UUID `json:"petId"`
	PetName       string    `json:"petName"`
	DaysRemaining int       `json:"daysRemaining"`
	Message       string    `json:"message"`
}

type LowStockResponse struct {
	Alerts        []Alert `json:"alerts"`
	ThresholdDays int     `json:"thresholdDays"`
}
