package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/google/uuid"
)

type CreateFoodRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Brand          string   `json:"brand" validate:"required,max=255"`
	Specifications []string `json:"specifications" validate:"omitempty,dive,required"`
	Weight         *float64 `json:"weight" validate:"required,gt=0"`
	BuyLinks       []string `json:"buyLinks" validate:"omitempty,dive,url"`
}

// UpdateFoodRequest is a partial update: nil fields keep their stored value.
// Open state is not part of it; use the toggle endpoint.
type UpdateFoodRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Brand          *string  `json:"brand" validate:"omitempty,min=1,max=255"`
	Specifications []string `json:"specifications" validate:"omitempty,dive,required"`
	Weight         *float64 `json:"weight" validate:"omitempty,gt=0"`
	BuyLinks       []string `json:"buyLinks" validate:"omitempty,dive,url"`
}

type FoodResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Brand          string     `json:"brand"`
	Specifications []string   `json:"specifications"`
	Weight         float64    `json:"weight"`
	BuyLinks       []string   `json:"buyLinks"`
	IsOpen         bool       `json:"isOpen"`
	OpenedAt       *time.Time `json:"openedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type FoodListResponse struct {
	Foods []FoodResponse `json:"foods"`
	Total int            `json:"total"`
}

func NewFoodResponse(f *models.Food) FoodResponse {
	return FoodResponse{
		ID:             f.ID,
		Name:           f.Name,
		Brand:          f.Brand,
		Specifications: nonNil(f.Specifications),
		Weight:         f.Weight,
		BuyLinks:       nonNil(f.BuyLinks),
		IsOpen:         f.IsOpen,
		OpenedAt:       f.OpenedAt,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func NewFoodListResponse(foods []models.Food) FoodListResponse {
	out := make([]FoodResponse, 0, len(foods))
	for i := range foods {
		out = append(out, NewFoodResponse(&foods[i]))
	}
	return FoodListResponse{Foods: out, Total: len(out)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
