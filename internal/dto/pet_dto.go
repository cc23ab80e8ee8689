package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/google/uuid"
)

type CreatePetRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Age          *float64 `json:"age" validate:"required,gte=0"`
	Allergies    []string `json:"allergies" validate:"omitempty,dive,required"`
	GramsPerMeal *float64 `json:"gramsPerMeal" validate:"required,gt=0"`
	MealsPerDay  *int     `json:"mealsPerDay" validate:"required,gt=0"`
	FoodID       string   `json:"foodId" validate:"required,uuid"`
}

// UpdatePetRequest is a partial update: nil fields keep their stored value.
type UpdatePetRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Age          *float64 `json:"age" validate:"omitempty,gte=0"`
	Allergies    []string `json:"allergies" validate:"omitempty,dive,required"`
	GramsPerMeal *float64 `json:"gramsPerMeal" validate:"omitempty,gt=0"`
	MealsPerDay  *int     `json:"mealsPerDay" validate:"omitempty,gt=0"`
	FoodID       *string  `json:"foodId" validate:"omitempty,uuid"`
}

type PetResponse struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Age          float64       `json:"age"`
	Allergies    []string      `json:"allergies"`
	GramsPerMeal float64       `json:"gramsPerMeal"`
	MealsPerDay  int           `json:"mealsPerDay"`
	FoodID       uuid.UUID     `json:"foodId"`
	Food         *FoodResponse `json:"food,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}

func NewPetResponse(p *models.Pet) PetResponse {
	resp := PetResponse{
		ID:           p.ID,
		Name:         p.Name,
		Age:          p.Age,
		Allergies:    nonNil(p.Allergies),
		GramsPerMeal: p.GramsPerMeal,
		MealsPerDay:  p.MealsPerDay,
		FoodID:       p.FoodID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Food != nil {
		food := NewFoodResponse(p.Food)
		resp.Food = &food
	}
	return resp
}

func NewPetListResponse(pets []models.Pet) PetListResponse {
	out := make([]PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, NewPetResponse(&pets[i]))
	}
	return PetListResponse{Pets: out, Total: len(out)}
}
