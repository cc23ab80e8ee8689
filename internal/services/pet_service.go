package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
	"github.com/google/uuid"
)

type PetService struct {
	pets      repository.PetRepository
	validator *validation.Validator
	now       func() time.Time
}

func NewPetService(pets repository.PetRepository, v *validation.Validator) *PetService {
	return &PetService{
		pets:      pets,
		validator: v,
		now:       time.Now,
	}
}

// Create stores a pet. The food reference is not checked against the food
// store; reads resolve a missing food to none.
func (s *PetService) Create(ctx context.Context, req *dto.CreatePetRequest) (*models.Pet, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return nil, validation.Errorf("foodId must be a valid id")
	}

	now := s.now()
	pet := models.Pet{
		ID:           uuid.New(),
		Name:         req.Name,
		Age:          *req.Age,
		Allergies:    nonNil(req.Allergies),
		GramsPerMeal: *req.GramsPerMeal,
		MealsPerDay:  *req.MealsPerDay,
		FoodID:       foodID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.pets.Create(ctx, &pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return &pet, nil
}

func (s *PetService) Get(ctx context.Context, id uuid.UUID, withFood bool) (*models.Pet, error) {
	pet, err := s.pets.GetByID(ctx, id, withFood)
	if err != nil {
		return nil, petErr(err)
	}
	return pet, nil
}

func (s *PetService) List(ctx context.Context, withFood bool) ([]models.Pet, error) {
	pets, err := s.pets.List(ctx, withFood)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

func (s *PetService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRequest) (*models.Pet, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	pet, err := s.pets.GetByID(ctx, id, false)
	if err != nil {
		return nil, petErr(err)
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Allergies != nil {
		pet.Allergies = req.Allergies
	}
	if req.GramsPerMeal != nil {
		pet.GramsPerMeal = *req.GramsPerMeal
	}
	if req.MealsPerDay != nil {
		pet.MealsPerDay = *req.MealsPerDay
	}
	if req.FoodID != nil {
		foodID, err := uuid.Parse(*req.FoodID)
		if err != nil {
			return nil, validation.Errorf("foodId must be a valid id")
		}
		pet.FoodID = foodID
	}
	pet.UpdatedAt = s.now()

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, petErr(err)
	}
	return s.Get(ctx, id, true)
}

func (s *PetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.pets.Delete(ctx, id); err != nil {
		return petErr(err)
	}
	return nil
}

func petErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPetNotFound
	}
	return fmt.Errorf("pet store: %w", err)
}
