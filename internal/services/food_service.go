package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
	"github.com/google/uuid"
)

type FoodService struct {
	foods       repository.FoodRepository
	validator   *validation.Validator
	buyLinkBase string
	now         func() time.Time
}

// NewFoodService builds default buy links by appending the escaped food
// name to buyLinkBase.
func NewFoodService(foods repository.FoodRepository, v *validation.Validator, buyLinkBase string) *FoodService {
	return &FoodService{
		foods:       foods,
		validator:   v,
		buyLinkBase: buyLinkBase,
		now:         time.Now,
	}
}

func (s *FoodService) Create(ctx context.Context, req *dto.CreateFoodRequest) (*models.Food, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	now := s.now()
	food := models.Food{
		ID:             uuid.New(),
		Name:           req.Name,
		Brand:          req.Brand,
		Specifications: nonNil(req.Specifications),
		Weight:         *req.Weight,
		BuyLinks:       req.BuyLinks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if len(food.BuyLinks) == 0 {
		food.BuyLinks = s.defaultBuyLinks(food.Name)
	}

	if err := s.foods.Create(ctx, &food); err != nil {
		return nil, fmt.Errorf("failed to create food: %w", err)
	}
	return &food, nil
}

func (s *FoodService) Get(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return nil, foodErr(err)
	}
	return food, nil
}

func (s *FoodService) List(ctx context.Context) ([]models.Food, error) {
	foods, err := s.foods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

// Update applies the non-nil fields of req. Sending an empty buyLinks list
// restores the generated default link.
func (s *FoodService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFoodRequest) (*models.Food, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return nil, foodErr(err)
	}

	if req.Name != nil {
		food.Name = *req.Name
	}
	if req.Brand != nil {
		food.Brand = *req.Brand
	}
	if req.Specifications != nil {
		food.Specifications = req.Specifications
	}
	if req.Weight != nil {
		food.Weight = *req.Weight
	}
	if req.BuyLinks != nil {
		food.BuyLinks = req.BuyLinks
		if len(req.BuyLinks) == 0 {
			food.BuyLinks = s.defaultBuyLinks(food.Name)
		}
	}
	food.UpdatedAt = s.now()

	if err := s.foods.Update(ctx, food); err != nil {
		return nil, foodErr(err)
	}
	return food, nil
}

func (s *FoodService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.foods.Delete(ctx, id); err != nil {
		return foodErr(err)
	}
	return nil
}

// ToggleOpen opens a closed package or closes an open one.
func (s *FoodService) ToggleOpen(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	food, err := s.foods.ToggleOpen(ctx, id, s.now().UTC())
	if err != nil {
		return nil, foodErr(err)
	}
	return food, nil
}

func (s *FoodService) defaultBuyLinks(name string) []string {
	return []string{s.buyLinkBase + url.QueryEscape(name)}
}

func foodErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFoodNotFound
	}
	return fmt.Errorf("food store: %w", err)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
