package mongorepo

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/google/uuid"
)

// Documents keep ids as canonical UUID strings so they read the same as the
// SQL backends and the JSON API.

type userDoc struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type foodDoc struct {
	ID             string     `bson:"_id"`
	Name           string     `bson:"name"`
	Brand          string     `bson:"brand"`
	Specifications []string   `bson:"specifications"`
	Weight         float64    `bson:"weight"`
	BuyLinks       []string   `bson:"buyLinks"`
	IsOpen         bool       `bson:"isOpen"`
	OpenedAt       *time.Time `bson:"openedAt"`
	CreatedAt      time.Time  `bson:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt"`
}

type petDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Age          float64   `bson:"age"`
	Allergies    []string  `bson:"allergies"`
	GramsPerMeal float64   `bson:"gramsPerMeal"`
	MealsPerDay  int       `bson:"mealsPerDay"`
	FoodID       string    `bson:"foodId"`
	Food         *foodDoc  `bson:"food,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func fromUser(u *models.User) userDoc {
	return userDoc{
		ID:        u.ID.String(),
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) model() (*models.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:        id,
		Email:     d.Email,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func fromFood(f *models.Food) foodDoc {
	return foodDoc{
		ID:             f.ID.String(),
		Name:           f.Name,
		Brand:          f.Brand,
		Specifications: orEmpty(f.Specifications),
		Weight:         f.Weight,
		BuyLinks:       orEmpty(f.BuyLinks),
		IsOpen:         f.IsOpen,
		OpenedAt:       f.OpenedAt,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func (d foodDoc) model() (*models.Food, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &models.Food{
		ID:             id,
		Name:           d.Name,
		Brand:          d.Brand,
		Specifications: orEmpty(d.Specifications),
		Weight:         d.Weight,
		BuyLinks:       orEmpty(d.BuyLinks),
		IsOpen:         d.IsOpen,
		OpenedAt:       d.OpenedAt,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

func fromPet(p *models.Pet) petDoc {
	return petDoc{
		ID:           p.ID.String(),
		Name:         p.Name,
		Age:          p.Age,
		Allergies:    orEmpty(p.Allergies),
		GramsPerMeal: p.GramsPerMeal,
		MealsPerDay:  p.MealsPerDay,
		FoodID:       p.FoodID.String(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d petDoc) model() (*models.Pet, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	foodID, err := uuid.Parse(d.FoodID)
	if err != nil {
		return nil, err
	}
	pet := &models.Pet{
		ID:           id,
		Name:         d.Name,
		Age:          d.Age,
		Allergies:    orEmpty(d.Allergies),
		GramsPerMeal: d.GramsPerMeal,
		MealsPerDay:  d.MealsPerDay,
		FoodID:       foodID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.Food != nil {
		if pet.Food, err = d.Food.model(); err != nil {
			return nil, err
		}
	}
	return pet, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
