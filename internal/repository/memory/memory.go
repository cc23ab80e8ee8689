// Package memory keeps all records in process memory. It backs the memory
// driver for local development and the service and router tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/google/uuid"
)

// db is shared by the three repositories so pets can resolve their food.
type db struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
	foods map[uuid.UUID]models.Food
	pets  map[uuid.UUID]models.Pet
}

func NewStore() *repository.Store {
	d := &db{
		users: make(map[uuid.UUID]models.User),
		foods: make(map[uuid.UUID]models.Food),
		pets:  make(map[uuid.UUID]models.Pet),
	}
	return repository.NewStore("memory", &userRepo{d}, &foodRepo{d}, &petRepo{d}, nil, nil)
}

type userRepo struct{ *db }

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return repository.ErrDuplicate
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type foodRepo struct{ *db }

func (r *foodRepo) Create(_ context.Context, food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.foods[food.ID]; exists {
		return repository.ErrDuplicate
	}
	r.foods[food.ID] = cloneFood(*food)
	return nil
}

func (r *foodRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.foods[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	f = cloneFood(f)
	return &f, nil
}

func (r *foodRepo) List(_ context.Context) ([]models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Food, 0, len(r.foods))
	for _, f := range r.foods {
		out = append(out, cloneFood(f))
	}
	sort.Slice(out, func(i, j int) bool {
		return createdBefore(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

func (r *foodRepo) Update(_ context.Context, food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.foods[food.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = food.Name
	stored.Brand = food.Brand
	stored.Specifications = append([]string(nil), food.Specifications...)
	stored.Weight = food.Weight
	stored.BuyLinks = append([]string(nil), food.BuyLinks...)
	stored.UpdatedAt = food.UpdatedAt
	r.foods[food.ID] = stored
	return nil
}

func (r *foodRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.foods, id)
	return nil
}

func (r *foodRepo) ToggleOpen(_ context.Context, id uuid.UUID, now time.Time) (*models.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.foods[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	f.IsOpen = !f.IsOpen
	if f.IsOpen {
		t := now
		f.OpenedAt = &t
	} else {
		f.OpenedAt = nil
	}
	f.UpdatedAt = now
	r.foods[id] = f

	out := cloneFood(f)
	return &out, nil
}

type petRepo struct{ *db }

func (r *petRepo) Create(_ context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pets[pet.ID]; exists {
		return repository.ErrDuplicate
	}
	p := *pet
	p.Food = nil
	p.Allergies = append([]string(nil), pet.Allergies...)
	r.pets[pet.ID] = p
	return nil
}

func (r *petRepo) GetByID(_ context.Context, id uuid.UUID, withFood bool) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p = r.resolve(p, withFood)
	return &p, nil
}

func (r *petRepo) List(_ context.Context, withFood bool) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		out = append(out, r.resolve(p, withFood))
	}
	sort.Slice(out, func(i, j int) bool {
		return createdBefore(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

func (r *petRepo) Update(_ context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.pets[pet.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = pet.Name
	stored.Age = pet.Age
	stored.Allergies = append([]string(nil), pet.Allergies...)
	stored.GramsPerMeal = pet.GramsPerMeal
	stored.MealsPerDay = pet.MealsPerDay
	stored.FoodID = pet.FoodID
	stored.UpdatedAt = pet.UpdatedAt
	r.pets[pet.ID] = stored
	return nil
}

func (r *petRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

// resolve must be called with the read lock held.
func (r *petRepo) resolve(p models.Pet, withFood bool) models.Pet {
	p.Allergies = append([]string(nil), p.Allergies...)
	p.Food = nil
	if !withFood {
		return p
	}
	if f, ok := r.foods[p.FoodID]; ok {
		f = cloneFood(f)
		p.Food = &f
	}
	return p
}

func cloneFood(f models.Food) models.Food {
	f.Specifications = append([]string(nil), f.Specifications...)
	f.BuyLinks = append([]string(nil), f.BuyLinks...)
	if f.OpenedAt != nil {
		t := *f.OpenedAt
		f.OpenedAt = &t
	}
	return f
}

func createdBefore(a time.Time, aID uuid.UUID, b time.Time, bID uuid.UUID) bool {
	if !a.Equal(b) {
		return a.Before(b)
	}
	return aID.String() < bID.String()
}
