// Package repository declares the storage contracts the services depend on.
// Implementations live in the gormrepo, mongorepo and memory subpackages.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	// Create returns ErrDuplicate when the email is already stored.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type FoodRepository interface {
	Create(ctx context.Context, food *models.Food) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error)
	List(ctx context.Context) ([]models.Food, error)
	// Update writes the descriptive fields of food. IsOpen and OpenedAt are
	// never written here.
	Update(ctx context.Context, food *models.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ToggleOpen flips IsOpen in a single atomic write, setting OpenedAt to
	// now when opening and clearing it when closing.
	ToggleOpen(ctx context.Context, id uuid.UUID, now time.Time) (*models.Food, error)
}

type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	// GetByID and List populate Pet.Food when withFood is set.
	GetByID(ctx context.Context, id uuid.UUID, withFood bool) (*models.Pet, error)
	// List returns pets ordered by creation time, then id.
	List(ctx context.Context, withFood bool) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store bundles the repositories of one backend together with its lifecycle.
type Store struct {
	Users UserRepository
	Foods FoodRepository
	Pets  PetRepository

	Driver string
	ping   func(ctx context.Context) error
	close  func(ctx context.Context) error
}

func NewStore(driver string, users UserRepository, foods FoodRepository, pets PetRepository,
	ping, closeFn func(ctx context.Context) error) *Store {
	return &Store{
		Users:  users,
		Foods:  foods,
		Pets:   pets,
		Driver: driver,
		ping:   ping,
		close:  closeFn,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
