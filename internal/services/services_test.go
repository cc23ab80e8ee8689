package services

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository/memory"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/security"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// fixture wires every service to one in-memory store and a controllable clock.
type fixture struct {
	store  *repository.Store
	clock  time.Time
	auth   *AuthService
	foods  *FoodService
	pets   *PetService
	alerts *NotificationService
}

func newFixture() *fixture {
	f := &fixture{
		store: memory.NewStore(),
		clock: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	now := func() time.Time { return f.clock }
	v := validation.New()

	tokens := security.NewTokenIssuer("test-secret", time.Hour).WithClock(now)
	f.auth = NewAuthService(f.store.Users, security.NewBcryptHasher(bcrypt.MinCost), tokens, v)
	f.auth.now = now
	f.foods = NewFoodService(f.store.Foods, v, "https://shop.test/s?k=")
	f.foods.now = now
	f.pets = NewPetService(f.store.Pets, v)
	f.pets.now = now
	f.alerts = NewNotificationService(f.store.Pets)
	return f
}

func (f *fixture) tick(d time.Duration) { f.clock = f.clock.Add(d) }

func ptr[T any](v T) *T { return &v }
