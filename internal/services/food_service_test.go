package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodCreate_DefaultsBuyLink(t *testing.T) {
	f := newFixture()

	food, err := f.foods.Create(context.Background(), &dto.CreateFoodRequest{
		Name:   "Chicken & Rice",
		Brand:  "Acme",
		Weight: ptr(2000.0),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://shop.test/s?k=Chicken+%26+Rice"}, []string(food.BuyLinks))
	assert.Empty(t, food.Specifications)
	assert.False(t, food.IsOpen)
	assert.Nil(t, food.OpenedAt)
}

func TestFoodCreate_KeepsGivenBuyLinks(t *testing.T) {
	f := newFixture()

	food, err := f.foods.Create(context.Background(), &dto.CreateFoodRequest{
		Name:     "Salmon",
		Brand:    "Acme",
		Weight:   ptr(500.0),
		BuyLinks: []string{"https://example.com/salmon"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/salmon"}, []string(food.BuyLinks))
}

func TestFoodCreate_RejectsNonPositiveWeight(t *testing.T) {
	f := newFixture()

	for _, w := range []*float64{nil, ptr(0.0), ptr(-1.0)} {
		_, err := f.foods.Create(context.Background(), &dto.CreateFoodRequest{Name: "x", Brand: "y", Weight: w})
		var verr *validation.Error
		assert.True(t, errors.As(err, &verr))
	}
}

func TestFoodUpdate_PartialAndBuyLinkReset(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	food, err := f.foods.Create(ctx, &dto.CreateFoodRequest{
		Name:     "Salmon",
		Brand:    "Acme",
		Weight:   ptr(500.0),
		BuyLinks: []string{"https://example.com/salmon"},
	})
	require.NoError(t, err)

	updated, err := f.foods.Update(ctx, food.ID, &dto.UpdateFoodRequest{Weight: ptr(250.0)})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Weight)
	assert.Equal(t, "Salmon", updated.Name)
	assert.Equal(t, []string{"https://example.com/salmon"}, []string(updated.BuyLinks))

	updated, err = f.foods.Update(ctx, food.ID, &dto.UpdateFoodRequest{Name: ptr("Tuna"), BuyLinks: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://shop.test/s?k=Tuna"}, []string(updated.BuyLinks))

	_, err = f.foods.Update(ctx, uuid.New(), &dto.UpdateFoodRequest{Weight: ptr(1.0)})
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestFoodUpdate_DoesNotTouchOpenState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	food, err := f.foods.Create(ctx, &dto.CreateFoodRequest{Name: "Salmon", Brand: "Acme", Weight: ptr(500.0)})
	require.NoError(t, err)
	opened, err := f.foods.ToggleOpen(ctx, food.ID)
	require.NoError(t, err)

	f.tick(time.Hour)
	updated, err := f.foods.Update(ctx, food.ID, &dto.UpdateFoodRequest{Brand: ptr("Other")})
	require.NoError(t, err)

	stored, err := f.foods.Get(ctx, food.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsOpen)
	require.NotNil(t, stored.OpenedAt)
	assert.True(t, opened.OpenedAt.Equal(*stored.OpenedAt))
	assert.Equal(t, "Other", updated.Brand)
}

func TestFoodToggleOpen_RoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	food, err := f.foods.Create(ctx, &dto.CreateFoodRequest{Name: "Salmon", Brand: "Acme", Weight: ptr(500.0)})
	require.NoError(t, err)

	opened, err := f.foods.ToggleOpen(ctx, food.ID)
	require.NoError(t, err)
	assert.True(t, opened.IsOpen)
	require.NotNil(t, opened.OpenedAt)
	assert.True(t, f.clock.Equal(*opened.OpenedAt))

	closed, err := f.foods.ToggleOpen(ctx, food.ID)
	require.NoError(t, err)
	assert.False(t, closed.IsOpen)
	assert.Nil(t, closed.OpenedAt)

	_, err = f.foods.ToggleOpen(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestFoodToggleOpen_ConcurrentTogglesKeepInvariant(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	food, err := f.foods.Create(ctx, &dto.CreateFoodRequest{Name: "Salmon", Brand: "Acme", Weight: ptr(500.0)})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.foods.ToggleOpen(ctx, food.ID)
			if assert.NoError(t, err) {
				assert.Equal(t, got.IsOpen, got.OpenedAt != nil)
			}
		}()
	}
	wg.Wait()

	stored, err := f.foods.Get(ctx, food.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsOpen, "an even number of toggles ends closed")
	assert.Nil(t, stored.OpenedAt)
}

func TestFoodDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	food, err := f.foods.Create(ctx, &dto.CreateFoodRequest{Name: "Salmon", Brand: "Acme", Weight: ptr(500.0)})
	require.NoError(t, err)

	require.NoError(t, f.foods.Delete(ctx, food.ID))
	assert.ErrorIs(t, f.foods.Delete(ctx, food.ID), ErrFoodNotFound)
	_, err = f.foods.Get(ctx, food.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
