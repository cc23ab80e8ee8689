package mongorepo

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetDoc_ResolvedFood(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	food := &models.Food{ID: uuid.New(), Name: "Salmon", Weight: 800, IsOpen: true, OpenedAt: &now}
	pet := &models.Pet{ID: uuid.New(), Name: "Milo", GramsPerMeal: 40, MealsPerDay: 2, FoodID: food.ID}

	doc := fromPet(pet)
	assert.Equal(t, food.ID.String(), doc.FoodID)
	assert.Equal(t, []string{}, doc.Allergies)
	assert.Nil(t, doc.Food)

	fd := fromFood(food)
	doc.Food = &fd
	got, err := doc.model()
	require.NoError(t, err)
	require.NotNil(t, got.Food)
	assert.Equal(t, "Salmon", got.Food.Name)
	assert.True(t, got.Food.IsOpen)
	assert.Equal(t, []string{}, []string(got.Food.BuyLinks))
}

func TestPetDoc_RejectsMalformedIDs(t *testing.T) {
	_, err := petDoc{ID: uuid.NewString(), FoodID: "not-a-uuid"}.model()
	assert.Error(t, err)

	_, err = userDoc{ID: "nope"}.model()
	assert.Error(t, err)
}
