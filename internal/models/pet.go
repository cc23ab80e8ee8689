package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Pet struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string                      `gorm:"not null;size:255" json:"name"`
	Age          float64                     `gorm:"not null" json:"age"`
	Allergies    datatypes.JSONSlice[string] `json:"allergies"`
	GramsPerMeal float64                     `gorm:"not null" json:"gramsPerMeal"`
	MealsPerDay  int                         `gorm:"not null" json:"mealsPerDay"`
	FoodID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"foodId"`
	// Food is populated on reads that resolve the reference. It stays nil when
	// the referenced food no longer exists.
	Food      *Food     `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
