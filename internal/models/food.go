package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Food is a single package of pet food. IsOpen and OpenedAt always move
// together: OpenedAt is set exactly when IsOpen is true.
type Food struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string                      `gorm:"not null;size:255" json:"name"`
	Brand          string                      `gorm:"not null;size:255" json:"brand"`
	Specifications datatypes.JSONSlice[string] `json:"specifications"`
	Weight         float64                     `gorm:"not null" json:"weight"`
	BuyLinks       datatypes.JSONSlice[string] `json:"buyLinks"`
	IsOpen         bool                        `gorm:"not null;default:false" json:"isOpen"`
	OpenedAt       *time.Time                  `json:"openedAt"`
	CreatedAt      time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}
