// Package lowstock turns a food package's remaining weight and a pet's
// feeding schedule into the number of whole days of food left.
package lowstock

import (
	"fmt"
	"math"
)

// DaysRemaining returns floor(weight / (gramsPerMeal * mealsPerDay)). A
// non-positive consumption rate is treated as unknown and yields 0. The
// result is never negative.
func DaysRemaining(weightGrams, gramsPerMeal float64, mealsPerDay int) int {
	if gramsPerMeal <= 0 || mealsPerDay <= 0 {
		return 0
	}
	days := math.Floor(weightGrams / (gramsPerMeal * float64(mealsPerDay)))
	if days <= 0 || math.IsNaN(days) {
		return 0
	}
	if days >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(days)
}

// ShouldNotify reports whether daysRemaining is at or below the threshold.
func ShouldNotify(daysRemaining, thresholdDays int) bool {
	return daysRemaining <= thresholdDays
}

// Message renders the alert text shown to the owner.
func Message(petName string, daysRemaining int) string {
	unit := "days"
	if daysRemaining == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%s has only %d %s of food left.", petName, daysRemaining, unit)
}
