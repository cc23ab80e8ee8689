package gormrepo

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type foodRepo struct {
	db *gorm.DB
}

func NewFoodRepo(db *gorm.DB) repository.FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Create(ctx context.Context, food *models.Food) error {
	return translate(r.db.WithContext(ctx).Create(food).Error)
}

func (r *foodRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &food, nil
}

func (r *foodRepo) List(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&foods).Error
	return foods, translate(err)
}

func (r *foodRepo) Update(ctx context.Context, food *models.Food) error {
	result := r.db.WithContext(ctx).Model(food).
		Select("name", "brand", "specifications", "weight", "buy_links", "updated_at").
		Updates(food)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *foodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Food{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ToggleOpen locks the row, then writes the flipped state with plain values
// so is_open and opened_at always change together. SQLite ignores the lock
// clause; its single connection already serialises the transaction.
func (r *foodRepo) ToggleOpen(ctx context.Context, id uuid.UUID, now time.Time) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&food, "id = ?", id).Error; err != nil {
			return err
		}

		var openedAt *time.Time
		if !food.IsOpen {
			openedAt = &now
		}
		if err := tx.Model(&models.Food{}).Where("id = ?", id).Updates(map[string]interface{}{
			"is_open":    !food.IsOpen,
			"opened_at":  openedAt,
			"updated_at": now,
		}).Error; err != nil {
			return err
		}
		food = models.Food{}
		return tx.First(&food, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &food, nil
}
