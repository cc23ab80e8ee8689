package gormrepo

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type petRepo struct {
	db *gorm.DB
}

func NewPetRepo(db *gorm.DB) repository.PetRepository {
	return &petRepo{db: db}
}

func (r *petRepo) query(ctx context.Context, withFood bool) *gorm.DB {
	q := r.db.WithContext(ctx)
	if withFood {
		q = q.Preload("Food")
	}
	return q
}

func (r *petRepo) Create(ctx context.Context, pet *models.Pet) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(pet).Error)
}

func (r *petRepo) GetByID(ctx context.Context, id uuid.UUID, withFood bool) (*models.Pet, error) {
	var pet models.Pet
	if err := r.query(ctx, withFood).First(&pet, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &pet, nil
}

func (r *petRepo) List(ctx context.Context, withFood bool) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.query(ctx, withFood).Order("created_at ASC, id ASC").Find(&pets).Error
	return pets, translate(err)
}

func (r *petRepo) Update(ctx context.Context, pet *models.Pet) error {
	result := r.db.WithContext(ctx).Model(pet).
		Select("name", "age", "allergies", "grams_per_meal", "meals_per_day", "food_id", "updated_at").
		Omit(clause.Associations).
		Updates(pet)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Pet{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
