package repository

import (
	"context"
	"errors"
	"time"

	"dietdiary-backend/internal/meal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMealRepository implements MealRepository using GORM
type gormMealRepository struct {
	db *gorm.DB
}

// NewGormMealRepository creates a new GORM-based MealRepository
func NewGormMealRepository(db *gorm.DB) MealRepository {
	return &gormMealRepository{db: db}
}

func (r *gormMealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	meal.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *gormMealRepository) FindByID(ctx context.Context, id string) (*domain.Meal, error) {
	var meal domain.Meal
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *gormMealRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Meal, error) {
	meals := []*domain.Meal{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (r *gormMealRepository) FindByUserIDBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Meal, error) {
	meals := []*domain.Meal{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (r *gormMealRepository) Update(ctx context.Context, meal *domain.Meal) error {
	return r.db.WithContext(ctx).Model(meal).Select("name", "date").Updates(meal).Error
}

func (r *gormMealRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Meal{}, "id = ?", id).Error
}
