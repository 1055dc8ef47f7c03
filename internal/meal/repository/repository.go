package repository

import (
	"context"
	"time"

	"dietdiary-backend/internal/meal/domain"
)

// MealRepository defines the interface for meal data access.
// List methods return meals ordered by date, most recent first.
type MealRepository interface {
	// Create assigns an ID and creation time and stores the meal
	Create(ctx context.Context, meal *domain.Meal) error

	// FindByID returns nil, nil when the meal does not exist
	FindByID(ctx context.Context, id string) (*domain.Meal, error)

	// FindByUserID returns every meal owned by userID
	FindByUserID(ctx context.Context, userID string) ([]*domain.Meal, error)

	// FindByUserIDBetween returns meals owned by userID with from <= date < to
	FindByUserIDBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Meal, error)

	// Update persists the name and date of an existing meal
	Update(ctx context.Context, meal *domain.Meal) error

	// Delete removes a meal by ID
	Delete(ctx context.Context, id string) error
}
