package usecase

import (
	"context"

	"dietdiary-backend/internal/meal/domain"
	"dietdiary-backend/internal/meal/dto"
)

// MealUsecase defines the meal operations. Every method is scoped to the
// requesting user.
type MealUsecase interface {
	AddMeal(ctx context.Context, userID string, req *dto.AddMealRequest) (*domain.Meal, error)
	ListMeals(ctx context.Context, userID string) ([]*domain.Meal, error)
	// ListMealsByDate returns the meals on the calendar day named by date
	ListMealsByDate(ctx context.Context, userID, date string) ([]*domain.Meal, error)
	GetMeal(ctx context.Context, userID, mealID string) (*domain.Meal, error)
	UpdateMeal(ctx context.Context, userID, mealID string, req *dto.UpdateMealRequest) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID string) error

	// RequireOwnedMeal loads mealID and fails with NotFound if it does not
	// exist or Forbidden if requesterID does not own it. action names the
	// attempted operation in the Forbidden message.
	RequireOwnedMeal(ctx context.Context, mealID, requesterID, action string) (*domain.Meal, error)
}
