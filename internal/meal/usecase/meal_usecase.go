package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"dietdiary-backend/internal/meal/domain"
	"dietdiary-backend/internal/meal/dto"
	"dietdiary-backend/internal/meal/repository"
	"dietdiary-backend/pkg/apperror"
)

const (
	MsgMissingName  = "Please provide a meal name"
	MsgMissingTag   = "Please add a meal tag"
	MsgInvalidDate  = "Please provide a valid date"
	MsgMealNotFound = "Meal not found"
)

const (
	ActionAccess = "access"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// mealUsecase implements MealUsecase interface
type mealUsecase struct {
	mealRepo repository.MealRepository
	now      func() time.Time
}

type Option func(*mealUsecase)

// WithClock replaces time.Now as the default meal date source.
func WithClock(now func() time.Time) Option {
	return func(u *mealUsecase) {
		u.now = now
	}
}

// NewMealUsecase creates a new instance of mealUsecase
func NewMealUsecase(mealRepo repository.MealRepository, opts ...Option) MealUsecase {
	u := &mealUsecase{
		mealRepo: mealRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *mealUsecase) AddMeal(ctx context.Context, userID string, req *dto.AddMealRequest) (*domain.Meal, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation(MsgMissingName)
	}
	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		return nil, apperror.Validation(MsgMissingTag)
	}

	date := u.now()
	if req.Date != nil && *req.Date != "" {
		parsed, err := domain.ParseDate(*req.Date)
		if err != nil {
			return nil, apperror.Validation(MsgInvalidDate)
		}
		date = parsed
	}

	meal := &domain.Meal{
		UserID: userID,
		Name:   name,
		Tag:    domain.Tag(tag),
		Note:   strings.TrimSpace(req.Note),
		Date:   date,
	}
	if err := u.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}

	if !meal.Tag.Known() {
		log.Printf("[Meal] Meal %s stored with unrecognised tag %q", meal.ID, meal.Tag)
	}
	return meal, nil
}

func (u *mealUsecase) ListMeals(ctx context.Context, userID string) ([]*domain.Meal, error) {
	return u.mealRepo.FindByUserID(ctx, userID)
}

func (u *mealUsecase) ListMealsByDate(ctx context.Context, userID, date string) ([]*domain.Meal, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, apperror.Validation(MsgInvalidDate)
	}
	from, to := domain.DayWindow(day)
	return u.mealRepo.FindByUserIDBetween(ctx, userID, from, to)
}

func (u *mealUsecase) GetMeal(ctx context.Context, userID, mealID string) (*domain.Meal, error) {
	return u.RequireOwnedMeal(ctx, mealID, userID, ActionAccess)
}

func (u *mealUsecase) UpdateMeal(ctx context.Context, userID, mealID string, req *dto.UpdateMealRequest) (*domain.Meal, error) {
	meal, err := u.RequireOwnedMeal(ctx, mealID, userID, ActionUpdate)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation(MsgMissingName)
		}
		meal.Name = name
	}
	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			return nil, apperror.Validation(MsgInvalidDate)
		}
		meal.Date = date
	}

	if err := u.mealRepo.Update(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (u *mealUsecase) DeleteMeal(ctx context.Context, userID, mealID string) error {
	meal, err := u.RequireOwnedMeal(ctx, mealID, userID, ActionDelete)
	if err != nil {
		return err
	}
	if err := u.mealRepo.Delete(ctx, meal.ID); err != nil {
		return err
	}
	log.Printf("[Meal] Deleted meal %s for user %s", meal.ID, userID)
	return nil
}

func (u *mealUsecase) RequireOwnedMeal(ctx context.Context, mealID, requesterID, action string) (*domain.Meal, error) {
	meal, err := u.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, apperror.NotFound(MsgMealNotFound)
	}
	if meal.UserID != requesterID {
		log.Printf("[Meal] User %s denied %s on meal %s", requesterID, action, mealID)
		return nil, apperror.Forbidden(fmt.Sprintf("Not authorized to %s this meal", action))
	}
	return meal, nil
}
