package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"dietdiary-backend/internal/meal/domain"

	"github.com/google/uuid"
)

// memoryMealRepository keeps meals in process memory. Used by STORE_DRIVER=memory and tests.
type memoryMealRepository struct {
	mu    sync.RWMutex
	meals map[string]domain.Meal
}

func NewMemoryMealRepository() MealRepository {
	return &memoryMealRepository{meals: make(map[string]domain.Meal)}
}

func (r *memoryMealRepository) Create(_ context.Context, meal *domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	meal.CreatedAt = time.Now()
	r.meals[meal.ID] = *meal
	return nil
}

func (r *memoryMealRepository) FindByID(_ context.Context, id string) (*domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meal, ok := r.meals[id]
	if !ok {
		return nil, nil
	}
	return &meal, nil
}

func (r *memoryMealRepository) FindByUserID(_ context.Context, userID string) ([]*domain.Meal, error) {
	return r.filter(func(m *domain.Meal) bool { return m.UserID == userID }), nil
}

func (r *memoryMealRepository) FindByUserIDBetween(_ context.Context, userID string, from, to time.Time) ([]*domain.Meal, error) {
	return r.filter(func(m *domain.Meal) bool {
		return m.UserID == userID && !m.Date.Before(from) && m.Date.Before(to)
	}), nil
}

func (r *memoryMealRepository) Update(_ context.Context, meal *domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.meals[meal.ID]
	if !ok {
		return nil
	}
	stored.Name = meal.Name
	stored.Date = meal.Date
	r.meals[meal.ID] = stored
	return nil
}

func (r *memoryMealRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.meals, id)
	return nil
}

func (r *memoryMealRepository) filter(keep func(*domain.Meal) bool) []*domain.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meals := []*domain.Meal{}
	for _, m := range r.meals {
		m := m
		if keep(&m) {
			meals = append(meals, &m)
		}
	}
	sort.Slice(meals, func(i, j int) bool {
		if meals[i].Date.Equal(meals[j].Date) {
			return meals[i].CreatedAt.After(meals[j].CreatedAt)
		}
		return meals[i].Date.After(meals[j].Date)
	})
	return meals
}
