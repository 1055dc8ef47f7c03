package session

import (
	"context"
	"sync"

	"dietdiary-backend/internal/meal/domain"
)

// FetchFunc loads a meal list, e.g. client.ListMeals or a TodayMeals closure.
type FetchFunc func(ctx context.Context) ([]*domain.Meal, error)

// MealFeed is the in-memory meal list behind a screen. Refresh replaces the
// list wholesale; overlapping refreshes are not de-duplicated, so whichever
// completes last wins.
type MealFeed struct {
	fetch FetchFunc

	mu     sync.RWMutex
	meals  []*domain.Meal
	loaded bool
}

func NewMealFeed(fetch FetchFunc) *MealFeed {
	return &MealFeed{fetch: fetch, meals: []*domain.Meal{}}
}

// Refresh fetches and stores a new list. On failure the previous list is
// kept; before the first success that is the empty list.
func (f *MealFeed) Refresh(ctx context.Context) error {
	meals, err := f.fetch(ctx)
	if err != nil {
		return err
	}
	if meals == nil {
		meals = []*domain.Meal{}
	}

	f.mu.Lock()
	f.meals = meals
	f.loaded = true
	f.mu.Unlock()
	return nil
}

// Meals returns a copy of the current list.
func (f *MealFeed) Meals() []*domain.Meal {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*domain.Meal, len(f.meals))
	copy(out, f.meals)
	return out
}

// Loaded reports whether any refresh has succeeded.
func (f *MealFeed) Loaded() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loaded
}
