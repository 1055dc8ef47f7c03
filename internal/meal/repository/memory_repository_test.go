package repository

import (
	"context"
	"testing"
	"time"

	"dietdiary-backend/internal/meal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMealRepository_Between(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMealRepository()
	day := time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)

	add := func(user, name string, date time.Time) *domain.Meal {
		m := &domain.Meal{UserID: user, Name: name, Tag: domain.TagSnack, Date: date}
		require.NoError(t, repo.Create(ctx, m))
		return m
	}
	add("u-1", "before", day.Add(-time.Nanosecond))
	start := add("u-1", "midnight", day)
	late := add("u-1", "late", day.Add(23*time.Hour))
	add("u-1", "next day", day.AddDate(0, 0, 1))
	add("u-2", "someone else", day.Add(time.Hour))

	meals, err := repo.FindByUserIDBetween(ctx, "u-1", day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, late.ID, meals[0].ID)
	assert.Equal(t, start.ID, meals[1].ID)

	all, err := repo.FindByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.After(all[i-1].Date), "meals must be date descending")
	}
}

func TestMemoryMealRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMealRepository()

	meal := &domain.Meal{UserID: "u-1", Name: "Toast", Tag: domain.TagBreakfast, Note: "buttered", Date: time.Now()}
	require.NoError(t, repo.Create(ctx, meal))

	changed := *meal
	changed.Name = "Bagel"
	changed.Tag = domain.TagCheat
	changed.UserID = "u-2"
	require.NoError(t, repo.Update(ctx, &changed))

	stored, err := repo.FindByID(ctx, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bagel", stored.Name)
	assert.Equal(t, domain.TagBreakfast, stored.Tag, "tag is not updatable")
	assert.Equal(t, "u-1", stored.UserID, "owner is immutable")
	assert.Equal(t, "buttered", stored.Note)

	require.NoError(t, repo.Delete(ctx, meal.ID))
	gone, err := repo.FindByID(ctx, meal.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
