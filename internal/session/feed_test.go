package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"dietdiary-backend/internal/meal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meals(names ...string) []*domain.Meal {
	out := make([]*domain.Meal, 0, len(names))
	for _, n := range names {
		out = append(out, &domain.Meal{ID: n, Name: n})
	}
	return out
}

func names(ms []*domain.Meal) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func TestMealFeed_InitialFailureLeavesEmptyList(t *testing.T) {
	feed := NewMealFeed(func(context.Context) ([]*domain.Meal, error) {
		return nil, errors.New("no response from server")
	})

	assert.Error(t, feed.Refresh(context.Background()))
	assert.False(t, feed.Loaded())
	assert.NotNil(t, feed.Meals())
	assert.Empty(t, feed.Meals())
}

func TestMealFeed_FailureKeepsPreviousList(t *testing.T) {
	calls := 0
	feed := NewMealFeed(func(context.Context) ([]*domain.Meal, error) {
		calls++
		if calls == 1 {
			return meals("Toast", "Salad"), nil
		}
		return nil, errors.New("Server Error")
	})

	require.NoError(t, feed.Refresh(context.Background()))
	assert.Error(t, feed.Refresh(context.Background()))

	assert.True(t, feed.Loaded())
	assert.Equal(t, []string{"Toast", "Salad"}, names(feed.Meals()))
}

func TestMealFeed_ReplacesWholesale(t *testing.T) {
	results := [][]*domain.Meal{meals("A", "B", "C"), meals("D")}
	feed := NewMealFeed(func(context.Context) ([]*domain.Meal, error) {
		r := results[0]
		results = results[1:]
		return r, nil
	})

	require.NoError(t, feed.Refresh(context.Background()))
	require.NoError(t, feed.Refresh(context.Background()))

	assert.Equal(t, []string{"D"}, names(feed.Meals()))
}

// A refresh started earlier but finishing later overwrites a newer result.
func TestMealFeed_OverlappingRefreshLastCompletionWins(t *testing.T) {
	releaseSlow := make(chan struct{})
	slowStarted := make(chan struct{})

	var mu sync.Mutex
	call := 0
	feed := NewMealFeed(func(context.Context) ([]*domain.Meal, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()

		if n == 1 {
			close(slowStarted)
			<-releaseSlow
			return meals("stale"), nil
		}
		return meals("fresh"), nil
	})

	done := make(chan error, 1)
	go func() { done <- feed.Refresh(context.Background()) }()
	<-slowStarted

	require.NoError(t, feed.Refresh(context.Background()))
	assert.Equal(t, []string{"fresh"}, names(feed.Meals()))

	close(releaseSlow)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"stale"}, names(feed.Meals()))
}
