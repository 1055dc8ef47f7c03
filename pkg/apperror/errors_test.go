package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("Please provide a meal name"), http.StatusBadRequest},
		{"duplicate email", New(ErrDuplicateEmail, "User already exists"), http.StatusBadRequest},
		{"invalid credentials", New(ErrInvalidCredentials, "Invalid credentials"), http.StatusUnauthorized},
		{"unauthenticated", Unauthenticated("Not authorized to access this route"), http.StatusUnauthorized},
		{"forbidden", Forbidden("Not authorized to access this meal"), http.StatusForbidden},
		{"not found", NotFound("Meal not found"), http.StatusNotFound},
		{"wrapped kind", fmt.Errorf("handler: %w", NotFound("Meal not found")), http.StatusNotFound},
		{"bare sentinel", ErrNotFound, http.StatusNotFound},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Meal not found", Message(NotFound("Meal not found")))
	assert.Equal(t, "Meal not found", Message(fmt.Errorf("wrap: %w", NotFound("Meal not found"))))
	assert.Equal(t, InternalMessage, Message(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "forbidden", Message(ErrForbidden))
}

func TestErrorIs(t *testing.T) {
	err := Forbidden("Not authorized to delete this meal")

	assert.True(t, errors.Is(err, ErrForbidden))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Not authorized to delete this meal", err.Error())
}
