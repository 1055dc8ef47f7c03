package dto

import "dietdiary-backend/internal/meal/domain"

// AddMealRequest is the body of POST /api/meals. Date is a calendar day or
// RFC 3339 timestamp; it defaults to now.
type AddMealRequest struct {
	Name string  `json:"name"`
	Tag  string  `json:"tag"`
	Note string  `json:"note"`
	Date *string `json:"date"`
}

// UpdateMealRequest is the body of PUT /api/meals/:id. Only name and date
// are updatable; absent fields keep their stored values.
type UpdateMealRequest struct {
	Name *string `json:"name"`
	Date *string `json:"date"`
}

type MealResponse struct {
	Success bool         `json:"success"`
	Data    *domain.Meal `json:"data"`
}

type MealListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []*domain.Meal `json:"data"`
}

type DeleteMealResponse struct {
	Success bool     `json:"success"`
	Data    struct{} `json:"data"`
}
