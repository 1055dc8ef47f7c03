package delivery

import (
	"net/http"

	authdelivery "dietdiary-backend/internal/auth/delivery"
	"dietdiary-backend/internal/meal/domain"
	"dietdiary-backend/internal/meal/dto"
	"dietdiary-backend/internal/meal/usecase"
	"dietdiary-backend/pkg/apperror"
	"dietdiary-backend/pkg/httpx"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// MealHandler handles meal-related HTTP requests. All routes sit behind
// AuthMiddleware.
type MealHandler struct {
	mealUsecase usecase.MealUsecase
}

// NewMealHandler creates a new MealHandler
func NewMealHandler(mealUsecase usecase.MealUsecase) *MealHandler {
	return &MealHandler{
		mealUsecase: mealUsecase,
	}
}

// GetMeals returns all meals of the authenticated user, newest first
// GET /api/meals
func (h *MealHandler) GetMeals(c *gin.Context) {
	meals, err := h.mealUsecase.ListMeals(c.Request.Context(), authdelivery.UserIDFromContext(c))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	respondList(c, meals)
}

// GetMealsByDate returns the meals logged on one calendar day
// GET /api/meals/date/:date
func (h *MealHandler) GetMealsByDate(c *gin.Context) {
	meals, err := h.mealUsecase.ListMealsByDate(c.Request.Context(), authdelivery.UserIDFromContext(c), c.Param("date"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	respondList(c, meals)
}

// GetMeal returns a single meal
// GET /api/meals/:id
func (h *MealHandler) GetMeal(c *gin.Context) {
	meal, err := h.mealUsecase.GetMeal(c.Request.Context(), authdelivery.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MealResponse{Success: true, Data: meal})
}

// AddMeal logs a meal
// POST /api/meals
func (h *MealHandler) AddMeal(c *gin.Context) {
	var req dto.AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperror.Validation(msgInvalidBody))
		return
	}

	meal, err := h.mealUsecase.AddMeal(c.Request.Context(), authdelivery.UserIDFromContext(c), &req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MealResponse{Success: true, Data: meal})
}

// UpdateMeal changes the name and/or date of a meal
// PUT /api/meals/:id
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	var req dto.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperror.Validation(msgInvalidBody))
		return
	}

	meal, err := h.mealUsecase.UpdateMeal(c.Request.Context(), authdelivery.UserIDFromContext(c), c.Param("id"), &req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MealResponse{Success: true, Data: meal})
}

// DeleteMeal removes a meal permanently
// DELETE /api/meals/:id
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	if err := h.mealUsecase.DeleteMeal(c.Request.Context(), authdelivery.UserIDFromContext(c), c.Param("id")); err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteMealResponse{Success: true})
}

func respondList(c *gin.Context, meals []*domain.Meal) {
	c.JSON(http.StatusOK, dto.MealListResponse{
		Success: true,
		Count:   len(meals),
		Data:    meals,
	})
}
