package api

import (
	"net/http"

	"dietdiary-backend/internal/auth/delivery"
	authUsecase "dietdiary-backend/internal/auth/usecase"
	mealDelivery "dietdiary-backend/internal/meal/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, mealHandler *mealDelivery.MealHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
			auth.GET("/logout", delivery.AuthMiddleware(authUsecase), authHandler.Logout)
		}

		// Meal routes (protected)
		meals := api.Group("/meals")
		meals.Use(delivery.AuthMiddleware(authUsecase))
		{
			meals.GET("", mealHandler.GetMeals)
			meals.POST("", mealHandler.AddMeal)
			meals.GET("/date/:date", mealHandler.GetMealsByDate)
			meals.GET("/:id", mealHandler.GetMeal)
			meals.PUT("/:id", mealHandler.UpdateMeal)
			meals.DELETE("/:id", mealHandler.DeleteMeal)
		}
	}
}
