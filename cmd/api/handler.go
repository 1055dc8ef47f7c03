package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	authDelivery "dietdiary-backend/internal/auth/delivery"
	authUsecase "dietdiary-backend/internal/auth/usecase"
	mealDelivery "dietdiary-backend/internal/meal/delivery"
	mealUsecase "dietdiary-backend/internal/meal/usecase"
	"dietdiary-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	config      *config.Config
	authHandler *authDelivery.AuthHandler
	mealHandler *mealDelivery.MealHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, mealUc mealUsecase.MealUsecase, cfg *config.Config) *Handler {
	authHandler := authDelivery.NewAuthHandler(authUc, authDelivery.CookieSettings{
		MaxAge: int(cfg.CookieExpiry.Seconds()),
		Secure: cfg.IsProduction(),
	})

	return &Handler{
		authUsecase: authUc,
		config:      cfg,
		authHandler: authHandler,
		mealHandler: mealDelivery.NewMealHandler(mealUc),
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(corsMiddleware(h.config.AllowedOrigins))

	SetupRoutes(r, h.authUsecase, h.authHandler, h.mealHandler)
	return r
}

// Start serves on addr until ctx is cancelled, then drains in-flight
// requests.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[Server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func corsMiddleware(allowed []string) gin.HandlerFunc {
	allowedSet := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case origin == "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case len(allowedSet) == 0 || allowedSet[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
