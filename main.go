package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "dietdiary-backend/cmd/api"
	authdomain "dietdiary-backend/internal/auth/domain"
	authRepo "dietdiary-backend/internal/auth/repository"
	"dietdiary-backend/internal/auth/token"
	authUsecase "dietdiary-backend/internal/auth/usecase"
	mealdomain "dietdiary-backend/internal/meal/domain"
	mealRepo "dietdiary-backend/internal/meal/repository"
	mealUsecase "dietdiary-backend/internal/meal/usecase"
	"dietdiary-backend/pkg/config"
	"dietdiary-backend/pkg/database"
)

type stores struct {
	users authRepo.UserRepository
	meals mealRepo.MealRepository
	close func()
}

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize store: ", err)
	}
	defer s.close()

	// Initialize use cases (dependency injection)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	authUsecaseInstance := authUsecase.NewAuthUsecase(s.users, tokens)
	mealUsecaseInstance := mealUsecase.NewMealUsecase(s.meals)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, mealUsecaseInstance, cfg)

	log.Printf("Server starting on port %s (store: %s)", cfg.Port, cfg.StoreDriver)
	if err := handler.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, db, err := database.NewMongoConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := authRepo.EnsureUserIndexes(ctx, db); err != nil {
			return nil, err
		}
		if err := mealRepo.EnsureMealIndexes(ctx, db); err != nil {
			return nil, err
		}
		return &stores{
			users: authRepo.NewMongoUserRepository(db),
			meals: mealRepo.NewMongoMealRepository(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Printf("[DB] Disconnect failed: %v", err)
				}
			},
		}, nil

	case config.StoreDriverMemory:
		log.Printf("[DB] Using in-memory store; data is lost on exit")
		return &stores{
			users: authRepo.NewMemoryUserRepository(),
			meals: mealRepo.NewMemoryMealRepository(),
			close: func() {},
		}, nil

	default:
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			return nil, err
		}
		// Auto-migrate database schemas
		if err := db.AutoMigrate(&authdomain.User{}, &mealdomain.Meal{}); err != nil {
			return nil, err
		}
		return &stores{
			users: authRepo.NewUserRepository(db),
			meals: mealRepo.NewGormMealRepository(db),
			close: func() {
				if err := database.ClosePostgres(db); err != nil {
					log.Printf("[DB] Close failed: %v", err)
				}
			},
		}, nil
	}
}
