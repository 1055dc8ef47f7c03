package repository

import (
	"context"
	"errors"
	"time"

	"dietdiary-backend/internal/meal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MealsCollection = "meals"

// mongoMealRepository implements MealRepository on a MongoDB collection
type mongoMealRepository struct {
	coll *mongo.Collection
}

// NewMongoMealRepository creates a MealRepository backed by db.meals
func NewMongoMealRepository(db *mongo.Database) MealRepository {
	return &mongoMealRepository{coll: db.Collection(MealsCollection)}
}

// EnsureMealIndexes creates the index serving per-user, date-ordered queries.
func EnsureMealIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(MealsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}

func (r *mongoMealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	// BSON dates carry millisecond precision
	meal.Date = meal.Date.Truncate(time.Millisecond)
	meal.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	_, err := r.coll.InsertOne(ctx, meal)
	return err
}

func (r *mongoMealRepository) FindByID(ctx context.Context, id string) (*domain.Meal, error) {
	var meal domain.Meal
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mongoMealRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Meal, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *mongoMealRepository) FindByUserIDBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Meal, error) {
	return r.find(ctx, bson.M{
		"user": userID,
		"date": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoMealRepository) Update(ctx context.Context, meal *domain.Meal) error {
	meal.Date = meal.Date.Truncate(time.Millisecond)
	_, err := r.coll.UpdateByID(ctx, meal.ID, bson.M{
		"$set": bson.M{"name": meal.Name, "date": meal.Date},
	})
	return err
}

func (r *mongoMealRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoMealRepository) find(ctx context.Context, filter bson.M) ([]*domain.Meal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	meals := []*domain.Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}
