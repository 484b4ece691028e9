// Package mongorepo implements the domain repositories on MongoDB.
package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/vladimiradmaev/dietlog/internal/config"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection      = "users"
	foodLogsCollection   = "food_logs"
	weightLogsCollection = "weight_logs"
	waterLogsCollection  = "water_logs"
	foodItemsCollection  = "food_items"
)

// New connects to cfg.Mongo, ensures the indexes and returns the stores.
func New(ctx context.Context, cfg config.MongoConfig) (*domain.Stores, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logger.Info("Mongo connection established", "database", cfg.Database)

	return &domain.Stores{
		Users:      &UserRepository{coll: db.Collection(usersCollection)},
		FoodLogs:   &FoodLogRepository{coll: db.Collection(foodLogsCollection)},
		WeightLogs: &WeightLogRepository{coll: db.Collection(weightLogsCollection)},
		WaterLogs:  &WaterLogRepository{coll: db.Collection(waterLogsCollection)},
		FoodItems:  &FoodItemRepository{coll: db.Collection(foodItemsCollection)},
		Close:      client.Disconnect,
	}, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{
				Keys: bson.D{{Key: "telegram_id", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetPartialFilterExpression(bson.M{"telegram_id": bson.M{"$exists": true}}),
			},
		},
		foodLogsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		weightLogsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "logged_at", Value: -1}}},
		},
		waterLogsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		foodItemsCollection: {
			{Keys: bson.D{{Key: "popularity", Value: -1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	return nil
}

// storeError maps driver errors onto AppError types.
func storeError(err error, operation, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.NewNotFoundError(notFound)
	case mongo.IsDuplicateKeyError(err):
		return apperrors.NewConflictError(fmt.Sprintf("%s: duplicate key", operation))
	default:
		return apperrors.NewUnavailableError(err, operation)
	}
}
