package mongorepo

import (
	"context"
	"time"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodLogRepository struct {
	coll *mongo.Collection
}

func (r *FoodLogRepository) Create(ctx context.Context, log *domain.FoodLog) error {
	_, err := r.coll.InsertOne(ctx, foodLogDoc{
		ID:        log.ID,
		UserID:    log.UserID,
		Date:      string(log.Date),
		FoodName:  log.FoodName,
		Calories:  log.Calories,
		Protein:   log.Protein,
		Carbs:     log.Carbs,
		Fat:       log.Fat,
		Fiber:     log.Fiber,
		Serving:   log.Serving,
		Quantity:  log.Quantity,
		MealType:  string(log.MealType),
		LoggedAt:  log.LoggedAt.UTC(),
		CreatedAt: log.CreatedAt.UTC(),
	})
	return storeError(err, "create food log", "")
}

func (r *FoodLogRepository) ListByDate(ctx context.Context, userID string, date datekey.Key, limit int) ([]domain.FoodLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "logged_at", Value: 1}, {Key: "created_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID, "date": string(date)}, opts)
	if err != nil {
		return nil, storeError(err, "find food logs", "")
	}

	var docs []foodLogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeError(err, "decode food logs", "")
	}
	logs := make([]domain.FoodLog, 0, len(docs))
	for _, doc := range docs {
		logs = append(logs, doc.domain())
	}
	return logs, nil
}

func (r *FoodLogRepository) CountByDate(ctx context.Context, userID string, date datekey.Key) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "date": string(date)})
	if err != nil {
		return 0, storeError(err, "count food logs", "")
	}
	return n, nil
}

func (r *FoodLogRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return storeError(err, "delete food log", "")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("Food log not found")
	}
	return nil
}

type recentFoodDoc struct {
	FoodName   string    `bson:"_id"`
	Calories   float64   `bson:"calories"`
	Protein    float64   `bson:"protein"`
	Carbs      float64   `bson:"carbs"`
	Fat        float64   `bson:"fat"`
	Serving    string    `bson:"serving"`
	Quantity   float64   `bson:"quantity"`
	LastLogged time.Time `bson:"last_logged"`
}

func (r *FoodLogRepository) RecentFoods(ctx context.Context, userID string, limit int) ([]domain.RecentFood, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$food_name"},
			{Key: "calories", Value: bson.M{"$first": "$calories"}},
			{Key: "protein", Value: bson.M{"$first": "$protein"}},
			{Key: "carbs", Value: bson.M{"$first": "$carbs"}},
			{Key: "fat", Value: bson.M{"$first": "$fat"}},
			{Key: "serving", Value: bson.M{"$first": "$serving"}},
			{Key: "quantity", Value: bson.M{"$first": "$quantity"}},
			{Key: "last_logged", Value: bson.M{"$first": "$logged_at"}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "last_logged", Value: -1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeError(err, "aggregate recent foods", "")
	}
	var docs []recentFoodDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeError(err, "decode recent foods", "")
	}

	recent := make([]domain.RecentFood, 0, len(docs))
	for _, d := range docs {
		recent = append(recent, domain.RecentFood{
			FoodName:   d.FoodName,
			Calories:   d.Calories,
			Protein:    d.Protein,
			Carbs:      d.Carbs,
			Fat:        d.Fat,
			Serving:    d.Serving,
			Quantity:   d.Quantity,
			LastLogged: d.LastLogged.UTC(),
		})
	}
	return recent, nil
}
