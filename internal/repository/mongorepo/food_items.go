package mongorepo

import (
	"context"
	"regexp"

	"github.com/vladimiradmaev/dietlog/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodItemRepository struct {
	coll *mongo.Collection
}

func (r *FoodItemRepository) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	filter := bson.M{}
	if query != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "popularity", Value: -1}, {Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeError(err, "search food items", "")
	}
	var docs []foodItemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeError(err, "decode food items", "")
	}

	items := make([]domain.FoodItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.domain())
	}
	return items, nil
}

func (r *FoodItemRepository) Create(ctx context.Context, item *domain.FoodItem) error {
	_, err := r.coll.InsertOne(ctx, newFoodItemDoc(*item))
	return storeError(err, "create food item", "")
}

func (r *FoodItemRepository) CreateBatch(ctx context.Context, items []domain.FoodItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, newFoodItemDoc(item))
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return storeError(err, "seed food items", "")
}

func (r *FoodItemRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeError(err, "count food items", "")
	}
	return n, nil
}
