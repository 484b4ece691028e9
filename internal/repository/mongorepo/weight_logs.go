package mongorepo

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WeightLogRepository struct {
	coll *mongo.Collection
}

func (r *WeightLogRepository) Create(ctx context.Context, log *domain.WeightLog) error {
	_, err := r.coll.InsertOne(ctx, weightLogDoc{
		ID:        log.ID,
		UserID:    log.UserID,
		Weight:    log.Weight,
		Note:      log.Note,
		LoggedAt:  log.LoggedAt.UTC(),
		Date:      string(log.Date),
		CreatedAt: log.CreatedAt.UTC(),
	})
	return storeError(err, "create weight log", "")
}

func (r *WeightLogRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.WeightLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "logged_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, storeError(err, "find weight logs", "")
	}
	var docs []weightLogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeError(err, "decode weight logs", "")
	}

	logs := make([]domain.WeightLog, 0, len(docs))
	for _, d := range docs {
		logs = append(logs, domain.WeightLog{
			ID:        d.ID,
			UserID:    d.UserID,
			Weight:    d.Weight,
			Note:      d.Note,
			LoggedAt:  d.LoggedAt.UTC(),
			Date:      datekey.Key(d.Date),
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return logs, nil
}

func (r *WeightLogRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return storeError(err, "delete weight log", "")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("Weight log not found")
	}
	return nil
}
