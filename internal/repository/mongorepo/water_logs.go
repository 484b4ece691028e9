package mongorepo

import (
	"context"
	"errors"
	"time"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WaterLogRepository struct {
	coll *mongo.Collection
}

func (r *WaterLogRepository) Get(ctx context.Context, userID string, date datekey.Key) (*domain.WaterLog, error) {
	var doc waterLogDoc
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "date": string(date)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err, "find water log", "")
	}

	entries := make([]domain.WaterEntry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		entries = append(entries, domain.WaterEntry{ID: e.ID, AmountML: e.AmountML, Time: e.Time.UTC()})
	}
	return &domain.WaterLog{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Date:      datekey.Key(doc.Date),
		TotalML:   doc.TotalML,
		Entries:   entries,
		CreatedAt: doc.CreatedAt.UTC(),
	}, nil
}

func (r *WaterLogRepository) Save(ctx context.Context, log *domain.WaterLog) error {
	entries := make([]waterEntryDoc, 0, len(log.Entries))
	for _, e := range log.Entries {
		entries = append(entries, waterEntryDoc{ID: e.ID, AmountML: e.AmountML, Time: e.Time.UTC()})
	}
	doc := waterLogDoc{
		ID:        log.ID,
		UserID:    log.UserID,
		Date:      string(log.Date),
		TotalML:   log.TotalML,
		Entries:   entries,
		CreatedAt: log.CreatedAt.UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"user_id": log.UserID, "date": string(log.Date)},
		doc,
		options.Replace().SetUpsert(true),
	)
	return storeError(err, "save water log", "")
}
