package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WaterLogRepository struct {
	db *gorm.DB
}

func NewWaterLogRepository(db *gorm.DB) *WaterLogRepository {
	return &WaterLogRepository{db: db}
}

func (r *WaterLogRepository) Get(ctx context.Context, userID string, date datekey.Key) (*domain.WaterLog, error) {
	var rec database.WaterLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, string(date)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewUnavailableError(err, "find water log")
	}

	entries := []domain.WaterEntry(rec.Entries)
	if entries == nil {
		entries = []domain.WaterEntry{}
	}
	return &domain.WaterLog{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Date:      datekey.Key(rec.Date),
		TotalML:   rec.TotalML,
		Entries:   entries,
		CreatedAt: rec.CreatedAt.UTC(),
	}, nil
}

// Save inserts the ledger or replaces total and entries of the existing row.
func (r *WaterLogRepository) Save(ctx context.Context, log *domain.WaterLog) error {
	entries := log.Entries
	if entries == nil {
		entries = []domain.WaterEntry{}
	}
	rec := database.WaterLog{
		ID:        log.ID,
		UserID:    log.UserID,
		Date:      string(log.Date),
		TotalML:   log.TotalML,
		Entries:   entries,
		CreatedAt: log.CreatedAt.UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_ml", "entries", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return apperrors.NewUnavailableError(err, "save water log")
	}
	return nil
}
