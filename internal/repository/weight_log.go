package repository

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"gorm.io/gorm"
)

type WeightLogRepository struct {
	db *gorm.DB
}

func NewWeightLogRepository(db *gorm.DB) *WeightLogRepository {
	return &WeightLogRepository{db: db}
}

func (r *WeightLogRepository) Create(ctx context.Context, log *domain.WeightLog) error {
	rec := database.WeightLog{
		ID:        log.ID,
		UserID:    log.UserID,
		Weight:    log.Weight,
		Note:      log.Note,
		LoggedAt:  log.LoggedAt.UTC(),
		Date:      string(log.Date),
		CreatedAt: log.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return apperrors.NewUnavailableError(err, "create weight log")
	}
	return nil
}

func (r *WeightLogRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.WeightLog, error) {
	var recs []database.WeightLog
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, apperrors.NewUnavailableError(err, "find weight logs")
	}

	logs := make([]domain.WeightLog, 0, len(recs))
	for _, rec := range recs {
		logs = append(logs, domain.WeightLog{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Weight:    rec.Weight,
			Note:      rec.Note,
			LoggedAt:  rec.LoggedAt.UTC(),
			Date:      datekey.Key(rec.Date),
			CreatedAt: rec.CreatedAt.UTC(),
		})
	}
	return logs, nil
}

func (r *WeightLogRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&database.WeightLog{})
	if result.Error != nil {
		return apperrors.NewUnavailableError(result.Error, "delete weight log")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Weight log not found")
	}
	return nil
}
