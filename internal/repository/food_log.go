package repository

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"gorm.io/gorm"
)

// FoodLogRepository handles food log persistence
type FoodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) *FoodLogRepository {
	return &FoodLogRepository{db: db}
}

func (r *FoodLogRepository) Create(ctx context.Context, log *domain.FoodLog) error {
	rec := toFoodLogRecord(log)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return apperrors.NewUnavailableError(err, "create food log")
	}
	return nil
}

func (r *FoodLogRepository) ListByDate(ctx context.Context, userID string, date datekey.Key, limit int) ([]domain.FoodLog, error) {
	var recs []database.FoodLog
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, string(date)).
		Order("logged_at ASC").
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, apperrors.NewUnavailableError(err, "find food logs")
	}

	logs := make([]domain.FoodLog, 0, len(recs))
	for _, rec := range recs {
		logs = append(logs, fromFoodLogRecord(rec))
	}
	return logs, nil
}

func (r *FoodLogRepository) CountByDate(ctx context.Context, userID string, date datekey.Key) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&database.FoodLog{}).
		Where("user_id = ? AND date = ?", userID, string(date)).
		Count(&count).Error; err != nil {
		return 0, apperrors.NewUnavailableError(err, "count food logs")
	}
	return count, nil
}

func (r *FoodLogRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&database.FoodLog{})
	if result.Error != nil {
		return apperrors.NewUnavailableError(result.Error, "delete food log")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Food log not found")
	}
	return nil
}

// RecentFoods picks, per food name, the row with the latest created_at.
func (r *FoodLogRepository) RecentFoods(ctx context.Context, userID string, limit int) ([]domain.RecentFood, error) {
	latest := r.db.Model(&database.FoodLog{}).
		Select("food_name, MAX(created_at) AS max_created").
		Where("user_id = ?", userID).
		Group("food_name")

	var recs []database.FoodLog
	if err := r.db.WithContext(ctx).
		Table("food_logs AS f").
		Select("f.*").
		Joins("JOIN (?) AS m ON f.food_name = m.food_name AND f.created_at = m.max_created", latest).
		Where("f.user_id = ?", userID).
		Order("f.logged_at DESC").
		Find(&recs).Error; err != nil {
		return nil, apperrors.NewUnavailableError(err, "aggregate recent foods")
	}

	seen := make(map[string]bool, len(recs))
	recent := make([]domain.RecentFood, 0, len(recs))
	for _, rec := range recs {
		if seen[rec.FoodName] {
			continue
		}
		seen[rec.FoodName] = true
		recent = append(recent, domain.RecentFood{
			FoodName:   rec.FoodName,
			Calories:   rec.Calories,
			Protein:    rec.Protein,
			Carbs:      rec.Carbs,
			Fat:        rec.Fat,
			Serving:    rec.Serving,
			Quantity:   rec.Quantity,
			LastLogged: rec.LoggedAt.UTC(),
		})
		if limit > 0 && len(recent) == limit {
			break
		}
	}
	return recent, nil
}

func toFoodLogRecord(l *domain.FoodLog) database.FoodLog {
	return database.FoodLog{
		ID:        l.ID,
		UserID:    l.UserID,
		Date:      string(l.Date),
		FoodName:  l.FoodName,
		Calories:  l.Calories,
		Protein:   l.Protein,
		Carbs:     l.Carbs,
		Fat:       l.Fat,
		Fiber:     l.Fiber,
		Serving:   l.Serving,
		Quantity:  l.Quantity,
		MealType:  string(l.MealType),
		LoggedAt:  l.LoggedAt.UTC(),
		CreatedAt: l.CreatedAt.UTC(),
	}
}

func fromFoodLogRecord(rec database.FoodLog) domain.FoodLog {
	return domain.FoodLog{
		ID:        rec.ID,
		UserID:    rec.UserID,
		FoodName:  rec.FoodName,
		Calories:  rec.Calories,
		Protein:   rec.Protein,
		Carbs:     rec.Carbs,
		Fat:       rec.Fat,
		Fiber:     rec.Fiber,
		Serving:   rec.Serving,
		Quantity:  rec.Quantity,
		MealType:  domain.MealType(rec.MealType),
		LoggedAt:  rec.LoggedAt.UTC(),
		Date:      datekey.Key(rec.Date),
		CreatedAt: rec.CreatedAt.UTC(),
	}
}
