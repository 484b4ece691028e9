package repository

import (
	"context"
	"strings"

	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"gorm.io/gorm"
)

type FoodItemRepository struct {
	db *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *FoodItemRepository) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	q := r.db.WithContext(ctx).Order("popularity DESC").Order("name ASC")
	if query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []database.FoodItem
	if err := q.Find(&recs).Error; err != nil {
		return nil, apperrors.NewUnavailableError(err, "search food items")
	}

	items := make([]domain.FoodItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, domain.FoodItem{
			ID:         rec.ID,
			Name:       rec.Name,
			Calories:   rec.Calories,
			Protein:    rec.Protein,
			Carbs:      rec.Carbs,
			Fat:        rec.Fat,
			Fiber:      rec.Fiber,
			Serving:    rec.Serving,
			Category:   rec.Category,
			Source:     rec.Source,
			CreatedBy:  rec.CreatedBy,
			Popularity: rec.Popularity,
			CreatedAt:  rec.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *FoodItemRepository) Create(ctx context.Context, item *domain.FoodItem) error {
	rec := toFoodItemRecord(*item)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return apperrors.NewUnavailableError(err, "create food item")
	}
	return nil
}

func (r *FoodItemRepository) CreateBatch(ctx context.Context, items []domain.FoodItem) error {
	if len(items) == 0 {
		return nil
	}
	recs := make([]database.FoodItem, 0, len(items))
	for _, item := range items {
		recs = append(recs, toFoodItemRecord(item))
	}
	if err := r.db.WithContext(ctx).CreateInBatches(recs, 100).Error; err != nil {
		return apperrors.NewUnavailableError(err, "seed food items")
	}
	return nil
}

func (r *FoodItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&database.FoodItem{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewUnavailableError(err, "count food items")
	}
	return count, nil
}

func toFoodItemRecord(item domain.FoodItem) database.FoodItem {
	return database.FoodItem{
		ID:         item.ID,
		Name:       item.Name,
		Calories:   item.Calories,
		Protein:    item.Protein,
		Carbs:      item.Carbs,
		Fat:        item.Fat,
		Fiber:      item.Fiber,
		Serving:    item.Serving,
		Category:   item.Category,
		Source:     item.Source,
		CreatedBy:  item.CreatedBy,
		Popularity: item.Popularity,
		CreatedAt:  item.CreatedAt.UTC(),
	}
}
