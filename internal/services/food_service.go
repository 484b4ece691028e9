package services

import (
	"context"
	"strings"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/logger"
	"github.com/vladimiradmaev/dietlog/internal/seed"
)

const (
	defaultSearchLimit   = 20
	customFoodServing    = "1 serving"
	customFoodCategory   = "custom"
	customFoodPopularity = 1
)

// FoodService serves the food catalog.
type FoodService struct {
	items domain.FoodItemRepository
	clock datekey.Clock
	newID IDFunc
}

func NewFoodService(items domain.FoodItemRepository, opts Options) *FoodService {
	return &FoodService{items: items, clock: opts.clock(), newID: opts.newID()}
}

// Search matches query against food names. An empty query lists the most popular items.
func (s *FoodService) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.items.Search(ctx, strings.TrimSpace(query), limit)
}

// CustomFoodInput describes a user-created catalog item.
type CustomFoodInput struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Serving  string  `json:"serving"`
	Category string  `json:"category"`
}

func (s *FoodService) CreateCustom(ctx context.Context, userID string, in CustomFoodInput) (*domain.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("Food name is required")
	}
	if in.Calories < 0 {
		return nil, apperrors.NewValidationError("Calories must not be negative")
	}
	if in.Serving == "" {
		in.Serving = customFoodServing
	}
	if in.Category == "" {
		in.Category = customFoodCategory
	}

	item := &domain.FoodItem{
		ID:         s.newID(),
		Name:       in.Name,
		Calories:   in.Calories,
		Protein:    in.Protein,
		Carbs:      in.Carbs,
		Fat:        in.Fat,
		Fiber:      in.Fiber,
		Serving:    in.Serving,
		Category:   in.Category,
		Source:     domain.SourceUser,
		CreatedBy:  userID,
		Popularity: customFoodPopularity,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Seed inserts foods when the catalog is empty and reports how many were added.
func (s *FoodService) Seed(ctx context.Context, foods []seed.Food) (int, error) {
	count, err := s.items.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.WithContext(ctx).Debug("Food catalog already seeded", "count", count)
		return 0, nil
	}

	items := seed.Items(foods, s.clock.Now(), s.newID)
	if err := s.items.CreateBatch(ctx, items); err != nil {
		return 0, err
	}
	logger.WithContext(ctx).Info("Seeded food catalog", "count", len(items))
	return len(items), nil
}
