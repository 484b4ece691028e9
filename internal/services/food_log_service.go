package services

import (
	"context"
	"strings"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
)

const (
	dayLogLimit        = 100
	recentFoodsLimit   = 20
	defaultMealType    = domain.MealSnack
	defaultLogQuantity = 1
)

// FoodLogService records eaten food.
type FoodLogService struct {
	logs  domain.FoodLogRepository
	clock datekey.Clock
	newID IDFunc
}

func NewFoodLogService(logs domain.FoodLogRepository, opts Options) *FoodLogService {
	return &FoodLogService{logs: logs, clock: opts.clock(), newID: opts.newID()}
}

// FoodLogInput carries per-unit values. Quantity nil means 1.
type FoodLogInput struct {
	FoodName string   `json:"food_name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Fiber    float64  `json:"fiber"`
	Serving  string   `json:"serving"`
	Quantity *float64 `json:"quantity"`
	MealType string   `json:"meal_type"`
	LoggedAt string   `json:"logged_at"`
}

// Create stores the entry with every macro scaled by quantity.
func (s *FoodLogService) Create(ctx context.Context, userID string, in FoodLogInput) (*domain.FoodLog, error) {
	if strings.TrimSpace(in.FoodName) == "" {
		return nil, apperrors.NewValidationError("Food name is required")
	}
	quantity := float64(defaultLogQuantity)
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("Quantity must be positive")
	}
	if in.Calories < 0 {
		return nil, apperrors.NewValidationError("Calories must not be negative")
	}

	now := s.clock.Now()
	loggedAt := now
	if in.LoggedAt != "" {
		t, err := datekey.ParseTimestamp(in.LoggedAt)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		loggedAt = t
	}
	meal := domain.MealType(in.MealType)
	if meal == "" {
		meal = defaultMealType
	}

	log := &domain.FoodLog{
		ID:        s.newID(),
		UserID:    userID,
		FoodName:  in.FoodName,
		Calories:  round1(in.Calories * quantity),
		Protein:   round1(in.Protein * quantity),
		Carbs:     round1(in.Carbs * quantity),
		Fat:       round1(in.Fat * quantity),
		Fiber:     round1(in.Fiber * quantity),
		Serving:   in.Serving,
		Quantity:  quantity,
		MealType:  meal,
		LoggedAt:  loggedAt,
		Date:      datekey.FromTime(loggedAt),
		CreatedAt: now,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// List returns the day's entries, oldest first. An empty date means today.
func (s *FoodLogService) List(ctx context.Context, userID string, date datekey.Key) ([]domain.FoodLog, error) {
	if date == "" {
		date = datekey.Today(s.clock)
	}
	return s.logs.ListByDate(ctx, userID, date, dayLogLimit)
}

func (s *FoodLogService) Delete(ctx context.Context, userID, id string) error {
	return s.logs.Delete(ctx, userID, id)
}

// Recent lists the latest distinct foods the user logged.
func (s *FoodLogService) Recent(ctx context.Context, userID string) ([]domain.RecentFood, error) {
	return s.logs.RecentFoods(ctx, userID, recentFoodsLimit)
}
