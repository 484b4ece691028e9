package services

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
)

// MaxStreakDays bounds the backward walk of the streak computation.
const MaxStreakDays = 365

// DashboardService builds the per-day view.
type DashboardService struct {
	logs  domain.FoodLogRepository
	water domain.WaterLogRepository
	clock datekey.Clock
}

func NewDashboardService(logs domain.FoodLogRepository, water domain.WaterLogRepository, opts Options) *DashboardService {
	return &DashboardService{logs: logs, water: water, clock: opts.clock()}
}

// Daily aggregates date (today when empty) for user. Any fetch failure fails
// the whole view.
func (s *DashboardService) Daily(ctx context.Context, user *domain.User, date datekey.Key) (*domain.Dashboard, error) {
	if date == "" {
		date = datekey.Today(s.clock)
	}

	logs, err := s.logs.ListByDate(ctx, user.ID, date, 0)
	if err != nil {
		return nil, err
	}
	water, err := waterTotal(ctx, s.water, user.ID, date)
	if err != nil {
		return nil, err
	}
	streak, err := s.Streak(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var calories, protein, carbs, fat float64
	meals := domain.Meals{
		Breakfast: []domain.FoodLog{},
		Lunch:     []domain.FoodLog{},
		Dinner:    []domain.FoodLog{},
		Snack:     []domain.FoodLog{},
	}
	for _, l := range logs {
		calories += l.Calories
		protein += l.Protein
		carbs += l.Carbs
		fat += l.Fat

		switch l.MealType {
		case domain.MealBreakfast:
			meals.Breakfast = append(meals.Breakfast, l)
		case domain.MealLunch:
			meals.Lunch = append(meals.Lunch, l)
		case domain.MealDinner:
			meals.Dinner = append(meals.Dinner, l)
		case domain.MealSnack:
			meals.Snack = append(meals.Snack, l)
		}
	}

	return &domain.Dashboard{
		Date:     date,
		Calories: domain.MacroProgress{Consumed: round1(calories), Target: user.CalorieTarget},
		Protein:  domain.MacroProgress{Consumed: round1(protein), Target: user.ProteinTarget},
		Carbs:    domain.MacroProgress{Consumed: round1(carbs), Target: user.CarbsTarget},
		Fat:      domain.MacroProgress{Consumed: round1(fat), Target: user.FatTarget},
		Water:    domain.WaterProgress{ConsumedML: water, GoalML: user.WaterGoal},
		FoodLogs: logs,
		Streak:   streak,
		Meals:    meals,
	}, nil
}

// Streak counts consecutive days with at least one food log, ending today.
// Today without a log means 0.
func (s *DashboardService) Streak(ctx context.Context, userID string) (int, error) {
	streak := 0
	for day := range datekey.Backward(datekey.Today(s.clock), MaxStreakDays) {
		n, err := s.logs.CountByDate(ctx, userID, day)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		streak++
	}
	return streak, nil
}
