package services

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	weekDays = 7
	// weightTrendEntries is how many recent weigh-ins the trend spans.
	weightTrendEntries = 30
)

// StatsService builds the weekly summary.
type StatsService struct {
	logs    domain.FoodLogRepository
	water   domain.WaterLogRepository
	weights domain.WeightLogRepository
	clock   datekey.Clock
}

func NewStatsService(logs domain.FoodLogRepository, water domain.WaterLogRepository, weights domain.WeightLogRepository, opts Options) *StatsService {
	return &StatsService{logs: logs, water: water, weights: weights, clock: opts.clock()}
}

// OnTrack reports whether a day's calories fall in (0, target].
func OnTrack(calories float64, target int) bool {
	return calories > 0 && calories <= float64(target)
}

type dayTotals struct {
	calories float64
	waterML  int
}

// Weekly summarizes the seven days ending today, oldest first. Days are
// fetched concurrently; the first failure fails the summary.
func (s *StatsService) Weekly(ctx context.Context, user *domain.User) (*domain.WeeklyStats, error) {
	days := datekey.Window(datekey.Today(s.clock), weekDays)
	totals := make([]dayTotals, len(days))

	g, gctx := errgroup.WithContext(ctx)
	for i, day := range days {
		g.Go(func() error {
			logs, err := s.logs.ListByDate(gctx, user.ID, day, 0)
			if err != nil {
				return err
			}
			water, err := waterTotal(gctx, s.water, user.ID, day)
			if err != nil {
				return err
			}
			for _, l := range logs {
				totals[i].calories += l.Calories
			}
			totals[i].waterML = water
			return nil
		})
	}

	var weights []domain.WeightLog
	g.Go(func() error {
		var err error
		weights, err = s.weights.ListRecent(gctx, user.ID, weightTrendEntries)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &domain.WeeklyStats{DailyStats: make([]domain.DailyStat, 0, len(days))}
	var total float64
	for i, day := range days {
		t := totals[i]
		total += t.calories
		if OnTrack(t.calories, user.CalorieTarget) {
			stats.DaysOnTrack++
		}
		stats.DailyStats = append(stats.DailyStats, domain.DailyStat{
			Date:     day,
			Day:      day.Weekday(),
			Calories: round1(t.calories),
			WaterML:  t.waterML,
		})
	}
	stats.TotalCalories = round1(total)
	stats.AvgDailyCalories = round1(total / weekDays)
	stats.WeightChange = weightChange(weights)
	return stats, nil
}

// weightChange is newest minus oldest of the given entries, sorted newest first.
func weightChange(logs []domain.WeightLog) float64 {
	if len(logs) < 2 {
		return 0
	}
	return round1(logs[0].Weight - logs[len(logs)-1].Weight)
}
