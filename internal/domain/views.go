package domain

import (
	"github.com/vladimiradmaev/dietlog/internal/datekey"
)

// MacroProgress pairs what was consumed with the daily target.
type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Target   int     `json:"target"`
}

// WaterProgress pairs the day's water total with the goal.
type WaterProgress struct {
	ConsumedML int `json:"consumed_ml"`
	GoalML     int `json:"goal_ml"`
}

// Meals buckets a day's food logs by meal type.
type Meals struct {
	Breakfast []FoodLog `json:"breakfast"`
	Lunch     []FoodLog `json:"lunch"`
	Dinner    []FoodLog `json:"dinner"`
	Snack     []FoodLog `json:"snack"`
}

// Dashboard is the computed view of a single day.
type Dashboard struct {
	Date     datekey.Key   `json:"date"`
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fat      MacroProgress `json:"fat"`
	Water    WaterProgress `json:"water"`
	FoodLogs []FoodLog     `json:"food_logs"`
	Streak   int           `json:"streak"`
	Meals    Meals         `json:"meals"`
}

// DailyStat is one row of the weekly summary.
type DailyStat struct {
	Date     datekey.Key `json:"date"`
	Day      string      `json:"day"`
	Calories float64     `json:"calories"`
	WaterML  int         `json:"water_ml"`
}

// WeeklyStats summarizes the seven days ending today.
type WeeklyStats struct {
	DailyStats       []DailyStat `json:"daily_stats"`
	AvgDailyCalories float64     `json:"avg_daily_calories"`
	DaysOnTrack      int         `json:"days_on_track"`
	WeightChange     float64     `json:"weight_change"`
	TotalCalories    float64     `json:"total_calories"`
}

// WaterView is the water ledger as returned to callers.
type WaterView struct {
	Date         datekey.Key  `json:"date"`
	TotalML      int          `json:"total_ml"`
	GoalML       int          `json:"goal_ml"`
	Entries      []WaterEntry `json:"entries"`
	RemovedEntry *WaterEntry  `json:"removed_entry,omitempty"`
}
