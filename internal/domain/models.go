package domain

import (
	"time"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
)

// MealType tags a food log entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether m is one of the four known meal types.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Food item provenance.
const (
	SourceSeed = "seed"
	SourceUser = "user"
)

// Registration defaults.
const (
	DefaultActivityLevel  = "moderate"
	DefaultWeightLossRate = 1.0
	DefaultUnits          = "imperial"
	DefaultCalorieTarget  = 2000
	DefaultProteinTarget  = 150
	DefaultCarbsTarget    = 200
	DefaultFatTarget      = 67
	DefaultWaterGoal      = 2000
)

// User is a registered account with its biometric profile and derived targets.
type User struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	Age                 *int      `json:"age"`
	Gender              *string   `json:"gender"`
	HeightCM            *float64  `json:"height_cm"`
	CurrentWeight       *float64  `json:"current_weight"`
	GoalWeight          *float64  `json:"goal_weight"`
	ActivityLevel       string    `json:"activity_level"`
	WeightLossRate      float64   `json:"weight_loss_rate"`
	Units               string    `json:"units"`
	CalorieTarget       int       `json:"calorie_target"`
	ProteinTarget       int       `json:"protein_target"`
	CarbsTarget         int       `json:"carbs_target"`
	FatTarget           int       `json:"fat_target"`
	BMR                 *int      `json:"bmr,omitempty"`
	TDEE                *int      `json:"tdee,omitempty"`
	WaterGoal           int       `json:"water_goal"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	TelegramID          *int64    `json:"telegram_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// HasBiometrics reports whether every field the target calculation needs is set.
func (u *User) HasBiometrics() bool {
	return u.Age != nil && *u.Age > 0 &&
		u.Gender != nil && *u.Gender != "" &&
		u.HeightCM != nil && *u.HeightCM > 0 &&
		u.CurrentWeight != nil && *u.CurrentWeight > 0
}

// FoodLog is one logged food. Macro values are already scaled by Quantity.
type FoodLog struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	FoodName  string      `json:"food_name"`
	Calories  float64     `json:"calories"`
	Protein   float64     `json:"protein"`
	Carbs     float64     `json:"carbs"`
	Fat       float64     `json:"fat"`
	Fiber     float64     `json:"fiber"`
	Serving   string      `json:"serving"`
	Quantity  float64     `json:"quantity"`
	MealType  MealType    `json:"meal_type"`
	LoggedAt  time.Time   `json:"logged_at"`
	Date      datekey.Key `json:"date"`
	CreatedAt time.Time   `json:"created_at"`
}

// RecentFood is the latest log of a distinct food name.
type RecentFood struct {
	FoodName   string    `json:"food_name"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	Serving    string    `json:"serving"`
	Quantity   float64   `json:"quantity"`
	LastLogged time.Time `json:"last_logged"`
}

// WeightLog is one body-weight measurement.
type WeightLog struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Weight    float64     `json:"weight"`
	Note      string      `json:"note"`
	LoggedAt  time.Time   `json:"logged_at"`
	Date      datekey.Key `json:"date"`
	CreatedAt time.Time   `json:"created_at"`
}

// FoodItem is a catalog entry with per-serving macros.
type FoodItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	Fiber      float64   `json:"fiber"`
	Serving    string    `json:"serving"`
	Category   string    `json:"category"`
	Source     string    `json:"source"`
	CreatedBy  string    `json:"created_by,omitempty"`
	Popularity int       `json:"popularity"`
	CreatedAt  time.Time `json:"created_at"`
}
