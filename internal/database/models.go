package database

import (
	"time"

	"github.com/vladimiradmaev/dietlog/internal/domain"
	"gorm.io/datatypes"
)

type User struct {
	ID                  string `gorm:"primaryKey;size:36"`
	Name                string
	Email               string `gorm:"uniqueIndex;not null"`
	PasswordHash        string `gorm:"not null"`
	Age                 *int
	Gender              *string
	HeightCM            *float64 `gorm:"column:height_cm"`
	CurrentWeight       *float64
	GoalWeight          *float64
	ActivityLevel       string
	WeightLossRate      float64
	Units               string
	CalorieTarget       int
	ProteinTarget       int
	CarbsTarget         int
	FatTarget           int
	BMR                 *int `gorm:"column:bmr"`
	TDEE                *int `gorm:"column:tdee"`
	WaterGoal           int
	OnboardingCompleted bool
	TelegramID          *int64 `gorm:"uniqueIndex"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type FoodLog struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;not null;index:idx_food_logs_user_date,priority:1"`
	Date      string `gorm:"size:10;not null;index:idx_food_logs_user_date,priority:2"`
	FoodName  string `gorm:"not null"`
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	Fiber     float64
	Serving   string
	Quantity  float64
	MealType  string `gorm:"size:16"`
	LoggedAt  time.Time
	CreatedAt time.Time
}

type WeightLog struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;not null"`
	Weight    float64
	Note      string
	LoggedAt  time.Time
	Date      string `gorm:"size:10;not null"`
	CreatedAt time.Time
}

// WaterLog keeps the ordered entries as a JSON array next to the running total.
type WaterLog struct {
	ID        string                                 `gorm:"primaryKey;size:36"`
	UserID    string                                 `gorm:"size:36;not null;uniqueIndex:idx_water_logs_user_date,priority:1"`
	Date      string                                 `gorm:"size:10;not null;uniqueIndex:idx_water_logs_user_date,priority:2"`
	TotalML   int                                    `gorm:"column:total_ml"`
	Entries   datatypes.JSONSlice[domain.WaterEntry] `gorm:"column:entries"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FoodItem struct {
	ID         string `gorm:"primaryKey;size:36"`
	Name       string `gorm:"not null"`
	Calories   float64
	Protein    float64
	Carbs      float64
	Fat        float64
	Fiber      float64
	Serving    string
	Category   string
	Source     string `gorm:"size:16"`
	CreatedBy  string `gorm:"size:36"`
	Popularity int    `gorm:"index"`
	CreatedAt  time.Time
}

// Models lists every table managed by AutoMigrate.
func Models() []interface{} {
	return []interface{}{&User{}, &FoodLog{}, &WeightLog{}, &WaterLog{}, &FoodItem{}}
}
