package mongorepo

import (
	"time"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
)

type userDoc struct {
	ID                  string    `bson:"_id"`
	Name                string    `bson:"name"`
	Email               string    `bson:"email"`
	PasswordHash        string    `bson:"password_hash"`
	Age                 *int      `bson:"age,omitempty"`
	Gender              *string   `bson:"gender,omitempty"`
	HeightCM            *float64  `bson:"height_cm,omitempty"`
	CurrentWeight       *float64  `bson:"current_weight,omitempty"`
	GoalWeight          *float64  `bson:"goal_weight,omitempty"`
	ActivityLevel       string    `bson:"activity_level"`
	WeightLossRate      float64   `bson:"weight_loss_rate"`
	Units               string    `bson:"units"`
	CalorieTarget       int       `bson:"calorie_target"`
	ProteinTarget       int       `bson:"protein_target"`
	CarbsTarget         int       `bson:"carbs_target"`
	FatTarget           int       `bson:"fat_target"`
	BMR                 *int      `bson:"bmr,omitempty"`
	TDEE                *int      `bson:"tdee,omitempty"`
	WaterGoal           int       `bson:"water_goal"`
	OnboardingCompleted bool      `bson:"onboarding_completed"`
	TelegramID          *int64    `bson:"telegram_id,omitempty"`
	CreatedAt           time.Time `bson:"created_at"`
}

func newUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Age:                 u.Age,
		Gender:              u.Gender,
		HeightCM:            u.HeightCM,
		CurrentWeight:       u.CurrentWeight,
		GoalWeight:          u.GoalWeight,
		ActivityLevel:       u.ActivityLevel,
		WeightLossRate:      u.WeightLossRate,
		Units:               u.Units,
		CalorieTarget:       u.CalorieTarget,
		ProteinTarget:       u.ProteinTarget,
		CarbsTarget:         u.CarbsTarget,
		FatTarget:           u.FatTarget,
		BMR:                 u.BMR,
		TDEE:                u.TDEE,
		WaterGoal:           u.WaterGoal,
		OnboardingCompleted: u.OnboardingCompleted,
		TelegramID:          u.TelegramID,
		CreatedAt:           u.CreatedAt.UTC(),
	}
}

func (d userDoc) domain() *domain.User {
	return &domain.User{
		ID:                  d.ID,
		Name:                d.Name,
		Email:               d.Email,
		PasswordHash:        d.PasswordHash,
		Age:                 d.Age,
		Gender:              d.Gender,
		HeightCM:            d.HeightCM,
		CurrentWeight:       d.CurrentWeight,
		GoalWeight:          d.GoalWeight,
		ActivityLevel:       d.ActivityLevel,
		WeightLossRate:      d.WeightLossRate,
		Units:               d.Units,
		CalorieTarget:       d.CalorieTarget,
		ProteinTarget:       d.ProteinTarget,
		CarbsTarget:         d.CarbsTarget,
		FatTarget:           d.FatTarget,
		BMR:                 d.BMR,
		TDEE:                d.TDEE,
		WaterGoal:           d.WaterGoal,
		OnboardingCompleted: d.OnboardingCompleted,
		TelegramID:          d.TelegramID,
		CreatedAt:           d.CreatedAt.UTC(),
	}
}

type foodLogDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Date      string    `bson:"date"`
	FoodName  string    `bson:"food_name"`
	Calories  float64   `bson:"calories"`
	Protein   float64   `bson:"protein"`
	Carbs     float64   `bson:"carbs"`
	Fat       float64   `bson:"fat"`
	Fiber     float64   `bson:"fiber"`
	Serving   string    `bson:"serving"`
	Quantity  float64   `bson:"quantity"`
	MealType  string    `bson:"meal_type"`
	LoggedAt  time.Time `bson:"logged_at"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d foodLogDoc) domain() domain.FoodLog {
	return domain.FoodLog{
		ID:        d.ID,
		UserID:    d.UserID,
		FoodName:  d.FoodName,
		Calories:  d.Calories,
		Protein:   d.Protein,
		Carbs:     d.Carbs,
		Fat:       d.Fat,
		Fiber:     d.Fiber,
		Serving:   d.Serving,
		Quantity:  d.Quantity,
		MealType:  domain.MealType(d.MealType),
		LoggedAt:  d.LoggedAt.UTC(),
		Date:      datekey.Key(d.Date),
		CreatedAt: d.CreatedAt.UTC(),
	}
}

type weightLogDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Weight    float64   `bson:"weight"`
	Note      string    `bson:"note"`
	LoggedAt  time.Time `bson:"logged_at"`
	Date      string    `bson:"date"`
	CreatedAt time.Time `bson:"created_at"`
}

type waterEntryDoc struct {
	ID       string    `bson:"id"`
	AmountML int       `bson:"amount_ml"`
	Time     time.Time `bson:"time"`
}

type waterLogDoc struct {
	ID        string          `bson:"_id"`
	UserID    string          `bson:"user_id"`
	Date      string          `bson:"date"`
	TotalML   int             `bson:"total_ml"`
	Entries   []waterEntryDoc `bson:"entries"`
	CreatedAt time.Time       `bson:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at"`
}

type foodItemDoc struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Calories   float64   `bson:"calories"`
	Protein    float64   `bson:"protein"`
	Carbs      float64   `bson:"carbs"`
	Fat        float64   `bson:"fat"`
	Fiber      float64   `bson:"fiber"`
	Serving    string    `bson:"serving"`
	Category   string    `bson:"category"`
	Source     string    `bson:"source"`
	CreatedBy  string    `bson:"created_by,omitempty"`
	Popularity int       `bson:"popularity"`
	CreatedAt  time.Time `bson:"created_at"`
}

func newFoodItemDoc(item domain.FoodItem) foodItemDoc {
	return foodItemDoc{
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

func (d foodItemDoc) domain() domain.FoodItem {
	return domain.FoodItem{
		ID:         d.ID,
		Name:       d.Name,
		Calories:   d.Calories,
		Protein:    d.Protein,
		Carbs:      d.Carbs,
		Fat:        d.Fat,
		Fiber:      d.Fiber,
		Serving:    d.Serving,
		Category:   d.Category,
		Source:     d.Source,
		CreatedBy:  d.CreatedBy,
		Popularity: d.Popularity,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}
