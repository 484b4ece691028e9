package interfaces

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"github.com/vladimiradmaev/dietlog/internal/services"
)

// UserServiceInterface defines the contract for account and profile operations
type UserServiceInterface interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update services.ProfileUpdate) (*domain.User, error)
}

// FoodServiceInterface defines the contract for food catalog operations
type FoodServiceInterface interface {
	Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error)
	CreateCustom(ctx context.Context, userID string, in services.CustomFoodInput) (*domain.FoodItem, error)
}

// FoodLogServiceInterface defines the contract for food log operations
type FoodLogServiceInterface interface {
	Create(ctx context.Context, userID string, in services.FoodLogInput) (*domain.FoodLog, error)
	List(ctx context.Context, userID string, date datekey.Key) ([]domain.FoodLog, error)
	Delete(ctx context.Context, userID, id string) error
	Recent(ctx context.Context, userID string) ([]domain.RecentFood, error)
}

// WeightServiceInterface defines the contract for weight log operations
type WeightServiceInterface interface {
	Create(ctx context.Context, userID string, in services.WeightInput) (*domain.WeightLog, error)
	List(ctx context.Context, userID string, limit int) ([]domain.WeightLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// WaterServiceInterface defines the contract for water ledger operations
type WaterServiceInterface interface {
	Add(ctx context.Context, user *domain.User, amountML int, date datekey.Key) (*domain.WaterView, error)
	UndoLast(ctx context.Context, user *domain.User, date datekey.Key) (*domain.WaterView, error)
	Get(ctx context.Context, user *domain.User, date datekey.Key) (*domain.WaterView, error)
}

// DashboardServiceInterface defines the contract for the daily view
type DashboardServiceInterface interface {
	Daily(ctx context.Context, user *domain.User, date datekey.Key) (*domain.Dashboard, error)
}

// StatsServiceInterface defines the contract for the weekly view
type StatsServiceInterface interface {
	Weekly(ctx context.Context, user *domain.User) (*domain.WeeklyStats, error)
}

// Services bundles every service the surfaces depend on.
type Services struct {
	Users     UserServiceInterface
	Foods     FoodServiceInterface
	FoodLogs  FoodLogServiceInterface
	Weights   WeightServiceInterface
	Water     WaterServiceInterface
	Dashboard DashboardServiceInterface
	Stats     StatsServiceInterface
}
