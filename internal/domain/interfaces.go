package domain

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
)

// Repository errors are *errors.AppError values: missing records are
// not_found, driver failures are unavailable.

// UserRepository stores accounts and profiles.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*User, error)
	Update(ctx context.Context, user *User) error
	SetCurrentWeight(ctx context.Context, userID string, weight float64) error
}

// FoodLogRepository stores food log entries.
type FoodLogRepository interface {
	Create(ctx context.Context, log *FoodLog) error
	// ListByDate returns the day's entries by ascending LoggedAt. limit <= 0 means no limit.
	ListByDate(ctx context.Context, userID string, date datekey.Key, limit int) ([]FoodLog, error)
	CountByDate(ctx context.Context, userID string, date datekey.Key) (int64, error)
	// Delete removes an entry owned by userID.
	Delete(ctx context.Context, userID, id string) error
	// RecentFoods returns the newest entry per distinct food name, newest first.
	// limit <= 0 means no limit.
	RecentFoods(ctx context.Context, userID string, limit int) ([]RecentFood, error)
}

// WeightLogRepository stores weight measurements.
type WeightLogRepository interface {
	Create(ctx context.Context, log *WeightLog) error
	// ListRecent returns entries by descending LoggedAt.
	ListRecent(ctx context.Context, userID string, limit int) ([]WeightLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// WaterLogRepository stores one ledger per (user, day).
type WaterLogRepository interface {
	// Get returns nil and no error when the day has no ledger.
	Get(ctx context.Context, userID string, date datekey.Key) (*WaterLog, error)
	// Save upserts the ledger keyed by (UserID, Date).
	Save(ctx context.Context, log *WaterLog) error
}

// FoodItemRepository stores the food catalog.
type FoodItemRepository interface {
	// Search matches name case-insensitively, ordered by popularity descending.
	Search(ctx context.Context, query string, limit int) ([]FoodItem, error)
	Create(ctx context.Context, item *FoodItem) error
	CreateBatch(ctx context.Context, items []FoodItem) error
	Count(ctx context.Context) (int64, error)
}

// Stores bundles the repositories of one backend.
type Stores struct {
	Users      UserRepository
	FoodLogs   FoodLogRepository
	WeightLogs WeightLogRepository
	WaterLogs  WaterLogRepository
	FoodItems  FoodItemRepository
	Close      func(ctx context.Context) error
}
