package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"gorm.io/gorm"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	rec := toUserRecord(user)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("Email already registered")
		}
		return apperrors.NewUnavailableError(err, "create user")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", strings.ToLower(email))
}

func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return r.first(ctx, "telegram_id = ?", telegramID)
}

func (r *UserRepository) first(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var rec database.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&rec).Error; err != nil {
		return nil, storeError(err, "find user", "User not found")
	}
	return fromUserRecord(rec), nil
}

// Update overwrites every profile column of the user. Only telegram_id can
// collide with another account, so a unique violation is reported as such.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	rec := toUserRecord(user)
	result := r.db.WithContext(ctx).Model(&database.User{ID: rec.ID}).Select("*").Omit("created_at").Updates(&rec)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflictError("Telegram account already linked")
	}
	if result.Error != nil {
		return apperrors.NewUnavailableError(result.Error, "update user")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) SetCurrentWeight(ctx context.Context, userID string, weight float64) error {
	err := r.db.WithContext(ctx).Model(&database.User{}).Where("id = ?", userID).Update("current_weight", weight).Error
	return storeError(err, "update current weight", "User not found")
}

func toUserRecord(u *domain.User) database.User {
	return database.User{
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
		CreatedAt:           u.CreatedAt,
	}
}

func fromUserRecord(rec database.User) *domain.User {
	return &domain.User{
		ID:                  rec.ID,
		Name:                rec.Name,
		Email:               rec.Email,
		PasswordHash:        rec.PasswordHash,
		Age:                 rec.Age,
		Gender:              rec.Gender,
		HeightCM:            rec.HeightCM,
		CurrentWeight:       rec.CurrentWeight,
		GoalWeight:          rec.GoalWeight,
		ActivityLevel:       rec.ActivityLevel,
		WeightLossRate:      rec.WeightLossRate,
		Units:               rec.Units,
		CalorieTarget:       rec.CalorieTarget,
		ProteinTarget:       rec.ProteinTarget,
		CarbsTarget:         rec.CarbsTarget,
		FatTarget:           rec.FatTarget,
		BMR:                 rec.BMR,
		TDEE:                rec.TDEE,
		WaterGoal:           rec.WaterGoal,
		OnboardingCompleted: rec.OnboardingCompleted,
		TelegramID:          rec.TelegramID,
		CreatedAt:           rec.CreatedAt.UTC(),
	}
}
