package repository

import (
	"context"
	"errors"

	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"gorm.io/gorm"
)

// NewStores wires every GORM repository onto db.
func NewStores(db *gorm.DB) *domain.Stores {
	return &domain.Stores{
		Users:      NewUserRepository(db),
		FoodLogs:   NewFoodLogRepository(db),
		WeightLogs: NewWeightLogRepository(db),
		WaterLogs:  NewWaterLogRepository(db),
		FoodItems:  NewFoodItemRepository(db),
		Close: func(context.Context) error {
			return database.Close(db)
		},
	}
}

// storeError converts a GORM error into an AppError. notFound is the message
// used when the record does not exist.
func storeError(err error, operation, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(notFound)
	default:
		return apperrors.NewUnavailableError(err, operation)
	}
}
