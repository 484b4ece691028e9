package services

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
)

const defaultWeightListLimit = 90

// WeightService records body weight.
type WeightService struct {
	logs  domain.WeightLogRepository
	users domain.UserRepository
	clock datekey.Clock
	newID IDFunc
}

func NewWeightService(logs domain.WeightLogRepository, users domain.UserRepository, opts Options) *WeightService {
	return &WeightService{logs: logs, users: users, clock: opts.clock(), newID: opts.newID()}
}

type WeightInput struct {
	Weight   float64 `json:"weight"`
	Note     string  `json:"note"`
	LoggedAt string  `json:"logged_at"`
}

// Create stores the measurement and makes it the user's current weight.
// The two writes are not transactional.
func (s *WeightService) Create(ctx context.Context, userID string, in WeightInput) (*domain.WeightLog, error) {
	if in.Weight <= 0 {
		return nil, apperrors.NewValidationError("Weight must be positive")
	}
	now := s.clock.Now()
	loggedAt := now
	if in.LoggedAt != "" {
		t, err := datekey.ParseTimestamp(in.LoggedAt)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		loggedAt = t
	}

	log := &domain.WeightLog{
		ID:        s.newID(),
		UserID:    userID,
		Weight:    in.Weight,
		Note:      in.Note,
		LoggedAt:  loggedAt,
		Date:      datekey.FromTime(loggedAt),
		CreatedAt: now,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, err
	}
	if err := s.users.SetCurrentWeight(ctx, userID, in.Weight); err != nil {
		return nil, err
	}
	return log, nil
}

// List returns the newest measurements first. limit <= 0 selects the default.
func (s *WeightService) List(ctx context.Context, userID string, limit int) ([]domain.WeightLog, error) {
	if limit <= 0 {
		limit = defaultWeightListLimit
	}
	return s.logs.ListRecent(ctx, userID, limit)
}

func (s *WeightService) Delete(ctx context.Context, userID, id string) error {
	return s.logs.Delete(ctx, userID, id)
}
