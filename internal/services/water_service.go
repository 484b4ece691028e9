package services

import (
	"context"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/keylock"
)

// WaterService maintains the per-day water ledgers. Add and UndoLast hold the
// (user, day) lock across their read-modify-write.
type WaterService struct {
	logs   domain.WaterLogRepository
	locker keylock.Locker
	clock  datekey.Clock
	newID  IDFunc
}

func NewWaterService(logs domain.WaterLogRepository, locker keylock.Locker, opts Options) *WaterService {
	if locker == nil {
		locker = keylock.NewMemoryLocker()
	}
	return &WaterService{logs: logs, locker: locker, clock: opts.clock(), newID: opts.newID()}
}

func (s *WaterService) day(date datekey.Key) datekey.Key {
	if date == "" {
		return datekey.Today(s.clock)
	}
	return date
}

// Add appends amountML to the user's ledger for date (today when empty).
func (s *WaterService) Add(ctx context.Context, user *domain.User, amountML int, date datekey.Key) (*domain.WaterView, error) {
	if amountML <= 0 {
		return nil, apperrors.NewValidationError("amount_ml must be a positive integer")
	}
	date = s.day(date)

	var view *domain.WaterView
	err := s.withLock(ctx, user.ID, date, func() error {
		log, err := s.logs.Get(ctx, user.ID, date)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		if log == nil {
			log = domain.NewWaterLog(s.newID(), user.ID, date, now)
		}
		if err := log.Add(domain.WaterEntry{ID: s.newID(), AmountML: amountML, Time: now}); err != nil {
			return err
		}
		if err := s.logs.Save(ctx, log); err != nil {
			return err
		}
		view = waterView(log, date, user.WaterGoal)
		return nil
	})
	return view, err
}

// UndoLast removes the most recently added entry for date.
func (s *WaterService) UndoLast(ctx context.Context, user *domain.User, date datekey.Key) (*domain.WaterView, error) {
	date = s.day(date)

	var view *domain.WaterView
	err := s.withLock(ctx, user.ID, date, func() error {
		log, err := s.logs.Get(ctx, user.ID, date)
		if err != nil {
			return err
		}
		removed, err := log.UndoLast()
		if err != nil {
			return err
		}
		if err := s.logs.Save(ctx, log); err != nil {
			return err
		}
		view = waterView(log, date, user.WaterGoal)
		view.RemovedEntry = &removed
		return nil
	})
	return view, err
}

// Get reads the ledger. A day without one reads as an empty ledger.
func (s *WaterService) Get(ctx context.Context, user *domain.User, date datekey.Key) (*domain.WaterView, error) {
	date = s.day(date)
	log, err := s.logs.Get(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}
	return waterView(log, date, user.WaterGoal), nil
}

func (s *WaterService) withLock(ctx context.Context, userID string, date datekey.Key, fn func() error) error {
	unlock, err := s.locker.Lock(ctx, keylock.WaterKey(userID, string(date)))
	if err != nil {
		return apperrors.NewUnavailableError(err, "lock water log")
	}
	defer unlock()
	return fn()
}

func waterView(log *domain.WaterLog, date datekey.Key, goal int) *domain.WaterView {
	view := &domain.WaterView{Date: date, GoalML: goal, Entries: []domain.WaterEntry{}}
	if log != nil {
		view.TotalML = log.TotalML
		view.Entries = append(view.Entries, log.Entries...)
	}
	return view
}

// waterTotal reads a day's total, zero when the day has no ledger.
func waterTotal(ctx context.Context, logs domain.WaterLogRepository, userID string, date datekey.Key) (int, error) {
	log, err := logs.Get(ctx, userID, date)
	if err != nil || log == nil {
		return 0, err
	}
	return log.TotalML, nil
}
