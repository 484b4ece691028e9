package domain

import (
	"time"

	"github.com/vladimiradmaev/dietlog/internal/datekey"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
)

// WaterEntry is a single addition to a day's water ledger.
type WaterEntry struct {
	ID       string    `json:"id"`
	AmountML int       `json:"amount_ml"`
	Time     time.Time `json:"time"`
}

// WaterLog is the per-user, per-day water ledger. TotalML always equals the
// sum of the entries' amounts, clamped at zero.
type WaterLog struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Date      datekey.Key  `json:"date"`
	TotalML   int          `json:"total_ml"`
	Entries   []WaterEntry `json:"entries"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewWaterLog returns an empty ledger for (userID, date).
func NewWaterLog(id, userID string, date datekey.Key, now time.Time) *WaterLog {
	return &WaterLog{
		ID:        id,
		UserID:    userID,
		Date:      date,
		Entries:   []WaterEntry{},
		CreatedAt: now,
	}
}

// Add appends entry and grows the total.
func (w *WaterLog) Add(entry WaterEntry) error {
	if entry.AmountML <= 0 {
		return apperrors.NewValidationError("amount_ml must be a positive integer")
	}
	w.Entries = append(w.Entries, entry)
	w.TotalML += entry.AmountML
	return nil
}

// UndoLast removes the most recently inserted entry.
func (w *WaterLog) UndoLast() (WaterEntry, error) {
	if w == nil || len(w.Entries) == 0 {
		return WaterEntry{}, apperrors.NewNotFoundError("No water entry found to remove")
	}
	last := w.Entries[len(w.Entries)-1]
	w.Entries = w.Entries[:len(w.Entries)-1]
	w.TotalML -= last.AmountML
	if w.TotalML < 0 {
		w.TotalML = 0
	}
	return last, nil
}
