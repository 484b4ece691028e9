// Package services implements the diet-tracking operations on top of the
// domain repositories.
package services

import (
	"math"

	"github.com/google/uuid"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
)

// IDFunc generates entity ids.
type IDFunc func() string

// Options are shared by every service constructor. Zero values select the
// system clock and random UUIDs.
type Options struct {
	Clock datekey.Clock
	NewID IDFunc
}

func (o Options) clock() datekey.Clock {
	if o.Clock == nil {
		return datekey.SystemClock{}
	}
	return o.Clock
}

func (o Options) newID() IDFunc {
	if o.NewID == nil {
		return uuid.NewString
	}
	return o.NewID
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
