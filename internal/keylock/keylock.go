// Package keylock serializes work on a shared key such as one user's daily
// water ledger.
package keylock

import (
	"context"
	"fmt"
)

// Locker grants exclusive access to a key until the returned unlock is called.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// WaterKey names the lock guarding a user's ledger for one day.
func WaterKey(userID, date string) string {
	return fmt.Sprintf("water:%s:%s", userID, date)
}
