// Package clock holds the time helpers shared by the ledger-facing components.
package clock

import (
	"context"
	"time"
)

// StampLayout is the millisecond UTC form used for timestamps written to the ledger.
const StampLayout = "2006-01-02T15:04:05.000Z07:00"

// Stamp formats t in UTC with millisecond precision.
func Stamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}

// Sleep waits for d or until ctx is done. A non-positive d only checks ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Every calls fn once per interval until ctx is done, and returns ctx's error.
func Every(ctx context.Context, interval time.Duration, fn func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn()
		}
	}
}
