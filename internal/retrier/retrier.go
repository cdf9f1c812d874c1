// Package retrier is a minimal fixed-delay retry loop. No jitter, no
// backoff growth; the call sites here want a handful of quick retries
// against session-bound upstream state, not resilience theater.
package retrier

import (
	"context"
	"time"
)

// Sleeper pauses between attempts. The default honors context
// cancellation; tests inject an instant one.
type Sleeper func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Retrier runs an operation up to Attempts times with a fixed Delay
// between attempts.
type Retrier struct {
	Attempts int
	Delay    time.Duration
	Sleep    Sleeper
}

// New creates a Retrier with the default sleeper. attempts below 1 is
// treated as 1.
func New(attempts int, delay time.Duration) *Retrier {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrier{Attempts: attempts, Delay: delay, Sleep: defaultSleep}
}

// Do calls fn until it succeeds or attempts run out, passing the
// 1-based attempt number. Returns the last error on exhaustion.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	sleep := r.Sleep
	if sleep == nil {
		sleep = defaultSleep
	}
	var err error
	for attempt := 1; attempt <= r.Attempts; attempt++ {
		if attempt > 1 {
			if serr := sleep(ctx, r.Delay); serr != nil {
				return serr
			}
		}
		if err = fn(ctx, attempt); err == nil {
			return nil
		}
	}
	return err
}
