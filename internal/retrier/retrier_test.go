package retrier

import (
	"context"
	"errors"
	"testing"
	"time"
)

func instantSleeper(slept *[]time.Duration) Sleeper {
	return func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var slept []time.Duration
	r := &Retrier{Attempts: 3, Delay: 500 * time.Millisecond, Sleep: instantSleeper(&slept)}
	calls := 0
	err := r.Do(context.Background(), func(context.Context, int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || len(slept) != 0 {
		t.Fatalf("calls = %d, sleeps = %d", calls, len(slept))
	}
}

func TestDoRetriesWithFixedDelay(t *testing.T) {
	var slept []time.Duration
	r := &Retrier{Attempts: 3, Delay: 500 * time.Millisecond, Sleep: instantSleeper(&slept)}
	attempts := []int{}
	err := r.Do(context.Background(), func(_ context.Context, attempt int) error {
		attempts = append(attempts, attempt)
		if attempt < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(attempts) != 3 || attempts[0] != 1 || attempts[2] != 3 {
		t.Fatalf("attempts = %v", attempts)
	}
	if len(slept) != 2 {
		t.Fatalf("sleeps = %d, want 2", len(slept))
	}
	for _, d := range slept {
		if d != 500*time.Millisecond {
			t.Fatalf("delay = %v, want fixed 500ms", d)
		}
	}
}

func TestDoExhaustionReturnsLastError(t *testing.T) {
	var slept []time.Duration
	r := &Retrier{Attempts: 3, Delay: time.Millisecond, Sleep: instantSleeper(&slept)}
	last := errors.New("attempt 3")
	calls := 0
	err := r.Do(context.Background(), func(_ context.Context, attempt int) error {
		calls++
		if attempt == 3 {
			return last
		}
		return errors.New("earlier")
	})
	if !errors.Is(err, last) {
		t.Fatalf("err = %v, want the final attempt's error", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want exactly 3", calls)
	}
}

func TestDoStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(3, 10*time.Millisecond)
	calls := 0
	err := r.Do(ctx, func(context.Context, int) error {
		calls++
		cancel()
		return errors.New("fail")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestNewClampsAttempts(t *testing.T) {
	r := New(0, time.Second)
	if r.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", r.Attempts)
	}
}
