package usecase

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 5 * time.Second
)

// Retrier runs an operation up to MaxAttempts times with a fixed delay
// between failures. The last failure is returned wrapped.
type Retrier struct {
	maxAttempts int
	delay       time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

type RetrierOption func(*Retrier)

// WithSleepFunc replaces the inter-attempt wait; tests use it to avoid real delays.
func WithSleepFunc(fn func(ctx context.Context, d time.Duration) error) RetrierOption {
	return func(r *Retrier) {
		r.sleep = fn
	}
}

func NewRetrier(maxAttempts int, delay time.Duration, opts ...RetrierOption) *Retrier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if delay < 0 {
		delay = 0
	}
	r := &Retrier{maxAttempts: maxAttempts, delay: delay, sleep: sleepContext}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Retrier) MaxAttempts() int { return r.maxAttempts }

// Do calls op until it succeeds or attempts run out. A cancelled context
// stops the wait between attempts.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if lastErr = op(ctx); lastErr == nil {
			return nil
		}
		if attempt == r.maxAttempts {
			break
		}
		if err := r.sleep(ctx, r.delay); err != nil {
			return fmt.Errorf("gave up after %d attempt(s): %w", attempt, lastErr)
		}
	}
	return fmt.Errorf("gave up after %d attempt(s): %w", r.maxAttempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
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
