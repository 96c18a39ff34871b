package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetrier_Do(t *testing.T) {
	t.Run("succeeds on second attempt", func(t *testing.T) {
		sleeps := &sleepRecorder{}
		r := NewRetrier(3, 5*time.Second, WithSleepFunc(sleeps.sleep))

		calls := 0
		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			if calls == 1 {
				return errors.New("smtp 421")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if calls != 2 || sleeps.count() != 1 {
			t.Fatalf("expected 2 calls and 1 sleep, got %d and %d", calls, sleeps.count())
		}
		if sleeps.calls[0] != 5*time.Second {
			t.Fatalf("expected fixed 5s delay, got %s", sleeps.calls[0])
		}
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		sleeps := &sleepRecorder{}
		r := NewRetrier(3, time.Second, WithSleepFunc(sleeps.sleep))
		last := errors.New("third")

		calls := 0
		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			if calls == 3 {
				return last
			}
			return errors.New("earlier")
		})
		if !errors.Is(err, last) {
			t.Fatalf("expected last error, got %v", err)
		}
		if calls != 3 || sleeps.count() != 2 {
			t.Fatalf("expected 3 calls and 2 sleeps, got %d and %d", calls, sleeps.count())
		}
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		r := NewRetrier(5, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		err := r.Do(ctx, func(context.Context) error {
			calls++
			cancel()
			return errors.New("boom")
		})
		if err == nil || calls != 1 {
			t.Fatalf("expected one call and an error, got %d calls, err=%v", calls, err)
		}
	})

	t.Run("at least one attempt", func(t *testing.T) {
		r := NewRetrier(0, 0)
		if r.MaxAttempts() != 1 {
			t.Fatalf("expected 1, got %d", r.MaxAttempts())
		}
	})
}
