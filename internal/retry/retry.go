// Package retry provides a small retry-with-backoff utility shared by the
// data clients.
package retry

import (
	"context"
	"time"
)

// BackoffFunc returns the sleep duration before retrying after the given
// attempt (1-based).
type BackoffFunc func(attempt int) time.Duration

// Linear returns a backoff that grows by step per attempt: step, 2*step, ...
func Linear(step time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// Policy bounds a retryable operation.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// Backoff computes the sleep before the next attempt. Nil means no
	// sleep between attempts.
	Backoff BackoffFunc

	// Retryable reports whether an error is worth another attempt.
	// Nil means every error is retried up to MaxAttempts.
	Retryable func(error) bool

	// sleep is overridable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Do runs fn until it succeeds, returns a non-retryable error, or exhausts
// MaxAttempts. The last error is returned unwrapped so callers can classify
// it. Context cancellation aborts the backoff sleep.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		if p.Backoff != nil {
			if serr := sleep(ctx, p.Backoff(attempt)); serr != nil {
				return err
			}
		}
	}
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
