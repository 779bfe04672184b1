package ai

import (
	"context"
	"errors"
	"log"
	"time"
)

const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 2 * time.Second
)

// RetryPolicy retries rate-limited calls with a fixed delay. Any other
// error is returned immediately.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
	Sleep    func(ctx context.Context, delay time.Duration) error
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: DefaultRetryAttempts, Delay: DefaultRetryDelay}
}

// Do returns the number of attempts made alongside the outcome.
func (policy RetryPolicy) Do(ctx context.Context, operation string, call func(context.Context) (Response, error)) (Response, int, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := policy.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		response, err := call(ctx)
		if err == nil {
			return response, attempt, nil
		}
		lastErr = err
		if !errors.Is(err, ErrRateLimited) || attempt == attempts {
			return Response{}, attempt, err
		}

		log.Printf("ai %s: rate limited on attempt %d/%d, retrying in %s", operation, attempt, attempts, policy.Delay)
		if err := sleep(ctx, policy.Delay); err != nil {
			return Response{}, attempt, err
		}
	}
	return Response{}, attempts, lastErr
}

func sleepContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
