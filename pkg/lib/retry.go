package lib

import (
	"context"
	"time"
)

// Retry runs fn up to maxAttempts times, sleeping baseDelay * 2^(n-1)
// before retry n. It returns the first successful result, or the last
// error once attempts are exhausted. Context cancellation aborts the
// wait between attempts.
func Retry[T any](ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		result T
		err    error
	)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err = fn(ctx)
		if err == nil {
			return result, nil
		}

		if attempt == maxAttempts {
			break
		}

		delay := baseDelay << (attempt - 1)
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(delay):
		}
	}

	return result, err
}
