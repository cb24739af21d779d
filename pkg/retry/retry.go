package retry

import (
	"context"
	"fmt"
	"time"

	"cctv_estimator/pkg/logger"

	"go.uber.org/zap"
)

// Config holds the parameters for the retry strategy.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      logger.Logger
}

// Do executes fn with exponential back-off until it succeeds, the attempts
// run out or ctx is done.
func (r Config) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := r.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		if r.Logger != nil {
			r.Logger.Warn("[retry] operation failed, retrying",
				zap.String("operation", operation),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", attempts),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s interrupted after %d attempts: %w", operation, attempt, ctx.Err())
		case <-timer.C:
		}
		delay *= 2
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, attempts, lastErr)
}
