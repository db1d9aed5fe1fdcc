package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Transient PostgreSQL error codes worth retrying. Meeting processing runs
// multi-table transactions, so deadlocks are possible under concurrent
// submissions.
const (
	codeDeadlockDetected     = "40P01"
	codeSerializationFailure = "40001"
)

// Retrier implements usecase.Retrier with exponential backoff.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

// NewRetrier creates a retrier with default settings.
func NewRetrier() *Retrier {
	return &Retrier{
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  10 * time.Second,
	}
}

// Retry executes an operation, retrying on transient database errors.
// Non-retryable errors are returned immediately.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	attempts := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}

		attempts++
		if attempts > r.maxRetries {
			return backoff.Permanent(err)
		}

		log.Warn().
			Err(err).
			Int("attempt", attempts).
			Msg("retrying transient database error")

		return err
	}, backoff.WithContext(b, ctx))
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeDeadlockDetected, codeSerializationFailure:
			return true
		}
	}

	return false
}
