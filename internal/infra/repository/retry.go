package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
)

const (
	maxStoreAttempts = 3
	retryBackoffStep = 100 * time.Millisecond
)

// withRetry reexecuta a operação quando a falha é de conexão, com
// backoff linear (100ms, 200ms). Violações de constraint e registros
// ausentes propagam imediatamente, sem retry.
func withRetry(ctx context.Context, op func() error) error {
	var err error

	for attempt := 1; attempt <= maxStoreAttempts; attempt++ {
		err = op()
		if err == nil || !httperr.IsTransient(err) {
			return err
		}

		if attempt == maxStoreAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoffStep):
		}
	}

	return err
}
