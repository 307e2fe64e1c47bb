package crm

import (
	"context"
	"time"

	"crm-reporting/internal/shared/loggers"
	"crm-reporting/internal/shared/svcerrors"
)

// retryPolicy replays an operation on transient remote failures with
// exponential backoff. Non-transient failures propagate immediately; once
// attempts are exhausted the last error is returned unchanged, so callers see
// the same classification a single-attempt failure would produce.
type retryPolicy struct {
	maxAttempts int
	baseWait    time.Duration
	maxWait     time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		maxAttempts: 3,
		baseWait:    2 * time.Second,
		maxWait:     10 * time.Second,
	}
}

func (p retryPolicy) do(ctx context.Context, endpoint string, op func(attempt int) error) error {
	wait := p.baseWait
	for attempt := 1; ; attempt++ {
		err := op(attempt)
		if err == nil {
			return nil
		}
		if !svcerrors.IsTransient(err) || attempt >= p.maxAttempts {
			return err
		}

		loggers.Ctx(ctx).Warn().
			Err(err).
			Str(loggers.FieldEndpoint, endpoint).
			Int(loggers.FieldAttempt, attempt).
			Dur(loggers.FieldDuration, wait).
			Msg("transient failure, retrying")
		metricRetriesTotal.WithLabelValues(endpoint).Inc()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		wait *= 2
		if wait > p.maxWait {
			wait = p.maxWait
		}
	}
}
