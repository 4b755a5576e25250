package apiclient

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryLinear runs fn with a fixed linear backoff between attempts. The
// client itself never retries beyond the single 401 resubmission; callers
// that want a retry policy for transient failures opt in through this
// helper and mark recoverable failures with MarkRetryable.
//
//	err := apiclient.RetryLinear(ctx, 3, 2*time.Second, func(ctx context.Context) error {
//	    _, err := workOrders.List(ctx, cmms.ListParams{})
//	    if apiclient.IsStatus(err, http.StatusServiceUnavailable) {
//	        return apiclient.MarkRetryable(err)
//	    }
//	    return err
//	})
func RetryLinear(ctx context.Context, maxRetries uint64, interval time.Duration, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(interval))
	return retry.Do(ctx, backoff, fn)
}

// MarkRetryable wraps an error so RetryLinear schedules another attempt.
// Unwrapped errors abort the retry loop immediately.
func MarkRetryable(err error) error {
	return retry.RetryableError(err)
}
