package shopify

import "time"

// RetryConfig bounds the transport's retry behaviour. Retries are immediate
// and blind: no backoff, no jitter. Only transport-level failures (timeouts,
// connection errors) are retried; API-level errors never are.
type RetryConfig struct {
	// Retries is the number of additional attempts after the first.
	Retries int
	// Timeout applies per attempt, not to the whole operation.
	Timeout time.Duration
}

// DefaultRetryConfig mirrors the production defaults: two extra attempts,
// three seconds per call.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Retries: 2,
		Timeout: 3 * time.Second,
	}
}
