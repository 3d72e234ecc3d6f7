package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// transport executes GraphQL operations against one store's Admin API
// endpoint. It holds no state beyond the HTTP client and its headers.
type transport struct {
	apiURL      string
	accessToken string
	httpClient  *http.Client
	retry       RetryConfig
	logger      zerolog.Logger
}

func newTransport(apiURL, accessToken string, retry RetryConfig, logger zerolog.Logger) *transport {
	return &transport{
		apiURL:      apiURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
		retry:       retry,
		logger:      logger,
	}
}

type requestBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type responseEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// transportError marks a failure below the HTTP response: timeout,
// connection refused, truncated body. Only these are retried.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// do sends one operation and decodes its data payload into out. Transport
// failures are retried up to retry.Retries additional times, immediately and
// without backoff; a non-2xx status or a GraphQL errors array is surfaced at
// once without consuming a retry.
func (t *transport) do(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(requestBody{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	attempts := t.retry.Retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		data, err := t.send(ctx, operation, payload)
		if err != nil {
			var tErr *transportError
			if errors.As(err, &tErr) {
				commerceRequests.WithLabelValues(operation, outcomeTransport).Inc()
				t.logger.Warn().
					Err(err).
					Str("operation", operation).
					Int("attempt", attempt).
					Int("max_attempts", attempts).
					Msg("Shopify request failed, retrying")
				continue
			}

			var apiErr *APIError
			if errors.As(err, &apiErr) {
				commerceRequests.WithLabelValues(operation, outcomeAPI).Inc()
			} else {
				commerceRequests.WithLabelValues(operation, outcomeStatus).Inc()
			}
			t.logger.Error().Err(err).Str("operation", operation).Msg("Shopify returned an error")
			return err
		}

		commerceRequests.WithLabelValues(operation, outcomeOK).Inc()
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", operation, err)
		}
		return nil
	}

	commerceRequests.WithLabelValues(operation, outcomeExhausted).Inc()
	return fmt.Errorf("%s: %w", operation, ErrRetriesExhausted)
}

// send performs a single attempt and returns the raw data payload.
func (t *transport) send(ctx context.Context, operation string, payload []byte) (json.RawMessage, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, t.retry.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, t.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", t.accessToken)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Operation: operation, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, &APIError{Operation: operation, Errors: envelope.Errors}
	}

	return envelope.Data, nil
}
