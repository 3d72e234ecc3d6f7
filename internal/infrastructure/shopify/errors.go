package shopify

import (
	"errors"
	"fmt"
)

// ErrRetriesExhausted reports that every transport attempt failed. It wraps
// nothing deliberately: the individual attempt errors were already logged.
var ErrRetriesExhausted = errors.New("failed to send request after multiple attempts")

// GraphQLError is one entry of a GraphQL-level errors array.
type GraphQLError struct {
	Message string `json:"message"`
}

// APIError reports a GraphQL-level error returned with a 200 response. It is
// raised immediately and never consumes a retry.
type APIError struct {
	Operation string
	Errors    []GraphQLError
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("shopify api error on %s: %s", e.Operation, e.Errors[0].Message)
	}
	return fmt.Sprintf("shopify api error on %s", e.Operation)
}

// StatusError reports a non-2xx HTTP response from the commerce API. Raised
// immediately without retry.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("shopify returned status %d on %s", e.StatusCode, e.Operation)
}
