package shopify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var commerceRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "commerce_api_requests_total",
		Help: "Outbound commerce API attempts by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

const (
	outcomeOK        = "ok"
	outcomeTransport = "transport_error"
	outcomeStatus    = "status_error"
	outcomeAPI       = "api_error"
	outcomeExhausted = "retries_exhausted"
)
