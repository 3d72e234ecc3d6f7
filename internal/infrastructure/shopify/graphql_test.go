package shopify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"voice-commerce-gateway/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{Retries: 2, Timeout: 50 * time.Millisecond}
}

func TestDoSucceedsWithoutRetry(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`{"data": {"orders": {"edges": []}}}`))
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, "token", fastRetry(), zerolog.Nop())
	var data ordersData
	err := tr.do(context.Background(), "orders", queryOrders, nil, &data)

	require.NoError(t, err)
	assert.Equal(t, int32(1), attempts.Load(), "a successful first call must not retry")
}

func TestDoRetriesTimeoutsThenExhausts(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, "token", fastRetry(), zerolog.Nop())
	err := tr.do(context.Background(), "orders", queryOrders, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, int32(3), attempts.Load(), "two extra attempts after the first")
}

func TestDoGraphQLErrorRaisesImmediately(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`{"errors": [{"message": "Field 'bogus' doesn't exist"}]}`))
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, "token", fastRetry(), zerolog.Nop())
	err := tr.do(context.Background(), "orders", queryOrders, nil, nil)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "orders", apiErr.Operation)
	assert.Equal(t, int32(1), attempts.Load(), "API-level errors must not consume a retry")
}

func TestDoStatusErrorRaisesImmediately(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, "token", fastRetry(), zerolog.Nop())
	err := tr.do(context.Background(), "orders", queryOrders, nil, nil)

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestOrderStatusMapsEmptyEdgesToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"orders": {"edges": []}}}`))
	}))
	defer srv.Close()

	c := newClientForURL(srv.URL, "token", fastRetry(), zerolog.Nop())
	_, err := c.OrderStatus(context.Background(), "#1001")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStatusDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"data": {
				"orders": {
					"edges": [{
						"node": {
							"name": "#1001",
							"lineItems": {"edges": [{"node": {
								"name": "Red Sports Ride-On Car",
								"currentQuantity": 2,
								"originalUnitPriceSet": {"shopMoney": {"amount": "199.99", "currencyCode": "USD"}}
							}}]},
							"currentSubtotalLineItemsQuantity": 2,
							"currentSubtotalPriceSet": {"shopMoney": {"amount": "399.98", "currencyCode": "USD"}},
							"currentTotalWeight": "42",
							"paymentGatewayNames": ["shopify_payments"],
							"fulfillments": [{
								"displayStatus": "DELIVERED",
								"deliveredAt": "2024-02-03T10:00:00Z",
								"trackingInfo": [{"company": "UPS", "number": "1Z999", "url": "https://t.example/1Z999"}]
							}],
							"displayFinancialStatus": "PAID",
							"returnStatus": "NO_RETURN",
							"cancellation": null,
							"cancelReason": null,
							"cancelledAt": null,
							"createdAt": "2024-01-10T08:00:00Z",
							"closedAt": "2024-02-03T10:00:00Z"
						}
					}]
				}
			}
		}`))
	}))
	defer srv.Close()

	c := newClientForURL(srv.URL, "token", fastRetry(), zerolog.Nop())
	order, err := c.OrderStatus(context.Background(), "#1001")

	require.NoError(t, err)
	assert.Equal(t, "#1001", order.Name)
	assert.False(t, order.Cancelled)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, 2, order.LineItems[0].Quantity)
	require.NotNil(t, order.LineItems[0].UnitPrice)
	assert.Equal(t, "USD", order.LineItems[0].UnitPrice.CurrencyCode)
	require.Len(t, order.Fulfillments, 1)
	assert.Equal(t, "DELIVERED", order.Fulfillments[0].DisplayStatus)
	require.Len(t, order.Fulfillments[0].Tracking, 1)
	assert.Equal(t, "UPS", order.Fulfillments[0].Tracking[0].Company)
}
