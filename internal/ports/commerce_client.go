package ports

import (
	"context"

	"voice-commerce-gateway/internal/domain"
)

// CommerceClient defines the operations this service needs from the
// storefront's GraphQL Admin API. Each operation is a single outbound call
// with a typed response; the client maps wire payloads to domain types.
type CommerceClient interface {
	// Orders lists recent orders with the flat display field set.
	Orders(ctx context.Context) ([]*domain.Order, error)

	// OrderIDByName resolves an order name (e.g. "#1001") to its GID.
	// Returns domain.ErrNotFound when the query matches no orders.
	OrderIDByName(ctx context.Context, name string) (string, error)

	// Order fetches one order by ID using the given query shape.
	Order(ctx context.Context, id string, mode domain.OrderQueryMode) (*domain.Order, error)

	// OrderStatus fetches the conversational status shape for an order name:
	// line items with prices, money sets, fulfillments with tracking, and
	// the cancellation record. Returns domain.ErrNotFound on zero edges.
	OrderStatus(ctx context.Context, orderName string) (*domain.Order, error)

	// ProductByQuery fetches one product matching a search query
	// (e.g. `title:Red Sports Ride-On Car`). Returns domain.ErrNotFound on
	// zero edges.
	ProductByQuery(ctx context.Context, query string) (*domain.Product, error)

	// TrackingLink returns the first fulfillment's tracking URL for an
	// order name, or domain.ErrNotFound.
	TrackingLink(ctx context.Context, orderName string) (string, error)

	// OnlineStoreURL returns the online store URL of the product holding
	// the given SKU, or domain.ErrNotFound.
	OnlineStoreURL(ctx context.Context, sku string) (string, error)
}

// CommerceClientPool hands out commerce clients keyed by store name so
// concurrent requests for different shops never share or overwrite a handle.
type CommerceClientPool interface {
	GetClient(ctx context.Context, storeName string, accessToken string) (CommerceClient, error)
}
