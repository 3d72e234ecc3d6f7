package shopify

import (
	"context"
	"fmt"
	"strings"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
)

type client struct {
	transport *transport
	logger    zerolog.Logger
}

// NewClient creates a commerce client bound to one store and access token.
// storeName may be the bare store handle or the full myshopify domain.
func NewClient(storeName, accessToken, apiVersion string, retry RetryConfig, logger zerolog.Logger) ports.CommerceClient {
	apiURL := fmt.Sprintf(
		"https://%s.myshopify.com/admin/api/%s/graphql.json",
		strings.TrimSuffix(strings.TrimPrefix(storeName, "https://"), ".myshopify.com"),
		apiVersion,
	)
	return &client{
		transport: newTransport(apiURL, accessToken, retry, logger),
		logger:    logger,
	}
}

// newClientForURL is used by tests to point the transport at a local server.
func newClientForURL(apiURL, accessToken string, retry RetryConfig, logger zerolog.Logger) *client {
	return &client{
		transport: newTransport(apiURL, accessToken, retry, logger),
		logger:    logger,
	}
}

func (c *client) Orders(ctx context.Context) ([]*domain.Order, error) {
	var data ordersData
	if err := c.transport.do(ctx, "orders", queryOrders, nil, &data); err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(data.Orders.Edges))
	for _, e := range data.Orders.Edges {
		orders = append(orders, e.Node.ToDomain())
	}
	return orders, nil
}

func (c *client) OrderIDByName(ctx context.Context, name string) (string, error) {
	variables := map[string]any{"query": fmt.Sprintf("name:%s", name)}

	var data ordersData
	if err := c.transport.do(ctx, "order_id_by_name", queryOrderIDByName, variables, &data); err != nil {
		return "", err
	}
	if len(data.Orders.Edges) == 0 {
		return "", fmt.Errorf("order %s: %w", name, domain.ErrNotFound)
	}
	return data.Orders.Edges[0].Node.ID, nil
}

func (c *client) Order(ctx context.Context, id string, mode domain.OrderQueryMode) (*domain.Order, error) {
	query := queryOrderSearch
	operation := "order_search"
	if mode == domain.OrderModeDetails {
		query = queryOrderDetails
		operation = "order_details"
	}

	var data orderData
	if err := c.transport.do(ctx, operation, query, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Order == nil {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return data.Order.ToDomain(), nil
}

func (c *client) OrderStatus(ctx context.Context, orderName string) (*domain.Order, error) {
	variables := map[string]any{"query": fmt.Sprintf("name:%s", orderName)}

	var data ordersData
	if err := c.transport.do(ctx, "order_status", queryOrderStatus, variables, &data); err != nil {
		return nil, err
	}
	if len(data.Orders.Edges) == 0 {
		return nil, fmt.Errorf("order %s: %w", orderName, domain.ErrNotFound)
	}
	return data.Orders.Edges[0].Node.ToDomain(), nil
}

func (c *client) ProductByQuery(ctx context.Context, query string) (*domain.Product, error) {
	variables := map[string]any{"query": query}

	var data productsData
	if err := c.transport.do(ctx, "product_details", queryProductDetails, variables, &data); err != nil {
		return nil, err
	}
	if len(data.Products.Edges) == 0 {
		return nil, fmt.Errorf("product %q: %w", query, domain.ErrNotFound)
	}
	return data.Products.Edges[0].Node.toDomain(), nil
}

func (c *client) TrackingLink(ctx context.Context, orderName string) (string, error) {
	variables := map[string]any{"query": fmt.Sprintf("name:%s", orderName)}

	var data ordersData
	if err := c.transport.do(ctx, "tracking_link", queryTrackingLink, variables, &data); err != nil {
		return "", err
	}
	if len(data.Orders.Edges) == 0 {
		return "", fmt.Errorf("order %s: %w", orderName, domain.ErrNotFound)
	}

	for _, f := range data.Orders.Edges[0].Node.Fulfillments {
		for _, t := range f.TrackingInfo {
			if t.URL != "" {
				return t.URL, nil
			}
		}
	}
	return "", fmt.Errorf("tracking link for order %s: %w", orderName, domain.ErrNotFound)
}

func (c *client) OnlineStoreURL(ctx context.Context, sku string) (string, error) {
	variables := map[string]any{"query": fmt.Sprintf("sku:%s", sku)}

	var data productsData
	if err := c.transport.do(ctx, "online_store_url", queryOnlineStoreURL, variables, &data); err != nil {
		return "", err
	}
	if len(data.Products.Edges) == 0 || data.Products.Edges[0].Node.OnlineStoreURL == nil {
		return "", fmt.Errorf("product with sku %s: %w", sku, domain.ErrNotFound)
	}
	return *data.Products.Edges[0].Node.OnlineStoreURL, nil
}
