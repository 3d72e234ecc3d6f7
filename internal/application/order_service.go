package application

import (
	"context"
	"fmt"
	"strings"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// OrderService serves the storefront order pages. Every operation resolves a
// per-shop commerce client from the token store; nothing is cached between
// requests except the pooled clients themselves.
type OrderService struct {
	tokens     ports.TokenStore
	encryption ports.EncryptionService
	pool       ports.CommerceClientPool
	logger     zerolog.Logger
}

// NewOrderService creates the storefront order service.
func NewOrderService(
	tokens ports.TokenStore,
	encryption ports.EncryptionService,
	pool ports.CommerceClientPool,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		tokens:     tokens,
		encryption: encryption,
		pool:       pool,
		logger:     logger,
	}
}

// resolveShopDomain falls back to the most recently sorted installed shop
// when the request did not name one, which keeps single-tenant installs
// working without a shop query parameter.
func (s *OrderService) resolveShopDomain(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	shops, err := s.tokens.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list installed shops: %w", err)
	}
	if len(shops) == 0 {
		return "", domain.ErrUnauthorized
	}
	return shops[len(shops)-1].Domain, nil
}

// clientFor returns a commerce client for the shop, decrypting its stored
// token at the point of use.
func (s *OrderService) clientFor(ctx context.Context, shopDomain string) (ports.CommerceClient, error) {
	shop, err := s.tokens.Get(ctx, shopDomain)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop %s: %w", shopDomain, err)
	}
	if shop == nil {
		return nil, fmt.Errorf("shop %s is not installed: %w", shopDomain, domain.ErrUnauthorized)
	}

	token, err := s.encryption.Decrypt(shop.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token for %s: %w", shopDomain, err)
	}

	storeName, _, _ := strings.Cut(shopDomain, ".")
	return s.pool.GetClient(ctx, storeName, token)
}

// IndexRows lists recent orders as order table rows.
func (s *OrderService) IndexRows(ctx context.Context, shopDomain string) ([]OrderRow, error) {
	shopDomain, err := s.resolveShopDomain(ctx, shopDomain)
	if err != nil {
		return nil, err
	}
	client, err := s.clientFor(ctx, shopDomain)
	if err != nil {
		return nil, err
	}

	orders, err := client.Orders(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]OrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderRow(order))
	}
	return rows, nil
}

// SearchOrder finds one order by name and returns it as a table row with the
// expanded address block.
func (s *OrderService) SearchOrder(ctx context.Context, shopDomain, orderName string) (*OrderRow, error) {
	shopDomain, err := s.resolveShopDomain(ctx, shopDomain)
	if err != nil {
		return nil, err
	}
	client, err := s.clientFor(ctx, shopDomain)
	if err != nil {
		return nil, err
	}

	id, err := client.OrderIDByName(ctx, orderName)
	if err != nil {
		return nil, err
	}
	order, err := client.Order(ctx, id, domain.OrderModeSearch)
	if err != nil {
		return nil, err
	}

	row := orderRow(order)
	row.DetailAddress = detailAddress(order.ShippingAddress)
	return &row, nil
}

// OrderDetails fetches the full detail page model for one order.
func (s *OrderService) OrderDetails(ctx context.Context, shopDomain, orderName string) (*OrderDetailView, error) {
	shopDomain, err := s.resolveShopDomain(ctx, shopDomain)
	if err != nil {
		return nil, err
	}
	client, err := s.clientFor(ctx, shopDomain)
	if err != nil {
		return nil, err
	}

	order, err := s.fetchDetails(ctx, client, orderName)
	if err != nil {
		return nil, err
	}

	return &OrderDetailView{
		No:                order.Name,
		Date:              order.CreatedAt,
		FulfillmentStatus: order.DisplayFulfillmentStatus,
		Items:             order.LineItems,
		Subtotal:          order.Subtotal.Amount,
		Additional:        order.Additional.Amount,
		Tax:               order.Tax.Amount,
		Shipping:          order.Shipping.Amount,
		Duties:            order.Duties.Amount,
		Discount:          order.Discount.Amount,
		Total:             order.Total.Amount,
		Paid:              order.Paid.Amount,
		Customer: CustomerView{
			Name:  CustomerDisplayName(order.Customer),
			Email: CustomerEmail(order.Customer),
			Phone: CustomerPhone(order.Customer),
		},
		ShippingAddress: AddressLine(order.ShippingAddress),
		DetailAddress:   detailAddress(order.ShippingAddress),
		PaymentStatus:   order.DisplayFinancialStatus,
	}, nil
}

// fetchDetails resolves the order name and loads the details query shape.
func (s *OrderService) fetchDetails(ctx context.Context, client ports.CommerceClient, orderName string) (*domain.Order, error) {
	id, err := client.OrderIDByName(ctx, orderName)
	if err != nil {
		return nil, err
	}
	return client.Order(ctx, id, domain.OrderModeDetails)
}
