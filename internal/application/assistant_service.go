package application

import (
	"context"
	"fmt"
	"strings"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// AssistantService answers the voice assistant's webhook calls. It talks to
// one fixed storefront configured at startup rather than an installed shop,
// so a misrouted assistant call can never read another tenant's orders.
type AssistantService struct {
	pool        ports.CommerceClientPool
	mailer      ports.Mailer
	storeName   string
	accessToken string
	logger      zerolog.Logger
}

// NewAssistantService creates the assistant service bound to its store.
func NewAssistantService(
	pool ports.CommerceClientPool,
	mailer ports.Mailer,
	storeName string,
	accessToken string,
	logger zerolog.Logger,
) *AssistantService {
	return &AssistantService{
		pool:        pool,
		mailer:      mailer,
		storeName:   storeName,
		accessToken: accessToken,
		logger:      logger,
	}
}

func (s *AssistantService) client(ctx context.Context) (ports.CommerceClient, error) {
	return s.pool.GetClient(ctx, s.storeName, s.accessToken)
}

// OrderStatus fetches the order and renders its spoken status paragraph.
// The fetched order's name must match the requested number; a near miss from
// the search query reads as not found, not as someone else's order.
func (s *AssistantService) OrderStatus(ctx context.Context, orderNumber string) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	order, err := client.OrderStatus(ctx, orderNumber)
	if err != nil {
		return "", err
	}
	if !orderNameMatches(order.Name, orderNumber) {
		return "", fmt.Errorf("order %s did not match: %w", orderNumber, domain.ErrNotFound)
	}

	return OrderSpeech(order), nil
}

// ProductDetails fetches a product by title and renders its spoken summary.
func (s *AssistantService) ProductDetails(ctx context.Context, productName string) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	product, err := client.ProductByQuery(ctx, "title:"+productName)
	if err != nil {
		return "", err
	}
	return ProductSpeech(product), nil
}

// OrderEmailRequest carries the assistant-collected order summary fields.
type OrderEmailRequest struct {
	CustomerName     string
	CustomerEmail    string
	OrderNumber      string
	ItemsDescription string
	Subtotal         string
	Weight           string
	PaymentGateway   string
	Fulfillment      string
	Shipping         string
	FinancialStatus  string
	ReturnStatus     string
	Cancellation     string
	Tracking         string
	CancelReason     string
	CancelledAt      string
	CreatedAt        string
	ClosedAt         string
	Currency         string
}

// SendOrderEmail looks up the order's tracking link and relays the summary
// email. The send is fire-and-forget: a relay failure is logged and the
// tracking link is still reported back to the assistant.
func (s *AssistantService) SendOrderEmail(ctx context.Context, req *OrderEmailRequest) (string, error) {
	if req.CustomerEmail == "" {
		return "", fmt.Errorf("no customer email on file: %w", domain.ErrNotFound)
	}

	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	trackingLink, err := client.TrackingLink(ctx, req.OrderNumber)
	if err != nil {
		return "", err
	}

	email := &ports.OrderEmail{
		To:               req.CustomerEmail,
		CustomerName:     req.CustomerName,
		OrderNumber:      req.OrderNumber,
		ItemsDescription: req.ItemsDescription,
		Subtotal:         req.Subtotal,
		Weight:           req.Weight,
		PaymentGateway:   req.PaymentGateway,
		Fulfillment:      req.Fulfillment,
		Shipping:         req.Shipping,
		FinancialStatus:  req.FinancialStatus,
		ReturnStatus:     req.ReturnStatus,
		Cancellation:     req.Cancellation,
		Tracking:         req.Tracking,
		TrackingLink:     trackingLink,
		CancelReason:     req.CancelReason,
		CancelledAt:      req.CancelledAt,
		CreatedAt:        req.CreatedAt,
		ClosedAt:         req.ClosedAt,
		Currency:         req.Currency,
	}
	if err := s.mailer.SendOrderSummary(ctx, email); err != nil {
		s.logger.Error().Err(err).
			Str("order", req.OrderNumber).
			Msg("Order summary email failed")
	}

	return fmt.Sprintf("Tracking Link %s was sent", trackingLink), nil
}

func orderNameMatches(orderName, requested string) bool {
	return strings.TrimPrefix(orderName, "#") == strings.TrimPrefix(requested, "#")
}
