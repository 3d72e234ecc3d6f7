package application

import (
	"context"
	"testing"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommerceClient struct {
	order        *domain.Order
	product      *domain.Product
	trackingLink string
	err          error
}

func (f *fakeCommerceClient) Orders(ctx context.Context) ([]*domain.Order, error) {
	return []*domain.Order{f.order}, f.err
}

func (f *fakeCommerceClient) OrderIDByName(ctx context.Context, name string) (string, error) {
	return "gid://shopify/Order/1", f.err
}

func (f *fakeCommerceClient) Order(ctx context.Context, id string, mode domain.OrderQueryMode) (*domain.Order, error) {
	return f.order, f.err
}

func (f *fakeCommerceClient) OrderStatus(ctx context.Context, orderName string) (*domain.Order, error) {
	return f.order, f.err
}

func (f *fakeCommerceClient) ProductByQuery(ctx context.Context, query string) (*domain.Product, error) {
	return f.product, f.err
}

func (f *fakeCommerceClient) TrackingLink(ctx context.Context, orderName string) (string, error) {
	return f.trackingLink, f.err
}

func (f *fakeCommerceClient) OnlineStoreURL(ctx context.Context, sku string) (string, error) {
	return "", f.err
}

type fakePool struct {
	client ports.CommerceClient
}

func (f *fakePool) GetClient(ctx context.Context, storeName, accessToken string) (ports.CommerceClient, error) {
	return f.client, nil
}

type fakeMailer struct {
	sent []*ports.OrderEmail
	err  error
}

func (f *fakeMailer) SendOrderSummary(ctx context.Context, email *ports.OrderEmail) error {
	f.sent = append(f.sent, email)
	return f.err
}

func newAssistant(client *fakeCommerceClient, mailer ports.Mailer) *AssistantService {
	return NewAssistantService(&fakePool{client: client}, mailer, "trendtime", "token", zerolog.Nop())
}

func TestOrderStatusRejectsNameMismatch(t *testing.T) {
	// The search query matched a different order than the one asked for.
	client := &fakeCommerceClient{order: statusOrder()}
	svc := newAssistant(client, &fakeMailer{})

	_, err := svc.OrderStatus(context.Background(), "1002")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStatusSpeaksMatchingOrder(t *testing.T) {
	client := &fakeCommerceClient{order: statusOrder()}
	svc := newAssistant(client, &fakeMailer{})

	got, err := svc.OrderStatus(context.Background(), "1001")
	require.NoError(t, err)
	assert.Contains(t, got, "Your order #1001 includes")
}

func TestSendOrderEmailRequiresCustomerEmail(t *testing.T) {
	svc := newAssistant(&fakeCommerceClient{}, &fakeMailer{})

	_, err := svc.SendOrderEmail(context.Background(), &OrderEmailRequest{OrderNumber: "1001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSendOrderEmailReportsTrackingLink(t *testing.T) {
	client := &fakeCommerceClient{trackingLink: "https://track.example/1Z"}
	mailer := &fakeMailer{}
	svc := newAssistant(client, mailer)

	got, err := svc.SendOrderEmail(context.Background(), &OrderEmailRequest{
		OrderNumber:   "1001",
		CustomerEmail: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tracking Link https://track.example/1Z was sent", got)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].To)
	assert.Equal(t, "https://track.example/1Z", mailer.sent[0].TrackingLink)
}

func TestSendOrderEmailIgnoresRelayFailure(t *testing.T) {
	client := &fakeCommerceClient{trackingLink: "https://track.example/1Z"}
	mailer := &fakeMailer{err: assert.AnError}
	svc := newAssistant(client, mailer)

	got, err := svc.SendOrderEmail(context.Background(), &OrderEmailRequest{
		OrderNumber:   "1001",
		CustomerEmail: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, got, "was sent")
}
