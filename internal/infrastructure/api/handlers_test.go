package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voice-commerce-gateway/internal/application"
	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/infrastructure/maersk"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	rows   []application.OrderRow
	detail *application.OrderDetailView
	err    error
}

func (s *stubOrders) IndexRows(ctx context.Context, shopDomain string) ([]application.OrderRow, error) {
	return s.rows, s.err
}

func (s *stubOrders) SearchOrder(ctx context.Context, shopDomain, orderName string) (*application.OrderRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.rows[0], nil
}

func (s *stubOrders) OrderDetails(ctx context.Context, shopDomain, orderName string) (*application.OrderDetailView, error) {
	return s.detail, s.err
}

type stubShipping struct {
	options []domain.QuoteOption
	label   *domain.LabelDocument
	err     error
}

func (s *stubShipping) QuoteForOrder(ctx context.Context, shopDomain, orderName, shipperZip string) ([]domain.QuoteOption, error) {
	return s.options, s.err
}

func (s *stubShipping) QuoteForPayload(ctx context.Context, order *domain.Order, shipperZip string) ([]domain.QuoteOption, error) {
	return s.options, s.err
}

func (s *stubShipping) LabelForRating(ctx context.Context, req *domain.RatingRequest) (*domain.LabelDocument, error) {
	return s.label, s.err
}

type stubAssistant struct {
	speech string
	err    error
}

func (s *stubAssistant) OrderStatus(ctx context.Context, orderNumber string) (string, error) {
	return s.speech, s.err
}

func (s *stubAssistant) ProductDetails(ctx context.Context, productName string) (string, error) {
	return s.speech, s.err
}

func (s *stubAssistant) SendOrderEmail(ctx context.Context, req *application.OrderEmailRequest) (string, error) {
	return s.speech, s.err
}

type stubOAuth struct {
	token     string
	canonical string
	err       error
}

func (s *stubOAuth) AuthorizeURL(shop, scopes, state string) string {
	return fmt.Sprintf("https://%s/admin/oauth/authorize?state=%s&scope=%s", shop, state, scopes)
}

func (s *stubOAuth) ExchangeToken(ctx context.Context, shop, code string) (string, error) {
	return s.token, s.err
}

func (s *stubOAuth) CanonicalDomain(ctx context.Context, shop, accessToken string) (string, error) {
	return s.canonical, s.err
}

type memTokenStore struct {
	shops map[string]*domain.Shop
}

func (m *memTokenStore) Put(ctx context.Context, shop *domain.Shop) error {
	if m.shops == nil {
		m.shops = map[string]*domain.Shop{}
	}
	m.shops[shop.Domain] = shop
	return nil
}

func (m *memTokenStore) Get(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	return m.shops[shopDomain], nil
}

func (m *memTokenStore) List(ctx context.Context) ([]*domain.Shop, error) {
	var out []*domain.Shop
	for _, s := range m.shops {
		out = append(out, s)
	}
	return out, nil
}

type memStateStore struct {
	states map[string]*domain.OAuthState
}

func (m *memStateStore) Save(ctx context.Context, state *domain.OAuthState) error {
	if m.states == nil {
		m.states = map[string]*domain.OAuthState{}
	}
	m.states[state.State] = state
	return nil
}

func (m *memStateStore) Consume(ctx context.Context, state string) (*domain.OAuthState, error) {
	saved := m.states[state]
	delete(m.states, state)
	return saved, nil
}

type plainEncryption struct{}

func (plainEncryption) Encrypt(plaintext string) (string, error) { return "enc:" + plaintext, nil }

func (plainEncryption) Decrypt(ciphertext string) (string, error) {
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

type serverFixture struct {
	server *Server
	orders *stubOrders
	ship   *stubShipping
	voice  *stubAssistant
	oauth  *stubOAuth
	tokens *memTokenStore
	states *memStateStore
}

func newFixture() *serverFixture {
	f := &serverFixture{
		orders: &stubOrders{},
		ship:   &stubShipping{},
		voice:  &stubAssistant{},
		oauth:  &stubOAuth{token: "shpat_test", canonical: "trendtime.myshopify.com"},
		tokens: &memTokenStore{},
		states: &memStateStore{},
	}
	f.server = NewServer(f.orders, f.ship, f.voice, f.oauth, f.tokens, f.states,
		plainEncryption{}, "test-api-key", zerolog.Nop())
	return f
}

func (f *serverFixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.server.Routes().ServeHTTP(rec, req)
	return rec
}

func TestInstallRequiresShopParameter(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInstallRedirectsWithStateNonce(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/?shop=trendtime.myshopify.com", "")
	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get("Location")
	assert.Contains(t, location, "trendtime.myshopify.com/admin/oauth/authorize")
	require.Len(t, f.states.states, 1)
	for state := range f.states.states {
		assert.Contains(t, location, state)
	}
}

func TestCallbackStoresEncryptedTokenUnderCanonicalDomain(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.states.Save(context.Background(), &domain.OAuthState{
		State: "nonce-1",
		Shop:  "trendtime.myshopify.com",
	}))

	rec := f.do(t, http.MethodGet, "/callback?shop=trendtime.myshopify.com&code=abc&state=nonce-1", "")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/index?shop=trendtime.myshopify.com", rec.Header().Get("Location"))

	shop := f.tokens.shops["trendtime.myshopify.com"]
	require.NotNil(t, shop)
	assert.Equal(t, "enc:shpat_test", shop.AccessToken)

	// The nonce is single use.
	assert.Empty(t, f.states.states)
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/callback?shop=trendtime.myshopify.com&code=abc&state=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.tokens.shops)
}

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALLOWALL", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "frame-ancestors")
}

func TestGetOrderRespondsWithSpeech(t *testing.T) {
	f := newFixture()
	f.voice.speech = "Your order #1001 includes 1 Snowboard for USD79.95."

	rec := f.do(t, http.MethodPost, "/getorder", `{"args":{"orderNumber":"1001"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":"Your order #1001 includes`)
}

func TestGetOrderMissingArgsIsBadRequest(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		body string
	}{
		{"no body", `{}`},
		{"empty args", `{"args":{}}`},
		{"malformed json", `{"args":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/getorder", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid request body")
		})
	}
}

func TestGetOrderUnmatchedOrderIsNotFound(t *testing.T) {
	f := newFixture()
	f.voice.err = fmt.Errorf("order 9999 did not match: %w", domain.ErrNotFound)

	rec := f.do(t, http.MethodPost, "/getorder", `{"args":{"orderNumber":"9999"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
}

func TestShippingOptionsReturnsQuoteList(t *testing.T) {
	f := newFixture()
	f.ship.options = []domain.QuoteOption{{"ServiceLevel": "Standard", "Total": 142.5}}

	rec := f.do(t, http.MethodGet, "/get-shipping-options?ordername=%231001&zipcode=33166", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Standard")
}

func TestShippingOptionsRequiresOrderName(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/get-shipping-options", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLabelStreamsCarrierXML(t *testing.T) {
	f := newFixture()
	f.ship.label = &domain.LabelDocument{
		ProNumber:   "400615691",
		ContentType: "application/xml",
		Body:        []byte(`<Label>PRO 400615691</Label>`),
	}

	rec := f.do(t, http.MethodPost, "/get-label", `{"Rating":{"Shipper":{"Zipcode":"33166"}}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, `<Label>PRO 400615691</Label>`, rec.Body.String())
}

func TestLabelSurfacesCarrierStatus(t *testing.T) {
	f := newFixture()
	f.ship.err = &maersk.CarrierError{Step: "save_shipment", StatusCode: http.StatusServiceUnavailable}

	rec := f.do(t, http.MethodPost, "/get-label", `{"Rating":{}}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate label")
	assert.Contains(t, rec.Body.String(), "503")
}

func TestFaviconIsNoContent(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/favicon.ico", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestIndexRendersOrderTable(t *testing.T) {
	f := newFixture()
	f.orders.rows = []application.OrderRow{{
		No:                "#1001",
		Date:              "2025-01-10T08:00:00Z",
		Customer:          "Ada Lovelace",
		TotalPrice:        "$629.95",
		PaymentStatus:     "PAID",
		FulfillmentStatus: "FULFILLED",
		ShippingAddress:   "1 Infinite Loop, Cupertino, United States, 95014",
		Actions:           "View",
	}}

	rec := f.do(t, http.MethodGet, "/index?shop=trendtime.myshopify.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "#1001")
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
	assert.Contains(t, rec.Body.String(), "$629.95")
}

func TestOrderDetailsRequiresOrderName(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/order-details", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order ID is required")
}

func TestOrderDetailsRendersMoneyBreakdown(t *testing.T) {
	f := newFixture()
	f.orders.detail = &application.OrderDetailView{
		No:       "#1001",
		Subtotal: "219.85",
		Total:    "244.85",
		Customer: application.CustomerView{Name: "Guest", Email: "None", Phone: "None"},
	}

	rec := f.do(t, http.MethodGet, "/order-details?ordername=%231001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "$219.85")
	assert.Contains(t, rec.Body.String(), "$244.85")
	assert.Contains(t, rec.Body.String(), "Guest")
}
