package api

import (
	"context"
	"net/http"

	"voice-commerce-gateway/internal/application"
	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/infrastructure/middleware"
	"voice-commerce-gateway/internal/ports"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// InstallScopes are the storefront permissions requested during install.
const InstallScopes = "read_orders,read_products,read_customers"

// OrderPages serves the storefront order views.
type OrderPages interface {
	IndexRows(ctx context.Context, shopDomain string) ([]application.OrderRow, error)
	SearchOrder(ctx context.Context, shopDomain, orderName string) (*application.OrderRow, error)
	OrderDetails(ctx context.Context, shopDomain, orderName string) (*application.OrderDetailView, error)
}

// ShippingOps prices and books freight.
type ShippingOps interface {
	QuoteForOrder(ctx context.Context, shopDomain, orderName, shipperZip string) ([]domain.QuoteOption, error)
	QuoteForPayload(ctx context.Context, order *domain.Order, shipperZip string) ([]domain.QuoteOption, error)
	LabelForRating(ctx context.Context, req *domain.RatingRequest) (*domain.LabelDocument, error)
}

// AssistantOps answers the voice assistant webhooks.
type AssistantOps interface {
	OrderStatus(ctx context.Context, orderNumber string) (string, error)
	ProductDetails(ctx context.Context, productName string) (string, error)
	SendOrderEmail(ctx context.Context, req *application.OrderEmailRequest) (string, error)
}

// OAuthExchange is the install-flow surface of the commerce OAuth helper.
type OAuthExchange interface {
	AuthorizeURL(shop, scopes, state string) string
	ExchangeToken(ctx context.Context, shop, code string) (string, error)
	CanonicalDomain(ctx context.Context, shop, accessToken string) (string, error)
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	orders     OrderPages
	shipping   ShippingOps
	assistant  AssistantOps
	oauth      OAuthExchange
	tokens     ports.TokenStore
	states     ports.StateStore
	encryption ports.EncryptionService
	apiKey     string
	logger     zerolog.Logger
}

// NewServer creates the HTTP server.
func NewServer(
	orders OrderPages,
	shipping ShippingOps,
	assistant AssistantOps,
	oauth OAuthExchange,
	tokens ports.TokenStore,
	states ports.StateStore,
	encryption ports.EncryptionService,
	apiKey string,
	logger zerolog.Logger,
) *Server {
	return &Server{
		orders:     orders,
		shipping:   shipping,
		assistant:  assistant,
		oauth:      oauth,
		tokens:     tokens,
		states:     states,
		encryption: encryption,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Routes builds the router with the full endpoint surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.FrameEmbedding)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	// Install flow and storefront pages.
	r.Get("/", s.handleInstall)
	r.Get("/api/init", s.handleAPIInit)
	r.Get("/callback", s.handleCallback)
	r.Get("/index", s.handleIndex)
	r.Get("/search_order", s.handleSearchOrder)
	r.Get("/order-details", s.handleOrderDetails)

	// Freight.
	r.Get("/get-shipping-options", s.handleShippingOptions)
	r.Post("/get-shipping-options-ext", s.handleShippingOptionsExt)
	r.Post("/get-label", s.handleLabel)

	// Voice assistant webhooks.
	r.Post("/getorder", s.handleGetOrder)
	r.Post("/getproduct", s.handleGetProduct)
	r.Post("/email", s.handleEmail)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
