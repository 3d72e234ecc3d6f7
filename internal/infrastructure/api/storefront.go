package api

import (
	"net/http"
	"time"

	"voice-commerce-gateway/internal/application"
	"voice-commerce-gateway/internal/domain"

	"github.com/google/uuid"
)

// handleInstall starts the OAuth install flow: it issues a state nonce and
// redirects the merchant to the shop's authorize page.
func (s *Server) handleInstall(w http.ResponseWriter, r *http.Request) {
	shop := r.URL.Query().Get("shop")
	if shop == "" {
		http.Error(w, "Missing shop parameter", http.StatusBadRequest)
		return
	}

	state := uuid.NewString()
	if err := s.states.Save(r.Context(), &domain.OAuthState{
		State:     state,
		Shop:      shop,
		CreatedAt: time.Now(),
	}); err != nil {
		s.respondError(w, r, err)
		return
	}

	http.Redirect(w, r, s.oauth.AuthorizeURL(shop, InstallScopes, state), http.StatusFound)
}

func (s *Server) handleAPIInit(w http.ResponseWriter, r *http.Request) {
	shopOrigin := r.URL.Query().Get("shop")
	if shopOrigin == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Shop parameter is missing!")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"apiKey":     s.apiKey,
		"shopOrigin": shopOrigin,
	})
}

// handleCallback finishes the install: it checks the state nonce, exchanges
// the code, encrypts the token, and stores it under the canonical domain.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	shop := query.Get("shop")
	code := query.Get("code")
	if shop == "" || code == "" {
		http.Error(w, "Missing shop or code parameter", http.StatusBadRequest)
		return
	}

	saved, err := s.states.Consume(r.Context(), query.Get("state"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if saved == nil || saved.Shop != shop {
		s.logger.Warn().Str("shop", shop).Msg("OAuth state mismatch")
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	token, err := s.oauth.ExchangeToken(r.Context(), shop, code)
	if err != nil {
		s.logger.Error().Err(err).Str("shop", shop).Msg("Token exchange failed")
		http.Error(w, "Failed to get access token", http.StatusBadRequest)
		return
	}

	canonical, err := s.oauth.CanonicalDomain(r.Context(), shop, token)
	if err != nil {
		s.logger.Error().Err(err).Str("shop", shop).Msg("Shop lookup failed")
		http.Error(w, "Failed to get access token", http.StatusBadRequest)
		return
	}

	encrypted, err := s.encryption.Encrypt(token)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.tokens.Put(r.Context(), &domain.Shop{
		Domain:      canonical,
		AccessToken: encrypted,
	}); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.logger.Info().Str("shop", canonical).Msg("Access token stored")
	http.Redirect(w, r, "/index?shop="+canonical, http.StatusFound)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	shop := r.URL.Query().Get("shop")

	rows, err := s.orders.IndexRows(r.Context(), shop)
	if err != nil {
		s.renderErrorPage(w, r, err)
		return
	}

	s.renderPage(w, http.StatusOK, "index.html", map[string]any{
		"Shop":   shop,
		"Orders": rows,
	})
}

func (s *Server) handleSearchOrder(w http.ResponseWriter, r *http.Request) {
	orderName := r.URL.Query().Get("orderid")
	if orderName == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	row, err := s.orders.SearchOrder(r.Context(), r.URL.Query().Get("shop"), orderName)
	if err != nil {
		s.renderErrorPage(w, r, err)
		return
	}

	s.renderPage(w, http.StatusOK, "index.html", map[string]any{
		"Shop":   r.URL.Query().Get("shop"),
		"Orders": []application.OrderRow{*row},
	})
}

func (s *Server) handleOrderDetails(w http.ResponseWriter, r *http.Request) {
	orderName := r.URL.Query().Get("ordername")
	if orderName == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	detail, err := s.orders.OrderDetails(r.Context(), r.URL.Query().Get("shop"), orderName)
	if err != nil {
		s.renderErrorPage(w, r, err)
		return
	}

	s.renderPage(w, http.StatusOK, "order-details.html", detail)
}
