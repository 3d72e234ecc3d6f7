package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/infrastructure/maersk"
	"voice-commerce-gateway/internal/infrastructure/shopify"
)

func (s *Server) handleShippingOptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	orderName := query.Get("ordername")
	if orderName == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	options, err := s.shipping.QuoteForOrder(r.Context(), query.Get("shop"), orderName, query.Get("zipcode"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, options)
}

// handleShippingOptionsExt quotes freight for a raw order payload posted in
// the commerce API's own wire shape, for callers that already hold the order.
func (s *Server) handleShippingOptionsExt(w http.ResponseWriter, r *http.Request) {
	var node shopify.OrderNode
	if err := json.NewDecoder(r.Body).Decode(&node); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	options, err := s.shipping.QuoteForPayload(r.Context(), node.ToDomain(), r.URL.Query().Get("zipcode"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, options)
}

// handleLabel books a shipment from a posted rating body and streams back
// the carrier's label XML.
func (s *Server) handleLabel(w http.ResponseWriter, r *http.Request) {
	var req domain.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	label, err := s.shipping.LabelForRating(r.Context(), &req)
	if err != nil {
		var carrierErr *maersk.CarrierError
		if errors.As(err, &carrierErr) {
			s.logger.Error().Err(err).Msg("Label generation failed")
			writeJSON(w, carrierErr.StatusCode, map[string]any{
				"error":       "Failed to generate label",
				"status_code": carrierErr.StatusCode,
			})
			return
		}
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", label.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(label.Body)
}
