package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/infrastructure/maersk"
	"voice-commerce-gateway/internal/infrastructure/shopify"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// errorStatus maps domain and upstream errors to response codes: missing
// parameters 400, no match 404, upstream failures 502, carrier errors keep
// the carrier's own status.
func errorStatus(err error) int {
	var carrierErr *maersk.CarrierError
	var apiErr *shopify.APIError
	var statusErr *shopify.StatusError

	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &carrierErr):
		return carrierErr.StatusCode
	case errors.As(err, &apiErr),
		errors.As(err, &statusErr),
		errors.Is(err, shopify.ErrRetriesExhausted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs the failure and writes its mapped JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)

	event := s.logger.Error()
	if status < http.StatusInternalServerError {
		event = s.logger.Warn()
	}
	event.Err(err).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("Request failed")

	switch status {
	case http.StatusNotFound:
		writeErrorJSON(w, status, "Order not found")
	case http.StatusBadRequest:
		writeErrorJSON(w, status, "Invalid request body")
	default:
		writeErrorJSON(w, status, err.Error())
	}
}
