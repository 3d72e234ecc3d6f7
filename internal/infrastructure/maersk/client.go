package maersk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var carrierRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "carrier_api_requests_total",
		Help: "Outbound carrier API calls by step and outcome.",
	},
	[]string{"step", "outcome"},
)

// CarrierError reports a non-200 response from the carrier. The chain
// propagates the carrier's status code unchanged to the HTTP layer.
type CarrierError struct {
	Step       string
	StatusCode int
}

func (e *CarrierError) Error() string {
	return fmt.Sprintf("carrier returned status %d on %s", e.StatusCode, e.Step)
}

// Config holds the carrier endpoint settings.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client is the REST client for the carrier's quote/rating/shipment/label
// API. Calls are strictly sequential; each one echoes back the session root
// the previous call returned. No retries: none of these calls is idempotent.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a carrier client.
func NewClient(cfg Config, logger zerolog.Logger) ports.CarrierClient {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (c *Client) NewQuote(ctx context.Context) (json.RawMessage, error) {
	return c.getRoot(ctx, "new_quote", "/Quote/NewQuote")
}

func (c *Client) NewShipment(ctx context.Context) (json.RawMessage, error) {
	return c.getRoot(ctx, "new_shipment", "/Shipment/NewShipment")
}

// getRoot opens a carrier session and returns its root object verbatim.
func (c *Client) getRoot(ctx context.Context, step, path string) (json.RawMessage, error) {
	body, err := c.send(ctx, step, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s returned an invalid root object", step)
	}
	return json.RawMessage(body), nil
}

func (c *Client) Rate(ctx context.Context, quoteRoot json.RawMessage, req *domain.RatingRequest) (*domain.RateResult, error) {
	payload, err := mergeRoot(quoteRoot, req)
	if err != nil {
		return nil, fmt.Errorf("failed to build rating payload: %w", err)
	}

	body, err := c.send(ctx, "rating", http.MethodPost, "/Quote/Rating", payload)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		DsQuote struct {
			Quote []domain.QuoteOption `json:"Quote"`
		} `json:"dsQuote"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode rating response: %w", err)
	}

	return &domain.RateResult{Raw: json.RawMessage(body), Options: parsed.DsQuote.Quote}, nil
}

func (c *Client) SaveShipment(ctx context.Context, shipmentRoot json.RawMessage, rate *domain.RateResult, req *domain.RatingRequest) (*domain.ShipmentResult, error) {
	payload, err := mergeRoot(shipmentRoot, req)
	if err != nil {
		return nil, fmt.Errorf("failed to build shipment payload: %w", err)
	}
	payload["RateResult"] = rate.Raw

	body, err := c.send(ctx, "save_shipment", http.MethodPost, "/Shipment/SaveShipment", payload)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		DsResult struct {
			Shipment []struct {
				ProNumber json.Number `json:"ProNumber"`
			} `json:"Shipment"`
			Shipper []struct {
				Zipcode string `json:"Zipcode"`
			} `json:"Shipper"`
		} `json:"dsResult"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode shipment response: %w", err)
	}
	if len(parsed.DsResult.Shipment) == 0 || len(parsed.DsResult.Shipper) == 0 {
		return nil, fmt.Errorf("shipment response is missing the booked shipment record")
	}

	return &domain.ShipmentResult{
		ProNumber:  parsed.DsResult.Shipment[0].ProNumber.String(),
		ShipperZip: strings.TrimSpace(parsed.DsResult.Shipper[0].Zipcode),
		Raw:        json.RawMessage(body),
	}, nil
}

func (c *Client) Label(ctx context.Context, proNumber string, labelType string, zip int) (*domain.LabelDocument, error) {
	query := url.Values{}
	query.Set("ProNumber", proNumber)
	query.Set("LabelType", labelType)
	query.Set("Zipcode", fmt.Sprintf("%d", zip))

	body, err := c.send(ctx, "label", http.MethodGet, "/Shipment/Label?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	// The label is carrier XML, passed through unmodified.
	return &domain.LabelDocument{
		ProNumber:   proNumber,
		ContentType: "application/xml",
		Body:        body,
	}, nil
}

// mergeRoot echoes the carrier's session root back with the rating fields
// set on top of it.
func mergeRoot(root json.RawMessage, req *domain.RatingRequest) (map[string]any, error) {
	payload := map[string]any{}
	if len(root) > 0 {
		if err := json.Unmarshal(root, &payload); err != nil {
			return nil, fmt.Errorf("invalid session root: %w", err)
		}
	}
	payload["Rating"] = req.Rating
	return payload, nil
}

func (c *Client) send(ctx context.Context, step, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", step, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", step, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		carrierRequests.WithLabelValues(step, "transport_error").Inc()
		return nil, fmt.Errorf("%s request failed: %w", step, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		carrierRequests.WithLabelValues(step, "transport_error").Inc()
		return nil, fmt.Errorf("failed to read %s response: %w", step, err)
	}

	if resp.StatusCode != http.StatusOK {
		carrierRequests.WithLabelValues(step, "status_error").Inc()
		c.logger.Error().
			Str("step", step).
			Int("status", resp.StatusCode).
			Msg("Carrier call failed")
		return nil, &CarrierError{Step: step, StatusCode: resp.StatusCode}
	}

	carrierRequests.WithLabelValues(step, "ok").Inc()
	return body, nil
}
