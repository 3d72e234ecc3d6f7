package ports

import (
	"context"
	"encoding/json"

	"voice-commerce-gateway/internal/domain"
)

// CarrierClient defines the five carrier API calls. Each call past the first
// must echo back the root object the previous call returned; the chain in
// the maersk package enforces that ordering.
type CarrierClient interface {
	// NewQuote opens a quote session and returns the carrier's root object.
	NewQuote(ctx context.Context) (json.RawMessage, error)

	// Rate prices a rating request inside an open quote session.
	Rate(ctx context.Context, quoteRoot json.RawMessage, req *domain.RatingRequest) (*domain.RateResult, error)

	// NewShipment opens a shipment session and returns its root object.
	NewShipment(ctx context.Context) (json.RawMessage, error)

	// SaveShipment books the shipment. After this succeeds the shipment
	// exists on the carrier side; there is no compensating call.
	SaveShipment(ctx context.Context, shipmentRoot json.RawMessage, rate *domain.RateResult, req *domain.RatingRequest) (*domain.ShipmentResult, error)

	// Label fetches the label document for a booked shipment.
	Label(ctx context.Context, proNumber string, labelType string, zip int) (*domain.LabelDocument, error)
}

// CarrierBooker runs the carrier call sequence on behalf of the application
// layer. Quote stops after rating; BookWithLabel runs the full sequence
// through label retrieval.
type CarrierBooker interface {
	Quote(ctx context.Context, req *domain.RatingRequest) ([]domain.QuoteOption, error)
	BookWithLabel(ctx context.Context, req *domain.RatingRequest, labelType string) (*domain.LabelDocument, error)
}
