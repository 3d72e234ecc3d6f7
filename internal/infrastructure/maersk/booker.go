package maersk

import (
	"context"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// Booker exposes the carrier chain behind the CarrierBooker port. Every call
// runs a fresh chain; carrier sessions are never reused across requests.
type Booker struct {
	client ports.CarrierClient
	logger zerolog.Logger
}

// NewBooker creates a carrier booker.
func NewBooker(client ports.CarrierClient, logger zerolog.Logger) ports.CarrierBooker {
	return &Booker{client: client, logger: logger}
}

func (b *Booker) Quote(ctx context.Context, req *domain.RatingRequest) ([]domain.QuoteOption, error) {
	return RateOnly(ctx, b.client, req, b.logger)
}

func (b *Booker) BookWithLabel(ctx context.Context, req *domain.RatingRequest, labelType string) (*domain.LabelDocument, error) {
	return NewChain(b.client, b.logger).Execute(ctx, req, labelType)
}
