package maersk

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// ChainState is the position of a Chain in the quote-to-label sequence.
type ChainState int

const (
	StateInitial ChainState = iota
	StateQuoteCreated
	StateRated
	StateShipmentCreated
	StateShipmentSaved
	StateLabelIssued
)

func (s ChainState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateQuoteCreated:
		return "quote_created"
	case StateRated:
		return "rated"
	case StateShipmentCreated:
		return "shipment_created"
	case StateShipmentSaved:
		return "shipment_saved"
	case StateLabelIssued:
		return "label_issued"
	default:
		return "unknown"
	}
}

// Chain drives the carrier's five-call sequence as a linear state machine.
// Each step requires the previous one's state and output; the first failing
// step stops the chain. There is no rollback: once SaveShipment succeeds the
// shipment exists on the carrier side, and a later failure is reported with
// the assigned pro number instead of being retried.
type Chain struct {
	client ports.CarrierClient
	logger zerolog.Logger

	state        ChainState
	quoteRoot    json.RawMessage
	rate         *domain.RateResult
	shipmentRoot json.RawMessage
	shipment     *domain.ShipmentResult
}

// NewChain creates a chain in its initial state.
func NewChain(client ports.CarrierClient, logger zerolog.Logger) *Chain {
	return &Chain{client: client, logger: logger, state: StateInitial}
}

// State returns the chain's current position.
func (c *Chain) State() ChainState {
	return c.state
}

// Shipment returns the booked shipment, or nil before SaveShipment.
func (c *Chain) Shipment() *domain.ShipmentResult {
	return c.shipment
}

func (c *Chain) require(expected ChainState, step string) error {
	if c.state != expected {
		return fmt.Errorf("%s requires state %s, chain is in %s", step, expected, c.state)
	}
	return nil
}

// CreateQuote opens the quote session.
func (c *Chain) CreateQuote(ctx context.Context) error {
	if err := c.require(StateInitial, "create quote"); err != nil {
		return err
	}
	root, err := c.client.NewQuote(ctx)
	if err != nil {
		return err
	}
	c.quoteRoot = root
	c.state = StateQuoteCreated
	return nil
}

// RateQuote prices the rating request inside the open quote session.
func (c *Chain) RateQuote(ctx context.Context, req *domain.RatingRequest) ([]domain.QuoteOption, error) {
	if err := c.require(StateQuoteCreated, "rating"); err != nil {
		return nil, err
	}
	rate, err := c.client.Rate(ctx, c.quoteRoot, req)
	if err != nil {
		return nil, err
	}
	c.rate = rate
	c.state = StateRated
	return rate.Options, nil
}

// CreateShipment opens the shipment session.
func (c *Chain) CreateShipment(ctx context.Context) error {
	if err := c.require(StateRated, "create shipment"); err != nil {
		return err
	}
	root, err := c.client.NewShipment(ctx)
	if err != nil {
		return err
	}
	c.shipmentRoot = root
	c.state = StateShipmentCreated
	return nil
}

// Save books the shipment with the carrier.
func (c *Chain) Save(ctx context.Context, req *domain.RatingRequest) (*domain.ShipmentResult, error) {
	if err := c.require(StateShipmentCreated, "save shipment"); err != nil {
		return nil, err
	}
	shipment, err := c.client.SaveShipment(ctx, c.shipmentRoot, c.rate, req)
	if err != nil {
		return nil, err
	}
	c.shipment = shipment
	c.state = StateShipmentSaved
	c.logger.Info().
		Str("pro_number", shipment.ProNumber).
		Msg("Shipment booked with carrier")
	return shipment, nil
}

// FetchLabel retrieves the label for the booked shipment. A failure here
// leaves a live shipment behind, so the error names the pro number for
// manual follow-up.
func (c *Chain) FetchLabel(ctx context.Context, labelType string) (*domain.LabelDocument, error) {
	if err := c.require(StateShipmentSaved, "label"); err != nil {
		return nil, err
	}
	zip, err := strconv.Atoi(c.shipment.ShipperZip)
	if err != nil {
		return nil, fmt.Errorf("shipment %s was booked but has unusable shipper zip %q: %w",
			c.shipment.ProNumber, c.shipment.ShipperZip, err)
	}
	label, err := c.client.Label(ctx, c.shipment.ProNumber, labelType, zip)
	if err != nil {
		return nil, fmt.Errorf("shipment %s was booked but the label fetch failed: %w",
			c.shipment.ProNumber, err)
	}
	c.state = StateLabelIssued
	return label, nil
}

// Execute runs the full quote-to-label sequence for one rating request.
func (c *Chain) Execute(ctx context.Context, req *domain.RatingRequest, labelType string) (*domain.LabelDocument, error) {
	if err := c.CreateQuote(ctx); err != nil {
		return nil, err
	}
	if _, err := c.RateQuote(ctx, req); err != nil {
		return nil, err
	}
	if err := c.CreateShipment(ctx); err != nil {
		return nil, err
	}
	if _, err := c.Save(ctx, req); err != nil {
		return nil, err
	}
	return c.FetchLabel(ctx, labelType)
}

// RateOnly runs just the quote and rating steps and returns the priced
// options.
func RateOnly(ctx context.Context, client ports.CarrierClient, req *domain.RatingRequest, logger zerolog.Logger) ([]domain.QuoteOption, error) {
	chain := NewChain(client, logger)
	if err := chain.CreateQuote(ctx); err != nil {
		return nil, err
	}
	return chain.RateQuote(ctx, req)
}
