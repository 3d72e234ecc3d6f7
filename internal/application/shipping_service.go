package application

import (
	"context"
	"fmt"
	"strconv"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Fixed piece dimensions in inches. The storefront does not track package
// dimensions, so every piece ships as the house standard pallet size.
const (
	pieceLength = "61"
	pieceWidth  = "40"
	pieceHeight = "24"
)

// DefaultShipperZip matches the storefront warehouse when the request does
// not name an origin.
const DefaultShipperZip = "91710"

// ShippingService prices and books freight for orders.
type ShippingService struct {
	orders         *OrderService
	booker         ports.CarrierBooker
	locationID     string
	tariffHeaderID string
	logger         zerolog.Logger
}

// NewShippingService creates the freight service.
func NewShippingService(
	orders *OrderService,
	booker ports.CarrierBooker,
	locationID string,
	tariffHeaderID string,
	logger zerolog.Logger,
) *ShippingService {
	return &ShippingService{
		orders:         orders,
		booker:         booker,
		locationID:     locationID,
		tariffHeaderID: tariffHeaderID,
		logger:         logger,
	}
}

// BuildRatingRequest assembles a carrier rating request from an order's line
// items. Pieces come from the current quantity, weight from the first
// variant's inventory weight truncated to whole pounds.
func (s *ShippingService) BuildRatingRequest(order *domain.Order, shipperZip string) (*domain.RatingRequest, error) {
	if order.ShippingAddress == nil || order.ShippingAddress.Zip == "" {
		return nil, fmt.Errorf("order %s has no shipping address zip: %w", order.Name, domain.ErrBadRequest)
	}
	if shipperZip == "" {
		shipperZip = DefaultShipperZip
	}

	lineItems := make([]domain.RatingLineItem, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		weight := decimal.NewFromFloat(item.VariantWeight).IntPart()
		lineItems = append(lineItems, domain.RatingLineItem{
			Pieces:      strconv.Itoa(item.Quantity),
			Weight:      strconv.FormatInt(weight, 10),
			Description: item.Title,
			Length:      pieceLength,
			Width:       pieceWidth,
			Height:      pieceHeight,
		})
	}

	return &domain.RatingRequest{
		Rating: domain.Rating{
			LocationID:     s.locationID,
			Shipper:        domain.RatingParty{Zipcode: shipperZip},
			Consignee:      domain.RatingParty{Zipcode: order.ShippingAddress.Zip},
			LineItems:      lineItems,
			TariffHeaderID: s.tariffHeaderID,
		},
	}, nil
}

// QuoteForOrder loads an order by name and prices its freight options.
func (s *ShippingService) QuoteForOrder(ctx context.Context, shopDomain, orderName, shipperZip string) ([]domain.QuoteOption, error) {
	shopDomain, err := s.orders.resolveShopDomain(ctx, shopDomain)
	if err != nil {
		return nil, err
	}
	client, err := s.orders.clientFor(ctx, shopDomain)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.fetchDetails(ctx, client, orderName)
	if err != nil {
		return nil, err
	}
	return s.QuoteForPayload(ctx, order, shipperZip)
}

// QuoteForPayload prices freight for an order payload the caller already
// holds, for callers that post raw order JSON instead of an order name.
func (s *ShippingService) QuoteForPayload(ctx context.Context, order *domain.Order, shipperZip string) ([]domain.QuoteOption, error) {
	req, err := s.BuildRatingRequest(order, shipperZip)
	if err != nil {
		return nil, err
	}
	return s.booker.Quote(ctx, req)
}

// LabelForRating books a shipment for a caller-supplied rating body and
// returns the carrier label. LocationID and TariffHeaderID always come from
// config, overriding whatever the caller sent.
func (s *ShippingService) LabelForRating(ctx context.Context, req *domain.RatingRequest) (*domain.LabelDocument, error) {
	req.Rating.LocationID = s.locationID
	req.Rating.TariffHeaderID = s.tariffHeaderID

	label, err := s.booker.BookWithLabel(ctx, req, domain.DefaultLabelType)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("pro_number", label.ProNumber).
		Msg("Freight label issued")
	return label, nil
}
