package application

import (
	"testing"

	"voice-commerce-gateway/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShippingService() *ShippingService {
	return NewShippingService(nil, nil, "8", "7", zerolog.Nop())
}

func TestBuildRatingRequest(t *testing.T) {
	svc := newTestShippingService()
	order := &domain.Order{
		Name:            "#1001",
		ShippingAddress: &domain.Address{Zip: "10001"},
		LineItems: []domain.LineItem{
			{Title: "Snowboard", Quantity: 2, VariantWeight: 19.6},
			{Title: "Wax Kit", Quantity: 1, VariantWeight: 0.8},
		},
	}

	req, err := svc.BuildRatingRequest(order, "33166")
	require.NoError(t, err)

	assert.Equal(t, "8", req.Rating.LocationID)
	assert.Equal(t, "7", req.Rating.TariffHeaderID)
	assert.Equal(t, "33166", req.Rating.Shipper.Zipcode)
	assert.Equal(t, "10001", req.Rating.Consignee.Zipcode)

	require.Len(t, req.Rating.LineItems, 2)
	first := req.Rating.LineItems[0]
	assert.Equal(t, "2", first.Pieces)
	// Weight truncates to whole pounds.
	assert.Equal(t, "19", first.Weight)
	assert.Equal(t, "Snowboard", first.Description)
	assert.Equal(t, "61", first.Length)
	assert.Equal(t, "40", first.Width)
	assert.Equal(t, "24", first.Height)
	assert.Equal(t, "0", req.Rating.LineItems[1].Weight)
}

func TestBuildRatingRequestDefaultsShipperZip(t *testing.T) {
	svc := newTestShippingService()
	order := &domain.Order{
		ShippingAddress: &domain.Address{Zip: "10001"},
	}

	req, err := svc.BuildRatingRequest(order, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultShipperZip, req.Rating.Shipper.Zipcode)
}

func TestBuildRatingRequestRequiresConsigneeZip(t *testing.T) {
	svc := newTestShippingService()

	_, err := svc.BuildRatingRequest(&domain.Order{Name: "#1001"}, "33166")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
