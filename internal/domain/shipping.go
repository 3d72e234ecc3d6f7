package domain

import "encoding/json"

// RatingParty identifies one end of a shipment by postal code.
type RatingParty struct {
	Zipcode string `json:"Zipcode"`
}

// RatingLineItem is one physical piece descriptor sent to the carrier. All
// fields are strings because the carrier's schema is string-typed throughout.
// Dimensions are fixed placeholders; the storefront does not track them.
type RatingLineItem struct {
	Pieces      string `json:"Pieces"`
	Weight      string `json:"Weight"`
	Description string `json:"Description"`
	Length      string `json:"Length"`
	Width       string `json:"Width"`
	Height      string `json:"Height"`
}

// Rating is the body of a carrier rating request.
type Rating struct {
	LocationID     string           `json:"LocationID"`
	Shipper        RatingParty      `json:"Shipper"`
	Consignee      RatingParty      `json:"Consignee"`
	LineItems      []RatingLineItem `json:"LineItems"`
	TariffHeaderID string           `json:"TariffHeaderID"`
}

// RatingRequest is the carrier rating envelope.
type RatingRequest struct {
	Rating Rating `json:"Rating"`
}

// QuoteOption is one carrier-provided rate option. The carrier's schema is
// treated as opaque and passed through to the caller unmodified.
type QuoteOption map[string]any

// RateResult is the outcome of the carrier rating step. Raw is echoed into
// the save-shipment step; Options is the extracted quote list.
type RateResult struct {
	Raw     json.RawMessage
	Options []QuoteOption
}

// ShipmentResult is the outcome of the carrier save-shipment step.
type ShipmentResult struct {
	ProNumber  string
	ShipperZip string
	Raw        json.RawMessage
}

// LabelDocument is a carrier label passed through as-is.
type LabelDocument struct {
	ProNumber   string
	ContentType string
	Body        []byte
}

// DefaultLabelType is the only label format the storefront prints.
const DefaultLabelType = "Label4x6"
