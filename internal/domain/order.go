package domain

// Money is a decimal amount tied to a currency code, kept as the string the
// commerce API returned so no precision is lost before formatting.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Customer is the optional customer sub-record of an order.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Address is the optional shipping address sub-record of an order.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
}

// LineItem is one purchasable line of an order.
type LineItem struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	// UnitPrice is the original unit price; nil when the query shape did not
	// request it.
	UnitPrice *Money `json:"unitPrice,omitempty"`
	// VariantWeight is the first matching variant's inventory weight, only
	// populated by the details query shape (used to build carrier ratings).
	VariantWeight float64 `json:"variantWeight,omitempty"`
}

// TrackingInfo is one tracking record attached to a fulfillment.
type TrackingInfo struct {
	Company string `json:"company"`
	Number  string `json:"number"`
	URL     string `json:"url"`
}

// Fulfillment is one fulfillment attached to an order.
type Fulfillment struct {
	DisplayStatus       string         `json:"displayStatus"`
	CreatedAt           string         `json:"createdAt"`
	DeliveredAt         string         `json:"deliveredAt"`
	InTransitAt         string         `json:"inTransitAt"`
	EstimatedDeliveryAt string         `json:"estimatedDeliveryAt"`
	Tracking            []TrackingInfo `json:"tracking"`
}

// ShippingLine is one shipping method charged on an order.
type ShippingLine struct {
	Title string `json:"title"`
	Price Money  `json:"price"`
}

// Order is the transient order payload fetched fresh per request from the
// commerce API. It is never cached or persisted and is immutable within a
// request. Which fields are populated depends on the query mode used.
type Order struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	ClosedAt  string `json:"closedAt"`

	Customer        *Customer `json:"customer,omitempty"`
	ShippingAddress *Address  `json:"shippingAddress,omitempty"`

	LineItems        []LineItem     `json:"lineItems"`
	SubtotalQuantity int            `json:"subtotalQuantity"`
	TotalWeight      string         `json:"totalWeight"`
	PaymentGateways  []string       `json:"paymentGateways"`
	ShippingLines    []ShippingLine `json:"shippingLines"`
	Fulfillments     []Fulfillment  `json:"fulfillments"`

	DisplayFinancialStatus   string `json:"displayFinancialStatus"`
	DisplayFulfillmentStatus string `json:"displayFulfillmentStatus"`
	ReturnStatus             string `json:"returnStatus"`

	Cancelled    bool   `json:"cancelled"`
	CancelReason string `json:"cancelReason"`
	CancelledAt  string `json:"cancelledAt"`

	// Money breakdown, details mode only. Optional sets the storefront never
	// charged (additional fees, duties) default to "0.0".
	Subtotal   Money `json:"subtotal"`
	Additional Money `json:"additional"`
	Tax        Money `json:"tax"`
	Shipping   Money `json:"shipping"`
	Duties     Money `json:"duties"`
	Discount   Money `json:"discount"`
	Total      Money `json:"total"`
	Paid       Money `json:"paid"`
}

// OrderQueryMode selects which of the two order query shapes to send. The
// source systems disagree on the fulfillment field set, so both shapes stay
// available and the caller picks one explicitly.
type OrderQueryMode string

const (
	// OrderModeSearch is the flat shape used by the storefront pages: it
	// carries displayFulfillmentStatus and the summary money fields.
	OrderModeSearch OrderQueryMode = "search"
	// OrderModeDetails additionally carries line items with variant weights
	// and the full money breakdown.
	OrderModeDetails OrderQueryMode = "details"
)
