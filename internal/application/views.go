package application

import "voice-commerce-gateway/internal/domain"

// OrderRow is one row of the storefront order table.
type OrderRow struct {
	No                string         `json:"no"`
	Date              string         `json:"date"`
	Customer          string         `json:"customer"`
	TotalPrice        string         `json:"totalPrice"`
	PaymentStatus     string         `json:"paymentStatus"`
	FulfillmentStatus string         `json:"fulfillmentStatus"`
	ShippingAddress   string         `json:"shippingAddress"`
	DetailAddress     *DetailAddress `json:"detailAddress,omitempty"`
	Actions           string         `json:"actions"`
}

// DetailAddress is the expanded address block shown on the detail views.
type DetailAddress struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
}

// CustomerView is the customer block of the order detail page.
type CustomerView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderDetailView is the full order detail page model: line items plus the
// money breakdown. Amounts stay the raw decimal strings the commerce API
// returned.
type OrderDetailView struct {
	No                string            `json:"no"`
	Date              string            `json:"date"`
	FulfillmentStatus string            `json:"fulfillmentStatus"`
	Items             []domain.LineItem `json:"items"`
	Subtotal          string            `json:"subtotal"`
	Additional        string            `json:"additional"`
	Tax               string            `json:"tax"`
	Shipping          string            `json:"shipping"`
	Duties            string            `json:"duties"`
	Discount          string            `json:"discount"`
	Total             string            `json:"total"`
	Paid              string            `json:"paid"`
	Customer          CustomerView      `json:"customer"`
	ShippingAddress   string            `json:"shippingAddress"`
	DetailAddress     *DetailAddress    `json:"detailAddress,omitempty"`
	PaymentStatus     string            `json:"paymentStatus"`
}

func detailAddress(a *domain.Address) *DetailAddress {
	if a == nil {
		return nil
	}
	return &DetailAddress{
		Address1: a.Address1,
		Address2: a.Address2,
		City:     a.City,
		Country:  a.Country,
		Zip:      a.Zip,
	}
}

func orderRow(order *domain.Order) OrderRow {
	return OrderRow{
		No:                order.Name,
		Date:              order.CreatedAt,
		Customer:          CustomerDisplayName(order.Customer),
		TotalPrice:        DisplayPrice(order.Total),
		PaymentStatus:     order.DisplayFinancialStatus,
		FulfillmentStatus: order.DisplayFulfillmentStatus,
		ShippingAddress:   AddressLine(order.ShippingAddress),
		Actions:           "View",
	}
}
