package application

import (
	"fmt"
	"strings"

	"voice-commerce-gateway/internal/domain"
)

// Placeholders rendered when an order is missing its optional sub-records.
const (
	guestCustomer  = "Guest"
	noAddress      = "No Address"
	noContactValue = "None"
	notAvailable   = "not available"
)

// JoinNatural joins items the way a sentence would: one item stands alone,
// two are joined with "and", three or more use an Oxford comma.
func JoinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// DatePart returns the calendar date of an ISO timestamp. A value without a
// time component passes through whole.
func DatePart(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, "T")
	return date
}

// CustomerDisplayName renders "First Last", or the guest placeholder when
// the order has no customer.
func CustomerDisplayName(c *domain.Customer) string {
	if c == nil {
		return guestCustomer
	}
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// CustomerEmail returns the customer's email, or "None".
func CustomerEmail(c *domain.Customer) string {
	if c == nil || c.Email == "" {
		return noContactValue
	}
	return c.Email
}

// CustomerPhone returns the customer's phone, or "None".
func CustomerPhone(c *domain.Customer) string {
	if c == nil || c.Phone == "" {
		return noContactValue
	}
	return c.Phone
}

// AddressLine renders a one-line shipping address, or the no-address
// placeholder.
func AddressLine(a *domain.Address) string {
	if a == nil {
		return noAddress
	}
	return fmt.Sprintf("%s, %s, %s, %s", a.Address1, a.City, a.Country, a.Zip)
}

// DisplayPrice renders a money value for the storefront pages, dollar-sign
// prefixed the way the order table shows it.
func DisplayPrice(m domain.Money) string {
	return "$" + m.Amount
}

// SpeechPrice renders a money value for spoken output, prefixed with the
// currency code instead of a symbol.
func SpeechPrice(currency, amount string) string {
	return currency + amount
}

// statusPhrase lowercases an API status enum and replaces underscores, so
// "IN_PROGRESS" reads as "in progress".
func statusPhrase(status string) string {
	return strings.ReplaceAll(strings.ToLower(status), "_", " ")
}
