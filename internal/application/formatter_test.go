package application

import (
	"testing"

	"voice-commerce-gateway/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestJoinNatural(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"one item stands alone", []string{"2 Snowboards for USD159.90"}, "2 Snowboards for USD159.90"},
		{"two items use and", []string{"A", "B"}, "A and B"},
		{"three items use oxford comma", []string{"A", "B", "C"}, "A, B, and C"},
		{"five items", []string{"A", "B", "C", "D", "E"}, "A, B, C, D, and E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinNatural(tt.items))
		})
	}
}

func TestDatePart(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		want      string
	}{
		{"iso timestamp truncates", "2025-01-17T09:30:00Z", "2025-01-17"},
		{"date only passes through", "2025-01-17", "2025-01-17"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatePart(tt.timestamp))
		})
	}
}

func TestCustomerPlaceholders(t *testing.T) {
	assert.Equal(t, "Guest", CustomerDisplayName(nil))
	assert.Equal(t, "None", CustomerEmail(nil))
	assert.Equal(t, "None", CustomerPhone(nil))

	c := &domain.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	assert.Equal(t, "Ada Lovelace", CustomerDisplayName(c))
	assert.Equal(t, "ada@example.com", CustomerEmail(c))
	assert.Equal(t, "None", CustomerPhone(c))
}

func TestAddressLine(t *testing.T) {
	assert.Equal(t, "No Address", AddressLine(nil))

	a := &domain.Address{Address1: "1 Infinite Loop", City: "Cupertino", Country: "United States", Zip: "95014"}
	assert.Equal(t, "1 Infinite Loop, Cupertino, United States, 95014", AddressLine(a))
}

func TestPriceFormats(t *testing.T) {
	m := domain.Money{Amount: "629.95", CurrencyCode: "USD"}
	assert.Equal(t, "$629.95", DisplayPrice(m))
	assert.Equal(t, "USD629.95", SpeechPrice(m.CurrencyCode, m.Amount))
}

func TestStatusPhrase(t *testing.T) {
	assert.Equal(t, "in progress", statusPhrase("IN_PROGRESS"))
	assert.Equal(t, "no return", statusPhrase("NO_RETURN"))
}
