package ports

import "context"

// OrderEmail carries the order summary fields rendered into the email body.
type OrderEmail struct {
	To               string
	CustomerName     string
	OrderNumber      string
	ItemsDescription string
	Subtotal         string
	Weight           string
	PaymentGateway   string
	Fulfillment      string
	Shipping         string
	FinancialStatus  string
	ReturnStatus     string
	Cancellation     string
	Tracking         string
	TrackingLink     string
	CancelReason     string
	CancelledAt      string
	CreatedAt        string
	ClosedAt         string
	Currency         string
}

// Mailer relays transactional order emails. Fire-and-forget: implementations
// do not retry or queue, callers only log failures.
type Mailer interface {
	SendOrderSummary(ctx context.Context, email *OrderEmail) error
}
