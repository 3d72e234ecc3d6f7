package smtp

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends order summary emails over SMTP.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	tmpl   *template.Template
	logger zerolog.Logger
}

// NewMailer creates an SMTP mailer.
func NewMailer(cfg Config, logger zerolog.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		tmpl:   template.Must(template.New("order_summary").Parse(orderSummaryTemplate)),
		logger: logger,
	}
}

// SendOrderSummary renders and sends the order summary to the customer.
// Dialing ignores the context deadline; gomail has no context support, so
// callers bound the whole request instead.
func (m *Mailer) SendOrderSummary(ctx context.Context, email *ports.OrderEmail) error {
	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, email); err != nil {
		return fmt.Errorf("failed to render order email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", fmt.Sprintf("Your order %s summary", email.OrderNumber))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}

	m.logger.Info().
		Str("order", email.OrderNumber).
		Msg("Order summary email sent")
	return nil
}

const orderSummaryTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Order {{.OrderNumber}}</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>Here is the summary of your order.</p>
  <table cellpadding="6" cellspacing="0" border="0">
    <tr><td><strong>Items</strong></td><td>{{.ItemsDescription}}</td></tr>
    <tr><td><strong>Subtotal</strong></td><td>{{.Currency}} {{.Subtotal}}</td></tr>
    <tr><td><strong>Weight</strong></td><td>{{.Weight}}</td></tr>
    <tr><td><strong>Payment</strong></td><td>{{.PaymentGateway}}</td></tr>
    <tr><td><strong>Payment status</strong></td><td>{{.FinancialStatus}}</td></tr>
    <tr><td><strong>Fulfillment</strong></td><td>{{.Fulfillment}}</td></tr>
    <tr><td><strong>Shipping</strong></td><td>{{.Shipping}}</td></tr>
    <tr><td><strong>Placed</strong></td><td>{{.CreatedAt}}</td></tr>
    {{if .ClosedAt}}<tr><td><strong>Closed</strong></td><td>{{.ClosedAt}}</td></tr>{{end}}
    {{if .ReturnStatus}}<tr><td><strong>Return status</strong></td><td>{{.ReturnStatus}}</td></tr>{{end}}
    {{if .Cancellation}}<tr><td><strong>Cancellation</strong></td><td>{{.Cancellation}} ({{.CancelReason}}, {{.CancelledAt}})</td></tr>{{end}}
  </table>
  {{if .TrackingLink}}
  <p>Track your shipment: <a href="{{.TrackingLink}}">{{.TrackingLink}}</a></p>
  {{else if .Tracking}}
  <p>Tracking: {{.Tracking}}</p>
  {{end}}
  <p>Thank you for shopping with us.</p>
</body>
</html>`
