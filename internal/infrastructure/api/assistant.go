package api

import (
	"encoding/json"
	"net/http"

	"voice-commerce-gateway/internal/application"
)

// assistantArgs is the envelope the voice platform posts: the collected
// function arguments live under "args".
type assistantArgs struct {
	Args json.RawMessage `json:"args"`
}

// decodeArgs unpacks the args envelope into dst. Empty or missing args is a
// client error.
func decodeArgs(r *http.Request, dst any) bool {
	var envelope assistantArgs
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		return false
	}
	if len(envelope.Args) == 0 {
		return false
	}
	return json.Unmarshal(envelope.Args, dst) == nil
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	var args struct {
		OrderNumber string `json:"orderNumber"`
	}
	if !decodeArgs(r, &args) || args.OrderNumber == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	speech, err := s.assistant.OrderStatus(r.Context(), args.OrderNumber)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": speech})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	var args struct {
		ProductName string `json:"productName"`
	}
	if !decodeArgs(r, &args) || args.ProductName == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	speech, err := s.assistant.ProductDetails(r.Context(), args.ProductName)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": speech})
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	var args struct {
		CustomerName     string `json:"customer_name"`
		CustomerEmail    string `json:"customer_email"`
		OrderNumber      string `json:"order_number"`
		ItemsDescription string `json:"items_description"`
		Subtotal         string `json:"subtotal"`
		Weight           string `json:"weight"`
		PaymentGateway   string `json:"payment_gateway"`
		Fulfillment      string `json:"fulfillment"`
		Shipping         string `json:"shipping"`
		FinancialStatus  string `json:"financial_status"`
		ReturnStatus     string `json:"return_status"`
		Cancellation     string `json:"cancellation"`
		Tracking         string `json:"tracking"`
		CancelReason     string `json:"cancel_reason"`
		CancelledAt      string `json:"cancelled_at"`
		CreatedAt        string `json:"created_at"`
		ClosedAt         string `json:"closed_at"`
		Currency         string `json:"currency"`
	}
	if !decodeArgs(r, &args) || args.OrderNumber == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.assistant.SendOrderEmail(r.Context(), &application.OrderEmailRequest{
		CustomerName:     args.CustomerName,
		CustomerEmail:    args.CustomerEmail,
		OrderNumber:      args.OrderNumber,
		ItemsDescription: args.ItemsDescription,
		Subtotal:         args.Subtotal,
		Weight:           args.Weight,
		PaymentGateway:   args.PaymentGateway,
		Fulfillment:      args.Fulfillment,
		Shipping:         args.Shipping,
		FinancialStatus:  args.FinancialStatus,
		ReturnStatus:     args.ReturnStatus,
		Cancellation:     args.Cancellation,
		Tracking:         args.Tracking,
		CancelReason:     args.CancelReason,
		CancelledAt:      args.CancelledAt,
		CreatedAt:        args.CreatedAt,
		ClosedAt:         args.ClosedAt,
		Currency:         args.Currency,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}
