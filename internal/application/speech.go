package application

import (
	"fmt"
	"strings"

	"voice-commerce-gateway/internal/domain"
)

// OrderSpeech renders the conversational order status paragraph the voice
// assistant reads back. Sentence order is fixed: items, subtotal and weight,
// payment and shipping, financial and return status, created/completed dates,
// the cancellation trio, tracking, then the delivered-or-estimated date.
func OrderSpeech(order *domain.Order) string {
	currency := ""
	if len(order.LineItems) > 0 && order.LineItems[0].UnitPrice != nil {
		currency = order.LineItems[0].UnitPrice.CurrencyCode
	}

	items := make([]string, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		price := ""
		if item.UnitPrice != nil {
			price = item.UnitPrice.Amount
		}
		items = append(items, fmt.Sprintf("%d %s for %s", item.Quantity, item.Name, SpeechPrice(currency, price)))
	}

	paymentGateway := ""
	if len(order.PaymentGateways) > 0 {
		paymentGateway = order.PaymentGateways[0]
	}

	shippingMethod, shippingCost := "", ""
	if len(order.ShippingLines) > 0 {
		shippingMethod = order.ShippingLines[0].Title
		shippingCost = order.ShippingLines[0].Price.Amount
	}

	var fulfillment *domain.Fulfillment
	fulfillmentStatus := ""
	trackingCompany, trackingNumber := notAvailable, notAvailable
	if len(order.Fulfillments) > 0 {
		fulfillment = &order.Fulfillments[0]
		fulfillmentStatus = fulfillment.DisplayStatus
		if len(fulfillment.Tracking) > 0 {
			if fulfillment.Tracking[0].Company != "" {
				trackingCompany = fulfillment.Tracking[0].Company
			}
			if fulfillment.Tracking[0].Number != "" {
				trackingNumber = fulfillment.Tracking[0].Number
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your order #%s includes %s. ", strings.TrimPrefix(order.Name, "#"), JoinNatural(items))
	fmt.Fprintf(&b, "The subtotal for %d item(s) is %s, and the total weight is %s lbs. ",
		order.SubtotalQuantity, SpeechPrice(currency, order.Subtotal.Amount), order.TotalWeight)
	fmt.Fprintf(&b, "It was paid via %s and %s via %s for %s. ",
		paymentGateway, strings.ToLower(fulfillmentStatus), shippingMethod, SpeechPrice(currency, shippingCost))
	fmt.Fprintf(&b, "The financial status is %s, and the return status is %s. ",
		strings.ToLower(order.DisplayFinancialStatus), statusPhrase(order.ReturnStatus))
	fmt.Fprintf(&b, "The order was created on %s and completed on %s. ",
		DatePart(order.CreatedAt), DatePart(order.ClosedAt))

	if order.Cancelled {
		b.WriteString("The order was cancelled. ")
	} else {
		b.WriteString("The order was not cancelled. ")
	}
	if order.CancelReason == "" {
		b.WriteString("No cancellation reason was provided. ")
	} else {
		fmt.Fprintf(&b, "The cancellation reason was: %s. ", order.CancelReason)
	}
	if order.CancelledAt == "" {
		b.WriteString("No cancellation date was recorded. ")
	} else {
		fmt.Fprintf(&b, "The order was cancelled on %s. ", DatePart(order.CancelledAt))
	}

	fmt.Fprintf(&b, "The fulfillment status is %s, and the tracking company is %s, with tracking number %s.",
		strings.ToLower(fulfillmentStatus), trackingCompany, trackingNumber)

	if fulfillment != nil {
		if fulfillmentStatus == "DELIVERED" {
			fmt.Fprintf(&b, "The order was delivered on %s.", DatePart(fulfillment.DeliveredAt))
		} else {
			fmt.Fprintf(&b, "The estimated delivery date is %s.", DatePart(fulfillment.EstimatedDeliveryAt))
		}
	}

	return b.String()
}

// ProductSpeech summarizes a product for the voice assistant: title, vendor,
// price range, availability, and the lead variant's shipping facts.
func ProductSpeech(product *domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s by %s comes in %d variant(s) with %d unit(s) in stock. ",
		product.Title, product.Vendor, product.VariantCount, product.TotalInventory)

	if len(product.Variants) > 0 {
		v := product.Variants[0]
		availability := "is currently unavailable"
		if v.AvailableForSale {
			availability = "is available for sale"
		}
		fmt.Fprintf(&b, "The %s variant is priced at %s and %s. ", v.DisplayName, v.Price, availability)
		if v.Weight.Value > 0 {
			fmt.Fprintf(&b, "It weighs %g %s. ", v.Weight.Value, v.Weight.Unit)
		}
	}

	if product.Description != "" {
		b.WriteString(product.Description)
	}
	return strings.TrimSpace(b.String())
}
