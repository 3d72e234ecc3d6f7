package shopify

import (
	"voice-commerce-gateway/internal/domain"
)

// Wire shapes mirror the GraphQL responses field for field. OrderNode is
// exported because the shipping-options-ext endpoint accepts the same node
// shape as a raw request body.

type edges[T any] struct {
	Edges []edge[T] `json:"edges"`
}

type edge[T any] struct {
	Node T `json:"node"`
}

type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type moneySet struct {
	ShopMoney moneyNode `json:"shopMoney"`
}

type customerNode struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type addressNode struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
}

type weightNode struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

type measurementNode struct {
	Weight weightNode `json:"weight"`
}

type inventoryItemNode struct {
	Measurement      measurementNode `json:"measurement"`
	RequiresShipping bool            `json:"requiresShipping"`
}

type variantWeightNode struct {
	InventoryItem inventoryItemNode `json:"inventoryItem"`
}

type productRefNode struct {
	Variants edges[variantWeightNode] `json:"variants"`
}

// LineItemNode is one order line item on the wire.
type LineItemNode struct {
	Name                 string          `json:"name"`
	Title                string          `json:"title"`
	CurrentQuantity      int             `json:"currentQuantity"`
	OriginalUnitPriceSet *moneySet       `json:"originalUnitPriceSet"`
	Product              *productRefNode `json:"product"`
}

type trackingInfoNode struct {
	Company string `json:"company"`
	Number  string `json:"number"`
	URL     string `json:"url"`
}

type fulfillmentNode struct {
	Name                string             `json:"name"`
	CreatedAt           string             `json:"createdAt"`
	DeliveredAt         *string            `json:"deliveredAt"`
	InTransitAt         *string            `json:"inTransitAt"`
	EstimatedDeliveryAt *string            `json:"estimatedDeliveryAt"`
	DisplayStatus       string             `json:"displayStatus"`
	TrackingInfo        []trackingInfoNode `json:"trackingInfo"`
}

type shippingLineNode struct {
	Title                     string    `json:"title"`
	CurrentDiscountedPriceSet *moneySet `json:"currentDiscountedPriceSet"`
}

type cancellationNode struct {
	StaffNote string `json:"staffNote"`
}

// OrderNode is the order payload on the wire. Narrower query shapes leave
// the unrequested fields at their zero values.
type OrderNode struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"createdAt"`
	ClosedAt  *string `json:"closedAt"`

	Customer        *customerNode `json:"customer"`
	ShippingAddress *addressNode  `json:"shippingAddress"`

	LineItems     edges[LineItemNode]     `json:"lineItems"`
	ShippingLines edges[shippingLineNode] `json:"shippingLines"`
	Fulfillments  []fulfillmentNode       `json:"fulfillments"`

	CurrentSubtotalLineItemsQuantity int      `json:"currentSubtotalLineItemsQuantity"`
	CurrentTotalWeight               string   `json:"currentTotalWeight"`
	PaymentGatewayNames              []string `json:"paymentGatewayNames"`

	DisplayFinancialStatus   string `json:"displayFinancialStatus"`
	DisplayFulfillmentStatus string `json:"displayFulfillmentStatus"`
	ReturnStatus             string `json:"returnStatus"`

	Cancellation *cancellationNode `json:"cancellation"`
	CancelReason *string           `json:"cancelReason"`
	CancelledAt  *string           `json:"cancelledAt"`

	TotalPriceSet                 *moneySet `json:"totalPriceSet"`
	CurrentSubtotalPriceSet       *moneySet `json:"currentSubtotalPriceSet"`
	CurrentTotalAdditionalFeesSet *moneySet `json:"currentTotalAdditionalFeesSet"`
	CurrentTotalTaxSet            *moneySet `json:"currentTotalTaxSet"`
	CurrentShippingPriceSet       *moneySet `json:"currentShippingPriceSet"`
	CurrentTotalDutiesSet         *moneySet `json:"currentTotalDutiesSet"`
	CurrentTotalDiscountsSet      *moneySet `json:"currentTotalDiscountsSet"`
	CurrentTotalPriceSet          *moneySet `json:"currentTotalPriceSet"`
	TotalReceivedSet              *moneySet `json:"totalReceivedSet"`
}

type optionValueNode struct {
	Name string `json:"name"`
}

type selectedOptionNode struct {
	Name        string          `json:"name"`
	OptionValue optionValueNode `json:"optionValue"`
}

type productVariantNode struct {
	AvailableForSale  bool                 `json:"availableForSale"`
	Barcode           string               `json:"barcode"`
	CompareAtPrice    *string              `json:"compareAtPrice"`
	DisplayName       string               `json:"displayName"`
	InventoryItem     inventoryItemNode    `json:"inventoryItem"`
	InventoryQuantity int                  `json:"inventoryQuantity"`
	Price             string               `json:"price"`
	SelectedOptions   []selectedOptionNode `json:"selectedOptions"`
	SKU               string               `json:"sku"`
}

type variantsCountNode struct {
	Count int `json:"count"`
}

type productNode struct {
	Description    string                    `json:"description"`
	Title          string                    `json:"title"`
	TotalInventory int                       `json:"totalInventory"`
	Variants       edges[productVariantNode] `json:"variants"`
	VariantsCount  variantsCountNode         `json:"variantsCount"`
	Vendor         string                    `json:"vendor"`
	OnlineStoreURL *string                   `json:"onlineStoreUrl"`
}

// Response data payloads, one per operation.

type ordersData struct {
	Orders edges[OrderNode] `json:"orders"`
}

type orderData struct {
	Order *OrderNode `json:"order"`
}

type productsData struct {
	Products edges[productNode] `json:"products"`
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func moneyFromSet(set *moneySet) domain.Money {
	if set == nil {
		return domain.Money{Amount: "0.0"}
	}
	return domain.Money{Amount: set.ShopMoney.Amount, CurrencyCode: set.ShopMoney.CurrencyCode}
}

// ToDomain projects the wire order into the domain payload.
func (n *OrderNode) ToDomain() *domain.Order {
	order := &domain.Order{
		ID:                       n.ID,
		Name:                     n.Name,
		CreatedAt:                n.CreatedAt,
		ClosedAt:                 stringOrEmpty(n.ClosedAt),
		SubtotalQuantity:         n.CurrentSubtotalLineItemsQuantity,
		TotalWeight:              n.CurrentTotalWeight,
		PaymentGateways:          n.PaymentGatewayNames,
		DisplayFinancialStatus:   n.DisplayFinancialStatus,
		DisplayFulfillmentStatus: n.DisplayFulfillmentStatus,
		ReturnStatus:             n.ReturnStatus,
		Cancelled:                n.Cancellation != nil,
		CancelReason:             stringOrEmpty(n.CancelReason),
		CancelledAt:              stringOrEmpty(n.CancelledAt),
		Subtotal:                 moneyFromSet(n.CurrentSubtotalPriceSet),
		Additional:               moneyFromSet(n.CurrentTotalAdditionalFeesSet),
		Tax:                      moneyFromSet(n.CurrentTotalTaxSet),
		Shipping:                 moneyFromSet(n.CurrentShippingPriceSet),
		Duties:                   moneyFromSet(n.CurrentTotalDutiesSet),
		Discount:                 moneyFromSet(n.CurrentTotalDiscountsSet),
		Paid:                     moneyFromSet(n.TotalReceivedSet),
	}

	// The list/search shapes carry totalPriceSet, the details shape carries
	// currentTotalPriceSet; whichever is present wins.
	if n.CurrentTotalPriceSet != nil {
		order.Total = moneyFromSet(n.CurrentTotalPriceSet)
	} else {
		order.Total = moneyFromSet(n.TotalPriceSet)
	}

	if n.Customer != nil {
		order.Customer = &domain.Customer{
			FirstName: n.Customer.FirstName,
			LastName:  n.Customer.LastName,
			Email:     n.Customer.Email,
			Phone:     n.Customer.Phone,
		}
	}
	if n.ShippingAddress != nil {
		order.ShippingAddress = &domain.Address{
			Address1: n.ShippingAddress.Address1,
			Address2: n.ShippingAddress.Address2,
			City:     n.ShippingAddress.City,
			Country:  n.ShippingAddress.Country,
			Zip:      n.ShippingAddress.Zip,
		}
	}

	for _, e := range n.LineItems.Edges {
		item := domain.LineItem{
			Name:     e.Node.Name,
			Title:    e.Node.Title,
			Quantity: e.Node.CurrentQuantity,
		}
		if e.Node.OriginalUnitPriceSet != nil {
			price := moneyFromSet(e.Node.OriginalUnitPriceSet)
			item.UnitPrice = &price
		}
		if e.Node.Product != nil && len(e.Node.Product.Variants.Edges) > 0 {
			item.VariantWeight = e.Node.Product.Variants.Edges[0].Node.InventoryItem.Measurement.Weight.Value
		}
		order.LineItems = append(order.LineItems, item)
	}

	for _, e := range n.ShippingLines.Edges {
		line := domain.ShippingLine{Title: e.Node.Title}
		if e.Node.CurrentDiscountedPriceSet != nil {
			line.Price = moneyFromSet(e.Node.CurrentDiscountedPriceSet)
		}
		order.ShippingLines = append(order.ShippingLines, line)
	}

	for _, f := range n.Fulfillments {
		fulfillment := domain.Fulfillment{
			DisplayStatus:       f.DisplayStatus,
			CreatedAt:           f.CreatedAt,
			DeliveredAt:         stringOrEmpty(f.DeliveredAt),
			InTransitAt:         stringOrEmpty(f.InTransitAt),
			EstimatedDeliveryAt: stringOrEmpty(f.EstimatedDeliveryAt),
		}
		for _, t := range f.TrackingInfo {
			fulfillment.Tracking = append(fulfillment.Tracking, domain.TrackingInfo{
				Company: t.Company,
				Number:  t.Number,
				URL:     t.URL,
			})
		}
		order.Fulfillments = append(order.Fulfillments, fulfillment)
	}

	return order
}

func (n *productNode) toDomain() *domain.Product {
	product := &domain.Product{
		Title:          n.Title,
		Vendor:         n.Vendor,
		Description:    n.Description,
		TotalInventory: n.TotalInventory,
		VariantCount:   n.VariantsCount.Count,
	}
	for _, e := range n.Variants.Edges {
		v := domain.Variant{
			SKU:              e.Node.SKU,
			DisplayName:      e.Node.DisplayName,
			Barcode:          e.Node.Barcode,
			Price:            e.Node.Price,
			CompareAtPrice:   stringOrEmpty(e.Node.CompareAtPrice),
			AvailableForSale: e.Node.AvailableForSale,
			InventoryQty:     e.Node.InventoryQuantity,
			Weight: domain.VariantWeight{
				Unit:  e.Node.InventoryItem.Measurement.Weight.Unit,
				Value: e.Node.InventoryItem.Measurement.Weight.Value,
			},
			RequiresShipping: e.Node.InventoryItem.RequiresShipping,
		}
		for _, opt := range e.Node.SelectedOptions {
			v.SelectedOptions = append(v.SelectedOptions, domain.SelectedOption{
				Name:  opt.Name,
				Value: opt.OptionValue.Name,
			})
		}
		product.Variants = append(product.Variants, v)
	}
	return product
}
