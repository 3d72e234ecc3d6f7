package domain

// VariantWeight is a variant's physical weight with its unit.
type VariantWeight struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// SelectedOption is one option choice on a variant (e.g. Color: Red).
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is one purchasable variant of a product.
type Variant struct {
	SKU              string           `json:"sku"`
	DisplayName      string           `json:"displayName"`
	Barcode          string           `json:"barcode"`
	Price            string           `json:"price"`
	CompareAtPrice   string           `json:"compareAtPrice"`
	AvailableForSale bool             `json:"availableForSale"`
	InventoryQty     int              `json:"inventoryQuantity"`
	Weight           VariantWeight    `json:"weight"`
	RequiresShipping bool             `json:"requiresShipping"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
}

// Product is the transient product payload fetched fresh per request.
type Product struct {
	Title          string    `json:"title"`
	Vendor         string    `json:"vendor"`
	Description    string    `json:"description"`
	TotalInventory int       `json:"totalInventory"`
	VariantCount   int       `json:"variantCount"`
	Variants       []Variant `json:"variants"`
}
