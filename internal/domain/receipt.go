package domain

// ReceiptLine is one purchased line on a checkout receipt.
type ReceiptLine struct {
	Quantity       int    `json:"quantity"`
	ProductName    string `json:"product_name"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// Receipt is the result of a successful checkout. It is derived, not stored;
// every checkout computes a fresh one.
type Receipt struct {
	CustomerID       string        `json:"customer_id"`
	Lines            []ReceiptLine `json:"lines"`
	SubtotalCents    int64         `json:"subtotal_cents"`
	ShippingFeeCents int64         `json:"shipping_fee_cents"`
	TotalCents       int64         `json:"total_cents"`
	BalanceCents     int64         `json:"balance_cents"`
	Manifest         *Manifest     `json:"manifest,omitempty"`
}
