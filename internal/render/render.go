// Package render writes the storefront's textual output: checkout receipts,
// shipment notices, and cart or catalog listings. Receipts and notices round
// to whole dollars; cart and catalog listings show two decimals.
package render

import (
	"fmt"
	"io"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
)

// CartLineView is one resolved line of a cart listing.
type CartLineView struct {
	Quantity       int
	Name           string
	UnitPriceCents int64
}

// ProductView is one resolved line of a catalog listing.
type ProductView struct {
	Name       string
	PriceCents int64
	Quantity   int
	Expired    bool
}

// WriteReceipt writes a checkout receipt.
func WriteReceipt(w io.Writer, r *domain.Receipt) {
	fmt.Fprintf(w, "\n** Checkout Receipt **\n")
	for _, line := range r.Lines {
		fmt.Fprintf(w, "%dx %s $%.0f\n", line.Quantity, line.ProductName, dollars(line.LineTotalCents))
	}
	fmt.Fprintf(w, "----------------------\n")
	fmt.Fprintf(w, "Subtotal %.0f\n", dollars(r.SubtotalCents))
	fmt.Fprintf(w, "Shipping %.0f\n", dollars(r.ShippingFeeCents))
	fmt.Fprintf(w, "Amount %.0f\n", dollars(r.TotalCents))
	fmt.Fprintf(w, "Customer balance: %.0f\n", dollars(r.BalanceCents))
}

// WriteManifest writes a shipment notice. An empty manifest writes nothing.
func WriteManifest(w io.Writer, m *domain.Manifest) {
	if m == nil || len(m.Groups) == 0 {
		return
	}
	fmt.Fprintf(w, "** Shipment notice **\n")
	for _, g := range m.Groups {
		fmt.Fprintf(w, "%dx %s %.0fg\n", g.Count, g.Name, float64(g.UnitWeightGrams))
	}
	fmt.Fprintf(w, "Total package weight %.1fkg\n", m.TotalWeightKilograms())
}

// WriteCartListing writes the contents of a cart with per-line and total
// prices. An empty cart writes a short notice instead.
func WriteCartListing(w io.Writer, lines []CartLineView) {
	if len(lines) == 0 {
		fmt.Fprintf(w, "Cart is empty\n")
		return
	}

	fmt.Fprintf(w, "\n=== Shopping Cart ===\n")
	var total int64
	for _, line := range lines {
		lineTotal := line.UnitPriceCents * int64(line.Quantity)
		total += lineTotal
		fmt.Fprintf(w, "%dx %s - $%.2f each = $%.2f\n", line.Quantity, line.Name, dollars(line.UnitPriceCents), dollars(lineTotal))
	}
	fmt.Fprintf(w, "Cart Total: $%.2f\n", dollars(total))
	fmt.Fprintf(w, "\n")
}

// WriteProductList writes the catalog with prices, stock, and expiry status.
func WriteProductList(w io.Writer, products []ProductView) {
	fmt.Fprintf(w, "\n=== Available Products ===\n")
	for _, p := range products {
		status := ""
		if p.Expired {
			status = " [EXPIRED]"
		}
		fmt.Fprintf(w, "%s - $%.2f (Qty: %d)%s\n", p.Name, dollars(p.PriceCents), p.Quantity, status)
	}
	fmt.Fprintf(w, "\n")
}

// WriteCustomerInfo writes a customer's name and balance.
func WriteCustomerInfo(w io.Writer, c *domain.Customer) {
	fmt.Fprintf(w, "\n=== Customer Information ===\n")
	fmt.Fprintf(w, "Name: %s\n", c.Name)
	fmt.Fprintf(w, "Balance: $%.2f\n", dollars(c.BalanceCents))
	fmt.Fprintf(w, "\n")
}

// dollars converts a cents amount to its dollar value for display.
func dollars(cents int64) float64 {
	return float64(cents) / 100
}
