package domain

import (
	"time"

	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// Cart represents a customer's shopping cart. Lines keep first-insertion
// order; a product appears in at most one line.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Lines      []CartLine `json:"lines"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartLine is a single (product, quantity) entry in a cart. The product is
// referenced by name; price and stock are always resolved live from the
// catalog, never snapshotted here.
type CartLine struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		CustomerID: customerID,
		Lines:      []CartLine{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Add puts quantity units of the product into the cart, merging into an
// existing line for the same product. It fails with InvalidQuantity for a
// non-positive quantity and with OutOfStock when the combined line quantity
// would exceed the product's current stock.
func (c *Cart) Add(p *Product, quantity int) error {
	if quantity <= 0 {
		return apperrors.InvalidQuantity("quantity must be greater than 0")
	}

	if i := c.FindLineIndex(p.Name); i >= 0 {
		combined := c.Lines[i].Quantity + quantity
		if combined > p.Quantity {
			return apperrors.OutOfStock(p.Name, p.Quantity, combined)
		}
		c.Lines[i].Quantity = combined
		c.UpdatedAt = time.Now().UTC()
		return nil
	}

	if quantity > p.Quantity {
		return apperrors.OutOfStock(p.Name, p.Quantity, quantity)
	}

	c.Lines = append(c.Lines, CartLine{ProductName: p.Name, Quantity: quantity})
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Remove deletes the line for the given product name. It reports whether a
// line was removed.
func (c *Cart) Remove(productName string) bool {
	i := c.FindLineIndex(productName)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	c.UpdatedAt = time.Now().UTC()
	return true
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear empties the cart in place. Product state is untouched.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
	c.UpdatedAt = time.Now().UTC()
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// FindLineIndex returns the index of the line for the given product name, or
// -1 if the cart has no such line.
func (c *Cart) FindLineIndex(productName string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductName == productName {
			return i
		}
	}
	return -1
}
