package domain

import (
	"time"
)

// Product kind constants.
const (
	KindExpirable    = "expirable"
	KindNonExpirable = "non_expirable"
)

// Product represents a sellable catalog item. The kind tag selects between the
// expirable variant (carries an expiry date) and the non-expirable one; all
// other fields are shared.
type Product struct {
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	PriceCents  int64     `json:"price_cents"`
	Quantity    int       `json:"quantity"`
	Shippable   bool      `json:"shippable"`
	WeightGrams int       `json:"weight_grams"`
	ExpiryDate  time.Time `json:"expiry_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewExpirableProduct creates an expirable product. The expiry date is kept at
// day granularity; only its calendar date is significant.
func NewExpirableProduct(name string, priceCents int64, quantity int, expiryDate time.Time, shippable bool, weightGrams int) *Product {
	now := time.Now().UTC()
	return &Product{
		Name:        name,
		Kind:        KindExpirable,
		PriceCents:  priceCents,
		Quantity:    quantity,
		Shippable:   shippable,
		WeightGrams: weightGrams,
		ExpiryDate:  expiryDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewNonExpirableProduct creates a product that never expires.
func NewNonExpirableProduct(name string, priceCents int64, quantity int, shippable bool, weightGrams int) *Product {
	now := time.Now().UTC()
	return &Product{
		Name:        name,
		Kind:        KindNonExpirable,
		PriceCents:  priceCents,
		Quantity:    quantity,
		Shippable:   shippable,
		WeightGrams: weightGrams,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsExpirable reports whether the product carries an expiry date.
func (p *Product) IsExpirable() bool {
	return p.Kind == KindExpirable
}

// IsExpired reports whether an expirable product's labeled date has passed.
// Always false for the non-expirable kind.
func (p *Product) IsExpired() bool {
	return p.ExpiredOn(time.Now().UTC())
}

// ExpiredOn reports whether the product is expired as of the given instant.
// A product expires the day after its labeled expiry date: same-day counts as
// not yet expired.
func (p *Product) ExpiredOn(now time.Time) bool {
	if p.Kind != KindExpirable {
		return false
	}
	return dateOf(p.ExpiryDate).Before(dateOf(now))
}

// Weight returns the unit weight in grams, or 0 for non-shippable products so
// weight aggregation never needs a shippability check.
func (p *Product) Weight() int {
	if !p.Shippable {
		return 0
	}
	return p.WeightGrams
}

// ReduceQuantity subtracts n from the available stock. It performs no bounds
// check; callers must have validated n against the current quantity.
func (p *Product) ReduceQuantity(n int) {
	p.Quantity -= n
	p.UpdatedAt = time.Now().UTC()
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidKinds returns the set of valid product kinds.
func ValidKinds() []string {
	return []string{KindExpirable, KindNonExpirable}
}

// IsValidKind checks whether the given kind string is a valid product kind.
func IsValidKind(kind string) bool {
	for _, k := range ValidKinds() {
		if k == kind {
			return true
		}
	}
	return false
}
