package domain

import (
	"time"

	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// Customer represents a storefront customer with a prepaid balance.
type Customer struct {
	Name         string    `json:"name"`
	BalanceCents int64     `json:"balance_cents"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCustomer creates a customer with the given starting balance.
func NewCustomer(name string, balanceCents int64) *Customer {
	now := time.Now().UTC()
	return &Customer{
		Name:         name,
		BalanceCents: balanceCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Debit subtracts the amount from the balance. The balance never goes
// negative; a debit that would is rejected with InsufficientBalance.
func (c *Customer) Debit(amountCents int64) error {
	if amountCents > c.BalanceCents {
		return apperrors.InsufficientBalance(amountCents, c.BalanceCents)
	}
	c.BalanceCents -= amountCents
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Credit adds the amount to the balance. The amount must be strictly positive.
func (c *Customer) Credit(amountCents int64) error {
	if amountCents <= 0 {
		return apperrors.InvalidInput("credit amount must be greater than 0")
	}
	c.BalanceCents += amountCents
	c.UpdatedAt = time.Now().UTC()
	return nil
}
