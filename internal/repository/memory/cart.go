package memory

import (
	"context"
	"sync"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// CartRepository is an in-process cart store. It backs single-process setups
// like the demo CLI; the server uses the Redis-backed store instead.
type CartRepository struct {
	mu         sync.RWMutex
	byCustomer map[string]*domain.Cart
}

// NewCartRepository creates an empty in-memory cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		byCustomer: make(map[string]*domain.Cart),
	}
}

// Get retrieves a cart by customer ID.
func (r *CartRepository) Get(_ context.Context, customerID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.byCustomer[customerID]
	if !ok {
		return nil, apperrors.NotFound("cart", customerID)
	}
	return cart, nil
}

// Save stores a cart keyed by its customer ID.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byCustomer[cart.CustomerID] = cart
	return nil
}

// Delete removes a customer's cart. Deleting an absent cart is not an error.
func (r *CartRepository) Delete(_ context.Context, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byCustomer, customerID)
	return nil
}
