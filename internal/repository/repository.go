package repository

import (
	"context"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
)

// ProductRepository defines the catalog registry consumed by the checkout engine.
type ProductRepository interface {
	// FindByName retrieves a product by its name (case-insensitive).
	FindByName(ctx context.Context, name string) (*domain.Product, error)

	// Add registers a new product. Fails if a product with the same name exists.
	Add(ctx context.Context, p *domain.Product) error

	// Update persists changes to an existing product (stock reduction).
	Update(ctx context.Context, p *domain.Product) error

	// ListAll returns all products in insertion order.
	ListAll(ctx context.Context) ([]*domain.Product, error)
}

// CustomerRepository defines the customer registry.
type CustomerRepository interface {
	// FindByName retrieves a customer by name (case-insensitive).
	FindByName(ctx context.Context, name string) (*domain.Customer, error)

	// Add registers a new customer. Fails if a customer with the same name exists.
	Add(ctx context.Context, c *domain.Customer) error

	// Update persists changes to an existing customer (balance mutation).
	Update(ctx context.Context, c *domain.Customer) error
}

// CartRepository defines the interface for cart persistence operations.
type CartRepository interface {
	// Get retrieves a cart by its customer ID.
	Get(ctx context.Context, customerID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the customer.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart from the store by the customer ID.
	Delete(ctx context.Context, customerID string) error
}
