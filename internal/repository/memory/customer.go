package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// CustomerRepository is an in-process customer registry.
type CustomerRepository struct {
	mu     sync.RWMutex
	byName map[string]*domain.Customer
}

// NewCustomerRepository creates an empty in-memory customer registry.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byName: make(map[string]*domain.Customer),
	}
}

// FindByName retrieves a customer by name, case-insensitively.
func (r *CustomerRepository) FindByName(_ context.Context, name string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, apperrors.NotFound("customer", name)
	}
	return c, nil
}

// Add registers a new customer. Names are unique.
func (r *CustomerRepository) Add(_ context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(c.Name)
	if _, ok := r.byName[key]; ok {
		return apperrors.AlreadyExists("customer", c.Name)
	}
	r.byName[key] = c
	return nil
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(_ context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(c.Name)
	if _, ok := r.byName[key]; !ok {
		return apperrors.NotFound("customer", c.Name)
	}
	r.byName[key] = c
	return nil
}
