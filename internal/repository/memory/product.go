package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// ProductRepository is an in-process product registry. The catalog lives for
// the lifetime of the process; there is no durable store behind it.
type ProductRepository struct {
	mu      sync.RWMutex
	byName  map[string]*domain.Product
	ordered []string
}

// NewProductRepository creates an empty in-memory product registry.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byName: make(map[string]*domain.Product),
	}
}

// FindByName retrieves a product by its name, case-insensitively.
func (r *ProductRepository) FindByName(_ context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, apperrors.NotFound("product", name)
	}
	return p, nil
}

// Add registers a new product. Names are unique within the catalog.
func (r *ProductRepository) Add(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(p.Name)
	if _, ok := r.byName[key]; ok {
		return apperrors.AlreadyExists("product", p.Name)
	}
	r.byName[key] = p
	r.ordered = append(r.ordered, key)
	return nil
}

// Update persists changes to an existing product. The registry hands out live
// pointers, so the stored entry already reflects the mutation; Update exists
// to keep the repository contract uniform across backends.
func (r *ProductRepository) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(p.Name)
	if _, ok := r.byName[key]; !ok {
		return apperrors.NotFound("product", p.Name)
	}
	r.byName[key] = p
	return nil
}

// ListAll returns all products in insertion order.
func (r *ProductRepository) ListAll(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.ordered))
	for _, key := range r.ordered {
		products = append(products, r.byName[key])
	}
	return products, nil
}
