package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/repository"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// ExpiryDateLayout is the wire format for product expiry dates. Expiry is
// tracked at day granularity only.
const ExpiryDateLayout = "2006-01-02"

// AddProductInput holds the parameters for registering a catalog product.
type AddProductInput struct {
	Name        string `json:"name" validate:"required"`
	Kind        string `json:"kind" validate:"required"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Shippable   bool   `json:"shippable"`
	WeightGrams int    `json:"weight_grams" validate:"gte=0"`
	ExpiryDate  string `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ProductService implements the business logic for catalog operations.
type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// AddProduct registers a new product in the catalog. Product names are unique
// case-insensitively.
func (s *ProductService) AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if !domain.IsValidKind(input.Kind) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("kind must be one of %v", domain.ValidKinds()))
	}
	if input.PriceCents <= 0 {
		return nil, apperrors.InvalidInput("price must be greater than 0")
	}
	if input.Quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}
	if input.Shippable && input.WeightGrams <= 0 {
		return nil, apperrors.InvalidInput("shippable products require a positive weight")
	}

	var product *domain.Product
	switch input.Kind {
	case domain.KindExpirable:
		if input.ExpiryDate == "" {
			return nil, apperrors.InvalidInput("expirable products require an expiry date")
		}
		expiry, err := time.ParseInLocation(ExpiryDateLayout, input.ExpiryDate, time.UTC)
		if err != nil {
			return nil, apperrors.InvalidInput(fmt.Sprintf("expiry date must be in %s format", ExpiryDateLayout))
		}
		product = domain.NewExpirableProduct(input.Name, input.PriceCents, input.Quantity, expiry, input.Shippable, input.WeightGrams)
	case domain.KindNonExpirable:
		if input.ExpiryDate != "" {
			return nil, apperrors.InvalidInput("non-expirable products must not carry an expiry date")
		}
		product = domain.NewNonExpirableProduct(input.Name, input.PriceCents, input.Quantity, input.Shippable, input.WeightGrams)
	}

	if err := s.repo.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}

	s.logger.InfoContext(ctx, "product added to catalog",
		slog.String("name", product.Name),
		slog.String("kind", product.Kind),
		slog.Int64("price_cents", product.PriceCents),
		slog.Int("quantity", product.Quantity),
	)

	return product, nil
}

// GetProduct retrieves a product by name.
func (s *ProductService) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	if name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}

	product, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// ListProducts returns the full catalog in insertion order.
func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
