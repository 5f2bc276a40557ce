package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/event"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/repository"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// AddItemInput holds the parameters for adding a product to the cart.
type AddItemInput struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

// CartService implements the business logic for cart operations. Cart lines
// reference products by name; stock, price, and expiry are resolved live from
// the catalog on every operation, never snapshotted into the cart.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// GetCart retrieves the cart for a customer. If no cart exists, returns an
// empty cart.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewCart(customerID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds quantity units of a product to the customer's cart, merging
// into an existing line for the same product. The product must exist, must not
// be expired, and must have enough stock to cover the combined line quantity.
func (s *CartService) AddItem(ctx context.Context, customerID string, input AddItemInput) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}
	if input.ProductName == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.Quantity <= 0 {
		return nil, apperrors.InvalidQuantity("quantity must be greater than 0")
	}

	product, err := s.products.FindByName(ctx, input.ProductName)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}

	if product.IsExpired() {
		return nil, apperrors.ExpiredProduct(product.Name)
	}

	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := cart.Add(product, input.Quantity); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("customer_id", customerID),
		slog.String("product_name", product.Name),
		slog.Int("quantity", input.Quantity),
	)

	return cart, nil
}

// RemoveItem removes the line for a product from the customer's cart.
func (s *CartService) RemoveItem(ctx context.Context, customerID, productName string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}
	if productName == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}

	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get cart for remove: %w", err)
	}

	if !cart.Remove(productName) {
		return nil, apperrors.NotFound("cart line", productName)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("customer_id", customerID),
		slog.String("product_name", productName),
	)

	return cart, nil
}

// ClearCart removes all lines from the customer's cart.
func (s *CartService) ClearCart(ctx context.Context, customerID string) error {
	if customerID == "" {
		return apperrors.InvalidInput("customer id is required")
	}

	if err := s.carts.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	s.publishCartUpdated(ctx, domain.NewCart(customerID))

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("customer_id", customerID),
	)

	return nil
}

// publishCartUpdated emits a cart.updated event. Publish failures are logged,
// never surfaced; cart state is already saved. The producer is optional so
// broker-less setups like the demo CLI can run.
func (s *CartService) publishCartUpdated(ctx context.Context, cart *domain.Cart) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("customer_id", cart.CustomerID),
			slog.String("error", err.Error()),
		)
	}
}
