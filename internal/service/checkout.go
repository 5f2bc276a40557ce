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

// CheckoutService implements the checkout pipeline: validate the cart against
// live catalog state, price the order, charge the customer, and hand shippable
// units to the shipping aggregator.
type CheckoutService struct {
	products         repository.ProductRepository
	customers        repository.CustomerRepository
	carts            repository.CartRepository
	shipping         *ShippingService
	producer         *event.Producer
	logger           *slog.Logger
	shippingFeeCents int64
}

// NewCheckoutService creates a new checkout service. The flat shipping fee is
// charged once per order whenever the order contains any shippable line.
func NewCheckoutService(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	carts repository.CartRepository,
	shipping *ShippingService,
	producer *event.Producer,
	logger *slog.Logger,
	shippingFeeCents int64,
) *CheckoutService {
	return &CheckoutService{
		products:         products,
		customers:        customers,
		carts:            carts,
		shipping:         shipping,
		producer:         producer,
		logger:           logger,
		shippingFeeCents: shippingFeeCents,
	}
}

// Checkout runs the full checkout pipeline for a customer's cart. Validation
// walks the lines in cart order and fails on the first problem; no stock,
// balance, or cart state is touched until every check has passed. On success
// it returns the receipt, with a shipment manifest attached when the order
// contained shippable lines.
func (s *CheckoutService) Checkout(ctx context.Context, customerID string) (*domain.Receipt, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	customer, err := s.customers.FindByName(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	cart, err := s.getCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, apperrors.EmptyCart()
	}

	// Validate every line against live catalog state, in cart order. Each
	// line resolves its product fresh; stock and expiry may have changed
	// since the line was added.
	lineProducts := make([]*domain.Product, len(cart.Lines))
	for i, line := range cart.Lines {
		product, err := s.products.FindByName(ctx, line.ProductName)
		if err != nil {
			return nil, fmt.Errorf("resolve cart line %q: %w", line.ProductName, err)
		}
		if line.Quantity > product.Quantity {
			return nil, apperrors.OutOfStock(product.Name, product.Quantity, line.Quantity)
		}
		if product.IsExpired() {
			return nil, apperrors.ExpiredProduct(product.Name)
		}
		lineProducts[i] = product
	}

	// Price the order.
	var subtotal int64
	var units []domain.ShippableUnit
	receiptLines := make([]domain.ReceiptLine, len(cart.Lines))
	for i, line := range cart.Lines {
		product := lineProducts[i]
		lineTotal := product.PriceCents * int64(line.Quantity)
		subtotal += lineTotal
		receiptLines[i] = domain.ReceiptLine{
			Quantity:       line.Quantity,
			ProductName:    product.Name,
			LineTotalCents: lineTotal,
		}
		units = append(units, domain.UnitsFromLine(product, line.Quantity)...)
	}

	var shippingFee int64
	if len(units) > 0 {
		shippingFee = s.shippingFeeCents
	}
	total := subtotal + shippingFee

	if total > customer.BalanceCents {
		return nil, apperrors.InsufficientBalance(total, customer.BalanceCents)
	}

	// Commit. All checks have passed; from here every mutation succeeds
	// against in-process state, so the order applies as a whole.
	for i, line := range cart.Lines {
		lineProducts[i].ReduceQuantity(line.Quantity)
		if err := s.products.Update(ctx, lineProducts[i]); err != nil {
			return nil, fmt.Errorf("update product %q: %w", lineProducts[i].Name, err)
		}
	}

	if err := customer.Debit(total); err != nil {
		return nil, err
	}
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	receipt := &domain.Receipt{
		CustomerID:       customer.Name,
		Lines:            receiptLines,
		SubtotalCents:    subtotal,
		ShippingFeeCents: shippingFee,
		TotalCents:       total,
		BalanceCents:     customer.BalanceCents,
	}

	if len(units) > 0 {
		receipt.Manifest = s.shipping.BuildManifest(units)
	}

	if err := s.carts.Delete(ctx, customerID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	s.publishCheckoutEvents(ctx, receipt)

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("customer_id", customer.Name),
		slog.Int64("subtotal_cents", subtotal),
		slog.Int64("shipping_fee_cents", shippingFee),
		slog.Int64("total_cents", total),
		slog.Int64("balance_cents", customer.BalanceCents),
	)

	return receipt, nil
}

// getCart loads the customer's cart, treating an absent cart as empty.
func (s *CheckoutService) getCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewCart(customerID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// publishCheckoutEvents emits checkout.completed and, when the order shipped
// anything, shipment.created. Publish failures are logged, never surfaced;
// the checkout has already committed. The producer is optional so broker-less
// setups like the demo CLI can run.
func (s *CheckoutService) publishCheckoutEvents(ctx context.Context, receipt *domain.Receipt) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishCheckoutCompleted(ctx, receipt); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("customer_id", receipt.CustomerID),
			slog.String("error", err.Error()),
		)
	}

	if receipt.Manifest != nil {
		if err := s.producer.PublishShipmentCreated(ctx, receipt.CustomerID, receipt.Manifest); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish shipment.created event",
				slog.String("customer_id", receipt.CustomerID),
				slog.String("error", err.Error()),
			)
		}
	}
}
