package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	pkgkafka "github.com/Ahmed101Noor/Ecommerce-Task/pkg/kafka"
)

// Kafka topic constants for storefront domain events.
const (
	TopicCartUpdated       = "storefront.cart.updated"
	TopicCheckoutCompleted = "storefront.checkout.completed"
	TopicShipmentCreated   = "storefront.shipment.created"
)

// Aggregate type constants.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeCheckout = "checkout"
	AggregateTypeShipment = "shipment"
)

// Source identifier for events originating from the storefront service.
const SourceStorefront = "storefront-service"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	CustomerID string         `json:"customer_id"`
	Lines      []CartLineData `json:"lines"`
	ItemCount  int            `json:"item_count"`
}

// CartLineData is the line payload within cart events.
type CartLineData struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	CustomerID       string `json:"customer_id"`
	SubtotalCents    int64  `json:"subtotal_cents"`
	ShippingFeeCents int64  `json:"shipping_fee_cents"`
	TotalCents       int64  `json:"total_cents"`
	BalanceCents     int64  `json:"balance_cents"`
	LineCount        int    `json:"line_count"`
}

// ShipmentCreatedData is the payload for a shipment.created event.
type ShipmentCreatedData struct {
	CustomerID       string              `json:"customer_id"`
	Groups           []ShipmentGroupData `json:"groups"`
	TotalWeightGrams int                 `json:"total_weight_grams"`
}

// ShipmentGroupData is the grouped payload within shipment events.
type ShipmentGroupData struct {
	Name             string `json:"name"`
	Count            int    `json:"count"`
	UnitWeightGrams  int    `json:"unit_weight_grams"`
	TotalWeightGrams int    `json:"total_weight_grams"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	lines := make([]CartLineData, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = CartLineData{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		}
	}

	data := CartUpdatedData{
		CustomerID: cart.CustomerID,
		Lines:      lines,
		ItemCount:  cart.ItemCount(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.CustomerID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("customer_id", cart.CustomerID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, receipt *domain.Receipt) error {
	data := CheckoutCompletedData{
		CustomerID:       receipt.CustomerID,
		SubtotalCents:    receipt.SubtotalCents,
		ShippingFeeCents: receipt.ShippingFeeCents,
		TotalCents:       receipt.TotalCents,
		BalanceCents:     receipt.BalanceCents,
		LineCount:        len(receipt.Lines),
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutCompleted, receipt.CustomerID, AggregateTypeCheckout, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create checkout.completed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutCompleted, event); err != nil {
		return fmt.Errorf("publish checkout.completed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.completed event",
		slog.String("customer_id", receipt.CustomerID),
		slog.Int64("total_cents", receipt.TotalCents),
	)

	return nil
}

// PublishShipmentCreated publishes a shipment.created event.
func (p *Producer) PublishShipmentCreated(ctx context.Context, customerID string, manifest *domain.Manifest) error {
	groups := make([]ShipmentGroupData, len(manifest.Groups))
	for i, g := range manifest.Groups {
		groups[i] = ShipmentGroupData{
			Name:             g.Name,
			Count:            g.Count,
			UnitWeightGrams:  g.UnitWeightGrams,
			TotalWeightGrams: g.TotalWeightGrams,
		}
	}

	data := ShipmentCreatedData{
		CustomerID:       customerID,
		Groups:           groups,
		TotalWeightGrams: manifest.TotalWeightGrams,
	}

	event, err := pkgkafka.NewEvent(TopicShipmentCreated, customerID, AggregateTypeShipment, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create shipment.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicShipmentCreated, event); err != nil {
		return fmt.Errorf("publish shipment.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published shipment.created event",
		slog.String("customer_id", customerID),
		slog.Int("total_weight_grams", manifest.TotalWeightGrams),
	)

	return nil
}
