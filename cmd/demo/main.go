// Command demo replays the reference storefront scenario against in-process
// registries and writes the textual output to stdout. No Redis, Kafka, or
// HTTP server is required.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/app"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/render"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/repository/memory"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/service"
)

const shippingFeeCents = 3000

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	out := os.Stdout

	// The demo has no broker or cart store behind it; keep the log output
	// out of the way.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	products := memory.NewProductRepository()
	customers := memory.NewCustomerRepository()
	carts := memory.NewCartRepository()

	if err := app.SeedDemoData(ctx, products, customers, logger); err != nil {
		return err
	}

	cartService := service.NewCartService(carts, products, nil, logger)
	checkoutService := service.NewCheckoutService(products, customers, carts, service.NewShippingService(), nil, logger, shippingFeeCents)

	fmt.Fprintln(out, "=== E-COMMERCE SYSTEM DEMO ===")

	ali, err := customers.FindByName(ctx, "Ali")
	if err != nil {
		return err
	}
	render.WriteCustomerInfo(out, ali)

	catalog, err := products.ListAll(ctx)
	if err != nil {
		return err
	}
	render.WriteProductList(out, productViews(catalog))

	for _, add := range []struct {
		name     string
		quantity int
	}{
		{"Cheese", 2},
		{"Biscuits", 1},
		{"Mobile scratch card", 1},
	} {
		if _, err := cartService.AddItem(ctx, "Ali", service.AddItemInput{ProductName: add.name, Quantity: add.quantity}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Added %dx %s to cart\n", add.quantity, add.name)
	}

	cart, err := cartService.GetCart(ctx, "Ali")
	if err != nil {
		return err
	}
	views, err := cartViews(ctx, products, cart)
	if err != nil {
		return err
	}
	render.WriteCartListing(out, views)

	receipt, err := checkoutService.Checkout(ctx, "Ali")
	if err != nil {
		return err
	}

	render.WriteManifest(out, receipt.Manifest)
	render.WriteReceipt(out, receipt)

	return nil
}

func productViews(catalog []*domain.Product) []render.ProductView {
	views := make([]render.ProductView, len(catalog))
	for i, p := range catalog {
		views[i] = render.ProductView{
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Quantity:   p.Quantity,
			Expired:    p.IsExpired(),
		}
	}
	return views
}

func cartViews(ctx context.Context, products *memory.ProductRepository, cart *domain.Cart) ([]render.CartLineView, error) {
	views := make([]render.CartLineView, len(cart.Lines))
	for i, line := range cart.Lines {
		p, err := products.FindByName(ctx, line.ProductName)
		if err != nil {
			return nil, err
		}
		views[i] = render.CartLineView{
			Quantity:       line.Quantity,
			Name:           p.Name,
			UnitPriceCents: p.PriceCents,
		}
	}
	return views, nil
}
