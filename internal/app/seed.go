package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/repository"
)

// SeedDemoData loads the demo catalog and customers into the registries.
// Expiry dates are relative to startup so the expired-product path stays
// reproducible; Milk is always one day past its date.
func SeedDemoData(ctx context.Context, products repository.ProductRepository, customers repository.CustomerRepository, logger *slog.Logger) error {
	now := time.Now().UTC()

	catalog := []*domain.Product{
		domain.NewExpirableProduct("Cheese", 10000, 5, now.AddDate(0, 0, 2), true, 400),
		domain.NewExpirableProduct("Biscuits", 15000, 2, now.AddDate(0, 0, 1), true, 700),
		domain.NewNonExpirableProduct("TV", 500000, 3, true, 10000),
		domain.NewNonExpirableProduct("Mobile scratch card", 5000, 10, false, 0),
		domain.NewExpirableProduct("Milk", 8000, 3, now.AddDate(0, 0, -1), true, 1000),
	}
	for _, p := range catalog {
		if err := products.Add(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	demoCustomers := []*domain.Customer{
		domain.NewCustomer("Ali", 100000),
		domain.NewCustomer("Sarah", 20000),
		domain.NewCustomer("John", 5000),
	}
	for _, c := range demoCustomers {
		if err := customers.Add(ctx, c); err != nil {
			return fmt.Errorf("seed customer %q: %w", c.Name, err)
		}
	}

	logger.Info("demo data seeded",
		slog.Int("products", len(catalog)),
		slog.Int("customers", len(demoCustomers)),
	)

	return nil
}
