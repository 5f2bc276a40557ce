package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/repository"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

// AddCustomerInput holds the parameters for registering a customer.
type AddCustomerInput struct {
	Name         string `json:"name" validate:"required"`
	BalanceCents int64  `json:"balance_cents" validate:"gte=0"`
}

// CustomerService implements the business logic for customer operations.
type CustomerService struct {
	repo   repository.CustomerRepository
	logger *slog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: logger,
	}
}

// AddCustomer registers a new customer. Customer names are unique
// case-insensitively.
func (s *CustomerService) AddCustomer(ctx context.Context, input AddCustomerInput) (*domain.Customer, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}
	if input.BalanceCents < 0 {
		return nil, apperrors.InvalidInput("balance must not be negative")
	}

	customer := domain.NewCustomer(input.Name, input.BalanceCents)
	if err := s.repo.Add(ctx, customer); err != nil {
		return nil, fmt.Errorf("add customer: %w", err)
	}

	s.logger.InfoContext(ctx, "customer registered",
		slog.String("name", customer.Name),
		slog.Int64("balance_cents", customer.BalanceCents),
	)

	return customer, nil
}

// GetCustomer retrieves a customer by name.
func (s *CustomerService) GetCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	if name == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}

	customer, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}

// Credit tops up a customer's prepaid balance.
func (s *CustomerService) Credit(ctx context.Context, name string, amountCents int64) (*domain.Customer, error) {
	if name == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}

	customer, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get customer for credit: %w", err)
	}

	if err := customer.Credit(amountCents); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.logger.InfoContext(ctx, "customer balance credited",
		slog.String("name", customer.Name),
		slog.Int64("amount_cents", amountCents),
		slog.Int64("balance_cents", customer.BalanceCents),
	)

	return customer, nil
}
