package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

func newTestCustomerService(repo *mockCustomerRepository) *CustomerService {
	return NewCustomerService(repo, newTestLogger())
}

func TestAddCustomer(t *testing.T) {
	repo := new(mockCustomerRepository)
	svc := newTestCustomerService(repo)
	ctx := context.Background()

	repo.On("Add", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil)

	customer, err := svc.AddCustomer(ctx, AddCustomerInput{Name: "Ali", BalanceCents: 100000})

	require.NoError(t, err)
	assert.Equal(t, "Ali", customer.Name)
	assert.Equal(t, int64(100000), customer.BalanceCents)

	repo.AssertExpectations(t)
}

func TestAddCustomer_NegativeBalance(t *testing.T) {
	repo := new(mockCustomerRepository)
	svc := newTestCustomerService(repo)

	_, err := svc.AddCustomer(context.Background(), AddCustomerInput{Name: "Ali", BalanceCents: -1})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Add")
}

func TestAddCustomer_Duplicate(t *testing.T) {
	repo := new(mockCustomerRepository)
	svc := newTestCustomerService(repo)
	ctx := context.Background()

	repo.On("Add", ctx, mock.AnythingOfType("*domain.Customer")).Return(apperrors.AlreadyExists("customer", "Ali"))

	_, err := svc.AddCustomer(ctx, AddCustomerInput{Name: "Ali", BalanceCents: 100000})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestCredit(t *testing.T) {
	repo := new(mockCustomerRepository)
	svc := newTestCustomerService(repo)
	ctx := context.Background()

	customer := domain.NewCustomer("Sarah", 20000)
	repo.On("FindByName", ctx, "Sarah").Return(customer, nil)
	repo.On("Update", ctx, customer).Return(nil)

	got, err := svc.Credit(ctx, "Sarah", 5000)

	require.NoError(t, err)
	assert.Equal(t, int64(25000), got.BalanceCents)

	repo.AssertExpectations(t)
}

func TestCredit_NonPositiveAmount(t *testing.T) {
	repo := new(mockCustomerRepository)
	svc := newTestCustomerService(repo)
	ctx := context.Background()

	customer := domain.NewCustomer("Sarah", 20000)
	repo.On("FindByName", ctx, "Sarah").Return(customer, nil)

	_, err := svc.Credit(ctx, "Sarah", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, int64(20000), customer.BalanceCents)
	repo.AssertNotCalled(t, "Update")
}

func TestCredit_CustomerNotFound(t *testing.T) {
	repo := new(mockCustomerRepository)
	svc := newTestCustomerService(repo)
	ctx := context.Background()

	repo.On("FindByName", ctx, "Ghost").Return(nil, apperrors.NotFound("customer", "Ghost"))

	_, err := svc.Credit(ctx, "Ghost", 5000)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
