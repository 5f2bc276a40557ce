package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	apperrors "github.com/Ahmed101Noor/Ecommerce-Task/pkg/errors"
)

func TestCartRepository_SaveAndGet(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := domain.NewCart("Ali")
	cart.Lines = append(cart.Lines, domain.CartLine{ProductName: "Cheese", Quantity: 2})
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, "Ali")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "Cheese", got.Lines[0].ProductName)
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo := NewCartRepository()

	got, err := repo.Get(context.Background(), "missing")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Delete(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.NewCart("Ali")))
	require.NoError(t, repo.Delete(ctx, "Ali"))

	_, err := repo.Get(ctx, "Ali")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, repo.Delete(ctx, "Ali"))
}
