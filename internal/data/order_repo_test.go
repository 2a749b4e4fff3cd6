package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/testutil"
)

func testOrderRequest() *model.CreateOrderRequest {
	return &model.CreateOrderRequest{
		CustomerName:  "Pat Doe",
		CustomerEmail: "pat@example.com",
		Items: []model.OrderItem{
			{ProductID: "p-1", Name: "Lamp", Quantity: 2, PriceCents: 1999},
			{ProductID: "p-2", Name: "Desk", Quantity: 1, PriceCents: 24999},
		},
	}
}

func TestOrderRepo_CreateGetList(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewOrderRepo(db)

		created, err := repo.Create(ctx, testOrderRequest())
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, model.OrderStatusPending, created.Status)
		assert.Equal(t, int64(2*1999+24999), created.TotalCents)
		require.Len(t, created.Items, 2)
		assert.Equal(t, "Lamp", created.Items[0].Name)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.TotalCents, got.TotalCents)
		assert.Equal(t, created.Items, got.Items)

		lst, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)
	})
}

func TestOrderRepo_SetStatus(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewOrderRepo(db)

		created, err := repo.Create(ctx, testOrderRequest())
		require.NoError(t, err)

		updated, err := repo.SetStatus(ctx, created.ID, model.OrderStatusShipped)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusShipped, updated.Status)

		_, err = repo.SetStatus(ctx, created.ID, "refunded")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of")
	})
}

func TestOrderRepo_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewOrderRepo(db)

		const missing = "00000000-0000-0000-0000-000000000000"
		_, err := repo.GetByID(ctx, missing)
		assert.ErrorIs(t, err, ErrOrderNotFound)

		_, err = repo.SetStatus(ctx, missing, model.OrderStatusPaid)
		assert.ErrorIs(t, err, ErrOrderNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, missing), ErrOrderNotFound)
	})
}
