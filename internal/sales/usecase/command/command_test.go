package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
	"github.com/salestrack/sales-ledger/internal/sales/salestest"
)

func TestRecordSaleHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("derives profit and assigns identity", func(t *testing.T) {
		repo := salestest.NewRepository()
		handler := NewRecordSaleHandler(repo)

		sale, err := handler.Handle(ctx, RecordSaleCommand{
			Product:      "Soap",
			Quantity:     150,
			CostPrice:    50,
			SellingPrice: 100,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, sale.ID)
		assert.Equal(t, 7500.0, sale.Profit)
		assert.False(t, sale.OccurredAt.IsZero())
		assert.False(t, sale.CreatedAt.IsZero())

		stored, err := repo.FindByID(ctx, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.Profit, stored.Profit)
	})

	t.Run("keeps an explicit sale instant", func(t *testing.T) {
		repo := salestest.NewRepository()
		handler := NewRecordSaleHandler(repo)

		occurredAt := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
		sale, err := handler.Handle(ctx, RecordSaleCommand{
			Product:      "Rice",
			Quantity:     50,
			CostPrice:    100,
			SellingPrice: 150,
			OccurredAt:   occurredAt,
		})
		require.NoError(t, err)
		assert.True(t, sale.OccurredAt.Equal(occurredAt))
	})

	t.Run("writes nothing on validation failure", func(t *testing.T) {
		repo := salestest.NewRepository()
		handler := NewRecordSaleHandler(repo)

		_, err := handler.Handle(ctx, RecordSaleCommand{
			Product:      "Soap",
			Quantity:     0,
			CostPrice:    50,
			SellingPrice: 100,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		repo := salestest.NewRepository()
		repo.Err = errors.New("connection refused")
		handler := NewRecordSaleHandler(repo)

		_, err := handler.Handle(ctx, RecordSaleCommand{
			Product:      "Soap",
			Quantity:     1,
			CostPrice:    1,
			SellingPrice: 2,
		})
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrValidation))
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestUpdateSaleHandler(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *salestest.Repository) *domain.SaleRecord {
		t.Helper()
		sale, err := NewRecordSaleHandler(repo).Handle(ctx, RecordSaleCommand{
			Product:      "Soap",
			Quantity:     150,
			CostPrice:    50,
			SellingPrice: 100,
			OccurredAt:   time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		return sale
	}

	t.Run("replaces fields and recomputes profit", func(t *testing.T) {
		repo := salestest.NewRepository()
		original := seed(t, repo)
		handler := NewUpdateSaleHandler(repo)

		updated, err := handler.Handle(ctx, UpdateSaleCommand{
			ID:           original.ID,
			Product:      "Rice",
			Quantity:     50,
			CostPrice:    100,
			SellingPrice: 150,
		})
		require.NoError(t, err)

		assert.Equal(t, "Rice", updated.Product)
		assert.Equal(t, 2500.0, updated.Profit)

		// The sale instant survives the replace
		assert.True(t, updated.OccurredAt.Equal(original.OccurredAt))

		stored, err := repo.FindByID(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, 2500.0, stored.Profit)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		repo := salestest.NewRepository()
		handler := NewUpdateSaleHandler(repo)

		_, err := handler.Handle(ctx, UpdateSaleCommand{
			ID:           "missing",
			Product:      "Rice",
			Quantity:     1,
			CostPrice:    1,
			SellingPrice: 2,
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("validation failure leaves the record untouched", func(t *testing.T) {
		repo := salestest.NewRepository()
		original := seed(t, repo)
		handler := NewUpdateSaleHandler(repo)

		_, err := handler.Handle(ctx, UpdateSaleCommand{
			ID:           original.ID,
			Product:      "",
			Quantity:     50,
			CostPrice:    100,
			SellingPrice: 150,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		stored, err := repo.FindByID(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "Soap", stored.Product)
		assert.Equal(t, 7500.0, stored.Profit)
	})
}

func TestDeleteSaleHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the record permanently", func(t *testing.T) {
		repo := salestest.NewRepository()
		sale, err := NewRecordSaleHandler(repo).Handle(ctx, RecordSaleCommand{
			Product:      "Soap",
			Quantity:     150,
			CostPrice:    50,
			SellingPrice: 100,
		})
		require.NoError(t, err)

		require.NoError(t, NewDeleteSaleHandler(repo).Handle(ctx, DeleteSaleCommand{ID: sale.ID}))

		_, err = repo.FindByID(ctx, sale.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		// Deleting again reports not found rather than succeeding silently
		err = NewDeleteSaleHandler(repo).Handle(ctx, DeleteSaleCommand{ID: sale.ID})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
