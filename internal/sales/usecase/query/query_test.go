package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
	"github.com/salestrack/sales-ledger/internal/sales/salestest"
	"github.com/salestrack/sales-ledger/pkg/clock"
)

func seedSale(t *testing.T, repo *salestest.Repository, product string, profit float64, occurredAt time.Time) *domain.SaleRecord {
	t.Helper()

	// Pick quantity 1 so profit equals the price margin
	sale := &domain.SaleRecord{
		Product:      product,
		Quantity:     1,
		CostPrice:    10,
		SellingPrice: 10 + profit,
		Profit:       profit,
		OccurredAt:   occurredAt,
	}
	require.NoError(t, repo.Create(context.Background(), sale))
	return sale
}

func TestGetSaleHandler(t *testing.T) {
	ctx := context.Background()
	repo := salestest.NewRepository()
	sale := seedSale(t, repo, "Soap", 7500, time.Now())

	handler := NewGetSaleHandler(repo)

	found, err := handler.Handle(ctx, GetSaleQuery{ID: sale.ID})
	require.NoError(t, err)
	assert.Equal(t, sale.ID, found.ID)
	assert.Equal(t, "Soap", found.Product)

	_, err = handler.Handle(ctx, GetSaleQuery{ID: "missing"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListSalesHandler(t *testing.T) {
	ctx := context.Background()
	repo := salestest.NewRepository()
	handler := NewListSalesHandler(repo)

	sales, err := handler.Handle(ctx, ListSalesQuery{})
	require.NoError(t, err)
	assert.Empty(t, sales)

	seedSale(t, repo, "Soap", 7500, time.Now())
	seedSale(t, repo, "Rice", 2500, time.Now())

	sales, err = handler.Handle(ctx, ListSalesQuery{})
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestCumulativeProfitHandler(t *testing.T) {
	ctx := context.Background()
	repo := salestest.NewRepository()
	handler := NewCumulativeProfitHandler(repo)

	t.Run("empty ledger totals zero", func(t *testing.T) {
		total, err := handler.Handle(ctx, CumulativeProfitQuery{})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("sums stored profit across records", func(t *testing.T) {
		seedSale(t, repo, "Soap", 7500, time.Now())
		seedSale(t, repo, "Rice", 2500, time.Now())
		seedSale(t, repo, "Clearance", -300, time.Now())

		total, err := handler.Handle(ctx, CumulativeProfitQuery{})
		require.NoError(t, err)
		assert.Equal(t, 9700.0, total)
	})
}

func TestDailyProfitHandler(t *testing.T) {
	ctx := context.Background()
	repo := salestest.NewRepository()

	clk := clock.NewMockClock(time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC))
	handler := NewDailyProfitHandler(repo, clk, time.UTC)

	// Inside today's window, including both boundaries
	seedSale(t, repo, "Opening", 100, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	seedSale(t, repo, "Midday", 200, time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC))
	seedSale(t, repo, "Closing", 300, time.Date(2024, time.March, 15, 23, 59, 59, 999000000, time.UTC))

	// Just outside
	seedSale(t, repo, "Yesterday", 1000, time.Date(2024, time.March, 14, 23, 59, 59, 999000000, time.UTC))
	seedSale(t, repo, "Tomorrow", 1000, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC))

	total, err := handler.Handle(ctx, DailyProfitQuery{})
	require.NoError(t, err)
	assert.Equal(t, 600.0, total)

	t.Run("explicit asOf overrides the clock", func(t *testing.T) {
		total, err := handler.Handle(ctx, DailyProfitQuery{
			AsOf: time.Date(2024, time.March, 14, 8, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, 1000.0, total)
	})

	t.Run("day with no sales totals zero", func(t *testing.T) {
		clk.Set(time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC))
		total, err := handler.Handle(ctx, DailyProfitQuery{})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestMonthlyProfitHandler(t *testing.T) {
	ctx := context.Background()
	repo := salestest.NewRepository()

	clk := clock.NewMockClock(time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC))
	handler := NewMonthlyProfitHandler(repo, clk, time.UTC)

	// February 2024 sales, the previous full month as of mid March
	seedSale(t, repo, "FebStart", 100, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	seedSale(t, repo, "FebEnd", 200, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC))

	// Current month and two months back both stay out
	seedSale(t, repo, "March", 1000, time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC))
	seedSale(t, repo, "January", 1000, time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC))

	total, err := handler.Handle(ctx, MonthlyProfitQuery{})
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)

	t.Run("clock day of month is irrelevant", func(t *testing.T) {
		clk.Set(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		total, err := handler.Handle(ctx, MonthlyProfitQuery{})
		require.NoError(t, err)
		assert.Equal(t, 300.0, total)
	})

	t.Run("empty previous month totals zero", func(t *testing.T) {
		clk.Set(time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC))
		total, err := handler.Handle(ctx, MonthlyProfitQuery{})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
