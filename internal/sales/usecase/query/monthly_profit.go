package query

import (
	"context"
	"fmt"
	"time"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
	"github.com/salestrack/sales-ledger/pkg/clock"
)

// MonthlyProfitQuery represents the query for the profit of the previous
// full calendar month. AsOf is optional; the zero value means the current
// clock time.
type MonthlyProfitQuery struct {
	AsOf time.Time
}

// MonthlyProfitHandler handles the monthly profit query
type MonthlyProfitHandler struct {
	repo  domain.SaleRepository
	clock clock.Clock
	loc   *time.Location
}

// NewMonthlyProfitHandler creates a new monthly profit handler.
func NewMonthlyProfitHandler(repo domain.SaleRepository, clk clock.Clock, loc *time.Location) *MonthlyProfitHandler {
	return &MonthlyProfitHandler{repo: repo, clock: clk, loc: loc}
}

// Handle sums the stored profit over sales whose occurredAt falls within the
// calendar month preceding AsOf's month, whatever AsOf's day-of-month.
func (h *MonthlyProfitHandler) Handle(ctx context.Context, q MonthlyProfitQuery) (float64, error) {
	asOf := q.AsOf
	if asOf.IsZero() {
		asOf = h.clock.Now()
	}

	window := domain.PreviousMonthWindow(asOf, h.loc)
	total, err := h.repo.SumProfitWithin(ctx, window)
	if err != nil {
		return 0, fmt.Errorf("failed to sum monthly profit: %w", err)
	}
	return total, nil
}
