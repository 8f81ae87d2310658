package query

import (
	"context"
	"fmt"
	"time"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
	"github.com/salestrack/sales-ledger/pkg/clock"
)

// DailyProfitQuery represents the query for the profit of one calendar day.
// AsOf is optional; the zero value means the current clock time.
type DailyProfitQuery struct {
	AsOf time.Time
}

// DailyProfitHandler handles the daily profit query
type DailyProfitHandler struct {
	repo  domain.SaleRepository
	clock clock.Clock
	loc   *time.Location
}

// NewDailyProfitHandler creates a new daily profit handler. loc fixes the
// calendar used for day boundaries.
func NewDailyProfitHandler(repo domain.SaleRepository, clk clock.Clock, loc *time.Location) *DailyProfitHandler {
	return &DailyProfitHandler{repo: repo, clock: clk, loc: loc}
}

// Handle sums the stored profit over sales whose occurredAt falls within the
// calendar day containing AsOf, start-of-day through end-of-day inclusive.
func (h *DailyProfitHandler) Handle(ctx context.Context, q DailyProfitQuery) (float64, error) {
	asOf := q.AsOf
	if asOf.IsZero() {
		asOf = h.clock.Now()
	}

	window := domain.DayWindow(asOf, h.loc)
	total, err := h.repo.SumProfitWithin(ctx, window)
	if err != nil {
		return 0, fmt.Errorf("failed to sum daily profit: %w", err)
	}
	return total, nil
}
