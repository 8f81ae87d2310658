package query

import (
	"context"
	"fmt"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// CumulativeProfitQuery represents the query for the all-time profit total.
type CumulativeProfitQuery struct{}

// CumulativeProfitHandler handles the cumulative profit query
type CumulativeProfitHandler struct {
	repo domain.SaleRepository
}

// NewCumulativeProfitHandler creates a new cumulative profit handler
func NewCumulativeProfitHandler(repo domain.SaleRepository) *CumulativeProfitHandler {
	return &CumulativeProfitHandler{repo: repo}
}

// Handle sums the stored profit over every record. An empty ledger totals 0.
// The total reflects whatever profit was recorded at write time; prices are
// never re-derived.
func (h *CumulativeProfitHandler) Handle(ctx context.Context, _ CumulativeProfitQuery) (float64, error) {
	total, err := h.repo.SumProfit(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum profit: %w", err)
	}
	return total, nil
}
