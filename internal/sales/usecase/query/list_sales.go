package query

import (
	"context"
	"fmt"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// ListSalesQuery represents the query to fetch every sale. The result is a
// full snapshot in store-native order; callers needing chronology sort by
// occurredAt themselves.
type ListSalesQuery struct{}

// ListSalesHandler handles the list sales query
type ListSalesHandler struct {
	repo domain.SaleRepository
}

// NewListSalesHandler creates a new list sales handler
func NewListSalesHandler(repo domain.SaleRepository) *ListSalesHandler {
	return &ListSalesHandler{repo: repo}
}

// Handle executes the list sales query
func (h *ListSalesHandler) Handle(ctx context.Context, _ ListSalesQuery) ([]domain.SaleRecord, error) {
	sales, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
