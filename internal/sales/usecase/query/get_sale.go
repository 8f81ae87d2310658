package query

import (
	"context"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// GetSaleQuery represents the query to fetch a single sale by ID.
type GetSaleQuery struct {
	ID string
}

// GetSaleHandler handles the get sale query
type GetSaleHandler struct {
	repo domain.SaleRepository
}

// NewGetSaleHandler creates a new get sale handler
func NewGetSaleHandler(repo domain.SaleRepository) *GetSaleHandler {
	return &GetSaleHandler{repo: repo}
}

// Handle executes the get sale query
func (h *GetSaleHandler) Handle(ctx context.Context, q GetSaleQuery) (*domain.SaleRecord, error) {
	return h.repo.FindByID(ctx, q.ID)
}
