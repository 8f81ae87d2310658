package command

import (
	"context"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// DeleteSaleCommand represents the command to permanently remove a sale.
type DeleteSaleCommand struct {
	ID string
}

// DeleteSaleHandler handles the delete sale command
type DeleteSaleHandler struct {
	repo domain.SaleRepository
}

// NewDeleteSaleHandler creates a new delete sale handler
func NewDeleteSaleHandler(repo domain.SaleRepository) *DeleteSaleHandler {
	return &DeleteSaleHandler{repo: repo}
}

// Handle removes the record. Hard delete, no tombstone.
func (h *DeleteSaleHandler) Handle(ctx context.Context, cmd DeleteSaleCommand) error {
	return h.repo.Delete(ctx, cmd.ID)
}
