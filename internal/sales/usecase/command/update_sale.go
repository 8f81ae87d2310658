package command

import (
	"context"
	"fmt"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// UpdateSaleCommand represents the command to replace the mutable fields of
// a sale. This is a full replace, not a partial patch.
type UpdateSaleCommand struct {
	ID           string
	Product      string
	Quantity     int
	CostPrice    float64
	SellingPrice float64
}

// UpdateSaleHandler handles the update sale command
type UpdateSaleHandler struct {
	repo domain.SaleRepository
}

// NewUpdateSaleHandler creates a new update sale handler
func NewUpdateSaleHandler(repo domain.SaleRepository) *UpdateSaleHandler {
	return &UpdateSaleHandler{repo: repo}
}

// Handle replaces the four mutable fields and recomputes the profit from the
// new values. The prior profit is always discarded. occurredAt is untouched.
func (h *UpdateSaleHandler) Handle(ctx context.Context, cmd UpdateSaleCommand) (*domain.SaleRecord, error) {
	if err := domain.ValidateFields(cmd.Product, cmd.Quantity, cmd.CostPrice, cmd.SellingPrice); err != nil {
		return nil, err
	}

	sale, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	sale.Product = cmd.Product
	sale.Quantity = cmd.Quantity
	sale.CostPrice = cmd.CostPrice
	sale.SellingPrice = cmd.SellingPrice
	sale.RecalculateProfit()

	if err := h.repo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	return sale, nil
}
