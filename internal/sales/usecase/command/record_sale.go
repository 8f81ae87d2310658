package command

import (
	"context"
	"fmt"
	"time"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// RecordSaleCommand represents the command to record a new sale.
// OccurredAt is optional; the zero value defaults to the creation time.
type RecordSaleCommand struct {
	Product      string
	Quantity     int
	CostPrice    float64
	SellingPrice float64
	OccurredAt   time.Time
}

// RecordSaleHandler handles the record sale command
type RecordSaleHandler struct {
	repo domain.SaleRepository
}

// NewRecordSaleHandler creates a new record sale handler
func NewRecordSaleHandler(repo domain.SaleRepository) *RecordSaleHandler {
	return &RecordSaleHandler{repo: repo}
}

// Handle validates the fields, derives the profit and persists the record.
// Nothing is written when validation fails.
func (h *RecordSaleHandler) Handle(ctx context.Context, cmd RecordSaleCommand) (*domain.SaleRecord, error) {
	if err := domain.ValidateFields(cmd.Product, cmd.Quantity, cmd.CostPrice, cmd.SellingPrice); err != nil {
		return nil, err
	}

	sale := &domain.SaleRecord{
		Product:      cmd.Product,
		Quantity:     cmd.Quantity,
		CostPrice:    cmd.CostPrice,
		SellingPrice: cmd.SellingPrice,
		OccurredAt:   cmd.OccurredAt,
	}
	sale.RecalculateProfit()

	if err := h.repo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	return sale, nil
}
