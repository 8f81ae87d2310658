package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no sale exists for the given ID.
var ErrNotFound = errors.New("sale not found")

// ErrValidation wraps every field constraint violation so callers can map
// the whole family to a single failure mode.
var ErrValidation = errors.New("validation failed")

// SaleRecord represents one recorded sales transaction. Profit is derived
// from the other fields at write time and stored, so historical totals stay
// stable even if the derivation ever changes.
type SaleRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Product      string    `json:"product" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	CostPrice    float64   `json:"costPrice" gorm:"not null"`
	SellingPrice float64   `json:"sellingPrice" gorm:"not null"`
	Profit       float64   `json:"profit" gorm:"not null"`
	OccurredAt   time.Time `json:"occurredAt" gorm:"not null;index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (SaleRecord) TableName() string {
	return "sales"
}

// BeforeCreate assigns the identifier and defaults the sale instant to the
// creation time when the caller did not supply one.
func (s *SaleRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.OccurredAt.IsZero() {
		s.OccurredAt = time.Now()
	}
	return nil
}

// ComputeProfit derives the profit for a sale.
func ComputeProfit(quantity int, costPrice, sellingPrice float64) float64 {
	return (sellingPrice - costPrice) * float64(quantity)
}

// RecalculateProfit recomputes the stored profit from the current field
// values. Called on every create and every update; profit is never patched
// independently.
func (s *SaleRecord) RecalculateProfit() {
	s.Profit = ComputeProfit(s.Quantity, s.CostPrice, s.SellingPrice)
}

// ValidateFields enforces the write constraints: product non-empty, the
// three numeric fields strictly positive.
func ValidateFields(product string, quantity int, costPrice, sellingPrice float64) error {
	if product == "" {
		return fmt.Errorf("%w: product is required", ErrValidation)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	if costPrice <= 0 {
		return fmt.Errorf("%w: costPrice must be greater than zero", ErrValidation)
	}
	if sellingPrice <= 0 {
		return fmt.Errorf("%w: sellingPrice must be greater than zero", ErrValidation)
	}
	return nil
}

// SaleRepository defines the contract for sale record data access
type SaleRepository interface {
	Create(ctx context.Context, sale *SaleRecord) error
	FindByID(ctx context.Context, id string) (*SaleRecord, error)
	FindAll(ctx context.Context) ([]SaleRecord, error)
	Update(ctx context.Context, sale *SaleRecord) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SumProfit(ctx context.Context) (float64, error)
	SumProfitWithin(ctx context.Context, window Window) (float64, error)
}
