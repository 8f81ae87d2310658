package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// GormSaleRepository persists sale records in PostgreSQL through GORM.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GORM-backed sale repository.
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// AutoMigrate creates or updates the sales table.
func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.SaleRecord{})
}

func (r *GormSaleRepository) Create(ctx context.Context, sale *domain.SaleRecord) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *GormSaleRepository) FindByID(ctx context.Context, id string) (*domain.SaleRecord, error) {
	var sale domain.SaleRecord
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindAll(ctx context.Context) ([]domain.SaleRecord, error) {
	var sales []domain.SaleRecord
	err := r.db.WithContext(ctx).Find(&sales).Error
	return sales, err
}

func (r *GormSaleRepository) Update(ctx context.Context, sale *domain.SaleRecord) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *GormSaleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.SaleRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SaleRecord{}).Count(&count).Error
	return count, err
}

// SumProfit totals the stored profit column over the whole ledger. The sum
// reads recorded profit, never the price fields.
func (r *GormSaleRepository) SumProfit(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.SaleRecord{}).
		Select("COALESCE(SUM(profit), 0)").
		Scan(&total).Error
	return total, err
}

// SumProfitWithin totals the stored profit column over sales whose
// occurredAt lies in the closed window.
func (r *GormSaleRepository) SumProfitWithin(ctx context.Context, window domain.Window) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.SaleRecord{}).
		Select("COALESCE(SUM(profit), 0)").
		Where("occurred_at >= ? AND occurred_at <= ?", window.Start, window.End).
		Scan(&total).Error
	return total, err
}
