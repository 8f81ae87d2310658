package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

var tracer = otel.Tracer("sales-repository")

// TracingSaleRepository wraps GormSaleRepository with a span per store call.
type TracingSaleRepository struct {
	base *GormSaleRepository
}

// NewTracingSaleRepository creates a new repository with tracing.
func NewTracingSaleRepository(db *gorm.DB) *TracingSaleRepository {
	return &TracingSaleRepository{base: NewGormSaleRepository(db)}
}

func (r *TracingSaleRepository) Create(ctx context.Context, sale *domain.SaleRecord) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("sale.product", sale.Product),
			attribute.Int("sale.quantity", sale.Quantity),
			attribute.Float64("sale.profit", sale.Profit),
		),
	)
	defer span.End()

	if err := r.base.Create(ctx, sale); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("sale.id", sale.ID))
	return nil
}

func (r *TracingSaleRepository) FindByID(ctx context.Context, id string) (*domain.SaleRecord, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("sale.id", id)),
	)
	defer span.End()

	sale, err := r.base.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return sale, nil
}

func (r *TracingSaleRepository) FindAll(ctx context.Context) ([]domain.SaleRecord, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	sales, err := r.base.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("sales.count", len(sales)))
	return sales, nil
}

func (r *TracingSaleRepository) Update(ctx context.Context, sale *domain.SaleRecord) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("sale.id", sale.ID),
			attribute.Float64("sale.profit", sale.Profit),
		),
	)
	defer span.End()

	if err := r.base.Update(ctx, sale); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *TracingSaleRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("sale.id", id)),
	)
	defer span.End()

	if err := r.base.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *TracingSaleRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.base.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return count, nil
}

func (r *TracingSaleRepository) SumProfit(ctx context.Context) (float64, error) {
	ctx, span := tracer.Start(ctx, "repository.SumProfit")
	defer span.End()

	total, err := r.base.SumProfit(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Float64("sales.profit_total", total))
	return total, nil
}

func (r *TracingSaleRepository) SumProfitWithin(ctx context.Context, window domain.Window) (float64, error) {
	ctx, span := tracer.Start(ctx, "repository.SumProfitWithin",
		trace.WithAttributes(
			attribute.String("window.start", window.Start.String()),
			attribute.String("window.end", window.End.String()),
		),
	)
	defer span.End()

	total, err := r.base.SumProfitWithin(ctx, window)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Float64("sales.profit_total", total))
	return total, nil
}
