// Package salestest provides an in-memory SaleRepository for tests.
package salestest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
)

// Repository is an in-memory implementation of domain.SaleRepository. It
// mirrors the persistence semantics of the Postgres repository: IDs are
// assigned on create, a missing sale instant defaults to now, and the profit
// sums operate on the stored profit column.
type Repository struct {
	mu    sync.RWMutex
	sales map[string]domain.SaleRecord
	order []string

	// Err, when set, is returned by every method. Lets tests exercise the
	// store failure path.
	Err error
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{sales: make(map[string]domain.SaleRecord)}
}

func (r *Repository) Create(_ context.Context, sale *domain.SaleRecord) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	if sale.OccurredAt.IsZero() {
		sale.OccurredAt = now
	}
	sale.CreatedAt = now
	sale.UpdatedAt = now

	r.sales[sale.ID] = *sale
	r.order = append(r.order, sale.ID)
	return nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.SaleRecord, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sale, ok := r.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sale, nil
}

func (r *Repository) FindAll(_ context.Context) ([]domain.SaleRecord, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sales := make([]domain.SaleRecord, 0, len(r.order))
	for _, id := range r.order {
		sales = append(sales, r.sales[id])
	}
	return sales, nil
}

func (r *Repository) Update(_ context.Context, sale *domain.SaleRecord) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	sale.UpdatedAt = time.Now()
	r.sales[sale.ID] = *sale
	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sales, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.sales)), nil
}

func (r *Repository) SumProfit(_ context.Context) (float64, error) {
	if r.Err != nil {
		return 0, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, sale := range r.sales {
		total += sale.Profit
	}
	return total, nil
}

func (r *Repository) SumProfitWithin(_ context.Context, window domain.Window) (float64, error) {
	if r.Err != nil {
		return 0, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, sale := range r.sales {
		if window.Contains(sale.OccurredAt) {
			total += sale.Profit
		}
	}
	return total, nil
}
