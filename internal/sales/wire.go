//go:build wireinject
// +build wireinject

package sales

import (
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/salestrack/sales-ledger/internal/sales/delivery/http"
	"github.com/salestrack/sales-ledger/pkg/clock"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, clk clock.Clock, loc *time.Location) (*httpDelivery.SalesHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		httpDelivery.NewSalesHandlerWithDI,
	)
	return nil, nil
}
