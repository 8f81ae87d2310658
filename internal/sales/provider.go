package sales

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
	"github.com/salestrack/sales-ledger/internal/sales/repository"
	"github.com/salestrack/sales-ledger/internal/sales/usecase/command"
	"github.com/salestrack/sales-ledger/internal/sales/usecase/query"
)

// ProvideSaleRepository provides the traced sale repository
func ProvideSaleRepository(db *gorm.DB) domain.SaleRepository {
	return repository.NewTracingSaleRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSaleRepository,
)

var UseCaseSet = wire.NewSet(
	command.NewRecordSaleHandler,
	command.NewUpdateSaleHandler,
	command.NewDeleteSaleHandler,
	query.NewGetSaleHandler,
	query.NewListSalesHandler,
	query.NewCumulativeProfitHandler,
	query.NewDailyProfitHandler,
	query.NewMonthlyProfitHandler,
)
