package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all pgx-backed repositories sharing one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:  newPgxProductRepository(pool),
		StockRepo:    newPgxStockRepository(pool),
		BillRepo:     newPgxBillRepository(pool),
		CustomerRepo: newPgxCustomerRepository(pool),
	}
}
