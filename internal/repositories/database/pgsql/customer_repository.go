package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	"github.com/srimart/retail_billing_app/internal/models"
	"github.com/srimart/retail_billing_app/internal/utils/mapping"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `id, customer_name, contact, national_id, location, outstanding_credit, created_at, created_by, last_updated_at, last_updated_by`

// CreateCustomer inserts a new customer with the next sequential id. Ids
// start at 1000 so they read as short account numbers on printed bills.
func (r *PgxCustomerRepository) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (id, customer_name, contact, national_id, location, outstanding_credit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ((SELECT COALESCE(MAX(id) + 1, 1000) FROM customers), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.Contact,
		m.NationalID,
		m.Location,
		m.OutstandingCredit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&m.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, fmt.Errorf("%w: customer with contact %s already exists", apperrors.ErrDuplicate, m.Contact)
		}
		return nil, apperrors.NewAppError(500, "failed to create customer", err)
	}

	created := mapping.ToDomainCustomer(m)
	return &created, nil
}

// FindCustomerByID retrieves a customer by their numeric id.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1;`
	return r.findOne(ctx, query, customerID)
}

// FindCustomerByContact retrieves a customer by their unique contact number.
func (r *PgxCustomerRepository) FindCustomerByContact(ctx context.Context, contact string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE contact = $1;`
	return r.findOne(ctx, query, contact)
}

func (r *PgxCustomerRepository) findOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.ID,
		&m.Name,
		&m.Contact,
		&m.NationalID,
		&m.Location,
		&m.OutstandingCredit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer", err)
	}

	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

// UpdateOutstandingCredit writes the recomputed outstanding credit total.
func (r *PgxCustomerRepository) UpdateOutstandingCredit(ctx context.Context, customerID int64, outstandingCredit decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE customers SET outstanding_credit = $2, last_updated_at = $3 WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, customerID, outstandingCredit, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update outstanding credit", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
	}
	return nil
}
