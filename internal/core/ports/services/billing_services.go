package services

import (
	"context"

	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/dto"
)

// BillingReaderSvc defines read operations for bills.
type BillingReaderSvc interface {
	// ListUnpaidBills retrieves a customer's bills with a positive unpaid
	// balance, oldest first.
	ListUnpaidBills(ctx context.Context, customerID int64) ([]domain.Bill, error)
}

// BillingWriterSvc defines the settlement operations.
type BillingWriterSvc interface {
	// CreateBill runs the full sale settlement: stock preflight, bill
	// creation, stock deduction, settlement of selected outstanding bills
	// and the customer credit resync.
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*dto.CreateBillResponse, error)

	// SettleOutstanding applies a payment purely against old debt.
	SettleOutstanding(ctx context.Context, req dto.SettleOutstandingRequest) (*dto.SettleOutstandingResponse, error)
}

// BillingSvcFacade combines all billing service interfaces.
type BillingSvcFacade interface {
	BillingReaderSvc
	BillingWriterSvc
}
