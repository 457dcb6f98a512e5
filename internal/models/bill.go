package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus mirrors the bills.status check constraint.
type BillStatus string

// Bill is the database representation of a sale transaction. The customer
// snapshot is denormalized onto the row; line items live in bill_items.
type Bill struct {
	BillID                    string
	BillNumber                string
	CustomerID                int64
	CustomerName              string
	CustomerContact           string
	CustomerNationalID        string
	CustomerLocation          string
	ProductSubtotal           decimal.Decimal
	ProductGST                decimal.Decimal
	CurrentBillTotal          decimal.Decimal
	PreviousOutstandingCredit decimal.Decimal
	GrandTotal                decimal.Decimal
	PaidAmount                decimal.Decimal
	UnpaidAmount              decimal.Decimal
	Status                    BillStatus
	PaymentMethod             string
	TransactionID             string
	Date                      time.Time
	AuditFields
}

// BillItem is the database representation of one bill line item, ordered by
// LineNo within its bill.
type BillItem struct {
	BillID   string
	LineNo   int
	Name     string
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Unit     string
	GST      decimal.Decimal
	MRP      decimal.Decimal
	Discount decimal.Decimal
}
