package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus indicates the payment state of a bill.
type BillStatus string

const (
	StatusPaid    BillStatus = "paid"
	StatusPartial BillStatus = "partial"
	StatusUnpaid  BillStatus = "unpaid"
)

// CustomerSnapshot is the customer data captured on a bill at sale time.
type CustomerSnapshot struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	NationalID string `json:"nationalId,omitempty"`
	Location   string `json:"location,omitempty"`
}

// BillItem is a single line item on a bill. Quantity is expressed in the
// unit the sale was made in; conversion to base units happens at stock time.
type BillItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	GST      decimal.Decimal `json:"gst"`
	MRP      decimal.Decimal `json:"mrp"`
	Discount decimal.Decimal `json:"discount"`
}

// Bill is one sale transaction. GrandTotal covers only this bill's own
// products and tax; PreviousOutstandingCredit is an informational snapshot
// and never part of the bill's own total. The payment-state fields
// (PaidAmount, UnpaidAmount, Status, PaymentMethod, TransactionID) are the
// only fields mutated after creation, when later payments settle the bill.
type Bill struct {
	BillID                    string           `json:"billID"`
	BillNumber                string           `json:"billNumber"`
	Customer                  CustomerSnapshot `json:"customer"`
	Items                     []BillItem       `json:"products"`
	ProductSubtotal           decimal.Decimal  `json:"productSubtotal"`
	ProductGST                decimal.Decimal  `json:"productGst"`
	CurrentBillTotal          decimal.Decimal  `json:"currentBillTotal"`
	PreviousOutstandingCredit decimal.Decimal  `json:"previousOutstandingCredit"`
	GrandTotal                decimal.Decimal  `json:"grandTotal"`
	PaidAmount                decimal.Decimal  `json:"paidAmount"`
	UnpaidAmount              decimal.Decimal  `json:"unpaidAmountForThisBill"`
	Status                    BillStatus       `json:"status"`
	PaymentMethod             string           `json:"paymentMethod"`
	TransactionID             string           `json:"transactionId,omitempty"`
	Date                      time.Time        `json:"date"`
	AuditFields
}

// ComputePaymentState derives the unpaid balance and status for a bill given
// its grand total and the amount paid towards it. The invariants:
// unpaid = max(grandTotal - paid, 0); paid iff unpaid == 0; unpaid iff
// nothing was paid and a balance remains; partial otherwise.
func ComputePaymentState(grandTotal, paidAmount decimal.Decimal) (decimal.Decimal, BillStatus) {
	unpaid := grandTotal.Sub(paidAmount)
	if unpaid.IsNegative() {
		unpaid = decimal.Zero
	}
	if unpaid.IsZero() {
		return unpaid, StatusPaid
	}
	if paidAmount.IsPositive() {
		return unpaid, StatusPartial
	}
	return unpaid, StatusUnpaid
}

// DistributePayment applies a payment pool across outstanding bills in the
// order given (callers pass bills sorted oldest first). Each bill is either
// fully settled and marked paid, or partially settled and marked partial,
// at which point distribution stops. It returns the bills that were touched
// and the unconsumed remainder; the remainder is never silently absorbed.
func DistributePayment(bills []Bill, amount decimal.Decimal) ([]Bill, decimal.Decimal) {
	remaining := amount
	settled := make([]Bill, 0, len(bills))

	for _, bill := range bills {
		if !remaining.IsPositive() {
			break
		}
		unpaid := bill.UnpaidAmount
		if !unpaid.IsPositive() {
			continue
		}

		if remaining.GreaterThanOrEqual(unpaid) {
			bill.PaidAmount = bill.PaidAmount.Add(unpaid)
			bill.UnpaidAmount = decimal.Zero
			bill.Status = StatusPaid
			remaining = remaining.Sub(unpaid)
		} else {
			bill.PaidAmount = bill.PaidAmount.Add(remaining)
			bill.UnpaidAmount = bill.UnpaidAmount.Sub(remaining)
			bill.Status = StatusPartial
			remaining = decimal.Zero
		}
		settled = append(settled, bill)
	}

	return settled, remaining
}
