package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// BillCustomer is the customer snapshot carried on a bill request.
type BillCustomer struct {
	ID         int64  `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	NationalID string `json:"nationalId"`
	Location   string `json:"location"`
}

// BillItemRequest is one sale line item on a bill request.
type BillItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Unit     string          `json:"unit" binding:"required"`
	GST      decimal.Decimal `json:"gst"`
	MRP      decimal.Decimal `json:"mrp"`
	Discount decimal.Decimal `json:"discount"`
}

// BillPayment splits the payment made at sale time between the new bill and
// previously outstanding bills.
type BillPayment struct {
	CurrentBillPayment         decimal.Decimal `json:"currentBillPayment"`
	SelectedOutstandingPayment decimal.Decimal `json:"selectedOutstandingPayment"`
	Method                     string          `json:"method" binding:"required"`
	TransactionID              string          `json:"transactionId"`
}

// CreateBillRequest is the settlement entry point payload.
type CreateBillRequest struct {
	Customer                  BillCustomer      `json:"customer" binding:"required"`
	Products                  []BillItemRequest `json:"products" binding:"required,min=1,dive"`
	ProductSubtotal           decimal.Decimal   `json:"productSubtotal"`
	ProductGST                decimal.Decimal   `json:"productGst"`
	PreviousOutstandingCredit decimal.Decimal   `json:"previousOutstandingCredit"`
	Payment                   BillPayment       `json:"payment" binding:"required"`
	BillNumber                string            `json:"billNumber" binding:"required"`
	SelectedUnpaidBillIDs     []string          `json:"selectedUnpaidBillIds"`
}

// SettleOutstandingRequest is a payment made purely against old debt.
type SettleOutstandingRequest struct {
	CustomerID            int64           `json:"customerId" binding:"required"`
	AmountPaid            decimal.Decimal `json:"amountPaid" binding:"required"`
	SelectedUnpaidBillIDs []string        `json:"selectedUnpaidBillIds" binding:"required,min=1"`
	PaymentMethod         string          `json:"paymentMethod" binding:"required"`
	TransactionID         string          `json:"transactionId"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID                    string                  `json:"billID"`
	BillNumber                string                  `json:"billNumber"`
	Customer                  domain.CustomerSnapshot `json:"customer"`
	Products                  []domain.BillItem       `json:"products"`
	ProductSubtotal           decimal.Decimal         `json:"productSubtotal"`
	ProductGST                decimal.Decimal         `json:"productGst"`
	CurrentBillTotal          decimal.Decimal         `json:"currentBillTotal"`
	PreviousOutstandingCredit decimal.Decimal         `json:"previousOutstandingCredit"`
	GrandTotal                decimal.Decimal         `json:"grandTotal"`
	PaidAmount                decimal.Decimal         `json:"paidAmount"`
	UnpaidAmount              decimal.Decimal         `json:"unpaidAmountForThisBill"`
	Status                    domain.BillStatus       `json:"status"`
	PaymentMethod             string                  `json:"paymentMethod"`
	TransactionID             string                  `json:"transactionId,omitempty"`
	Date                      time.Time               `json:"date"`
}

// CreateBillResponse is the settlement entry point result.
type CreateBillResponse struct {
	Bill                    BillResponse    `json:"bill"`
	SettledOutstandingBills []BillResponse  `json:"settledOutstandingBills"`
	RemainingPayment        decimal.Decimal `json:"remainingPayment"`
}

// SettleOutstandingResponse is the result of settling old debt.
type SettleOutstandingResponse struct {
	UpdatedBills     []BillResponse  `json:"updatedBills"`
	RemainingPayment decimal.Decimal `json:"remainingPayment"`
}

// ToBillResponse converts a domain.Bill to its response DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:                    b.BillID,
		BillNumber:                b.BillNumber,
		Customer:                  b.Customer,
		Products:                  b.Items,
		ProductSubtotal:           b.ProductSubtotal,
		ProductGST:                b.ProductGST,
		CurrentBillTotal:          b.CurrentBillTotal,
		PreviousOutstandingCredit: b.PreviousOutstandingCredit,
		GrandTotal:                b.GrandTotal,
		PaidAmount:                b.PaidAmount,
		UnpaidAmount:              b.UnpaidAmount,
		Status:                    b.Status,
		PaymentMethod:             b.PaymentMethod,
		TransactionID:             b.TransactionID,
		Date:                      b.Date,
	}
}

// ToBillResponses converts a slice of bills.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	out := make([]BillResponse, len(bills))
	for i := range bills {
		out[i] = ToBillResponse(&bills[i])
	}
	return out
}
