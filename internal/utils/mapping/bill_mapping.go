package mapping

import (
	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/models"
)

// ToModelBill converts a domain.Bill for DB storage. Line items are mapped
// separately via ToModelBillItems.
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:                    d.BillID,
		BillNumber:                d.BillNumber,
		CustomerID:                d.Customer.ID,
		CustomerName:              d.Customer.Name,
		CustomerContact:           d.Customer.Contact,
		CustomerNationalID:        d.Customer.NationalID,
		CustomerLocation:          d.Customer.Location,
		ProductSubtotal:           d.ProductSubtotal,
		ProductGST:                d.ProductGST,
		CurrentBillTotal:          d.CurrentBillTotal,
		PreviousOutstandingCredit: d.PreviousOutstandingCredit,
		GrandTotal:                d.GrandTotal,
		PaidAmount:                d.PaidAmount,
		UnpaidAmount:              d.UnpaidAmount,
		Status:                    models.BillStatus(d.Status),
		PaymentMethod:             d.PaymentMethod,
		TransactionID:             d.TransactionID,
		Date:                      d.Date,
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a models.Bill read from the DB.
func ToDomainBill(m models.Bill, items []models.BillItem) domain.Bill {
	return domain.Bill{
		BillID:     m.BillID,
		BillNumber: m.BillNumber,
		Customer: domain.CustomerSnapshot{
			ID:         m.CustomerID,
			Name:       m.CustomerName,
			Contact:    m.CustomerContact,
			NationalID: m.CustomerNationalID,
			Location:   m.CustomerLocation,
		},
		Items:                     ToDomainBillItems(items),
		ProductSubtotal:           m.ProductSubtotal,
		ProductGST:                m.ProductGST,
		CurrentBillTotal:          m.CurrentBillTotal,
		PreviousOutstandingCredit: m.PreviousOutstandingCredit,
		GrandTotal:                m.GrandTotal,
		PaidAmount:                m.PaidAmount,
		UnpaidAmount:              m.UnpaidAmount,
		Status:                    domain.BillStatus(m.Status),
		PaymentMethod:             m.PaymentMethod,
		TransactionID:             m.TransactionID,
		Date:                      m.Date,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBillItems converts a bill's line items, preserving their order.
func ToModelBillItems(billID string, items []domain.BillItem) []models.BillItem {
	out := make([]models.BillItem, len(items))
	for i, item := range items {
		out[i] = models.BillItem{
			BillID:   billID,
			LineNo:   i + 1,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			GST:      item.GST,
			MRP:      item.MRP,
			Discount: item.Discount,
		}
	}
	return out
}

// ToDomainBillItems converts line items read from the DB.
func ToDomainBillItems(items []models.BillItem) []domain.BillItem {
	out := make([]domain.BillItem, len(items))
	for i, item := range items {
		out[i] = domain.BillItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			GST:      item.GST,
			MRP:      item.MRP,
			Discount: item.Discount,
		}
	}
	return out
}
