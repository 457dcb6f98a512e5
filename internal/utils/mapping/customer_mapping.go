package mapping

import (
	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/models"
)

// ToModelCustomer converts a domain.Customer for DB storage.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		ID:                d.ID,
		Name:              d.Name,
		Contact:           d.Contact,
		NationalID:        d.NationalID,
		Location:          d.Location,
		OutstandingCredit: d.OutstandingCredit,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a models.Customer read from the DB.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		ID:                m.ID,
		Name:              m.Name,
		Contact:           m.Contact,
		NationalID:        m.NationalID,
		Location:          m.Location,
		OutstandingCredit: m.OutstandingCredit,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
