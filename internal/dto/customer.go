package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	NationalID string `json:"nationalId"`
	Location   string `json:"location"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Contact           string          `json:"contact"`
	NationalID        string          `json:"nationalId,omitempty"`
	Location          string          `json:"location,omitempty"`
	OutstandingCredit decimal.Decimal `json:"outstandingCredit"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		Contact:           c.Contact,
		NationalID:        c.NationalID,
		Location:          c.Location,
		OutstandingCredit: c.OutstandingCredit,
		CreatedAt:         c.CreatedAt,
	}
}
