package models

import "github.com/shopspring/decimal"

// Customer is the database representation of a customer directory entry.
type Customer struct {
	ID                int64
	Name              string
	Contact           string
	NationalID        string
	Location          string
	OutstandingCredit decimal.Decimal
	AuditFields
}
