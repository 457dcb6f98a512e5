package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Customer is a directory entry. OutstandingCredit is a derived, cached
// value: the sum of UnpaidAmount across all of the customer's bills with a
// positive balance. It is recomputed from the bill set after every
// settlement rather than incrementally updated, to avoid drift.
type Customer struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Contact           string          `json:"contact"`
	NationalID        string          `json:"nationalId,omitempty"`
	Location          string          `json:"location,omitempty"`
	OutstandingCredit decimal.Decimal `json:"outstandingCredit"`
	AuditFields
}

// ValidateNationalID checks an optional national id. After stripping
// non-digit characters it must be empty or exactly 12 digits.
func ValidateNationalID(nationalID string) error {
	var digits strings.Builder
	for _, r := range nationalID {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if n := digits.Len(); n != 0 && n != 12 {
		return fmt.Errorf("national id must be 12 digits, got %d", n)
	}
	return nil
}
