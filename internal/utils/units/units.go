// Package units converts sale quantities between a product's base unit and
// its secondary display unit.
package units

import (
	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

var one = decimal.NewFromInt(1)

// Rate returns the product's effective conversion rate (secondary units per
// base unit). A missing or non-positive rate is treated as 1.
func Rate(product domain.Product) decimal.Decimal {
	if product.ConversionRate.IsPositive() {
		return product.ConversionRate
	}
	return one
}

// ToBaseUnits converts a quantity expressed in the given unit to the
// product's base unit. A quantity in the secondary unit is divided by the
// conversion rate. Unrecognized units pass through unchanged: legacy data
// carries units that match neither configured unit, and those quantities
// were always recorded in base units.
func ToBaseUnits(quantity decimal.Decimal, unit string, product domain.Product) decimal.Decimal {
	if unit == product.SecondaryUnit && unit != product.BaseUnit {
		return quantity.Div(Rate(product))
	}
	return quantity
}

// ToDisplayUnits is the inverse of ToBaseUnits: it converts a base-unit
// quantity into the given display unit, multiplying by the conversion rate
// when the unit is the product's secondary unit.
func ToDisplayUnits(quantity decimal.Decimal, unit string, product domain.Product) decimal.Decimal {
	if unit == product.SecondaryUnit && unit != product.BaseUnit {
		return quantity.Mul(Rate(product))
	}
	return quantity
}
