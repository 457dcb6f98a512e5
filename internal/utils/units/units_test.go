package units_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/utils/units"
)

func kgGramProduct(rate int64) domain.Product {
	return domain.Product{
		ProductCode:    "RICE-01",
		ProductName:    "Rice",
		BaseUnit:       "kg",
		SecondaryUnit:  "gram",
		ConversionRate: decimal.NewFromInt(rate),
	}
}

func TestToBaseUnits(t *testing.T) {
	product := kgGramProduct(1000)

	t.Run("base unit passes through", func(t *testing.T) {
		got := units.ToBaseUnits(decimal.NewFromInt(3), "kg", product)
		assert.True(t, got.Equal(decimal.NewFromInt(3)))
	})

	t.Run("secondary unit divides by rate", func(t *testing.T) {
		got := units.ToBaseUnits(decimal.NewFromInt(2000), "gram", product)
		assert.True(t, got.Equal(decimal.NewFromInt(2)))
	})

	t.Run("unknown unit passes through", func(t *testing.T) {
		got := units.ToBaseUnits(decimal.NewFromInt(5), "packet", product)
		assert.True(t, got.Equal(decimal.NewFromInt(5)))
	})

	t.Run("missing conversion rate treated as one", func(t *testing.T) {
		p := kgGramProduct(0)
		got := units.ToBaseUnits(decimal.NewFromInt(7), "gram", p)
		assert.True(t, got.Equal(decimal.NewFromInt(7)))
	})
}

func TestToDisplayUnits(t *testing.T) {
	product := kgGramProduct(1000)

	got := units.ToDisplayUnits(decimal.NewFromInt(2), "gram", product)
	assert.True(t, got.Equal(decimal.NewFromInt(2000)))

	got = units.ToDisplayUnits(decimal.NewFromInt(2), "kg", product)
	assert.True(t, got.Equal(decimal.NewFromInt(2)))
}

func TestConversionRoundTrip(t *testing.T) {
	for _, rate := range []int64{1, 4, 12, 1000} {
		product := kgGramProduct(rate)
		qty := decimal.NewFromFloat(37.5)

		base := units.ToBaseUnits(qty, "gram", product)
		back := units.ToDisplayUnits(base, "gram", product)
		assert.True(t, back.Equal(qty), "round trip failed for rate %d: got %s", rate, back)
	}
}
