package pricing

import (
	"testing"

	"catering_xpto/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDetailedTax(t *testing.T) {
	cfg := DefaultTaxConfig()

	t.Run("standard contract", func(t *testing.T) {
		b := CalculateDetailedTax(10000, false, cfg)

		assert.Equal(t, money.Cents(200), b.HospitalityTax)
		assert.Equal(t, money.Cents(700), b.ServiceTax)
		assert.Equal(t, money.Cents(900), b.TaxAmount)
		assert.Equal(t, money.Cents(10900), b.TotalAmount)
	})

	t.Run("government contract is fully exempt", func(t *testing.T) {
		b := CalculateDetailedTax(10000, true, cfg)

		assert.Equal(t, money.Cents(0), b.HospitalityTax)
		assert.Equal(t, money.Cents(0), b.ServiceTax)
		assert.Equal(t, money.Cents(0), b.TaxAmount)
		assert.Equal(t, money.Cents(10000), b.TotalAmount)
	})

	t.Run("government ignores rates entirely", func(t *testing.T) {
		// Even absurd rates must not leak into an exempt calculation.
		b := CalculateDetailedTax(9999, true, TaxConfig{HospitalityRate: 0.99, ServiceRate: 0.99})

		assert.Equal(t, money.Cents(0), b.TaxAmount)
		assert.Equal(t, money.Cents(9999), b.TotalAmount)
	})

	t.Run("components round independently", func(t *testing.T) {
		// 1250 * 0.02 = 25, 1250 * 0.07 = 87.5 -> 88 (half away from zero).
		b := CalculateDetailedTax(1250, false, cfg)

		assert.Equal(t, money.Cents(25), b.HospitalityTax)
		assert.Equal(t, money.Cents(88), b.ServiceTax)
		assert.Equal(t, money.Cents(113), b.TaxAmount)
		assert.Equal(t, money.Cents(1363), b.TotalAmount)
	})

	t.Run("zero subtotal", func(t *testing.T) {
		b := CalculateDetailedTax(0, false, cfg)
		assert.Equal(t, TaxBreakdown{}, b)
	})

	t.Run("total always equals subtotal plus tax", func(t *testing.T) {
		for _, subtotal := range []money.Cents{1, 99, 1250, 9999, 123456, 100000000} {
			b := CalculateDetailedTax(subtotal, false, cfg)
			assert.Equal(t, subtotal+b.TaxAmount, b.TotalAmount, "subtotal=%d", subtotal)
			assert.Equal(t, b.HospitalityTax+b.ServiceTax, b.TaxAmount, "subtotal=%d", subtotal)
		}
	})
}

func TestTaxConfigValidate(t *testing.T) {
	require.NoError(t, DefaultTaxConfig().Validate())
	require.NoError(t, TaxConfig{}.Validate())

	assert.ErrorIs(t, TaxConfig{HospitalityRate: -0.01}.Validate(), ErrRateOutOfRange)
	assert.ErrorIs(t, TaxConfig{ServiceRate: 1.01}.Validate(), ErrRateOutOfRange)
}

func TestTotals(t *testing.T) {
	t.Run("includes flat booking deposit", func(t *testing.T) {
		totals := Totals(10000, false, DefaultTaxConfig())

		assert.Equal(t, money.Cents(10000), totals.Subtotal)
		assert.Equal(t, money.Cents(10900), totals.TotalAmount)
		// 10% of the taxed total, not the subtotal.
		assert.Equal(t, money.Cents(1090), totals.DepositRequired)
	})

	t.Run("government requires no deposit", func(t *testing.T) {
		totals := Totals(10000, true, DefaultTaxConfig())

		assert.Equal(t, money.Cents(10000), totals.TotalAmount)
		assert.Equal(t, money.Cents(0), totals.DepositRequired)
	})
}
