package pricing

import (
	"errors"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/pkg/money"
)

var (
	ErrNegativeSubtotal = errors.New("subtotal must be non-negative")
	ErrRateOutOfRange   = errors.New("tax rate must be within [0,1]")
)

// Default rates applied when the caller supplies no configuration.
const (
	DefaultHospitalityRate = 0.02
	DefaultServiceRate     = 0.07
	DefaultDepositRate     = 0.10
)

// TaxConfig carries the rate configuration for one calculation. It is passed
// explicitly into every call; there is no package-level rate state, so one
// engine instance can price multiple quotes without cross-contamination.
type TaxConfig struct {
	HospitalityRate float64
	ServiceRate     float64
}

func DefaultTaxConfig() TaxConfig {
	return TaxConfig{HospitalityRate: DefaultHospitalityRate, ServiceRate: DefaultServiceRate}
}

// Validate rejects out-of-range rates. Callers run this before the pure
// calculation; CalculateDetailedTax itself assumes valid input.
func (c TaxConfig) Validate() error {
	if c.HospitalityRate < 0 || c.HospitalityRate > 1 {
		return ErrRateOutOfRange
	}
	if c.ServiceRate < 0 || c.ServiceRate > 1 {
		return ErrRateOutOfRange
	}
	return nil
}

// TaxBreakdown is the result of one detailed tax computation.
type TaxBreakdown struct {
	HospitalityTax money.Cents
	ServiceTax     money.Cents
	TaxAmount      money.Cents
	TotalAmount    money.Cents
}

// CalculateDetailedTax computes the hospitality and service tax components
// for a subtotal.
//
// Government contracts are tax-exempt: every tax field is zero and the total
// equals the subtotal. The rates are ignored entirely in that branch, not
// multiplied by zero, so no float rounding artifact can leak through.
//
// Each tax is rounded to the nearest cent independently before summing.
// Rounding only once on the combined rate would produce different totals;
// the per-component policy is the contract.
func CalculateDetailedTax(subtotal money.Cents, isGovernmentContract bool, cfg TaxConfig) TaxBreakdown {
	if isGovernmentContract {
		return TaxBreakdown{TotalAmount: subtotal}
	}

	hospitality := money.ApplyRate(subtotal, cfg.HospitalityRate)
	service := money.ApplyRate(subtotal, cfg.ServiceRate)
	taxAmount := hospitality + service

	return TaxBreakdown{
		HospitalityTax: hospitality,
		ServiceTax:     service,
		TaxAmount:      taxAmount,
		TotalAmount:    subtotal + taxAmount,
	}
}

// Totals expands a breakdown into the EstimateTotals aggregate, including the
// flat booking deposit (zero for tax-exempt government contracts).
func Totals(subtotal money.Cents, isGovernmentContract bool, cfg TaxConfig) entities.EstimateTotals {
	b := CalculateDetailedTax(subtotal, isGovernmentContract, cfg)
	return entities.EstimateTotals{
		Subtotal:        subtotal,
		HospitalityTax:  b.HospitalityTax,
		ServiceTax:      b.ServiceTax,
		TaxAmount:       b.TaxAmount,
		TotalAmount:     b.TotalAmount,
		DepositRequired: BookingDeposit(b.TotalAmount, isGovernmentContract),
	}
}
