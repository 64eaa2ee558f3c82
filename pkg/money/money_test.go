package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRate(t *testing.T) {
	tests := []struct {
		name   string
		amount Cents
		rate   float64
		want   Cents
	}{
		{"two percent", 10000, 0.02, 200},
		{"seven percent", 10000, 0.07, 700},
		{"rounds half away from zero", 150, 0.01, 2},
		{"rounds down below half", 149, 0.01, 1},
		{"zero rate", 10000, 0, 0},
		{"zero amount", 0, 0.25, 0},
		{"full rate", 12345, 1.0, 12345},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyRate(tt.amount, tt.rate))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 0.25, Percentage(2500, 10000), 1e-9)
	assert.Equal(t, 0.0, Percentage(100, 0))
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount Cents
		want   string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1290, "$12.90"},
		{10900, "$109.00"},
		{123456789, "$1,234,567.89"},
		{-1050, "-$10.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.amount))
	}
}
