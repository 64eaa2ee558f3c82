package money

import (
	"fmt"
	"math"
	"strconv"
)

// Cents is a monetary amount in USD minor units.
//
// All pricing math in the service happens on integer cents; floats only
// appear as rate fractions applied through ApplyRate.
type Cents int64

// ApplyRate multiplies an amount by a fractional rate and rounds to the
// nearest cent, half away from zero. Each rate application rounds
// independently; callers must not round an already-summed product again.
func ApplyRate(amount Cents, rate float64) Cents {
	return Cents(math.Round(float64(amount) * rate))
}

// Percentage reports part/whole as a fraction. Returns 0 when whole is 0.
func Percentage(part, whole Cents) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// FormatUSD renders cents as "$1,234.56". Negative amounts keep the sign
// in front of the dollar symbol.
func FormatUSD(amount Cents) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	dollars := int64(amount) / 100
	cents := int64(amount) % 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(dollars), cents)
}

func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
