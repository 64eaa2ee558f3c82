package pricing

import (
	"testing"
	"time"

	"catering_xpto/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePaymentSchedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("government net 30 after event", func(t *testing.T) {
		event := now.AddDate(0, 0, 90)
		s := CalculatePaymentSchedule(50000, event, true, now)

		assert.Equal(t, ScheduleGovernment, s.Type)
		require.Len(t, s.Entries, 1)
		assert.Equal(t, money.Cents(50000), s.Entries[0].Amount)
		assert.Equal(t, 1.0, s.Entries[0].Percentage)
		assert.Equal(t, event.AddDate(0, 0, 30), s.Entries[0].DueDate)
	})

	t.Run("government wins over short notice", func(t *testing.T) {
		s := CalculatePaymentSchedule(50000, now.AddDate(0, 0, 5), true, now)
		assert.Equal(t, ScheduleGovernment, s.Type)
	})

	t.Run("short notice splits 50-50", func(t *testing.T) {
		event := now.AddDate(0, 0, 20)
		s := CalculatePaymentSchedule(10001, event, false, now)

		assert.Equal(t, ScheduleShortNotice, s.Type)
		require.Len(t, s.Entries, 2)
		// 10001 * 0.5 = 5000.5 -> 5001; remainder absorbs the rounding.
		assert.Equal(t, money.Cents(5001), s.Entries[0].Amount)
		assert.Equal(t, money.Cents(5000), s.Entries[1].Amount)
		assert.Equal(t, now, s.Entries[0].DueDate)
		assert.Equal(t, event.AddDate(0, 0, -10), s.Entries[1].DueDate)
	})

	t.Run("past event is short notice", func(t *testing.T) {
		s := CalculatePaymentSchedule(10000, now.AddDate(0, 0, -3), false, now)
		assert.Equal(t, ScheduleShortNotice, s.Type)
	})

	t.Run("boundary at exactly 30 days is short notice", func(t *testing.T) {
		s := CalculatePaymentSchedule(10000, now.AddDate(0, 0, 30), false, now)
		assert.Equal(t, ScheduleShortNotice, s.Type)
	})

	t.Run("standard three installments", func(t *testing.T) {
		event := now.AddDate(0, 0, 60)
		s := CalculatePaymentSchedule(100000, event, false, now)

		assert.Equal(t, ScheduleStandard, s.Type)
		require.Len(t, s.Entries, 3)
		assert.Equal(t, money.Cents(25000), s.Entries[0].Amount)
		assert.Equal(t, money.Cents(50000), s.Entries[1].Amount)
		assert.Equal(t, money.Cents(25000), s.Entries[2].Amount)
		assert.Equal(t, now, s.Entries[0].DueDate)
		assert.Equal(t, event.AddDate(0, 0, -30), s.Entries[1].DueDate)
		assert.Equal(t, event.AddDate(0, 0, -10), s.Entries[2].DueDate)
	})

	t.Run("entries always sum exactly to total", func(t *testing.T) {
		events := []time.Time{now.AddDate(0, 0, 7), now.AddDate(0, 0, 45), now.AddDate(0, 0, 200)}
		for total := money.Cents(1); total < 2000; total++ {
			for _, event := range events {
				s := CalculatePaymentSchedule(total, event, false, now)
				var sum money.Cents
				for _, e := range s.Entries {
					sum += e.Amount
				}
				require.Equal(t, total, sum, "total=%d type=%s", total, s.Type)
			}
		}
	})
}

func TestBookingDeposit(t *testing.T) {
	assert.Equal(t, money.Cents(1090), BookingDeposit(10900, false))
	assert.Equal(t, money.Cents(0), BookingDeposit(10900, true))
	// 10905 * 0.10 = 1090.5 -> 1091.
	assert.Equal(t, money.Cents(1091), BookingDeposit(10905, false))
}
