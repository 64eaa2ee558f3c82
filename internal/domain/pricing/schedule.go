package pricing

import (
	"time"

	"catering_xpto/pkg/money"
)

// ScheduleType labels the deposit tier applied to an invoice.

type ScheduleType string

const (
	ScheduleGovernment  ScheduleType = "government"
	ScheduleShortNotice ScheduleType = "short_notice"
	ScheduleStandard    ScheduleType = "standard"
)

const shortNoticeDays = 30

// ScheduleEntry is one derived installment. DueDate is a calendar intent,
// not a settlement timestamp.
type ScheduleEntry struct {
	Amount      money.Cents
	Percentage  float64
	Description string
	DueDate     time.Time
}

// PaymentSchedule is the tiered installment plan for one total amount.
type PaymentSchedule struct {
	Type    ScheduleType
	Terms   string
	Entries []ScheduleEntry
}

// CalculatePaymentSchedule derives the tiered deposit/installment plan.
//
// Tiers, evaluated in order:
//  1. government: full amount, net 30 after the event
//  2. short notice (<= 30 days out, past events included): 50% now, rest 10
//     days before the event
//  3. standard: 25% now, 50% at T-30, remainder at T-10
//
// The last installment of a tier is always total minus the rounded earlier
// installments, so the entries sum exactly to total with no rounding leakage.
func CalculatePaymentSchedule(total money.Cents, eventDate time.Time, isGovernmentContract bool, now time.Time) PaymentSchedule {
	if isGovernmentContract {
		return PaymentSchedule{
			Type:  ScheduleGovernment,
			Terms: "Net 30 after event date",
			Entries: []ScheduleEntry{
				{
					Amount:      total,
					Percentage:  1.0,
					Description: "Government Contract",
					DueDate:     eventDate.AddDate(0, 0, 30),
				},
			},
		}
	}

	daysUntilEvent := int(eventDate.Sub(now).Hours() / 24)

	if daysUntilEvent <= shortNoticeDays {
		deposit := money.ApplyRate(total, 0.50)
		return PaymentSchedule{
			Type:  ScheduleShortNotice,
			Terms: "50% deposit due immediately, balance due 10 days before event",
			Entries: []ScheduleEntry{
				{Amount: deposit, Percentage: 0.50, Description: "Deposit", DueDate: now},
				{Amount: total - deposit, Percentage: 0.50, Description: "Final balance", DueDate: eventDate.AddDate(0, 0, -10)},
			},
		}
	}

	first := money.ApplyRate(total, 0.25)
	second := money.ApplyRate(total, 0.50)
	return PaymentSchedule{
		Type:  ScheduleStandard,
		Terms: "25% deposit due immediately, 50% due 30 days before event, balance due 10 days before event",
		Entries: []ScheduleEntry{
			{Amount: first, Percentage: 0.25, Description: "Deposit", DueDate: now},
			{Amount: second, Percentage: 0.50, Description: "Second installment", DueDate: eventDate.AddDate(0, 0, -30)},
			{Amount: total - first - second, Percentage: 0.25, Description: "Final balance", DueDate: eventDate.AddDate(0, 0, -10)},
		},
	}
}

// BookingDeposit is the flat 10% figure surfaced at estimate-approval time.
// It is a separate concept from the tiered schedule above; both outputs are
// kept. Government contracts require no deposit.
func BookingDeposit(total money.Cents, isGovernmentContract bool) money.Cents {
	if isGovernmentContract {
		return 0
	}
	return money.ApplyRate(total, DefaultDepositRate)
}
