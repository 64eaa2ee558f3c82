package entities

import (
	"time"

	"catering_xpto/pkg/money"
)

// InvoiceStatus is the closed set of quote/invoice workflow stages.
//
// Domain notes:
//   - The billing-service is the source of truth for quote/invoice state.
//   - The linear path runs pending -> ... -> completed; change_requested is a
//     side branch off sent/approved and is never part of the ordered path
//     (the transition table lives in internal/domain/workflow).

type InvoiceStatus string

const (
	StatusPending         InvoiceStatus = "pending"
	StatusUnderReview     InvoiceStatus = "under_review"
	StatusEstimated       InvoiceStatus = "estimated"
	StatusSent            InvoiceStatus = "sent"
	StatusApproved        InvoiceStatus = "approved"
	StatusConfirmed       InvoiceStatus = "confirmed"
	StatusInProgress      InvoiceStatus = "in_progress"
	StatusCompleted       InvoiceStatus = "completed"
	StatusChangeRequested InvoiceStatus = "change_requested"
)

// ApprovalSource records how a sent estimate became approved.
const (
	ApprovedByCustomer       = "customer"
	ApprovedByManualOverride = "manual_override"
)

// Invoice is the quote/invoice record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Concurrency:
//   - Revision increments on every write and is enforced in the repository's
//     condition expression; a stale write returns a revision conflict instead
//     of last-write-wins.
//
// Monetary representation: integer cents everywhere (EstimateTotals fields
// are denormalized onto the record so list/read paths never recompute).
type Invoice struct {
	ID                   string        `json:"id"`
	CustomerName         string        `json:"customer_name"`
	CustomerEmail        string        `json:"customer_email"`
	ServiceType          string        `json:"service_type"`
	GuestCount           int64         `json:"guest_count"`
	EventDate            time.Time     `json:"event_date"`
	IsGovernmentContract bool          `json:"is_government_contract"`
	Status               InvoiceStatus `json:"status"`

	// ChangeRequestedFrom holds the linear status the change_requested branch
	// left, so progress reporting can keep pointing at it.
	ChangeRequestedFrom InvoiceStatus `json:"change_requested_from,omitempty"`
	ApprovedVia         string        `json:"approved_via,omitempty"`

	Totals EstimateTotals `json:"totals"`

	Revision    int64      `json:"revision"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// EstimateTotals is the derived pricing aggregate denormalized onto Invoice.
// Invariant: TotalAmount = Subtotal + TaxAmount; government contracts carry
// TaxAmount = 0 and DepositRequired = 0 unconditionally.
type EstimateTotals struct {
	Subtotal        money.Cents `json:"subtotal"`
	HospitalityTax  money.Cents `json:"hospitality_tax"`
	ServiceTax      money.Cents `json:"service_tax"`
	TaxAmount       money.Cents `json:"tax_amount"`
	TotalAmount     money.Cents `json:"total_amount"`
	DepositRequired money.Cents `json:"deposit_required"`
}

// StatusChange describes one workflow transition to persist atomically:
// the new status plus the audit fields that travel with it.
type StatusChange struct {
	Status              InvoiceStatus
	ChangeRequestedFrom InvoiceStatus
	ApprovedVia         string
}
