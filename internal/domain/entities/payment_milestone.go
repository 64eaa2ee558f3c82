package entities

import (
	"time"

	"catering_xpto/pkg/money"
)

// MilestoneStatus tracks whether a schedule entry is still regenerable.
// Anything past pending is tied to money movement and must be preserved when
// the schedule is rebuilt.

type MilestoneStatus string

const (
	MilestonePending  MilestoneStatus = "pending"
	MilestoneInvoiced MilestoneStatus = "invoiced"
	MilestonePaid     MilestoneStatus = "paid"
)

// PaymentMilestone is one persisted entry of an invoice's payment schedule.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
type PaymentMilestone struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	AmountCents money.Cents     `json:"amount_cents"`
	Percentage  float64         `json:"percentage"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"due_date"`
	Status      MilestoneStatus `json:"status"`
	SortOrder   int             `json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EmailMessage is the flat bag handed to the email collaborator.
// Delivery contract is a bare success/failure, no confirmation beyond that.
type EmailMessage struct {
	Recipient      string `json:"recipient"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	AttachmentHTML string `json:"attachment_html,omitempty"`
}
