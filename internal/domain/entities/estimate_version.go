package entities

import (
	"time"

	"catering_xpto/pkg/money"
)

// VersionStatus tracks the lifecycle of an estimate snapshot. Exactly one
// version per invoice is active at any time; superseding happens when a newer
// version is created, archiving is an explicit admin soft-delete.

type VersionStatus string

const (
	VersionActive     VersionStatus = "active"
	VersionSuperseded VersionStatus = "superseded"
	VersionArchived   VersionStatus = "archived"
)

// EstimateVersion is an immutable snapshot of an invoice's line items and
// totals at a point in time. Append-only: rows are created and have their
// status flipped, never edited.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
type EstimateVersion struct {
	ID            string        `json:"id"`
	InvoiceID     string        `json:"invoice_id"`
	VersionNumber int64         `json:"version_number"`
	Status        VersionStatus `json:"status"`
	Items         []LineItem    `json:"items"`
	Subtotal      money.Cents   `json:"subtotal"`
	TaxAmount     money.Cents   `json:"tax_amount"`
	TotalAmount   money.Cents   `json:"total_amount"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
