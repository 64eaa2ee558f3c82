package entities

import (
	"time"

	"catering_xpto/pkg/money"
)

// ItemCategory is the closed tag set for billable line items.

type ItemCategory string

const (
	CategoryFood      ItemCategory = "food"
	CategoryService   ItemCategory = "service"
	CategoryEquipment ItemCategory = "equipment"
	CategoryRental    ItemCategory = "rental"
	CategoryOther     ItemCategory = "other"
)

func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryFood, CategoryService, CategoryEquipment, CategoryRental, CategoryOther:
		return true
	}
	return false
}

// LineItem is one billable entry of an estimate/invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// Invariant: TotalPrice == Quantity * UnitPrice after every mutation; the
// aggregator re-derives it before anything is persisted.
type LineItem struct {
	ID          string       `json:"id"`
	InvoiceID   string       `json:"invoice_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Quantity    int64        `json:"quantity"`
	UnitPrice   money.Cents  `json:"unit_price"`
	TotalPrice  money.Cents  `json:"total_price"`
	Category    ItemCategory `json:"category"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
