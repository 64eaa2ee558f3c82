package request

import (
	"errors"
	"strings"
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/pricing"
	"catering_xpto/pkg/money"
)

var (
	ErrInvalidEventDate = errors.New("invalid event date")
	ErrEmptyPatch       = errors.New("empty line item patch")
)

// CreateInvoiceRequest opens a new catering quote. EventDate accepts either
// a plain date (2026-06-15) or full RFC3339.
type CreateInvoiceRequest struct {
	CustomerName         string `json:"customer_name" binding:"required"`
	CustomerEmail        string `json:"customer_email" binding:"required"`
	ServiceType          string `json:"service_type"`
	GuestCount           int64  `json:"guest_count"`
	EventDate            string `json:"event_date"`
	IsGovernmentContract bool   `json:"is_government_contract"`
}

func (r CreateInvoiceRequest) ResolveEventDate() (time.Time, error) {
	return parseEventDate(r.EventDate)
}

type LineItemRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Quantity       int64  `json:"quantity" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Category       string `json:"category" binding:"required"`
}

// LineItemPatchRequest carries partial updates. Absent fields stay nil so
// the aggregator can tell "not provided" from a zero value.
type LineItemPatchRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Quantity       *int64  `json:"quantity"`
	UnitPriceCents *int64  `json:"unit_price_cents"`
	Category       *string `json:"category"`
}

func (r LineItemPatchRequest) ToPatch() (pricing.LineItemPatch, error) {
	if r.Title == nil && r.Description == nil && r.Quantity == nil && r.UnitPriceCents == nil && r.Category == nil {
		return pricing.LineItemPatch{}, ErrEmptyPatch
	}

	patch := pricing.LineItemPatch{
		Title:       r.Title,
		Description: r.Description,
		Quantity:    r.Quantity,
	}
	if r.UnitPriceCents != nil {
		price := money.Cents(*r.UnitPriceCents)
		patch.UnitPrice = &price
	}
	if r.Category != nil {
		category := entities.ItemCategory(strings.TrimSpace(*r.Category))
		patch.Category = &category
	}
	return patch, nil
}

// PerGuestRequest drives the per-guest quick calculation. All fields are
// optional; zero values fall back to the invoice and service defaults.
type PerGuestRequest struct {
	GuestCount         int64   `json:"guest_count"`
	PerGuestPriceCents int64   `json:"per_guest_price_cents"`
	ServiceFeeRate     float64 `json:"service_fee_rate"`
}

type ChangeResolutionRequest struct {
	Target string `json:"target" binding:"required"`
}

func (r ChangeResolutionRequest) ResolveTarget() entities.InvoiceStatus {
	return entities.InvoiceStatus(strings.ToLower(strings.TrimSpace(r.Target)))
}

type CreateVersionRequest struct {
	Notes string `json:"notes"`
}

func parseEventDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidEventDate
}
