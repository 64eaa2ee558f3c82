package response

import (
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/pkg/money"
)

type TotalsResponse struct {
	SubtotalCents        int64  `json:"subtotal_cents"`
	HospitalityTaxCents  int64  `json:"hospitality_tax_cents"`
	ServiceTaxCents      int64  `json:"service_tax_cents"`
	TaxAmountCents       int64  `json:"tax_amount_cents"`
	TotalAmountCents     int64  `json:"total_amount_cents"`
	DepositRequiredCents int64  `json:"deposit_required_cents"`
	TotalAmountDisplay   string `json:"total_amount_display"`
}

type InvoiceResponse struct {
	ID                   string         `json:"id"`
	CustomerName         string         `json:"customer_name"`
	CustomerEmail        string         `json:"customer_email"`
	ServiceType          string         `json:"service_type"`
	GuestCount           int64          `json:"guest_count"`
	EventDate            *time.Time     `json:"event_date,omitempty"`
	IsGovernmentContract bool           `json:"is_government_contract"`
	Status               string         `json:"status"`
	ChangeRequestedFrom  string         `json:"change_requested_from,omitempty"`
	ApprovedVia          string         `json:"approved_via,omitempty"`
	Totals               TotalsResponse `json:"totals"`
	Revision             int64          `json:"revision"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	SentAt               *time.Time     `json:"sent_at,omitempty"`
	ApprovedAt           *time.Time     `json:"approved_at,omitempty"`
	ConfirmedAt          *time.Time     `json:"confirmed_at,omitempty"`
	CompletedAt          *time.Time     `json:"completed_at,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:                   inv.ID,
		CustomerName:         inv.CustomerName,
		CustomerEmail:        inv.CustomerEmail,
		ServiceType:          inv.ServiceType,
		GuestCount:           inv.GuestCount,
		IsGovernmentContract: inv.IsGovernmentContract,
		Status:               string(inv.Status),
		ChangeRequestedFrom:  string(inv.ChangeRequestedFrom),
		ApprovedVia:          inv.ApprovedVia,
		Totals:               fromTotals(inv.Totals),
		Revision:             inv.Revision,
		CreatedAt:            inv.CreatedAt,
		UpdatedAt:            inv.UpdatedAt,
		SentAt:               inv.SentAt,
		ApprovedAt:           inv.ApprovedAt,
		ConfirmedAt:          inv.ConfirmedAt,
		CompletedAt:          inv.CompletedAt,
	}
	if !inv.EventDate.IsZero() {
		eventDate := inv.EventDate
		resp.EventDate = &eventDate
	}
	return resp
}

func fromTotals(t entities.EstimateTotals) TotalsResponse {
	return TotalsResponse{
		SubtotalCents:        int64(t.Subtotal),
		HospitalityTaxCents:  int64(t.HospitalityTax),
		ServiceTaxCents:      int64(t.ServiceTax),
		TaxAmountCents:       int64(t.TaxAmount),
		TotalAmountCents:     int64(t.TotalAmount),
		DepositRequiredCents: int64(t.DepositRequired),
		TotalAmountDisplay:   money.FormatUSD(t.TotalAmount),
	}
}
