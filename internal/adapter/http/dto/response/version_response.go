package response

import (
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/pricing"
)

type VersionResponse struct {
	ID            string             `json:"id"`
	InvoiceID     string             `json:"invoice_id"`
	VersionNumber int64              `json:"version_number"`
	Status        string             `json:"status"`
	Items         []LineItemResponse `json:"items"`
	SubtotalCents int64              `json:"subtotal_cents"`
	TaxCents      int64              `json:"tax_cents"`
	TotalCents    int64              `json:"total_cents"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func FromVersion(v entities.EstimateVersion) VersionResponse {
	return VersionResponse{
		ID:            v.ID,
		InvoiceID:     v.InvoiceID,
		VersionNumber: v.VersionNumber,
		Status:        string(v.Status),
		Items:         FromLineItems(v.Items),
		SubtotalCents: int64(v.Subtotal),
		TaxCents:      int64(v.TaxAmount),
		TotalCents:    int64(v.TotalAmount),
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
	}
}

func FromVersions(versions []entities.EstimateVersion) []VersionResponse {
	out := make([]VersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, FromVersion(v))
	}
	return out
}

type FieldChangeResponse struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

type ModifiedItemResponse struct {
	Item          LineItemResponse      `json:"item"`
	ChangedFields []FieldChangeResponse `json:"changed_fields"`
}

type VersionDiffResponse struct {
	Added            []LineItemResponse     `json:"added"`
	Removed          []LineItemResponse     `json:"removed"`
	Modified         []ModifiedItemResponse `json:"modified"`
	PriceChangeCents int64                  `json:"price_change_cents"`
}

func FromVersionDiff(diff pricing.VersionDiff) VersionDiffResponse {
	modified := make([]ModifiedItemResponse, 0, len(diff.Modified))
	for _, m := range diff.Modified {
		changes := make([]FieldChangeResponse, 0, len(m.ChangedFields))
		for _, c := range m.ChangedFields {
			changes = append(changes, FieldChangeResponse{Field: c.Field, OldValue: c.OldValue, NewValue: c.NewValue})
		}
		modified = append(modified, ModifiedItemResponse{Item: FromLineItem(m.Item), ChangedFields: changes})
	}
	return VersionDiffResponse{
		Added:            FromLineItems(diff.Added),
		Removed:          FromLineItems(diff.Removed),
		Modified:         modified,
		PriceChangeCents: int64(diff.PriceChange),
	}
}
