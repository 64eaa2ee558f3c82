package response

import (
	"time"

	"catering_xpto/internal/domain/entities"
)

type LineItemResponse struct {
	ID              string    `json:"id"`
	InvoiceID       string    `json:"invoice_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Quantity        int64     `json:"quantity"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromLineItem(item entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:              item.ID,
		InvoiceID:       item.InvoiceID,
		Title:           item.Title,
		Description:     item.Description,
		Quantity:        item.Quantity,
		UnitPriceCents:  int64(item.UnitPrice),
		TotalPriceCents: int64(item.TotalPrice),
		Category:        string(item.Category),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromLineItem(item))
	}
	return out
}
