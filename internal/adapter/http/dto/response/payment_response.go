package response

import (
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/usecase"
)

type MilestoneResponse struct {
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	AmountCents int64     `json:"amount_cents"`
	Percentage  float64   `json:"percentage"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMilestone(m entities.PaymentMilestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		AmountCents: int64(m.AmountCents),
		Percentage:  m.Percentage,
		Description: m.Description,
		DueDate:     m.DueDate,
		Status:      string(m.Status),
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMilestones(milestones []entities.PaymentMilestone) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, FromMilestone(m))
	}
	return out
}

type PaymentLinkResponse struct {
	InvoiceID   string `json:"invoice_id"`
	CheckoutURL string `json:"checkout_url"`
}

type NextActionResponse struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Target       string   `json:"target,omitempty"`
	CanExecute   bool     `json:"can_execute"`
	Requirements []string `json:"requirements"`
	Progress     float64  `json:"progress"`
}

func FromNextAction(result usecase.NextActionResult) NextActionResponse {
	return NextActionResponse{
		Name:         result.Action.Name,
		Title:        result.Action.Title,
		Description:  result.Action.Description,
		Target:       string(result.Action.Target),
		CanExecute:   result.Action.CanExecute,
		Requirements: result.Action.Requirements,
		Progress:     result.Progress,
	}
}
