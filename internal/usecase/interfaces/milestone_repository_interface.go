package interfaces

import (
	"context"

	"catering_xpto/internal/domain/entities"
)

// IMilestoneRepository abstracts DynamoDB persistence for PaymentMilestone.
type IMilestoneRepository interface {
	CreateMany(ctx context.Context, milestones []entities.PaymentMilestone) error
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}
