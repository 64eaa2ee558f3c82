package interfaces

import (
	"context"

	"catering_xpto/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for LineItem.
//
// ReplaceAllByInvoiceID backs the per-guest quick calculation: it clears the
// invoice's items and writes the generated pair, never merging with prior
// manual edits.
type ILineItemRepository interface {
	Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	Update(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	Delete(ctx context.Context, id string) error
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.LineItem, error)
	ReplaceAllByInvoiceID(ctx context.Context, invoiceID string, items []entities.LineItem) error
}
