package interfaces

import (
	"context"
	"errors"

	"catering_xpto/internal/domain/entities"
)

// ErrRevisionConflict is returned by repositories when a conditional write
// loses an optimistic-concurrency race (the stored revision moved on).
var ErrRevisionConflict = errors.New("invoice revision conflict")

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Update methods take the revision the caller read; the implementation must
// enforce it in the write's condition expression and bump it on success, so
// a transition or totals write is applied exactly once or not at all.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	UpdateTotals(ctx context.Context, id string, totals entities.EstimateTotals, expectedRevision int64) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, change entities.StatusChange, expectedRevision int64) (entities.Invoice, error)
}
