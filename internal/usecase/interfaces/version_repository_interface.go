package interfaces

import (
	"context"

	"catering_xpto/internal/domain/entities"
)

// IVersionRepository abstracts DynamoDB persistence for EstimateVersion.
//
// Rows are append-only; UpdateStatus only flips the lifecycle column
// (active -> superseded/archived), never the snapshot payload.
type IVersionRepository interface {
	Create(ctx context.Context, v entities.EstimateVersion) (entities.EstimateVersion, error)
	GetByID(ctx context.Context, id string) (entities.EstimateVersion, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.EstimateVersion, error)
	UpdateStatus(ctx context.Context, id string, status entities.VersionStatus) (entities.EstimateVersion, error)
}
