package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/pricing"
	"catering_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVersionNotFound     = errors.New("estimate version not found")
	ErrInvalidVersionID    = errors.New("invalid version id")
	ErrVersionWrongInvoice = errors.New("version does not belong to this invoice")
)

// IVersionUseCase manages immutable estimate snapshots and their audit diff.

type IVersionUseCase interface {
	CreateVersion(ctx context.Context, invoiceID, notes string) (entities.EstimateVersion, error)
	ListVersions(ctx context.Context, invoiceID string) ([]entities.EstimateVersion, error)
	Compare(ctx context.Context, invoiceID, fromID, toID string) (pricing.VersionDiff, error)
	Archive(ctx context.Context, invoiceID, versionID string) (entities.EstimateVersion, error)
}

type VersionUseCase struct {
	versionRepo interfaces.IVersionRepository
	invoiceRepo interfaces.IInvoiceRepository
	itemRepo    interfaces.ILineItemRepository
}

var _ IVersionUseCase = (*VersionUseCase)(nil)

func NewVersionUseCase(versionRepo interfaces.IVersionRepository, invoiceRepo interfaces.IInvoiceRepository, itemRepo interfaces.ILineItemRepository) *VersionUseCase {
	return &VersionUseCase{versionRepo: versionRepo, invoiceRepo: invoiceRepo, itemRepo: itemRepo}
}

// CreateVersion snapshots the invoice's current line items and totals as the
// next version. The prior active version is superseded first, keeping at most
// one active snapshot per invoice.
func (u *VersionUseCase) CreateVersion(ctx context.Context, invoiceID, notes string) (entities.EstimateVersion, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.EstimateVersion{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if inv.ID == "" {
		return entities.EstimateVersion{}, ErrInvoiceNotFound
	}

	items, err := u.itemRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return entities.EstimateVersion{}, err
	}

	existing, err := u.versionRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return entities.EstimateVersion{}, err
	}

	var nextNumber int64 = 1
	for _, v := range existing {
		if v.VersionNumber >= nextNumber {
			nextNumber = v.VersionNumber + 1
		}
		if v.Status == entities.VersionActive {
			if _, err := u.versionRepo.UpdateStatus(ctx, v.ID, entities.VersionSuperseded); err != nil {
				log.Printf("[version][usecase] supersede failed invoice_id=%s version_id=%s err=%v", invoiceID, v.ID, err)
				return entities.EstimateVersion{}, err
			}
		}
	}

	version := entities.EstimateVersion{
		ID:            uuid.NewString(),
		InvoiceID:     invoiceID,
		VersionNumber: nextNumber,
		Status:        entities.VersionActive,
		Items:         items,
		Subtotal:      inv.Totals.Subtotal,
		TaxAmount:     inv.Totals.TaxAmount,
		TotalAmount:   inv.Totals.TotalAmount,
		Notes:         strings.TrimSpace(notes),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.versionRepo.Create(ctx, version)
	if err != nil {
		log.Printf("[version][usecase] create failed invoice_id=%s err=%v", invoiceID, err)
		return entities.EstimateVersion{}, err
	}
	log.Printf("[version][usecase] created invoice_id=%s version=%d", invoiceID, created.VersionNumber)
	return created, nil
}

func (u *VersionUseCase) ListVersions(ctx context.Context, invoiceID string) ([]entities.EstimateVersion, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.versionRepo.ListByInvoiceID(ctx, invoiceID)
}

// Compare diffs two snapshots of the same invoice. fromID is "before" and
// toID is "after"; callers own the ordering.
func (u *VersionUseCase) Compare(ctx context.Context, invoiceID, fromID, toID string) (pricing.VersionDiff, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return pricing.VersionDiff{}, ErrInvalidInvoiceID
	}

	from, err := u.getVersionForInvoice(ctx, invoiceID, fromID)
	if err != nil {
		return pricing.VersionDiff{}, err
	}
	to, err := u.getVersionForInvoice(ctx, invoiceID, toID)
	if err != nil {
		return pricing.VersionDiff{}, err
	}

	return pricing.CompareVersions(from, to), nil
}

// Archive soft-deletes a snapshot; the row is retained for audit.
func (u *VersionUseCase) Archive(ctx context.Context, invoiceID, versionID string) (entities.EstimateVersion, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.EstimateVersion{}, ErrInvalidInvoiceID
	}
	if _, err := u.getVersionForInvoice(ctx, invoiceID, versionID); err != nil {
		return entities.EstimateVersion{}, err
	}

	updated, err := u.versionRepo.UpdateStatus(ctx, strings.TrimSpace(versionID), entities.VersionArchived)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if updated.ID == "" {
		return entities.EstimateVersion{}, ErrVersionNotFound
	}
	log.Printf("[version][usecase] archived invoice_id=%s version_id=%s", invoiceID, updated.ID)
	return updated, nil
}

func (u *VersionUseCase) getVersionForInvoice(ctx context.Context, invoiceID, versionID string) (entities.EstimateVersion, error) {
	versionID = strings.TrimSpace(versionID)
	if versionID == "" {
		return entities.EstimateVersion{}, ErrInvalidVersionID
	}

	v, err := u.versionRepo.GetByID(ctx, versionID)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if v.ID == "" {
		return entities.EstimateVersion{}, ErrVersionNotFound
	}
	if v.InvoiceID != invoiceID {
		return entities.EstimateVersion{}, ErrVersionWrongInvoice
	}
	return v, nil
}
