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
	"catering_xpto/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidInvoiceID   = errors.New("invalid invoice id")
	ErrInvalidLineItemID  = errors.New("invalid line item id")
	ErrInvalidCustomer    = errors.New("customer name and email are required")
	ErrInvalidTaxConfig   = errors.New("invalid tax configuration")
	ErrNegativeGuestCount = errors.New("guest count must be non-negative")
)

// EstimateConfig is the pricing configuration injected into the use case.
// Passed explicitly so one service instance can serve many quotes without
// any module-level rate state.
type EstimateConfig struct {
	Tax            pricing.TaxConfig
	PerGuestPrice  money.Cents
	ServiceFeeRate float64
}

// IEstimateUseCase exposes quote/invoice pricing operations:
// invoice creation, line-item editing with immediate recomputation, the
// per-guest quick calculation, and totals recompute.

type IEstimateUseCase interface {
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	ListLineItems(ctx context.Context, invoiceID string) ([]entities.LineItem, error)
	AddLineItem(ctx context.Context, invoiceID string, in LineItemInput) (entities.Invoice, error)
	UpdateLineItem(ctx context.Context, invoiceID, itemID string, patch pricing.LineItemPatch) (entities.Invoice, error)
	RemoveLineItem(ctx context.Context, invoiceID, itemID string) (entities.Invoice, error)
	GeneratePerGuestItems(ctx context.Context, invoiceID string, in PerGuestInput) (entities.Invoice, error)
	RecomputeTotals(ctx context.Context, invoiceID string) (entities.Invoice, error)
}

type CreateInvoiceInput struct {
	CustomerName         string
	CustomerEmail        string
	ServiceType          string
	GuestCount           int64
	EventDate            time.Time
	IsGovernmentContract bool
}

type LineItemInput struct {
	Title       string
	Description string
	Quantity    int64
	UnitPrice   money.Cents
	Category    entities.ItemCategory
}

// PerGuestInput drives the replace-all quick calculation. Zero values fall
// back to the invoice's guest count and the configured defaults.
type PerGuestInput struct {
	GuestCount     int64
	PerGuestPrice  money.Cents
	ServiceFeeRate float64
}

type EstimateUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	itemRepo    interfaces.ILineItemRepository
	cfg         EstimateConfig
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(invoiceRepo interfaces.IInvoiceRepository, itemRepo interfaces.ILineItemRepository, cfg EstimateConfig) *EstimateUseCase {
	return &EstimateUseCase{invoiceRepo: invoiceRepo, itemRepo: itemRepo, cfg: cfg}
}

func (u *EstimateUseCase) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return entities.Invoice{}, ErrInvalidCustomer
	}
	if in.GuestCount < 0 {
		return entities.Invoice{}, ErrNegativeGuestCount
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:                   uuid.NewString(),
		CustomerName:         in.CustomerName,
		CustomerEmail:        in.CustomerEmail,
		ServiceType:          strings.TrimSpace(in.ServiceType),
		GuestCount:           in.GuestCount,
		EventDate:            in.EventDate,
		IsGovernmentContract: in.IsGovernmentContract,
		Status:               entities.StatusPending,
		Revision:             1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	return u.invoiceRepo.Create(ctx, inv)
}

func (u *EstimateUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *EstimateUseCase) ListLineItems(ctx context.Context, invoiceID string) ([]entities.LineItem, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.itemRepo.ListByInvoiceID(ctx, invoiceID)
}

func (u *EstimateUseCase) AddLineItem(ctx context.Context, invoiceID string, in LineItemInput) (entities.Invoice, error) {
	inv, set, err := u.loadInvoiceAndItems(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	item := entities.LineItem{
		ID:          uuid.NewString(),
		InvoiceID:   inv.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	added, err := set.Add(item)
	if err != nil {
		return entities.Invoice{}, err
	}
	if _, err := u.itemRepo.Create(ctx, added); err != nil {
		log.Printf("[estimate][usecase] line item create failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}

	return u.persistTotals(ctx, inv, set)
}

func (u *EstimateUseCase) UpdateLineItem(ctx context.Context, invoiceID, itemID string, patch pricing.LineItemPatch) (entities.Invoice, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Invoice{}, ErrInvalidLineItemID
	}

	inv, set, err := u.loadInvoiceAndItems(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}

	updated, err := set.Update(itemID, patch)
	if err != nil {
		return entities.Invoice{}, err
	}
	updated.UpdatedAt = time.Now().UTC()
	if _, err := u.itemRepo.Update(ctx, updated); err != nil {
		log.Printf("[estimate][usecase] line item update failed invoice_id=%s item_id=%s err=%v", inv.ID, itemID, err)
		return entities.Invoice{}, err
	}

	return u.persistTotals(ctx, inv, set)
}

func (u *EstimateUseCase) RemoveLineItem(ctx context.Context, invoiceID, itemID string) (entities.Invoice, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Invoice{}, ErrInvalidLineItemID
	}

	inv, set, err := u.loadInvoiceAndItems(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}

	if _, err := set.Remove(itemID); err != nil {
		return entities.Invoice{}, err
	}
	if err := u.itemRepo.Delete(ctx, itemID); err != nil {
		log.Printf("[estimate][usecase] line item delete failed invoice_id=%s item_id=%s err=%v", inv.ID, itemID, err)
		return entities.Invoice{}, err
	}

	return u.persistTotals(ctx, inv, set)
}

func (u *EstimateUseCase) GeneratePerGuestItems(ctx context.Context, invoiceID string, in PerGuestInput) (entities.Invoice, error) {
	inv, set, err := u.loadInvoiceAndItems(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}

	guestCount := in.GuestCount
	if guestCount == 0 {
		guestCount = inv.GuestCount
	}
	perGuest := in.PerGuestPrice
	if perGuest == 0 {
		perGuest = u.cfg.PerGuestPrice
	}
	feeRate := in.ServiceFeeRate
	if feeRate == 0 {
		feeRate = u.cfg.ServiceFeeRate
	}

	items, err := pricing.BuildPerGuestItems(inv.ID, guestCount, perGuest, feeRate, time.Now().UTC())
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := set.ReplaceAll(items); err != nil {
		return entities.Invoice{}, err
	}
	if err := u.itemRepo.ReplaceAllByInvoiceID(ctx, inv.ID, items); err != nil {
		log.Printf("[estimate][usecase] bulk replace failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}

	return u.persistTotals(ctx, inv, set)
}

func (u *EstimateUseCase) RecomputeTotals(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, set, err := u.loadInvoiceAndItems(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.persistTotals(ctx, inv, set)
}

func (u *EstimateUseCase) loadInvoiceAndItems(ctx context.Context, invoiceID string) (entities.Invoice, *pricing.LineItemSet, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, nil, ErrInvalidInvoiceID
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, nil, ErrInvoiceNotFound
	}

	items, err := u.itemRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	return inv, pricing.NewLineItemSet(items), nil
}

// persistTotals recomputes the aggregate from the set and writes it onto the
// invoice row under the revision the caller read.
func (u *EstimateUseCase) persistTotals(ctx context.Context, inv entities.Invoice, set *pricing.LineItemSet) (entities.Invoice, error) {
	if err := u.cfg.Tax.Validate(); err != nil {
		return entities.Invoice{}, ErrInvalidTaxConfig
	}

	totals := set.Recompute(u.cfg.Tax, inv.IsGovernmentContract)
	updated, err := u.invoiceRepo.UpdateTotals(ctx, inv.ID, totals, inv.Revision)
	if err != nil {
		log.Printf("[estimate][usecase] totals persist failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}
