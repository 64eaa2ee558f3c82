package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/pricing"
	"catering_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoEstimatedTotal  = errors.New("invoice has no estimated total")
	ErrMissingEventDate  = errors.New("invoice has no event date")
	ErrGatewayNotWired   = errors.New("payment gateway not configured")
	ErrNothingToSchedule = errors.New("nothing left to schedule")
)

// IPaymentUseCase derives and persists the tiered payment schedule, creates
// hosted checkout links, and renders the contract document.

type IPaymentUseCase interface {
	RegenerateSchedule(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error)
	GetSchedule(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error)
	CreatePaymentLink(ctx context.Context, invoiceID string) (string, error)
	RenderContract(ctx context.Context, invoiceID string) (string, error)
}

type PaymentUseCase struct {
	invoiceRepo   interfaces.IInvoiceRepository
	milestoneRepo interfaces.IMilestoneRepository
	itemRepo      interfaces.ILineItemRepository
	gateway       interfaces.IPaymentLinkGateway
	renderer      interfaces.IContractRenderer
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	invoiceRepo interfaces.IInvoiceRepository,
	milestoneRepo interfaces.IMilestoneRepository,
	itemRepo interfaces.ILineItemRepository,
	gateway interfaces.IPaymentLinkGateway,
	renderer interfaces.IContractRenderer,
) *PaymentUseCase {
	return &PaymentUseCase{
		invoiceRepo:   invoiceRepo,
		milestoneRepo: milestoneRepo,
		itemRepo:      itemRepo,
		gateway:       gateway,
		renderer:      renderer,
	}
}

// RegenerateSchedule rebuilds the invoice's payment schedule from its current
// total and event date.
//
// Milestones past pending are tied to collected or requested money and are
// preserved untouched; only pending rows are replaced, generated over the
// amount not yet covered by preserved milestones.
func (u *PaymentUseCase) RegenerateSchedule(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Totals.TotalAmount <= 0 {
		return nil, ErrNoEstimatedTotal
	}
	if inv.EventDate.IsZero() {
		return nil, ErrMissingEventDate
	}

	existing, err := u.milestoneRepo.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	preserved := make([]entities.PaymentMilestone, 0, len(existing))
	var pendingIDs []string
	remaining := inv.Totals.TotalAmount
	for _, m := range existing {
		if m.Status == entities.MilestonePending {
			pendingIDs = append(pendingIDs, m.ID)
			continue
		}
		preserved = append(preserved, m)
		remaining -= m.AmountCents
	}
	if remaining <= 0 {
		log.Printf("[payment][usecase] schedule fully covered invoice_id=%s preserved=%d", inv.ID, len(preserved))
		return nil, ErrNothingToSchedule
	}

	now := time.Now().UTC()
	schedule := pricing.CalculatePaymentSchedule(remaining, inv.EventDate, inv.IsGovernmentContract, now)

	fresh := make([]entities.PaymentMilestone, 0, len(schedule.Entries))
	for i, entry := range schedule.Entries {
		fresh = append(fresh, entities.PaymentMilestone{
			ID:          uuid.NewString(),
			InvoiceID:   inv.ID,
			AmountCents: entry.Amount,
			Percentage:  entry.Percentage,
			Description: entry.Description,
			DueDate:     entry.DueDate,
			Status:      entities.MilestonePending,
			SortOrder:   len(preserved) + i,
			CreatedAt:   now,
		})
	}

	if len(pendingIDs) > 0 {
		if err := u.milestoneRepo.DeleteByIDs(ctx, pendingIDs); err != nil {
			log.Printf("[payment][usecase] pending milestone delete failed invoice_id=%s err=%v", inv.ID, err)
			return nil, err
		}
	}
	if err := u.milestoneRepo.CreateMany(ctx, fresh); err != nil {
		log.Printf("[payment][usecase] milestone create failed invoice_id=%s err=%v", inv.ID, err)
		return nil, err
	}
	log.Printf("[payment][usecase] schedule regenerated invoice_id=%s type=%s preserved=%d fresh=%d", inv.ID, schedule.Type, len(preserved), len(fresh))

	out := append(preserved, fresh...)
	sortMilestones(out)
	return out, nil
}

func (u *PaymentUseCase) GetSchedule(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}

	milestones, err := u.milestoneRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	sortMilestones(milestones)
	return milestones, nil
}

// CreatePaymentLink asks the provider for a hosted checkout URL covering the
// invoice's booking deposit, or the full total for government contracts
// (which carry no deposit).
func (u *PaymentUseCase) CreatePaymentLink(ctx context.Context, invoiceID string) (string, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	if u.gateway == nil {
		return "", ErrGatewayNotWired
	}
	if inv.Totals.TotalAmount <= 0 {
		return "", ErrNoEstimatedTotal
	}

	amount := inv.Totals.DepositRequired
	title := fmt.Sprintf("Booking deposit - %s", inv.CustomerName)
	if inv.IsGovernmentContract {
		amount = inv.Totals.TotalAmount
		title = fmt.Sprintf("Catering services - %s", inv.CustomerName)
	}

	link, err := u.gateway.CreateCheckoutLink(ctx, inv.ID, amount, title)
	if err != nil {
		log.Printf("[payment][usecase] checkout link failed invoice_id=%s err=%v", inv.ID, err)
		return "", err
	}
	log.Printf("[payment][usecase] checkout link created invoice_id=%s", inv.ID)
	return link, nil
}

func (u *PaymentUseCase) RenderContract(ctx context.Context, invoiceID string) (string, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	items, err := u.itemRepo.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return "", err
	}
	milestones, err := u.milestoneRepo.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return "", err
	}
	sortMilestones(milestones)

	html, err := u.renderer.RenderContract(inv, items, milestones)
	if err != nil {
		log.Printf("[payment][usecase] contract render failed invoice_id=%s err=%v", inv.ID, err)
		return "", err
	}
	return html, nil
}

func (u *PaymentUseCase) loadInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func sortMilestones(ms []entities.PaymentMilestone) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].SortOrder < ms[j].SortOrder
	})
}
