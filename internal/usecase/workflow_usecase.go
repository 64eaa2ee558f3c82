package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/workflow"
	"catering_xpto/internal/usecase/interfaces"
	"catering_xpto/pkg/money"
)

var (
	ErrWorkflowCompleted   = errors.New("workflow already completed")
	ErrNotAwaitingApproval = errors.New("invoice is not awaiting customer approval")
	ErrMissingRecipient    = errors.New("invoice has no customer email")
)

// TransitionRefusedError is returned when a gate blocks a transition. It
// echoes the unmet requirements so the caller can display them; a blocked
// transition is always an explicit refusal, never a silent no-op.
type TransitionRefusedError struct {
	Action workflow.Action
}

func (e *TransitionRefusedError) Error() string {
	return fmt.Sprintf("transition %s refused: %s", e.Action.Name, strings.Join(e.Action.Requirements, "; "))
}

// NextActionResult pairs the gated next step with display progress.
type NextActionResult struct {
	Action   workflow.Action `json:"action"`
	Progress float64         `json:"progress"`
}

// IWorkflowUseCase drives the quote/invoice lifecycle. Each transition is
// persisted as one conditional write (status, stage timestamp, revision), so
// it is either fully applied or not applied at all.

type IWorkflowUseCase interface {
	NextAction(ctx context.Context, invoiceID string) (NextActionResult, error)
	Advance(ctx context.Context, invoiceID string) (entities.Invoice, error)
	SendEstimate(ctx context.Context, invoiceID string) (entities.Invoice, error)
	ApproveOverride(ctx context.Context, invoiceID string) (entities.Invoice, error)
	RequestChange(ctx context.Context, invoiceID string) (entities.Invoice, error)
	ResolveChange(ctx context.Context, invoiceID string, target entities.InvoiceStatus) (entities.Invoice, error)
}

type WorkflowUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	dispatcher  interfaces.IEmailDispatcher
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(invoiceRepo interfaces.IInvoiceRepository, dispatcher interfaces.IEmailDispatcher) *WorkflowUseCase {
	return &WorkflowUseCase{invoiceRepo: invoiceRepo, dispatcher: dispatcher}
}

func factsFor(inv entities.Invoice) workflow.Facts {
	return workflow.Facts{
		GuestCount:     inv.GuestCount,
		EventDateSet:   !inv.EventDate.IsZero(),
		ServiceTypeSet: inv.ServiceType != "",
		EstimatedTotal: inv.Totals.TotalAmount,
	}
}

func (u *WorkflowUseCase) NextAction(ctx context.Context, invoiceID string) (NextActionResult, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return NextActionResult{}, err
	}

	progress, err := workflow.Progress(inv.Status, inv.ChangeRequestedFrom)
	if err != nil {
		return NextActionResult{}, err
	}

	action, err := workflow.NextAction(inv.Status, factsFor(inv))
	if errors.Is(err, workflow.ErrNoForwardAction) {
		return NextActionResult{Progress: progress}, ErrWorkflowCompleted
	}
	if err != nil {
		return NextActionResult{}, err
	}
	return NextActionResult{Action: action, Progress: progress}, nil
}

// Advance fires the single legal forward transition from the current status.
// From estimated it delegates to SendEstimate so the email dispatch and the
// status change stay coupled; from sent it is the audited manual override.
func (u *WorkflowUseCase) Advance(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}

	switch inv.Status {
	case entities.StatusEstimated:
		return u.sendEstimate(ctx, inv)
	case entities.StatusSent:
		return u.approveOverride(ctx, inv)
	}

	action, err := workflow.NextAction(inv.Status, factsFor(inv))
	if errors.Is(err, workflow.ErrNoForwardAction) {
		return entities.Invoice{}, ErrWorkflowCompleted
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	if !action.CanExecute {
		return entities.Invoice{}, &TransitionRefusedError{Action: action}
	}

	log.Printf("[workflow][usecase] transition invoice_id=%s %s -> %s", inv.ID, inv.Status, action.Target)
	return u.persistStatus(ctx, inv, entities.StatusChange{Status: action.Target})
}

func (u *WorkflowUseCase) SendEstimate(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.sendEstimate(ctx, inv)
}

// sendEstimate dispatches the estimate email and only then persists the
// estimated -> sent transition. A dispatch failure surfaces to the caller
// with stored state untouched; there is no retry.
func (u *WorkflowUseCase) sendEstimate(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if inv.Status != entities.StatusEstimated {
		return entities.Invoice{}, &TransitionRefusedError{Action: workflow.Action{
			Name:         "send_estimate",
			Requirements: []string{fmt.Sprintf("invoice must be estimated, currently %s", inv.Status)},
		}}
	}
	action, err := workflow.NextAction(entities.StatusEstimated, factsFor(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	if !action.CanExecute {
		return entities.Invoice{}, &TransitionRefusedError{Action: action}
	}
	if inv.CustomerEmail == "" {
		return entities.Invoice{}, ErrMissingRecipient
	}

	msg := entities.EmailMessage{
		Recipient: inv.CustomerEmail,
		Subject:   fmt.Sprintf("Your catering estimate for %s", inv.EventDate.Format("January 2, 2006")),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour estimate is ready. Total: %s (subtotal %s, tax %s). Booking deposit: %s.\n",
			inv.CustomerName,
			money.FormatUSD(inv.Totals.TotalAmount),
			money.FormatUSD(inv.Totals.Subtotal),
			money.FormatUSD(inv.Totals.TaxAmount),
			money.FormatUSD(inv.Totals.DepositRequired),
		),
	}
	if err := u.dispatcher.Send(ctx, msg); err != nil {
		log.Printf("[workflow][usecase] estimate email dispatch failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[workflow][usecase] estimate email dispatched invoice_id=%s recipient=%s", inv.ID, inv.CustomerEmail)

	return u.persistStatus(ctx, inv, entities.StatusChange{Status: entities.StatusSent})
}

func (u *WorkflowUseCase) ApproveOverride(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.approveOverride(ctx, inv)
}

func (u *WorkflowUseCase) approveOverride(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if inv.Status != entities.StatusSent {
		return entities.Invoice{}, ErrNotAwaitingApproval
	}

	// Logged distinctly from automatic customer approval for audit.
	log.Printf("[workflow][usecase] manual approval override invoice_id=%s", inv.ID)
	return u.persistStatus(ctx, inv, entities.StatusChange{
		Status:      entities.StatusApproved,
		ApprovedVia: entities.ApprovedByManualOverride,
	})
}

func (u *WorkflowUseCase) RequestChange(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := workflow.ValidateBranch(inv.Status); err != nil {
		return entities.Invoice{}, err
	}

	log.Printf("[workflow][usecase] change requested invoice_id=%s branched_from=%s", inv.ID, inv.Status)
	return u.persistStatus(ctx, inv, entities.StatusChange{
		Status:              entities.StatusChangeRequested,
		ChangeRequestedFrom: inv.Status,
	})
}

func (u *WorkflowUseCase) ResolveChange(ctx context.Context, invoiceID string, target entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.StatusChangeRequested {
		return entities.Invoice{}, workflow.ErrNotBranchedStatus
	}
	if err := workflow.ValidateResolution(target); err != nil {
		return entities.Invoice{}, err
	}

	log.Printf("[workflow][usecase] change request resolved invoice_id=%s target=%s", inv.ID, target)
	return u.persistStatus(ctx, inv, entities.StatusChange{Status: target})
}

func (u *WorkflowUseCase) loadInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
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

func (u *WorkflowUseCase) persistStatus(ctx context.Context, inv entities.Invoice, change entities.StatusChange) (entities.Invoice, error) {
	updated, err := u.invoiceRepo.UpdateStatus(ctx, inv.ID, change, inv.Revision)
	if err != nil {
		log.Printf("[workflow][usecase] status persist failed invoice_id=%s target=%s err=%v", inv.ID, change.Status, err)
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}
