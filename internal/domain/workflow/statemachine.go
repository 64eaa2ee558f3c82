package workflow

import (
	"errors"
	"fmt"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/pkg/money"
)

var (
	ErrUnknownStatus     = errors.New("unknown workflow status")
	ErrNoForwardAction   = errors.New("no forward action from this status")
	ErrIllegalTransition = errors.New("illegal workflow transition")
	ErrTransitionBlocked = errors.New("transition requirements not met")
	ErrNotBranchedStatus = errors.New("invoice is not in change_requested")
	ErrBranchNotAllowed  = errors.New("change request only branches off sent or approved")
	ErrResolveNotAllowed = errors.New("change request resolves to approved or estimated")
)

// canonicalOrder is the linear happy path. change_requested is deliberately
// absent: it is a side branch, and inserting it here would corrupt the
// progress-percentage math.
var canonicalOrder = []entities.InvoiceStatus{
	entities.StatusPending,
	entities.StatusUnderReview,
	entities.StatusEstimated,
	entities.StatusSent,
	entities.StatusApproved,
	entities.StatusConfirmed,
	entities.StatusInProgress,
	entities.StatusCompleted,
}

// transitions is the explicit from-state -> allowed-to-states table. Illegal
// targets are refused at the table, not by string comparison at call sites.
var transitions = map[entities.InvoiceStatus][]entities.InvoiceStatus{
	entities.StatusPending:     {entities.StatusUnderReview},
	entities.StatusUnderReview: {entities.StatusEstimated},
	entities.StatusEstimated:   {entities.StatusSent},
	entities.StatusSent:        {entities.StatusApproved, entities.StatusChangeRequested},
	entities.StatusApproved:    {entities.StatusConfirmed, entities.StatusChangeRequested},
	entities.StatusConfirmed:   {entities.StatusInProgress},
	entities.StatusInProgress:  {entities.StatusCompleted},
	entities.StatusCompleted:   {},
	entities.StatusChangeRequested: {
		entities.StatusApproved,
		entities.StatusEstimated,
	},
}

// IsValid reports whether s belongs to the closed status set.
func IsValid(s entities.InvoiceStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition consults the transition table.
func CanTransition(from, to entities.InvoiceStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// orderIndex returns the position of s on the linear path, or -1 for the
// change_requested side state.
func orderIndex(s entities.InvoiceStatus) int {
	for i, st := range canonicalOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Facts is the data-completeness snapshot the gates evaluate. The caller
// assembles it from the invoice record; the machine itself holds no state.
type Facts struct {
	GuestCount     int64
	EventDateSet   bool
	ServiceTypeSet bool
	EstimatedTotal money.Cents
}

// Action describes the next admin step available from a status, with the
// unmet requirements spelled out whenever CanExecute is false.
type Action struct {
	Name         string                 `json:"name"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Target       entities.InvoiceStatus `json:"target"`
	CanExecute   bool                   `json:"can_execute"`
	Requirements []string               `json:"requirements"`
}

// NextAction computes the single forward action for the current status.
// completed is terminal and returns ErrNoForwardAction.
func NextAction(current entities.InvoiceStatus, facts Facts) (Action, error) {
	if !IsValid(current) {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownStatus, current)
	}

	switch current {
	case entities.StatusPending:
		return Action{
			Name:        "start_review",
			Title:       "Start review",
			Description: "Move the quote into admin review",
			Target:      entities.StatusUnderReview,
			CanExecute:  true,
		}, nil

	case entities.StatusUnderReview:
		var missing []string
		if facts.GuestCount <= 0 {
			missing = append(missing, "guest count must be greater than zero")
		}
		if !facts.EventDateSet {
			missing = append(missing, "event date must be set")
		}
		if !facts.ServiceTypeSet {
			missing = append(missing, "service type must be set")
		}
		return Action{
			Name:         "mark_estimated",
			Title:        "Mark estimated",
			Description:  "Pricing is complete and the estimate is ready to send",
			Target:       entities.StatusEstimated,
			CanExecute:   len(missing) == 0,
			Requirements: missing,
		}, nil

	case entities.StatusEstimated:
		var missing []string
		if facts.EstimatedTotal <= 0 {
			missing = append(missing, "estimated total must be greater than zero")
		}
		return Action{
			Name:         "send_estimate",
			Title:        "Send estimate",
			Description:  "Email the estimate to the customer",
			Target:       entities.StatusSent,
			CanExecute:   len(missing) == 0,
			Requirements: missing,
		}, nil

	case entities.StatusSent:
		// Normally customer-driven; the admin path here is the audited
		// manual override.
		return Action{
			Name:        "approve_override",
			Title:       "Approve (manual override)",
			Description: "Record customer approval on their behalf",
			Target:      entities.StatusApproved,
			CanExecute:  true,
		}, nil

	case entities.StatusApproved:
		return Action{
			Name:        "confirm_booking",
			Title:       "Confirm booking",
			Description: "Lock the event on the calendar",
			Target:      entities.StatusConfirmed,
			CanExecute:  true,
		}, nil

	case entities.StatusConfirmed:
		return Action{
			Name:        "start_event",
			Title:       "Start event",
			Description: "Event execution is underway",
			Target:      entities.StatusInProgress,
			CanExecute:  true,
		}, nil

	case entities.StatusInProgress:
		return Action{
			Name:        "complete_event",
			Title:       "Complete event",
			Description: "Event delivered; close out the invoice",
			Target:      entities.StatusCompleted,
			CanExecute:  true,
		}, nil

	case entities.StatusChangeRequested:
		return Action{
			Name:        "resolve_change_request",
			Title:       "Resolve change request",
			Description: "Return to approved, or to estimated for re-pricing",
			Target:      entities.StatusApproved,
			CanExecute:  true,
		}, nil
	}

	return Action{}, ErrNoForwardAction
}

// Progress reports completion percentage for display. change_requested maps
// to the progress of the linear status it branched from; branchedFrom is
// ignored for every other status.
func Progress(current, branchedFrom entities.InvoiceStatus) (float64, error) {
	if !IsValid(current) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, current)
	}
	idx := orderIndex(current)
	if current == entities.StatusChangeRequested {
		idx = orderIndex(branchedFrom)
		if idx < 0 {
			return 0, fmt.Errorf("%w: branched from %q", ErrUnknownStatus, branchedFrom)
		}
	}
	return float64(idx) / float64(len(canonicalOrder)-1) * 100, nil
}

// ValidateBranch checks that a change request may leave the given status.
func ValidateBranch(from entities.InvoiceStatus) error {
	if from != entities.StatusSent && from != entities.StatusApproved {
		return ErrBranchNotAllowed
	}
	return nil
}

// ValidateResolution checks the change_requested exit target.
func ValidateResolution(to entities.InvoiceStatus) error {
	if to != entities.StatusApproved && to != entities.StatusEstimated {
		return ErrResolveNotAllowed
	}
	return nil
}
