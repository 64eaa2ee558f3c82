package workflow

import (
	"testing"

	"catering_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeFacts() Facts {
	return Facts{GuestCount: 40, EventDateSet: true, ServiceTypeSet: true, EstimatedTotal: 10900}
}

func TestIsValid(t *testing.T) {
	for _, s := range []entities.InvoiceStatus{
		entities.StatusPending, entities.StatusUnderReview, entities.StatusEstimated,
		entities.StatusSent, entities.StatusApproved, entities.StatusConfirmed,
		entities.StatusInProgress, entities.StatusCompleted, entities.StatusChangeRequested,
	} {
		assert.True(t, IsValid(s), "status %s", s)
	}
	assert.False(t, IsValid("draft"))
	assert.False(t, IsValid(""))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(entities.StatusPending, entities.StatusUnderReview))
	assert.True(t, CanTransition(entities.StatusSent, entities.StatusChangeRequested))
	assert.True(t, CanTransition(entities.StatusApproved, entities.StatusChangeRequested))
	assert.True(t, CanTransition(entities.StatusChangeRequested, entities.StatusEstimated))

	assert.False(t, CanTransition(entities.StatusPending, entities.StatusSent))
	assert.False(t, CanTransition(entities.StatusEstimated, entities.StatusChangeRequested))
	assert.False(t, CanTransition(entities.StatusCompleted, entities.StatusPending))
	assert.False(t, CanTransition(entities.StatusChangeRequested, entities.StatusSent))
}

func TestNextAction(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		_, err := NextAction("draft", Facts{})
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})

	t.Run("pending always executable", func(t *testing.T) {
		a, err := NextAction(entities.StatusPending, Facts{})
		require.NoError(t, err)
		assert.Equal(t, "start_review", a.Name)
		assert.Equal(t, entities.StatusUnderReview, a.Target)
		assert.True(t, a.CanExecute)
	})

	t.Run("under_review gate lists every missing fact", func(t *testing.T) {
		a, err := NextAction(entities.StatusUnderReview, Facts{})
		require.NoError(t, err)
		assert.Equal(t, "mark_estimated", a.Name)
		assert.False(t, a.CanExecute)
		assert.Len(t, a.Requirements, 3)
	})

	t.Run("under_review gate flips when facts complete", func(t *testing.T) {
		partial := Facts{GuestCount: 40, EventDateSet: true}
		a, err := NextAction(entities.StatusUnderReview, partial)
		require.NoError(t, err)
		assert.False(t, a.CanExecute)
		assert.Equal(t, []string{"service type must be set"}, a.Requirements)

		a, err = NextAction(entities.StatusUnderReview, completeFacts())
		require.NoError(t, err)
		assert.True(t, a.CanExecute)
		assert.Empty(t, a.Requirements)
	})

	t.Run("estimated requires positive total", func(t *testing.T) {
		a, err := NextAction(entities.StatusEstimated, Facts{GuestCount: 40, EventDateSet: true, ServiceTypeSet: true})
		require.NoError(t, err)
		assert.Equal(t, "send_estimate", a.Name)
		assert.False(t, a.CanExecute)

		a, err = NextAction(entities.StatusEstimated, completeFacts())
		require.NoError(t, err)
		assert.True(t, a.CanExecute)
	})

	t.Run("sent offers manual override", func(t *testing.T) {
		a, err := NextAction(entities.StatusSent, Facts{})
		require.NoError(t, err)
		assert.Equal(t, "approve_override", a.Name)
		assert.Equal(t, entities.StatusApproved, a.Target)
		assert.True(t, a.CanExecute)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := NextAction(entities.StatusCompleted, completeFacts())
		assert.ErrorIs(t, err, ErrNoForwardAction)
	})

	t.Run("change_requested resolves", func(t *testing.T) {
		a, err := NextAction(entities.StatusChangeRequested, Facts{})
		require.NoError(t, err)
		assert.Equal(t, "resolve_change_request", a.Name)
	})
}

func TestProgress(t *testing.T) {
	tests := []struct {
		status entities.InvoiceStatus
		want   float64
	}{
		{entities.StatusPending, 0},
		{entities.StatusUnderReview, 100.0 / 7},
		{entities.StatusEstimated, 200.0 / 7},
		{entities.StatusSent, 300.0 / 7},
		{entities.StatusApproved, 400.0 / 7},
		{entities.StatusConfirmed, 500.0 / 7},
		{entities.StatusInProgress, 600.0 / 7},
		{entities.StatusCompleted, 100},
	}
	for _, tt := range tests {
		got, err := Progress(tt.status, "")
		require.NoError(t, err, "status %s", tt.status)
		assert.InDelta(t, tt.want, got, 1e-9, "status %s", tt.status)
	}

	t.Run("change_requested keeps branch progress", func(t *testing.T) {
		got, err := Progress(entities.StatusChangeRequested, entities.StatusSent)
		require.NoError(t, err)
		assert.InDelta(t, 300.0/7, got, 1e-9)

		got, err = Progress(entities.StatusChangeRequested, entities.StatusApproved)
		require.NoError(t, err)
		assert.InDelta(t, 400.0/7, got, 1e-9)
	})

	t.Run("change_requested without branch origin", func(t *testing.T) {
		_, err := Progress(entities.StatusChangeRequested, "")
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestValidateBranch(t *testing.T) {
	assert.NoError(t, ValidateBranch(entities.StatusSent))
	assert.NoError(t, ValidateBranch(entities.StatusApproved))
	assert.ErrorIs(t, ValidateBranch(entities.StatusEstimated), ErrBranchNotAllowed)
	assert.ErrorIs(t, ValidateBranch(entities.StatusCompleted), ErrBranchNotAllowed)
}

func TestValidateResolution(t *testing.T) {
	assert.NoError(t, ValidateResolution(entities.StatusApproved))
	assert.NoError(t, ValidateResolution(entities.StatusEstimated))
	assert.ErrorIs(t, ValidateResolution(entities.StatusSent), ErrResolveNotAllowed)
	assert.ErrorIs(t, ValidateResolution(entities.StatusCompleted), ErrResolveNotAllowed)
}
