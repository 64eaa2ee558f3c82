package request

import (
	"errors"
	"testing"
	"time"

	"catering_xpto/internal/domain/entities"
)

func TestCreateInvoiceRequest_ResolveEventDate(t *testing.T) {
	r := CreateInvoiceRequest{EventDate: "2026-06-15"}
	got, err := r.ResolveEventDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	r2 := CreateInvoiceRequest{EventDate: "2026-06-15T18:30:00Z"}
	got, err = r2.ResolveEventDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 18 {
		t.Fatalf("expected RFC3339 parse, got %v", got)
	}

	r3 := CreateInvoiceRequest{}
	got, err = r3.ResolveEventDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero time for empty date, got %v", got)
	}

	r4 := CreateInvoiceRequest{EventDate: "next tuesday"}
	if _, err := r4.ResolveEventDate(); !errors.Is(err, ErrInvalidEventDate) {
		t.Fatalf("expected ErrInvalidEventDate, got %v", err)
	}
}

func TestLineItemPatchRequest_ToPatch(t *testing.T) {
	empty := LineItemPatchRequest{}
	if _, err := empty.ToPatch(); !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}

	qty := int64(3)
	cat := " food "
	r := LineItemPatchRequest{Quantity: &qty, Category: &cat}
	patch, err := r.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Quantity == nil || *patch.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %+v", patch.Quantity)
	}
	if patch.Category == nil || *patch.Category != entities.CategoryFood {
		t.Fatalf("expected trimmed food category, got %+v", patch.Category)
	}
	if patch.Title != nil || patch.UnitPrice != nil {
		t.Fatalf("untouched fields must stay nil: %+v", patch)
	}
}

func TestChangeResolutionRequest_ResolveTarget(t *testing.T) {
	r := ChangeResolutionRequest{Target: "  Approved "}
	if got := r.ResolveTarget(); got != entities.StatusApproved {
		t.Fatalf("expected approved, got %q", got)
	}
}
