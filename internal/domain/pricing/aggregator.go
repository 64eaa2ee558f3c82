package pricing

import (
	"errors"
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound      = errors.New("line item not found")
	ErrDuplicateItemID   = errors.New("duplicate line item id")
	ErrNegativeQuantity  = errors.New("quantity must be non-negative")
	ErrNegativeUnitPrice = errors.New("unit price must be non-negative")
	ErrInvalidCategory   = errors.New("invalid line item category")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
)

// LineItemSet is the ordered collection of line items for one invoice.
//
// Every mutation re-derives TotalPrice for the touched item immediately;
// there is no dirty-flag model, so a read between a mutation and the next
// Recompute can never observe a stale total.
type LineItemSet struct {
	items []entities.LineItem
}

func NewLineItemSet(items []entities.LineItem) *LineItemSet {
	s := &LineItemSet{items: make([]entities.LineItem, len(items))}
	copy(s.items, items)
	return s
}

// LineItemPatch is a partial update; nil fields are left untouched.
type LineItemPatch struct {
	Title       *string
	Description *string
	Quantity    *int64
	UnitPrice   *money.Cents
	Category    *entities.ItemCategory
}

func validateItem(it entities.LineItem) error {
	if it.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if it.UnitPrice < 0 {
		return ErrNegativeUnitPrice
	}
	if !it.Category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}

func (s *LineItemSet) Add(it entities.LineItem) (entities.LineItem, error) {
	if err := validateItem(it); err != nil {
		return entities.LineItem{}, err
	}
	for _, existing := range s.items {
		if existing.ID == it.ID {
			return entities.LineItem{}, ErrDuplicateItemID
		}
	}
	it.TotalPrice = money.Cents(it.Quantity) * it.UnitPrice
	s.items = append(s.items, it)
	return it, nil
}

func (s *LineItemSet) Update(id string, patch LineItemPatch) (entities.LineItem, error) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		updated := s.items[i]
		if patch.Title != nil {
			updated.Title = *patch.Title
		}
		if patch.Description != nil {
			updated.Description = *patch.Description
		}
		if patch.Quantity != nil {
			updated.Quantity = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			updated.UnitPrice = *patch.UnitPrice
		}
		if patch.Category != nil {
			updated.Category = *patch.Category
		}
		if err := validateItem(updated); err != nil {
			return entities.LineItem{}, err
		}
		// Re-derive atomically with the field edit; a stale total must never
		// survive a mutation.
		updated.TotalPrice = money.Cents(updated.Quantity) * updated.UnitPrice
		s.items[i] = updated
		return updated, nil
	}
	return entities.LineItem{}, ErrItemNotFound
}

func (s *LineItemSet) Remove(id string) (entities.LineItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			return removed, nil
		}
	}
	return entities.LineItem{}, ErrItemNotFound
}

// ReplaceAll discards the existing collection. Used by the per-guest quick
// calculation, which never merges with prior manual edits.
func (s *LineItemSet) ReplaceAll(items []entities.LineItem) error {
	for _, it := range items {
		if err := validateItem(it); err != nil {
			return err
		}
	}
	s.items = make([]entities.LineItem, len(items))
	copy(s.items, items)
	for i := range s.items {
		s.items[i].TotalPrice = money.Cents(s.items[i].Quantity) * s.items[i].UnitPrice
	}
	return nil
}

// Items returns a copy of the ordered collection.
func (s *LineItemSet) Items() []entities.LineItem {
	out := make([]entities.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Subtotal sums all derived totals.
func (s *LineItemSet) Subtotal() money.Cents {
	var sum money.Cents
	for _, it := range s.items {
		sum += it.TotalPrice
	}
	return sum
}

// Recompute derives the full EstimateTotals for the current collection.
// Pure over current state: calling it twice without an intervening mutation
// yields identical results.
func (s *LineItemSet) Recompute(cfg TaxConfig, isGovernmentContract bool) entities.EstimateTotals {
	return Totals(s.Subtotal(), isGovernmentContract, cfg)
}

// BuildPerGuestItems produces the deterministic item pair for the per-person
// quick calculation: one catering item priced per guest plus one
// percentage-based service fee over that catering total.
func BuildPerGuestItems(invoiceID string, guestCount int64, perGuest money.Cents, serviceFeeRate float64, now time.Time) ([]entities.LineItem, error) {
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if perGuest < 0 {
		return nil, ErrNegativeUnitPrice
	}
	if serviceFeeRate < 0 || serviceFeeRate > 1 {
		return nil, ErrRateOutOfRange
	}

	cateringTotal := money.Cents(guestCount) * perGuest
	items := []entities.LineItem{
		{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			Title:       "Catering package",
			Description: "Per-person catering service",
			Quantity:    guestCount,
			UnitPrice:   perGuest,
			TotalPrice:  cateringTotal,
			Category:    entities.CategoryFood,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			Title:       "Service fee",
			Description: "Staffing and service charge",
			Quantity:    1,
			UnitPrice:   money.ApplyRate(cateringTotal, serviceFeeRate),
			Category:    entities.CategoryService,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	items[1].TotalPrice = items[1].UnitPrice
	return items, nil
}
