package pricing

import (
	"catering_xpto/internal/domain/entities"
	"catering_xpto/pkg/money"
)

// FieldChange records one edited field of a line item between two versions.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// ModifiedLineItem pairs the after-state of an item with its field deltas.
type ModifiedLineItem struct {
	Item          entities.LineItem `json:"item"`
	ChangedFields []FieldChange     `json:"changed_fields"`
}

// VersionDiff is the audit-display comparison of two estimate snapshots.
type VersionDiff struct {
	Added       []entities.LineItem `json:"added"`
	Removed     []entities.LineItem `json:"removed"`
	Modified    []ModifiedLineItem  `json:"modified"`
	PriceChange money.Cents         `json:"price_change"`
}

// CompareVersions diffs two snapshots, matching items by id. Direction
// matters: v1 is "before", v2 is "after"; swapping them inverts added and
// removed. Item order follows the v2 snapshot for added/modified and the v1
// snapshot for removed.
func CompareVersions(v1, v2 entities.EstimateVersion) VersionDiff {
	before := make(map[string]entities.LineItem, len(v1.Items))
	for _, it := range v1.Items {
		before[it.ID] = it
	}
	after := make(map[string]entities.LineItem, len(v2.Items))
	for _, it := range v2.Items {
		after[it.ID] = it
	}

	diff := VersionDiff{
		Added:       []entities.LineItem{},
		Removed:     []entities.LineItem{},
		Modified:    []ModifiedLineItem{},
		PriceChange: v2.TotalAmount - v1.TotalAmount,
	}

	for _, it := range v2.Items {
		prev, ok := before[it.ID]
		if !ok {
			diff.Added = append(diff.Added, it)
			continue
		}
		if changes := changedFields(prev, it); len(changes) > 0 {
			diff.Modified = append(diff.Modified, ModifiedLineItem{Item: it, ChangedFields: changes})
		}
	}

	for _, it := range v1.Items {
		if _, ok := after[it.ID]; !ok {
			diff.Removed = append(diff.Removed, it)
		}
	}

	return diff
}

func changedFields(oldItem, newItem entities.LineItem) []FieldChange {
	var changes []FieldChange
	if oldItem.Title != newItem.Title {
		changes = append(changes, FieldChange{Field: "title", OldValue: oldItem.Title, NewValue: newItem.Title})
	}
	if oldItem.Description != newItem.Description {
		changes = append(changes, FieldChange{Field: "description", OldValue: oldItem.Description, NewValue: newItem.Description})
	}
	if oldItem.Quantity != newItem.Quantity {
		changes = append(changes, FieldChange{Field: "quantity", OldValue: oldItem.Quantity, NewValue: newItem.Quantity})
	}
	if oldItem.UnitPrice != newItem.UnitPrice {
		changes = append(changes, FieldChange{Field: "unit_price", OldValue: oldItem.UnitPrice, NewValue: newItem.UnitPrice})
	}
	return changes
}
