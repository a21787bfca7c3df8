// internal/domain/cart/validate.go
package cart

// Classify splits cart lines into checkout-ready and incomplete. A line is
// incomplete when it offers sizes but has none selected, or offers colors but
// has none selected; Missing lists both reasons in the order size, color.
func Classify(items []Item) Classification {
	result := Classification{
		Complete:   []Item{},
		Incomplete: []IncompleteItem{},
	}

	for _, item := range items {
		var missing []string
		if len(item.AvailableSizes) > 0 && item.SelectedSize == "" {
			missing = append(missing, MissingSize)
		}
		if len(item.AvailableColors) > 0 && item.SelectedColor == "" {
			missing = append(missing, MissingColor)
		}

		if len(missing) > 0 {
			result.Incomplete = append(result.Incomplete, IncompleteItem{
				Item:    item,
				Missing: missing,
			})
		} else {
			result.Complete = append(result.Complete, item)
		}
	}

	return result
}

// NeedsSelection reports whether any cart line is missing a required variant
func NeedsSelection(items []Item) bool {
	return len(Classify(items).Incomplete) > 0
}
