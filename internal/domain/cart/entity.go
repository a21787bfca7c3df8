// internal/domain/cart/entity.go
package cart

import "time"

// Item represents a single cart line, keyed by product id.
// Prices are integer minor units (cents); Quantity is always within
// [1, MaxQuantityPerItem].
type Item struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	UnitPrice       int64    `json:"unit_price"`
	Quantity        int      `json:"quantity"`
	Category        string   `json:"category,omitempty"`
	AvailableSizes  []string `json:"available_sizes,omitempty"`
	AvailableColors []string `json:"available_colors,omitempty"`
	SelectedSize    string   `json:"selected_size,omitempty"`
	SelectedColor   string   `json:"selected_color,omitempty"`
}

// Snapshot represents the derived totals for a cart. It is recomputed on
// every mutation and never stored.
type Snapshot struct {
	ItemCount               int     `json:"item_count"` // Sum of all quantities
	Subtotal                int64   `json:"subtotal"`
	MemberDiscount          int64   `json:"member_discount"`
	BundleDiscount          int64   `json:"bundle_discount"`
	TotalDiscounts          int64   `json:"total_discounts"`
	DiscountedSubtotal      int64   `json:"discounted_subtotal"`
	Tax                     int64   `json:"tax"`
	Shipping                int64   `json:"shipping"`
	Total                   int64   `json:"total"`
	Savings                 int64   `json:"savings"`
	FreeShippingProgressPct float64 `json:"free_shipping_progress_percent"`
	AmountToFreeShipping    int64   `json:"amount_to_free_shipping"`
}

// State is the immutable view returned from every store operation. Items and
// SavedItems are defensive copies; callers never see internal collections.
type State struct {
	Items      []Item   `json:"items"`
	SavedItems []Item   `json:"saved_items"`
	Totals     Snapshot `json:"totals"`
	Open       bool     `json:"open"`
}

// PersistedCart is the durable representation written to the key-value slot
type PersistedCart struct {
	Items      []Item    `json:"items"`
	SavedItems []Item    `json:"saved_items"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the persisted cart has passed its expiry
func (p *PersistedCart) Expired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}

// Missing selection reasons, in the fixed order size then color
const (
	MissingSize  = "size"
	MissingColor = "color"
)

// IncompleteItem describes a cart line that cannot be checked out yet
type IncompleteItem struct {
	Item    Item     `json:"item"`
	Missing []string `json:"missing"`
}

// Classification is the result of splitting cart lines by checkout readiness
type Classification struct {
	Complete   []Item           `json:"complete"`
	Incomplete []IncompleteItem `json:"incomplete"`
}
