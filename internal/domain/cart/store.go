// internal/domain/cart/store.go
package cart

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/cart-engine/internal/config"
)

// Store handles cart business logic. It is the sole owner of the cart and
// saved-for-later collections; every operation is synchronous and total, so
// unknown ids are no-ops and out-of-range quantities are clamped rather than
// rejected. The store is single-threaded by contract and never returns an
// error from a mutation.
type Store struct {
	config  *config.Config
	logger  *logrus.Logger
	persist *persistence

	items  []Item
	saved  []Item
	totals Snapshot
	open   bool
}

// NewStore creates a cart store hydrated from the key-value slot. Absent,
// expired and malformed persisted carts all start the store empty.
func NewStore(cfg *config.Config, kv KeyValue, logger *logrus.Logger) *Store {
	s := &Store{
		config: cfg,
		logger: logger,
		persist: &persistence{
			kv:     kv,
			key:    cfg.Cart.StorageKey,
			ttl:    cfg.CartExpiry(),
			logger: logger,
			now:    time.Now,
		},
	}

	items, saved := s.persist.load(context.Background())
	for i := range items {
		items[i].Quantity = s.clampQuantity(items[i].Quantity)
	}
	for i := range saved {
		saved[i].Quantity = s.clampQuantity(saved[i].Quantity)
	}
	s.items = items
	s.saved = saved
	s.totals = ComputeTotals(s.items, cfg.Pricing)

	return s
}

// State returns an immutable view of the current cart
func (s *Store) State() State {
	return State{
		Items:      copyItems(s.items),
		SavedItems: copyItems(s.saved),
		Totals:     s.totals,
		Open:       s.open,
	}
}

// AddItem adds an item to the cart. An item whose id already exists merges
// quantities instead of creating a duplicate line; a non-positive incoming
// quantity defaults to 1.
func (s *Store) AddItem(item Item) State {
	if item.ID == "" {
		return s.State()
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	merged := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity = s.clampQuantity(s.items[i].Quantity + item.Quantity)
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = s.clampQuantity(item.Quantity)
		s.items = append(s.items, item)
	}

	return s.afterMutation()
}

// RemoveItem deletes the line with the matching id; no-op if absent
func (s *Store) RemoveItem(id string) State {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.afterMutation()
		}
	}
	return s.State()
}

// UpdateQuantity adjusts a line's quantity by delta, clamped to
// [1, MaxQuantityPerItem]. The floor is 1: this path never removes a line;
// removal is the explicit RemoveItem operation.
func (s *Store) UpdateQuantity(id string, delta int) State {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = s.clampQuantity(s.items[i].Quantity + delta)
			return s.afterMutation()
		}
	}
	return s.State()
}

// UpdateItemAttribute sets a variant selection on the matching line. Unknown
// attributes and ids are no-ops.
func (s *Store) UpdateItemAttribute(id, attribute, value string) State {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		switch attribute {
		case MissingSize:
			s.items[i].SelectedSize = value
		case MissingColor:
			s.items[i].SelectedColor = value
		default:
			return s.State()
		}
		return s.afterMutation()
	}
	return s.State()
}

// SaveForLater moves a line from the cart into the saved collection
func (s *Store) SaveForLater(id string) State {
	if !s.config.Cart.EnableSaveForLater {
		return s.State()
	}

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.saved = append(s.saved, item)
			return s.afterMutation()
		}
	}
	return s.State()
}

// MoveToCart returns a saved line to the cart with AddItem merge semantics
// and removes it from the saved collection
func (s *Store) MoveToCart(id string) State {
	for i := range s.saved {
		if s.saved[i].ID == id {
			item := s.saved[i]
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			return s.AddItem(item)
		}
	}
	return s.State()
}

// ClearCart empties the cart collection; saved items are untouched
func (s *Store) ClearCart() State {
	s.items = nil
	return s.afterMutation()
}

// Open marks the cart visible. Presentation state only; no recompute, no
// persistence write.
func (s *Store) Open() State {
	s.open = true
	return s.State()
}

// Close marks the cart hidden
func (s *Store) Close() State {
	s.open = false
	return s.State()
}

// Items returns a copy of the current cart lines
func (s *Store) Items() []Item {
	return copyItems(s.items)
}

// Totals returns the current pricing snapshot
func (s *Store) Totals() Snapshot {
	return s.totals
}

// afterMutation recomputes derived totals and persists best-effort before
// returning control to the caller
func (s *Store) afterMutation() State {
	s.totals = ComputeTotals(s.items, s.config.Pricing)
	s.persist.save(context.Background(), s.items, s.saved)
	return s.State()
}

func (s *Store) clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if max := s.config.Cart.MaxQuantityPerItem; quantity > max {
		return max
	}
	return quantity
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		out[i].AvailableSizes = append([]string(nil), out[i].AvailableSizes...)
		out[i].AvailableColors = append([]string(nil), out[i].AvailableColors...)
	}
	return out
}
