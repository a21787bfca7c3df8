// internal/domain/cart/persistence.go
package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

// KeyValue is the durable slot the cart persists into. Get returns ok=false
// when the key is absent. Implementations live under
// internal/infrastructure/database.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Del(ctx context.Context, key string) error
}

// persistence writes the cart to a single key-value slot. Every failure is
// logged and swallowed; the cart must stay usable without storage.
type persistence struct {
	kv     KeyValue
	key    string
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time
}

// load hydrates the persisted collections, treating absent, expired and
// garbled blobs as an empty cart.
func (p *persistence) load(ctx context.Context) (items, saved []Item) {
	data, ok, err := p.kv.Get(ctx, p.key)
	if err != nil {
		p.logger.WithError(err).Warn("Failed to read persisted cart, starting empty")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}

	var persisted PersistedCart
	if err := json.Unmarshal([]byte(data), &persisted); err != nil {
		p.logger.WithError(err).Warn("Malformed persisted cart, starting empty")
		return nil, nil
	}

	if persisted.Expired(p.now()) {
		p.logger.WithField("expired_at", persisted.ExpiresAt).Debug("Persisted cart expired, starting empty")
		return nil, nil
	}

	return persisted.Items, persisted.SavedItems
}

// save writes the current collections, or removes the slot entirely when both
// are empty.
func (p *persistence) save(ctx context.Context, items, saved []Item) {
	if len(items) == 0 && len(saved) == 0 {
		p.clear(ctx)
		return
	}

	persisted := PersistedCart{
		Items:      items,
		SavedItems: saved,
		ExpiresAt:  p.now().Add(p.ttl),
	}

	data, err := json.Marshal(persisted)
	if err != nil {
		p.logger.WithError(err).Warn("Failed to serialize cart for persistence")
		return
	}

	if err := p.kv.Set(ctx, p.key, string(data), p.ttl); err != nil {
		p.logger.WithError(err).Warn("Failed to persist cart")
	}
}

// clear deletes the persisted slot
func (p *persistence) clear(ctx context.Context) {
	if err := p.kv.Del(ctx, p.key); err != nil {
		p.logger.WithError(err).Warn("Failed to delete persisted cart")
	}
}
