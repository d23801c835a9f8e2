// Package cart owns the shopping cart: an ordered ledger of line items that
// persists on every mutation, plus the reconciler that repairs items whose
// embedded catalog snapshots have gone stale.
package cart

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Thiagom05/IceCore/internal/catalog"
	"github.com/Thiagom05/IceCore/internal/storage"
)

const keyCart = "icecore_cart"

// Item is one cart line. It embeds copies of the product and flavors as
// they were at selection time, which is what makes reconciliation necessary
// when the catalog changes underneath a long-lived cart.
type Item struct {
	CartID   string           `json:"cartId"`
	Product  catalog.Product  `json:"product"`
	Gustos   []catalog.Flavor `json:"gustos"`
	Price    float64          `json:"price"`
	Quantity int              `json:"quantity"`
}

// Ledger is the authoritative ordered cart. Every mutation writes the full
// cart to the store before returning, so a process restart never loses it.
type Ledger struct {
	mu    sync.Mutex
	items []Item
	store *storage.Store
	log   *logrus.Logger
}

// NewLedger loads the persisted cart from the store. A missing or corrupt
// value yields an empty cart, never an error.
func NewLedger(store *storage.Store, log *logrus.Logger) *Ledger {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	l := &Ledger{store: store, log: log}
	if raw, ok := store.Get(keyCart); ok {
		var items []Item
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			log.WithError(err).Warn("cart: persisted cart is corrupt, starting empty")
		} else {
			l.items = items
		}
	}
	return l
}

// Add assigns the item a fresh cartId, appends it, persists, and returns
// the stored copy. A quantity below one is normalized to one.
func (l *Ledger) Add(item Item) Item {
	item.CartID = newCartID()
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
	l.persistLocked()
	l.log.WithFields(logrus.Fields{
		"cart_id": item.CartID,
		"product": item.Product.Nombre,
	}).Debug("cart: item added")
	return item
}

// Remove deletes the line with the given cartId. An unknown id is a no-op.
func (l *Ledger) Remove(cartID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0]
	for _, item := range l.items {
		if item.CartID != cartID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(l.items) {
		return
	}
	l.items = kept
	l.persistLocked()
}

// Clear empties the cart.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.persistLocked()
}

// Items returns a copy of the cart lines in insertion order.
func (l *Ledger) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneItems(l.items)
}

// Total is the sum of price times quantity over all lines.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total float64
	for _, item := range l.items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Price * float64(qty)
	}
	return total
}

// Count is the number of lines, not the unit count.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// replace swaps the full cart contents and persists. Used by the
// reconciler, which rebuilds lines wholesale.
func (l *Ledger) replace(items []Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
	l.persistLocked()
}

func (l *Ledger) persistLocked() {
	data, err := json.Marshal(l.items)
	if err != nil {
		l.log.WithError(err).Warn("cart: marshal failed, skipping persist")
		return
	}
	if l.items == nil {
		data = []byte("[]")
	}
	l.store.Set(keyCart, string(data))
}

// newCartID builds a line identifier unique within one data directory:
// epoch millis plus a random suffix, so lines sort by insertion time.
func newCartID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString())
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	for i := range dup {
		if len(items[i].Gustos) > 0 {
			dup[i].Gustos = make([]catalog.Flavor, len(items[i].Gustos))
			copy(dup[i].Gustos, items[i].Gustos)
		}
	}
	return dup
}
