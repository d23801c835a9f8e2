package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thiagom05/IceCore/internal/storage"
)

// Persisted state keys, kept from the original storefront so an existing
// data directory keeps working.
const (
	keyProducts  = "icecore_products"
	keyFlavors   = "icecore_gustos"
	keyFetchedAt = "icecore_catalog_time" // epoch millis, string-encoded
)

// Cache owns the authoritative in-memory catalog. It starts from the
// bundled seed, revalidates against the remote source subject to a TTL, and
// notifies subscribers whenever a new snapshot is published. A failed
// refresh keeps the last good snapshot; the caller never loses the catalog.
type Cache struct {
	mu       sync.RWMutex
	snap     Snapshot
	subs     map[int]func(Snapshot)
	nextSub  int
	inFlight bool

	store   *storage.Store
	fetcher Fetcher
	ttl     time.Duration
	log     *logrus.Logger
	now     func() time.Time
}

// NewCache builds a cache over the given store and remote fetcher. A zero
// or negative ttl means every non-forced refresh revalidates.
func NewCache(store *storage.Store, fetcher Fetcher, ttl time.Duration, log *logrus.Logger) *Cache {
	if ttl < 0 {
		ttl = 0
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Cache{
		subs:    make(map[int]func(Snapshot)),
		store:   store,
		fetcher: fetcher,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

// Initialize adopts the bundled seed as the in-memory catalog. It performs
// no I/O and does not notify subscribers; after it returns the catalog is
// never empty.
func (c *Cache) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = Snapshot{Products: SeedProducts(), Flavors: SeedFlavors()}
}

// Snapshot returns a copy of the current catalog.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Clone()
}

// Subscribe registers fn to be called synchronously with each published
// snapshot. The returned function cancels the subscription.
func (c *Cache) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Dispose drops all subscribers. The snapshot remains readable.
func (c *Cache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = make(map[int]func(Snapshot))
}

// Refresh brings the catalog up to date. Unless force is set, a persisted
// snapshot younger than the TTL is adopted without touching the network.
// Otherwise products and flavors are fetched concurrently, merged over the
// current catalog, persisted, and published. On any fetch failure the
// current snapshot stays authoritative and the error is returned after
// being logged; it is never fatal.
//
// Overlapping calls are coalesced: a Refresh that finds another one in
// flight returns immediately.
func (c *Cache) Refresh(ctx context.Context, force bool) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil
	}
	c.inFlight = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	if !force {
		if snap, ok := c.loadPersisted(); ok {
			c.log.Debug("catalog: using persisted snapshot")
			c.publish(snap)
			return nil
		}
	}

	products, flavors, err := c.fetchBoth(ctx)
	if err != nil {
		c.log.WithError(err).Warn("catalog: refresh failed, keeping previous snapshot")
		return err
	}

	cur := c.Snapshot()
	merged := Snapshot{
		Products:  MergeProducts(cur.Products, products),
		Flavors:   MergeFlavors(cur.Flavors, flavors),
		FetchedAt: c.now(),
	}
	c.persist(merged)
	c.publish(merged)
	c.log.WithFields(logrus.Fields{
		"products": len(merged.Products),
		"flavors":  len(merged.Flavors),
	}).Info("catalog: refreshed from remote")
	return nil
}

func (c *Cache) fetchBoth(ctx context.Context) ([]Product, []Flavor, error) {
	var (
		wg       sync.WaitGroup
		products []Product
		flavors  []Flavor
		pErr     error
		fErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, pErr = c.fetcher.FetchProductTypes(ctx)
	}()
	go func() {
		defer wg.Done()
		flavors, fErr = c.fetcher.FetchActiveFlavors(ctx)
	}()
	wg.Wait()

	if pErr != nil {
		return nil, nil, fmt.Errorf("fetch product types: %w", pErr)
	}
	if fErr != nil {
		return nil, nil, fmt.Errorf("fetch flavors: %w", fErr)
	}
	return products, flavors, nil
}

// loadPersisted reads the stored snapshot. It reports false when any key is
// absent, the payload does not decode, or the snapshot is older than the
// TTL; corrupt state is indistinguishable from an expired one.
func (c *Cache) loadPersisted() (Snapshot, bool) {
	rawProducts, ok := c.store.Get(keyProducts)
	if !ok {
		return Snapshot{}, false
	}
	rawFlavors, ok := c.store.Get(keyFlavors)
	if !ok {
		return Snapshot{}, false
	}
	rawTime, ok := c.store.Get(keyFetchedAt)
	if !ok {
		return Snapshot{}, false
	}
	millis, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		return Snapshot{}, false
	}
	fetchedAt := time.UnixMilli(millis)
	if c.now().Sub(fetchedAt) >= c.ttl {
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(rawProducts), &snap.Products); err != nil {
		return Snapshot{}, false
	}
	if err := json.Unmarshal([]byte(rawFlavors), &snap.Flavors); err != nil {
		return Snapshot{}, false
	}
	snap.FetchedAt = fetchedAt
	return snap, true
}

func (c *Cache) persist(snap Snapshot) {
	products, err := json.Marshal(snap.Products)
	if err != nil {
		return
	}
	flavors, err := json.Marshal(snap.Flavors)
	if err != nil {
		return
	}
	c.store.Set(keyProducts, string(products))
	c.store.Set(keyFlavors, string(flavors))
	c.store.Set(keyFetchedAt, strconv.FormatInt(snap.FetchedAt.UnixMilli(), 10))
}

// publish assigns the snapshot, then notifies subscribers outside the lock
// in registration order. Assignment completes before any subscriber runs,
// so a subscriber reading Snapshot() always observes the state it was
// notified about (or newer), and the first registrant (the reconciler) runs
// before later ones (the UI).
func (c *Cache) publish(snap Snapshot) {
	c.mu.Lock()
	c.snap = snap
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.subs[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
}
