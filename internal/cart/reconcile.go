package cart

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Thiagom05/IceCore/internal/catalog"
)

// Reconciler repairs cart lines whose embedded product or flavor snapshots
// have drifted from the current catalog. It runs once per published
// snapshot, synchronously and to completion, so price and id are never
// inconsistent within a single line.
type Reconciler struct {
	ledger *Ledger
	log    *logrus.Logger
}

// NewReconciler builds a reconciler over the given ledger.
func NewReconciler(ledger *Ledger, log *logrus.Logger) *Reconciler {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Reconciler{ledger: ledger, log: log}
}

// Apply rewrites any stale cart lines against snap and returns how many
// lines changed. When nothing drifted the cart is left byte-for-byte
// untouched: no persistence write happens, so a second Apply with the same
// inputs is a no-op.
func (r *Reconciler) Apply(snap catalog.Snapshot) int {
	items := r.ledger.Items()
	if len(items) == 0 {
		return 0
	}

	idx := newCatalogIndex(snap)
	changed := 0
	rebuilt := make([]Item, len(items))
	for i, item := range items {
		fixed, dirty := reconcileItem(item, idx)
		rebuilt[i] = fixed
		if dirty {
			changed++
		}
	}
	if changed == 0 {
		return 0
	}

	r.ledger.replace(rebuilt)
	r.log.WithField("items", changed).Info("cart: reconciled against new catalog")
	return changed
}

// catalogIndex provides id and normalized-name lookups. On a name
// collision the first catalog entry wins, matching the original lookup
// order.
type catalogIndex struct {
	productsByID   map[int64]catalog.Product
	productsByName map[string]catalog.Product
	flavorsByID    map[int64]catalog.Flavor
	flavorsByName  map[string]catalog.Flavor
}

func newCatalogIndex(snap catalog.Snapshot) catalogIndex {
	idx := catalogIndex{
		productsByID:   make(map[int64]catalog.Product, len(snap.Products)),
		productsByName: make(map[string]catalog.Product, len(snap.Products)),
		flavorsByID:    make(map[int64]catalog.Flavor, len(snap.Flavors)),
		flavorsByName:  make(map[string]catalog.Flavor, len(snap.Flavors)),
	}
	for _, p := range snap.Products {
		if _, ok := idx.productsByID[p.ID]; !ok {
			idx.productsByID[p.ID] = p
		}
		name := catalog.NormalizeName(p.Nombre)
		if _, ok := idx.productsByName[name]; !ok {
			idx.productsByName[name] = p
		}
	}
	for _, f := range snap.Flavors {
		if _, ok := idx.flavorsByID[f.ID]; !ok {
			idx.flavorsByID[f.ID] = f
		}
		name := catalog.NormalizeName(f.Nombre)
		if _, ok := idx.flavorsByName[name]; !ok {
			idx.flavorsByName[name] = f
		}
	}
	return idx
}

// reconcileItem resolves one line against the catalog. Resolution order is
// id first, then normalized name; a line that matches neither is kept
// as-is rather than dropped, so the cart stays usable with at worst an
// outdated price.
func reconcileItem(item Item, idx catalogIndex) (Item, bool) {
	changed := false
	resolved := item.Product

	if p, ok := idx.productsByID[item.Product.ID]; ok {
		resolved = p
		if p.Precio != item.Price {
			changed = true
		}
	} else if p, ok := idx.productsByName[catalog.NormalizeName(item.Product.Nombre)]; ok {
		resolved = p
		changed = true
	}

	gustos := item.Gustos
	copied := false
	for i, g := range item.Gustos {
		if _, ok := idx.flavorsByID[g.ID]; ok {
			continue
		}
		f, ok := idx.flavorsByName[catalog.NormalizeName(g.Nombre)]
		if !ok || f.ID == g.ID {
			continue
		}
		if !copied {
			// Copy before mutating; unchanged lines keep their
			// original slices.
			gustos = make([]catalog.Flavor, len(item.Gustos))
			copy(gustos, item.Gustos)
			copied = true
		}
		gustos[i] = f
		changed = true
	}

	if !changed {
		return item, false
	}

	item.Product = resolved
	item.Gustos = gustos
	item.Price = resolved.Precio
	return item, true
}
