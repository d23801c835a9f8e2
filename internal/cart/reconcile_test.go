package cart

import (
	"reflect"
	"testing"

	"github.com/Thiagom05/IceCore/internal/catalog"
	"github.com/Thiagom05/IceCore/internal/storage"
)

func newReconcilerFixture(t *testing.T) (*Ledger, *Reconciler, *storage.Store) {
	t.Helper()
	store := storage.Open(t.TempDir())
	ledger := NewLedger(store, nil)
	return ledger, NewReconciler(ledger, nil), store
}

func TestApply_PriceDriftByID(t *testing.T) {
	ledger, rec, _ := newReconcilerFixture(t)
	added := ledger.Add(Item{
		Product:  catalog.Product{ID: 7, Nombre: "1 Kilo", Precio: 10000},
		Price:    10000,
		Quantity: 1,
	})

	changed := rec.Apply(catalog.Snapshot{
		Products: []catalog.Product{{ID: 7, Nombre: "1 Kilo", Precio: 12000}},
	})

	if changed != 1 {
		t.Fatalf("Apply changed %d items, want 1", changed)
	}
	items := ledger.Items()
	if items[0].Price != 12000 {
		t.Fatalf("Price = %v after reconciliation, want 12000", items[0].Price)
	}
	if items[0].Product.Precio != 12000 {
		t.Fatalf("embedded product precio = %v, want 12000", items[0].Product.Precio)
	}
	if items[0].CartID != added.CartID {
		t.Fatalf("cartId changed: %q -> %q", added.CartID, items[0].CartID)
	}
}

func TestApply_IDMigrationByName(t *testing.T) {
	ledger, rec, _ := newReconcilerFixture(t)
	item := Item{
		Product:  catalog.Product{ID: 4, Nombre: "Casata", Precio: 3500},
		Price:    3500,
		Quantity: 3,
	}
	added := ledger.Add(item)

	changed := rec.Apply(catalog.Snapshot{
		Products: []catalog.Product{{ID: 104, Nombre: "casata", Precio: 3900}},
	})

	if changed != 1 {
		t.Fatalf("Apply changed %d items, want 1", changed)
	}
	got := ledger.Items()[0]
	if got.Product.ID != 104 || got.Price != 3900 {
		t.Fatalf("item = %#v, want id 104 at 3900", got)
	}
	if got.CartID != added.CartID || got.Quantity != 3 {
		t.Fatalf("cartId/quantity not preserved: %#v", got)
	}
}

func TestApply_UnresolvableProductLeftAlone(t *testing.T) {
	ledger, rec, _ := newReconcilerFixture(t)
	item := Item{
		Product:  catalog.Product{ID: 99, Nombre: "Descontinuado", Precio: 5000},
		Gustos:   []catalog.Flavor{{ID: 1, Nombre: "Gone Too"}},
		Price:    5000,
		Quantity: 1,
	}
	ledger.Add(item)
	before := ledger.Items()

	changed := rec.Apply(catalog.Snapshot{
		Products: []catalog.Product{{ID: 1, Nombre: "1 Kilo", Precio: 18000}},
		Flavors:  []catalog.Flavor{{ID: 101, Nombre: "Chocolate"}},
	})

	if changed != 0 {
		t.Fatalf("Apply changed %d items, want 0", changed)
	}
	after := ledger.Items()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("unresolvable item was modified:\nbefore %#v\nafter  %#v", before, after)
	}
}

func TestApply_FlavorIDMigration(t *testing.T) {
	ledger, rec, _ := newReconcilerFixture(t)
	ledger.Add(Item{
		Product: catalog.Product{ID: 1, Nombre: "1 Kilo", Precio: 18000},
		Gustos: []catalog.Flavor{
			{ID: 101, Nombre: "Chocolate"},
			{ID: 303, Nombre: "Vainilla"},
		},
		Price:    18000,
		Quantity: 1,
	})

	// Chocolate was reseeded under a new id; Vainilla's id still exists.
	changed := rec.Apply(catalog.Snapshot{
		Products: []catalog.Product{{ID: 1, Nombre: "1 Kilo", Precio: 18000}},
		Flavors: []catalog.Flavor{
			{ID: 1101, Nombre: "chocolate", HayStock: true},
			{ID: 303, Nombre: "Vainilla", HayStock: true},
		},
	})

	if changed != 1 {
		t.Fatalf("Apply changed %d items, want 1", changed)
	}
	gustos := ledger.Items()[0].Gustos
	if gustos[0].ID != 1101 {
		t.Fatalf("flavor id = %d after migration, want 1101", gustos[0].ID)
	}
	if gustos[1].ID != 303 || gustos[1].Nombre != "Vainilla" {
		t.Fatalf("untouched flavor changed: %#v", gustos[1])
	}
}

func TestApply_UnmatchedFlavorKept(t *testing.T) {
	ledger, rec, _ := newReconcilerFixture(t)
	ledger.Add(Item{
		Product:  catalog.Product{ID: 1, Nombre: "1 Kilo", Precio: 18000},
		Gustos:   []catalog.Flavor{{ID: 999, Nombre: "Sabor Perdido"}},
		Price:    18000,
		Quantity: 1,
	})

	changed := rec.Apply(catalog.Snapshot{
		Products: []catalog.Product{{ID: 1, Nombre: "1 Kilo", Precio: 18000}},
		Flavors:  []catalog.Flavor{{ID: 101, Nombre: "Chocolate"}},
	})

	if changed != 0 {
		t.Fatalf("Apply changed %d items, want 0", changed)
	}
	gustos := ledger.Items()[0].Gustos
	if len(gustos) != 1 || gustos[0].ID != 999 {
		t.Fatalf("unmatched flavor was altered or dropped: %#v", gustos)
	}
}

func TestApply_SecondRunIsNoOp(t *testing.T) {
	ledger, rec, store := newReconcilerFixture(t)
	ledger.Add(Item{
		Product:  catalog.Product{ID: 7, Nombre: "1 Kilo", Precio: 10000},
		Price:    10000,
		Quantity: 1,
	})

	snap := catalog.Snapshot{
		Products: []catalog.Product{{ID: 7, Nombre: "1 Kilo", Precio: 12000}},
	}
	if changed := rec.Apply(snap); changed != 1 {
		t.Fatalf("first Apply changed %d items, want 1", changed)
	}

	// A no-op pass must not rewrite the persisted cart.
	store.Remove("icecore_cart")
	if changed := rec.Apply(snap); changed != 0 {
		t.Fatalf("second Apply changed %d items, want 0", changed)
	}
	if _, ok := store.Get("icecore_cart"); ok {
		t.Fatal("no-op reconciliation persisted the cart")
	}
}

func TestApply_EmptyCartNoWrite(t *testing.T) {
	_, rec, store := newReconcilerFixture(t)
	store.Remove("icecore_cart")

	if changed := rec.Apply(catalog.Snapshot{Products: catalog.SeedProducts()}); changed != 0 {
		t.Fatalf("Apply on empty cart changed %d items, want 0", changed)
	}
	if _, ok := store.Get("icecore_cart"); ok {
		t.Fatal("empty-cart reconciliation persisted state")
	}
}

func TestApply_NameCollisionPicksFirstEntry(t *testing.T) {
	ledger, rec, _ := newReconcilerFixture(t)
	ledger.Add(Item{
		Product:  catalog.Product{ID: 4, Nombre: "Casata", Precio: 3500},
		Price:    3500,
		Quantity: 1,
	})

	rec.Apply(catalog.Snapshot{
		Products: []catalog.Product{
			{ID: 201, Nombre: "casata", Precio: 4000},
			{ID: 202, Nombre: "Casata", Precio: 9999},
		},
	})

	got := ledger.Items()[0]
	if got.Product.ID != 201 || got.Price != 4000 {
		t.Fatalf("collision resolution = %#v, want first entry (id 201)", got)
	}
}
