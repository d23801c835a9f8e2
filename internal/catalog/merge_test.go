package catalog

import (
	"reflect"
	"testing"
)

func TestMergeProducts_EmptyRemoteKeepsDefaults(t *testing.T) {
	defaults := []Product{{ID: 1, Nombre: "1 Kilo", Precio: 18000}}

	got := MergeProducts(defaults, nil)
	if !reflect.DeepEqual(got, defaults) {
		t.Fatalf("merge with empty remote = %#v, want defaults unchanged", got)
	}

	got = MergeProducts(defaults, []Product{})
	if !reflect.DeepEqual(got, defaults) {
		t.Fatalf("merge with zero-length remote = %#v, want defaults unchanged", got)
	}
}

func TestMergeProducts_RemoteWinsByNormalizedName(t *testing.T) {
	defaults := []Product{{ID: 4, Nombre: "Casata", Precio: 3500}}
	remote := []Product{{ID: 104, Nombre: "casata", Precio: 3900}}

	got := MergeProducts(defaults, remote)
	if len(got) != 1 {
		t.Fatalf("merge produced %d entries, want 1", len(got))
	}
	if got[0].ID != 104 || got[0].Precio != 3900 {
		t.Fatalf("merged entry = %#v, want remote fields", got[0])
	}
}

func TestMergeProducts_MissingDefaultsAppendAfterRemote(t *testing.T) {
	defaults := []Product{
		{ID: 1, Nombre: "1 Kilo", Precio: 18000},
		{ID: 4, Nombre: "Casata", Precio: 3500},
	}
	remote := []Product{
		{ID: 11, Nombre: "1 kilo ", Precio: 19000},
		{ID: 12, Nombre: "Cucurucho", Precio: 2500},
	}

	got := MergeProducts(defaults, remote)
	wantNames := []string{"1 kilo ", "Cucurucho", "Casata"}
	if len(got) != len(wantNames) {
		t.Fatalf("merge produced %d entries, want %d (%#v)", len(got), len(wantNames), got)
	}
	for i, name := range wantNames {
		if got[i].Nombre != name {
			t.Fatalf("entry %d = %q, want %q", i, got[i].Nombre, name)
		}
	}
}

func TestMergeProducts_NoDuplicateNormalizedNames(t *testing.T) {
	got := MergeProducts(SeedProducts(), []Product{
		{ID: 100, Nombre: "  CASATA ", Precio: 4000},
		{ID: 101, Nombre: "Almendrado", Precio: 3200},
	})

	seen := make(map[string]bool)
	for _, p := range got {
		key := NormalizeName(p.Nombre)
		if seen[key] {
			t.Fatalf("duplicate normalized name %q in merge output", key)
		}
		seen[key] = true
	}
}

func TestMergeProducts_Deterministic(t *testing.T) {
	defaults := SeedProducts()
	remote := []Product{{ID: 50, Nombre: "Casata", Precio: 4100}}

	first := MergeProducts(defaults, remote)
	second := MergeProducts(defaults, remote)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("merge not deterministic:\n%#v\n%#v", first, second)
	}
}

func TestMergeFlavors_RemoteWins(t *testing.T) {
	defaults := []Flavor{{ID: 101, Nombre: "Chocolate", HayStock: true}}
	remote := []Flavor{
		{ID: 901, Nombre: "chocolate", HayStock: false},
		{ID: 902, Nombre: "Maracuyá", HayStock: true},
	}

	got := MergeFlavors(defaults, remote)
	if len(got) != 2 {
		t.Fatalf("merge produced %d entries, want 2", len(got))
	}
	if got[0].ID != 901 || got[0].HayStock {
		t.Fatalf("entry 0 = %#v, want remote chocolate", got[0])
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Casata", "casata"},
		{"  CASATA ", "casata"},
		{"Dulce de Leche", "dulce de leche"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
