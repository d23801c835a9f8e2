package catalog

import (
	"context"
	"strings"
	"time"
)

// Product mirrors a tipo de producto record from the backend: a sale format
// such as a one kilo tub or a single casata.
type Product struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Precio    float64 `json:"precio"`
	MaxGustos int     `json:"maxGustos"`
	EsPorPeso bool    `json:"esPorPeso"`
}

// Flavor mirrors a gusto record. Only active flavors are ever served by the
// backend, so the cache carries no activity flag of its own.
type Flavor struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Categoria   string `json:"categoria"`
	HayStock    bool   `json:"hayStock"`
}

// Snapshot is a complete catalog observed at one point in time. Snapshots
// are replaced wholesale, never partially mutated.
type Snapshot struct {
	Products  []Product
	Flavors   []Flavor
	FetchedAt time.Time
}

// Clone returns a copy whose slices are independent of the receiver's.
func (s Snapshot) Clone() Snapshot {
	dup := s
	dup.Products = cloneSlice(s.Products)
	dup.Flavors = cloneSlice(s.Flavors)
	return dup
}

// Fetcher retrieves the authoritative catalog from the remote source. It is
// implemented by api.Client and by test fakes.
type Fetcher interface {
	FetchProductTypes(ctx context.Context) ([]Product, error)
	FetchActiveFlavors(ctx context.Context) ([]Flavor, error)
}

// NormalizeName folds a product or flavor name to its comparison form.
// Names are the secondary identity used when ids drift, so lookups must
// ignore case and surrounding whitespace.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
