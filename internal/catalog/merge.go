package catalog

// mergeByName combines a default catalog with a remote one. Remote entries
// are authoritative and come first; defaults only survive when no remote
// entry shares their normalized name. An empty remote leaves the defaults
// untouched.
func mergeByName[T any](defaults, remote []T, name func(T) string) []T {
	if len(remote) == 0 {
		return defaults
	}
	seen := make(map[string]struct{}, len(remote))
	for _, entry := range remote {
		seen[NormalizeName(name(entry))] = struct{}{}
	}
	merged := make([]T, 0, len(remote)+len(defaults))
	merged = append(merged, remote...)
	for _, entry := range defaults {
		if _, ok := seen[NormalizeName(name(entry))]; !ok {
			merged = append(merged, entry)
		}
	}
	return merged
}

// MergeProducts merges remote product types over the defaults.
func MergeProducts(defaults, remote []Product) []Product {
	return mergeByName(defaults, remote, func(p Product) string { return p.Nombre })
}

// MergeFlavors merges remote flavors over the defaults.
func MergeFlavors(defaults, remote []Flavor) []Flavor {
	return mergeByName(defaults, remote, func(f Flavor) string { return f.Nombre })
}
