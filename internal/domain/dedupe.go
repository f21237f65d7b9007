package domain

// DedupeBy drops items whose key was already seen, keeping the first
// occurrence and the incoming order otherwise. Every list view applies it
// before rendering: a list must never show two cards for the same id, even if
// the backend response contains duplicates.
func DedupeBy[T any, K comparable](items []T, key func(T) K) []T {
	if len(items) == 0 {
		return items
	}

	seen := make(map[K]struct{}, len(items))
	out := items[:0:0]
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}

	return out
}
