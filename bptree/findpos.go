package bptree

// invert maps an insertion index to its encoded negative form and back.
// The encoding keeps found indices (>= 0) and insertion indices disjoint.
func invert(n int) int {
	return -(n + 1)
}

// findpos probes a sorted key slice for key.
//
// It returns i >= 0 when keys[i] is equivalent to key, or invert(j) where j
// is the first index whose key is strictly greater than key (len(keys) if
// none). Equivalence is derived from the ordering alone: two keys are
// equivalent iff neither is less than the other. This is the sole comparison
// path of the package; no caller may invoke an equality predicate directly.
func findpos[K any](less func(a, b K) bool, keys []K, key K) int {
	if len(keys) == 0 || less(key, keys[0]) {
		return invert(0)
	}
	for i := 1; i < len(keys); i++ {
		if less(key, keys[i]) {
			if less(keys[i-1], key) {
				return invert(i)
			}
			return i - 1
		}
	}
	if !less(keys[len(keys)-1], key) {
		return len(keys) - 1
	}
	return invert(len(keys))
}

// findposAutoinvert decodes a findpos result to a plain index in either case.
func findposAutoinvert[K any](less func(a, b K) bool, keys []K, key K) int {
	pos := findpos(less, keys, key)
	if pos < 0 {
		return invert(pos)
	}
	return pos
}
