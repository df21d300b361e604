package optimize

import "github.com/katalvlaran/flowdag/graph"

// sortKeysStable sorts keys ascending in place. Several transformations
// need a deterministic tie-break (sync_vars candidate ordering, cull's
// root-key iteration) without pulling in the "sort" package's interface
// ceremony for what is always a small slice.
func sortKeysStable(keys []graph.Key) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
}
