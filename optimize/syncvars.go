package optimize

import (
	"github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/internal/obslog"
)

var syncVarsLog = obslog.For("sync_vars")

// SyncVars computes the largest consistent Renaming mapping keys of b to
// keys of a such that entries with equivalent structure are identified.
//
// Keys of each graph are grouped by dependency depth (a leaf — no
// references to other keys — is depth 0; a key's depth is one more than
// the deepest key it references). Depths are visited ascending; at each
// depth, every still-unmatched b-key is paired, in deterministic sorted
// order, with the first still-unmatched same-depth a-key whose value is
// Equivalent to it under the renaming accumulated so far. A b-key with
// no match at its depth — and, transitively, everything that depends on
// it — is left un-renamed.
func SyncVars(a, b *graph.Graph) Renaming {
	depthA := dependencyDepths(a)
	depthB := dependencyDepths(b)

	maxDepth := 0
	for _, d := range depthA {
		if d > maxDepth {
			maxDepth = d
		}
	}
	for _, d := range depthB {
		if d > maxDepth {
			maxDepth = d
		}
	}

	aByDepth := groupByDepth(a.Keys(), depthA)
	bByDepth := groupByDepth(b.Keys(), depthB)

	renaming := make(Renaming)
	matchedA := make(map[graph.Key]struct{})

	for depth := 0; depth <= maxDepth; depth++ {
		aKeys := aByDepth[depth]
		sortKeysStable(aKeys)
		bKeys := bByDepth[depth]
		sortKeysStable(bKeys)

		for _, kb := range bKeys {
			vb, _ := b.Get(kb)
			for _, ka := range aKeys {
				if _, used := matchedA[ka]; used {
					continue
				}
				va, _ := a.Get(ka)
				if Equivalent(va, vb, renaming) {
					renaming[kb] = ka
					matchedA[ka] = struct{}{}
					break
				}
			}
		}
	}

	syncVarsLog.Debug("sync_vars complete", "matched", len(renaming))
	return renaming
}

// dependencyDepths returns, for every key of g, one more than the
// deepest key it transitively references (0 for a key that references
// nothing). A visited set guards a caller-supplied cyclic graph the same
// way Dealias's chain walk does: on a well-formed DAG it is never
// exercised.
func dependencyDepths(g *graph.Graph) map[graph.Key]int {
	memo := make(map[graph.Key]int, g.Len())

	var depth func(k graph.Key, visiting map[graph.Key]struct{}) int
	depth = func(k graph.Key, visiting map[graph.Key]struct{}) int {
		if d, ok := memo[k]; ok {
			return d
		}
		if _, cyclic := visiting[k]; cyclic {
			return 0
		}
		visiting[k] = struct{}{}

		v, _ := g.Get(k)
		max := -1
		for ref := range graph.References(g, v) {
			if d := depth(ref, visiting); d > max {
				max = d
			}
		}

		delete(visiting, k)
		result := max + 1
		memo[k] = result
		return result
	}

	out := make(map[graph.Key]int, g.Len())
	for _, k := range g.Keys() {
		out[k] = depth(k, make(map[graph.Key]struct{}))
	}
	return out
}

func groupByDepth(keys []graph.Key, depth map[graph.Key]int) map[int][]graph.Key {
	out := make(map[int][]graph.Key)
	for _, k := range keys {
		out[depth[k]] = append(out[depth[k]], k)
	}
	return out
}
