package optimize

import (
	"fmt"

	"github.com/katalvlaran/flowdag/graph"
)

// KeySet denotes a set of root keys for Cull: a single Key, a string, a
// []Key/[]KeySet, or arbitrary nesting of these — a caller can pass a
// single root, a flat list, or an arbitrarily nested list.
type KeySet interface{}

// flattenKeySet accumulates every Key reachable within root into out,
// descending through any combination of []Key and []KeySet nesting.
func flattenKeySet(root KeySet, out map[graph.Key]struct{}) {
	switch v := root.(type) {
	case graph.Key:
		out[v] = struct{}{}
	case string:
		out[graph.Key(v)] = struct{}{}
	case []graph.Key:
		for _, k := range v {
			out[k] = struct{}{}
		}
	case []KeySet:
		for _, e := range v {
			flattenKeySet(e, out)
		}
	case []string:
		for _, s := range v {
			out[graph.Key(s)] = struct{}{}
		}
	default:
		panic(fmt.Sprintf("optimize: invalid KeySet element %#v (want Key, string, or a slice of these)", root))
	}
}

// flattenRoots flattens every given KeySet into a single deduplicated,
// deterministically ordered slice of Keys.
func flattenRoots(roots ...KeySet) []graph.Key {
	set := make(map[graph.Key]struct{})
	for _, r := range roots {
		flattenKeySet(r, set)
	}
	out := make([]graph.Key, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sortKeysStable(out)
	return out
}
