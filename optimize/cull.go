package optimize

import (
	"github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/internal/obslog"
)

var cullLog = obslog.For("cull")

// Cull returns the sub-graph of g reachable from outputs: a breadth-first
// walk seeded at the flattened root keys, following References(g, v) at
// every visited value — keep only what a root set can reach, the same
// shape as an induced-subgraph walk, adapted from vertex/edge
// reachability to task-graph dependency reachability and from
// BFS-over-neighbors to BFS-over-References.
//
// Cull returns an error wrapping graph.ErrUnknownKey (via
// errors.Is) if any root key is absent from g; every absent root is
// reported at once (see UnknownKeyError.Details).
func Cull(g *graph.Graph, outputs ...KeySet) (*graph.Graph, error) {
	roots := flattenRoots(outputs...)

	missing, merr := collectMissing(g, roots)
	if len(missing) > 0 {
		return nil, newUnknownKeyError(missing, merr)
	}

	keep := make(map[graph.Key]struct{}, len(roots))
	queue := make([]graph.Key, 0, len(roots))
	for _, k := range roots {
		if _, seen := keep[k]; !seen {
			keep[k] = struct{}{}
			queue = append(queue, k)
		}
	}

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]

		v, _ := g.Get(k)
		for ref := range graph.References(g, v) {
			if _, seen := keep[ref]; !seen {
				keep[ref] = struct{}{}
				queue = append(queue, ref)
			}
		}
	}

	out := graph.NewGraph()
	// Preserve g's original insertion order among kept keys for
	// deterministic output.
	for _, k := range g.Keys() {
		if _, ok := keep[k]; ok {
			v, _ := g.Get(k)
			out = out.Set(k, v)
		}
	}

	cullLog.Debug("culled graph", "roots", roots, "kept", out.Len(), "total", g.Len())
	return out, nil
}
