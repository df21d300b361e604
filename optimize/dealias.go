package optimize

import (
	"github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/internal/obslog"
)

var dealiasLog = obslog.For("dealias")

// Dealias collapses chains of alias entries — keys whose value is a bare
// Ref to another key of the graph — to the first non-alias key they
// transitively resolve to.
//
// Every downstream reference to an alias key is rewritten to point at
// the resolved target directly. An alias key with at least one consumer
// inside the graph is a pure stepping stone and is dropped; an alias key
// with no consumer is a potential output — the scheduler must still see
// an entry under that name, so it is kept but promoted to an explicit
// graph.Identity task over the resolved target: a leaf alias with no
// consumer becomes an identity task over what it resolves to, while
// every alias consumed by the next link in its chain vanishes entirely.
func Dealias(g *graph.Graph) *graph.Graph {
	aliasKeys := make(map[graph.Key]struct{})
	g.Entries(func(k graph.Key, v graph.Value) {
		if ref, ok := v.(graph.Ref); ok && g.Has(ref.Key) {
			aliasKeys[k] = struct{}{}
		}
	})

	resolved := make(map[graph.Key]graph.Key, len(aliasKeys))
	for k := range aliasKeys {
		resolved[k] = resolveAliasChain(g, k)
	}

	subs := make(map[graph.Key]graph.Value, len(resolved))
	for alias, target := range resolved {
		subs[alias] = graph.R(target)
	}

	dependents := consumerSets(g)

	out := graph.NewGraph()
	promoted, dropped := 0, 0
	for _, k := range g.Keys() {
		v, _ := g.Get(k)
		if _, isAlias := aliasKeys[k]; isAlias {
			if len(dependents[k]) == 0 {
				out = out.Set(k, graph.Task{Op: graph.Identity, Args: []graph.Value{graph.R(resolved[k])}})
				promoted++
			} else {
				dropped++
			}
			continue
		}
		out = out.Set(k, substituteKeys(v, subs))
	}

	dealiasLog.Debug("dealias complete", "promoted", promoted, "dropped", dropped, "remaining", out.Len())
	return out
}

// resolveAliasChain follows start's alias chain to the first key whose
// value is not itself an alias. A visited set guards against a
// caller-supplied cyclic graph: on a well-formed DAG the loop always
// terminates at a non-alias value, so revisiting a key only happens on
// malformed input, in which case the chain stops at the repeated key
// rather than looping forever.
func resolveAliasChain(g *graph.Graph, start graph.Key) graph.Key {
	visited := make(map[graph.Key]struct{})
	cur := start
	for {
		if _, seen := visited[cur]; seen {
			dealiasLog.Debug(newCycleError("dealias", cur).Error())
			return cur
		}
		visited[cur] = struct{}{}

		v, _ := g.Get(cur)
		ref, ok := v.(graph.Ref)
		if !ok || !g.Has(ref.Key) {
			return cur
		}
		cur = ref.Key
	}
}
