package optimize

import (
	"github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/internal/obslog"
)

var inlineLog = obslog.For("inline")

// Inline substitutes selected values directly into their consumers and
// removes the selected keys.
//
// With the default options, every graph.Lit entry is inlined into every
// reference to its key (WithoutConstants disables this). WithKeys adds
// specific keys — literal or not — to the selection. Selected keys that
// themselves depend on other selected keys are resolved in dependency
// order: a key is only propagated into the rest of the graph once every
// selected key it references has itself already been inlined, so the
// substitution a selected value receives is always fully resolved
// rather than containing a reference to another key about to vanish.
func Inline(g *graph.Graph, opts ...InlineOption) *graph.Graph {
	cfg := resolveInlineConfig(opts...)

	selected := make(map[graph.Key]struct{})
	if cfg.inlineConstants {
		g.Entries(func(k graph.Key, v graph.Value) {
			if _, isLit := v.(graph.Lit); isLit {
				selected[k] = struct{}{}
			}
		})
	}
	for k := range cfg.keys {
		if g.Has(k) {
			selected[k] = struct{}{}
		}
	}

	out := inlineSelected(g, selected)
	inlineLog.Debug("inline complete", "selected", len(selected), "remaining", out.Len())
	return out
}

// inlineSelected repeatedly picks a key from pending whose value
// references no other still-pending key, propagates its (already fully
// resolved) value into the rest of the graph, and removes it — a
// straightforward topological processing of the induced subgraph of
// `selected`. If a full pass makes no progress (only possible if
// `selected` contains a cycle), it stops rather than looping forever.
func inlineSelected(g *graph.Graph, selected map[graph.Key]struct{}) *graph.Graph {
	if len(selected) == 0 {
		return g
	}

	cur := g
	pending := make(map[graph.Key]struct{}, len(selected))
	for k := range selected {
		pending[k] = struct{}{}
	}

	for len(pending) > 0 {
		progressed := false

		order := make([]graph.Key, 0, len(pending))
		for k := range pending {
			order = append(order, k)
		}
		sortKeysStable(order)

		for _, k := range order {
			if _, stillPending := pending[k]; !stillPending {
				continue // resolved earlier in this same pass
			}
			val, ok := cur.Get(k)
			if !ok {
				delete(pending, k)
				progressed = true
				continue
			}
			if dependsOnPending(cur, val, pending) {
				continue
			}
			cur = propagateRemoval(cur, k, val)
			delete(pending, k)
			progressed = true
		}

		if !progressed {
			for k := range pending {
				inlineLog.Debug(newCycleError("inline", k).Error())
				break
			}
			break
		}
	}

	return cur
}

func dependsOnPending(g *graph.Graph, v graph.Value, pending map[graph.Key]struct{}) bool {
	for ref := range graph.References(g, v) {
		if _, blocked := pending[ref]; blocked {
			return true
		}
	}
	return false
}

// propagateRemoval substitutes value for every reference to key across
// every other entry of g, then drops key entirely.
func propagateRemoval(g *graph.Graph, key graph.Key, value graph.Value) *graph.Graph {
	out := graph.NewGraph()
	for _, k := range g.Keys() {
		if k == key {
			continue
		}
		v, _ := g.Get(k)
		out = out.Set(k, substituteKey(v, key, value))
	}
	return out
}
