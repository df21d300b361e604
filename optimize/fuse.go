package optimize

import (
	"github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/internal/obslog"
)

var fuseLog = obslog.For("fuse")

// Fuse inlines any key referenced by exactly one other key whose value,
// in turn, references exactly one key occurrence in total — collapsing
// linear dependency chains into deeply-nested tasks.
//
// A key K is fusible into its unique consumer C iff:
//  1. K's own value is not a literal (graph.ClassifyValue(g, v) is not
//     graph.KindLiteral) — fusion exists to shorten dependency chains of
//     tasks and aliases; inlining a literal into its consumer is
//     Inline's job, not Fuse's;
//  2. K has exactly one consumer across the whole graph (the set of keys
//     whose value references K, per graph.References, is {C});
//  3. C's value contains exactly one reference occurrence in total,
//     counting repeats (so (add, 'b', 'b') never absorbs 'b': the
//     consumer's own occurrence count is 2, not 1); and
//  4. K is not in the caller's retain set (WithRetain).
//
// This holds for alias and task values alike; a literal never fuses,
// regardless of how many distinct dependencies its sole consumer has.
//
// Fuse is iterated to a fixed point; the order candidates are visited in
// does not affect the final graph. Iteration is bounded by the graph's
// key count as a defense against a caller-supplied cyclic graph — each
// contraction strictly removes one key, so a well-formed DAG always
// reaches the fixed point well within that bound.
func Fuse(g *graph.Graph, opts ...FuseOption) *graph.Graph {
	cfg := resolveFuseConfig(opts...)

	cur := g
	bound := cur.Len() + 1
	fused := 0
	for i := 0; i < bound; i++ {
		consumer, target, ok := findFusible(cur, cfg.retain)
		if !ok {
			break
		}
		cur = contract(cur, target, consumer)
		fused++
		if i == bound-1 {
			fuseLog.Debug(newCycleError("fuse", target).Error())
		}
	}

	fuseLog.Debug("fuse complete", "fused", fused, "remaining", cur.Len())
	return cur
}

// findFusible scans g for a fusible key, returning its unique consumer
// and itself. Iteration order over g.Keys() is the graph's own
// insertion order, making successive calls (and hence Fuse's output)
// deterministic regardless of map iteration.
func findFusible(g *graph.Graph, retain map[graph.Key]struct{}) (consumer, target graph.Key, ok bool) {
	dependents := consumerSets(g)

	for _, k := range g.Keys() {
		if _, skip := retain[k]; skip {
			continue
		}
		if g.Classify(k) == graph.KindLiteral {
			continue // fusion shortens dependency chains; inlining a literal is Inline's job
		}
		consumers := dependents[k]
		if len(consumers) != 1 {
			continue
		}
		var c graph.Key
		for only := range consumers {
			c = only
		}
		if c == k {
			continue // self-reference; never contract
		}
		cVal, _ := g.Get(c)
		if countReferenceOccurrences(g, cVal) != 1 {
			continue
		}
		return c, k, true
	}
	return "", "", false
}

// consumerSets maps every key of g to the set of distinct keys whose
// value references it.
func consumerSets(g *graph.Graph) map[graph.Key]map[graph.Key]struct{} {
	out := make(map[graph.Key]map[graph.Key]struct{}, g.Len())
	g.Entries(func(c graph.Key, v graph.Value) {
		for ref := range graph.References(g, v) {
			if out[ref] == nil {
				out[ref] = make(map[graph.Key]struct{})
			}
			out[ref][c] = struct{}{}
		}
	})
	return out
}

// contract substitutes target's value into consumer's value and removes
// target from the graph.
func contract(g *graph.Graph, target, consumer graph.Key) *graph.Graph {
	targetVal, _ := g.Get(target)
	consumerVal, _ := g.Get(consumer)
	rewritten := substituteKey(consumerVal, target, targetVal)
	return g.Set(consumer, rewritten).Without(target)
}
