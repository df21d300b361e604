package optimize

import (
	"github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/internal/obslog"
)

var inlineFunctionsLog = obslog.For("inline_functions")

// InlineFunctions is a conservative variant of Inline that targets only
// cheap, directly-named operators. A key K is eligible iff all of:
//
//  1. K is referenced by at least one other key (a key with no consumer
//     is a potential output and is retained even if otherwise eligible);
//  2. K's value is a graph.Task whose operator is a member of fast;
//  3. that operator is not partial (graph.Operator.IsPartial()), so a
//     curried/partial application of a fast operator is never inlined —
//     InlineFunctions only ever collapses a directly-named call.
//
// WithCandidateKeys further restricts eligibility to a caller-chosen
// subset, regardless of how many other keys would otherwise qualify.
//
// Eligibility is computed once against g: substituting one key's value
// into its consumers moves its reference occurrences into those
// consumers (copying them when there are several) but never leaves a
// referenced key without a consumer, so that eligibility stays accurate
// throughout. The dependency-ordered propagation in
// inlineSelected (shared with Inline) still matters when one eligible
// key's task itself references another.
func InlineFunctions(g *graph.Graph, fast graph.OperatorSet, opts ...InlineFunctionsOption) *graph.Graph {
	cfg := resolveInlineFunctionsConfig(opts...)
	dependents := consumerSets(g)

	selected := make(map[graph.Key]struct{})
	g.Entries(func(k graph.Key, v graph.Value) {
		if len(cfg.keys) > 0 {
			if _, allowed := cfg.keys[k]; !allowed {
				return
			}
		}
		if len(dependents[k]) == 0 {
			return
		}
		task, ok := v.(graph.Task)
		if !ok {
			return
		}
		if task.Op.IsPartial() {
			return
		}
		if !fast.Contains(task.Op) {
			return
		}
		selected[k] = struct{}{}
	})

	out := inlineSelected(g, selected)
	inlineFunctionsLog.Debug("inline_functions complete", "selected", len(selected), "remaining", out.Len())
	return out
}
