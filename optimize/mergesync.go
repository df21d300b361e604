package optimize

import (
	"github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/internal/freshkey"
	"github.com/katalvlaran/flowdag/internal/obslog"
)

var mergeSyncLog = obslog.For("merge_sync")

// MergeSync produces the union of a and b with their common
// sub-computation shared: it computes r = SyncVars(a, b), starts from a,
// and for every key of b not identified by r adds an entry whose value
// is b's value with every reference to a key in r rewritten to its a-side
// name. A b-key that collides with an existing output key (one of a's
// own, or an earlier b-addition) is given a fresh name via
// internal/freshkey; later b-entries that reference the renamed key
// follow the same rewrite, so the result never dangles.
func MergeSync(a, b *graph.Graph) *graph.Graph {
	r := SyncVars(a, b)

	rename := make(map[graph.Key]graph.Value, len(r))
	for kb, ka := range r {
		rename[kb] = graph.R(ka)
	}

	out := a
	gen := freshkey.NewGenerator()
	added := 0
	for _, kb := range b.Keys() {
		if _, shared := r[kb]; shared {
			continue
		}
		vb, _ := b.Get(kb)
		rewritten := substituteKeys(vb, rename)

		target := kb
		if out.Has(target) {
			target = gen.Fresh(target, out)
			rename[kb] = graph.R(target)
		}
		out = out.Set(target, rewritten)
		added++
	}

	mergeSyncLog.Debug("merge_sync complete", "shared", len(r), "added", added)
	return out
}
