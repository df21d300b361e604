package optimize

import "github.com/katalvlaran/flowdag/graph"

// substituteKey returns a copy of value with every Ref(key) leaf —
// anywhere within a Task's Args or a List's Items, at any nesting depth
// — replaced by replacement. It is the shared rewrite primitive behind
// Fuse (single occurrence) and Inline (any number of occurrences);
// Dealias and MergeSync use substituteKeys instead.
func substituteKey(value graph.Value, key graph.Key, replacement graph.Value) graph.Value {
	switch v := value.(type) {
	case graph.Ref:
		if v.Key == key {
			return replacement
		}
		return v
	case graph.Task:
		args := make([]graph.Value, len(v.Args))
		for i, a := range v.Args {
			args[i] = substituteKey(a, key, replacement)
		}
		return graph.Task{Op: v.Op, Args: args}
	case graph.List:
		items := make([]graph.Value, len(v.Items))
		for i, it := range v.Items {
			items[i] = substituteKey(it, key, replacement)
		}
		return graph.List{Items: items}
	default:
		return v
	}
}

// substituteKeys applies substituteKey for every (key, replacement) pair
// in subs, in a single recursive pass, so a value referencing several
// inlined keys is rewritten without rebuilding intermediate trees once
// per key.
func substituteKeys(value graph.Value, subs map[graph.Key]graph.Value) graph.Value {
	switch v := value.(type) {
	case graph.Ref:
		if replacement, ok := subs[v.Key]; ok {
			return replacement
		}
		return v
	case graph.Task:
		args := make([]graph.Value, len(v.Args))
		for i, a := range v.Args {
			args[i] = substituteKeys(a, subs)
		}
		return graph.Task{Op: v.Op, Args: args}
	case graph.List:
		items := make([]graph.Value, len(v.Items))
		for i, it := range v.Items {
			items[i] = substituteKeys(it, subs)
		}
		return graph.List{Items: items}
	default:
		return v
	}
}

// countReferenceOccurrences returns the total number of Ref leaves within
// value that name a key present in g, counting repeats — unlike
// graph.References, which dedupes into a set. Fuse uses this to tell
// "depends on exactly one key, referenced once" apart from "depends on
// exactly one key, referenced twice" (e.g. (add, 'b', 'b')).
func countReferenceOccurrences(g *graph.Graph, value graph.Value) int {
	switch v := value.(type) {
	case graph.Ref:
		if g.Has(v.Key) {
			return 1
		}
		return 0
	case graph.Task:
		n := 0
		for _, a := range v.Args {
			n += countReferenceOccurrences(g, a)
		}
		return n
	case graph.List:
		n := 0
		for _, it := range v.Items {
			n += countReferenceOccurrences(g, it)
		}
		return n
	default:
		return 0
	}
}
