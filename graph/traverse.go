package graph

// References recursively collects every key of g that appears anywhere
// within value, descending into Task arguments and nested Lists. A Ref
// to a key absent from g is not collected — dependency edges only exist
// to keys that are actually part of the graph; a
// dangling reference is inert from the optimizer's perspective.
func References(g *Graph, value Value) map[Key]struct{} {
	out := make(map[Key]struct{})
	collectReferences(g, value, out)
	return out
}

func collectReferences(g *Graph, value Value, out map[Key]struct{}) {
	switch v := value.(type) {
	case Ref:
		if g.Has(v.Key) {
			out[v.Key] = struct{}{}
		}
	case Task:
		for _, arg := range v.Args {
			collectReferences(g, arg, out)
		}
	case List:
		for _, item := range v.Items {
			collectReferences(g, item, out)
		}
	}
}

// FunctionsOf recursively collects every operator occupying the head
// position of value and of every Task nested within it (inside Args or
// inside a List argument). It is the `functions_of` entry of the public
// interface.
func FunctionsOf(value Value) map[Operator]struct{} {
	out := make(map[Operator]struct{})
	collectFunctions(value, out)
	return out
}

func collectFunctions(value Value, out map[Operator]struct{}) {
	switch v := value.(type) {
	case Task:
		out[v.Op] = struct{}{}
		for _, arg := range v.Args {
			collectFunctions(arg, out)
		}
	case List:
		for _, item := range v.Items {
			collectFunctions(item, out)
		}
	}
}

// ReferenceCounts returns, for every key of g, the number of other
// entries' values that reference it (via References). A key referenced
// from nowhere has a count of zero; such a key may be a caller-visible
// output.
func ReferenceCounts(g *Graph) map[Key]int {
	counts := make(map[Key]int, g.Len())
	for _, k := range g.Keys() {
		counts[k] = 0
	}
	g.Entries(func(_ Key, v Value) {
		for ref := range References(g, v) {
			counts[ref]++
		}
	})
	return counts
}
