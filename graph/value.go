package graph

import "reflect"

// Kind classifies a Graph entry's top-level value: a value is a task iff
// it is a Task; an alias iff
// it is a Ref whose key exists in the enclosing graph; otherwise it is a
// literal (this includes a Lit, a List, or a Ref to a key absent from
// the graph — the latter is conservatively treated as an opaque literal
// since only keys of the graph are followed).
type Kind int

const (
	// KindLiteral is any value that is neither a task nor an alias.
	KindLiteral Kind = iota
	// KindAlias is a Ref whose key exists in the enclosing graph.
	KindAlias
	// KindTask is a Task value.
	KindTask
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindAlias:
		return "alias"
	case KindTask:
		return "task"
	default:
		return "unknown"
	}
}

// Classify returns the Kind of the value bound to key in g. It panics if
// key is not present — callers classify entries they already hold, not
// arbitrary keys; use g.Has first if that is in question.
func (g *Graph) Classify(key Key) Kind {
	v, ok := g.entries[key]
	if !ok {
		panic("graph: Classify of unknown key " + string(key))
	}
	return ClassifyValue(g, v)
}

// ClassifyValue returns the Kind that value would have as the top-level
// entry of g (g is consulted only to test Ref existence for the alias
// case; value itself need not currently be stored in g).
func ClassifyValue(g *Graph, value Value) Kind {
	switch v := value.(type) {
	case Task:
		return KindTask
	case Ref:
		if g.Has(v.Key) {
			return KindAlias
		}
		return KindLiteral
	default:
		return KindLiteral
	}
}

// valueEqual is a safe, total equality used by Graph.Equal. It never
// panics on opaque literal data (reflect.DeepEqual is total), unlike the
// optimizer's own Equivalent, which additionally tolerates literals that
// panic on == and honors a key-renaming map.
func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case Lit:
		bv, ok := b.(Lit)
		return ok && reflect.DeepEqual(av.Data, bv.Data)
	case Ref:
		bv, ok := b.(Ref)
		return ok && av.Key == bv.Key
	case Task:
		bv, ok := b.(Task)
		if !ok || !av.Op.Equal(bv.Op) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !valueEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !valueEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
