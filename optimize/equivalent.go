package optimize

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/flowdag/graph"
)

// Renaming maps a key in b's namespace to the key it corresponds to in
// a's namespace. Equivalent, SyncVars, and MergeSync all share this type.
type Renaming map[graph.Key]graph.Key

// Equivalent reports whether a and b have the same structure up to the
// key substitution described by renaming: a Ref in b's namespace matches
// a Ref in a's namespace iff renaming maps the former to the latter (or,
// absent an entry, iff the two keys are literally equal), tasks match iff
// their operators are graph.Operator.Equal and their arguments are
// pairwise equivalent, lists match iff pairwise equivalent, and literals
// match iff equal.
//
// Literal comparison tries identity before equality: a value is always
// equivalent to itself even when its own equality check would panic. A
// panicking comparison — an uncomparable type, a type with unexported
// fields go-cmp refuses by default — is caught and treated as "not
// equivalent" rather than propagated.
func Equivalent(a, b graph.Value, renaming Renaming) bool {
	switch av := a.(type) {
	case graph.Ref:
		bv, ok := b.(graph.Ref)
		if !ok {
			return false
		}
		if mapped, found := renaming[bv.Key]; found {
			return mapped == av.Key
		}
		return av.Key == bv.Key

	case graph.Task:
		bv, ok := b.(graph.Task)
		if !ok {
			return false
		}
		if len(av.Args) != len(bv.Args) {
			return false
		}
		if !av.Op.Equal(bv.Op) {
			return false
		}
		for i := range av.Args {
			if !Equivalent(av.Args[i], bv.Args[i], renaming) {
				return false
			}
		}
		return true

	case graph.List:
		bv, ok := b.(graph.List)
		if !ok {
			return false
		}
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equivalent(av.Items[i], bv.Items[i], renaming) {
				return false
			}
		}
		return true

	case graph.Lit:
		bv, ok := b.(graph.Lit)
		if !ok {
			return false
		}
		return literalEquivalent(av.Data, bv.Data)

	default:
		return false
	}
}

func literalEquivalent(a, b any) bool {
	if literalIdentical(a, b) {
		return true
	}
	return literalEqualSafe(a, b)
}

// literalIdentical covers the "identity before equality" requirement for
// the reference-like kinds Go actually gives an identity notion to.
// Everything else falls through to literalEqualSafe.
func literalIdentical(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		return false
	}
}

// literalEqualSafe guards cmp.Equal with a recover, so a literal type
// that go-cmp refuses to compare (unexported fields with no Equal
// method) degrades to "not equivalent" instead of panicking through the
// optimizer.
func literalEqualSafe(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return cmp.Equal(a, b)
}
