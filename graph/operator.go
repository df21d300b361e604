package graph

import "fmt"

// Operator is an opaque, comparable handle identifying a callable that
// flowdag never invokes — only collects, compares, and substitutes. Go
// gives bare func values no usable equality, so Operator stands in for
// the "compare by identity" semantics an opaque callable needs.
//
// Two Operators are Equal iff they were built from the same Name and
// have the same Partial flag: two separate Named("add") calls compare
// equal, so the name plays the role that object identity plays for a
// Python function.
type Operator struct {
	name    string
	partial bool
}

// Named constructs a plain (non-partial) operator identified by name.
func Named(name string) Operator {
	return Operator{name: name}
}

// Partial wraps op as a curried / partially-applied operator. A partial
// operator is never eligible for InlineFunctions's fast inlining,
// regardless of whether op itself is in the caller's fast-function set.
func Partial(op Operator) Operator {
	return Operator{name: op.name, partial: true}
}

// Name returns the operator's identifying name.
func (o Operator) Name() string { return o.name }

// IsPartial reports whether o is a curried/partially-applied wrapper.
func (o Operator) IsPartial() bool { return o.partial }

// Equal reports whether o and other identify the same operator.
func (o Operator) Equal(other Operator) bool {
	return o.name == other.name && o.partial == other.partial
}

// String implements fmt.Stringer for diagnostics and logging.
func (o Operator) String() string {
	if o.partial {
		return fmt.Sprintf("partial(%s)", o.name)
	}
	return o.name
}

// Identity is the well-known identity operator. Dealias promotes
// surviving leaf aliases to Task{Op: Identity, Args: [...]} so a
// downstream scheduler can recognize and short-circuit it.
var Identity = Named("identity")

// OperatorSet is an unordered set of Operators, used for the
// fast_functions argument to InlineFunctions.
type OperatorSet map[Operator]struct{}

// NewOperatorSet builds an OperatorSet from the given operators.
func NewOperatorSet(ops ...Operator) OperatorSet {
	s := make(OperatorSet, len(ops))
	for _, op := range ops {
		s[op] = struct{}{}
	}
	return s
}

// Contains reports whether op is a member of s.
func (s OperatorSet) Contains(op Operator) bool {
	_, ok := s[op]
	return ok
}
