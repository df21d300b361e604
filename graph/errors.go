package graph

import "errors"

// ErrUnknownKey is the sentinel wrapped by optimize.Cull when a root key
// is absent from the graph being culled.
var ErrUnknownKey = errors.New("graph: unknown key")

// ErrNonTerminating is the sentinel behind optimize.CycleError, which
// Fuse, Inline, InlineFunctions, and Dealias construct (for a debug log
// line, not a returned error) if their defensive iteration bound or
// visited set is ever exhausted without reaching a fixed point — only
// possible if the graph's dependency relation contains a cycle.
// Well-formed DAGs always terminate within the bound.
var ErrNonTerminating = errors.New("graph: transformation did not terminate (cyclic graph?)")
