package optimize

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/katalvlaran/flowdag/graph"
)

// UnknownKeyError reports every root key Cull was asked to reach that is
// absent from the graph. errors.Is(err, graph.ErrUnknownKey) holds for
// any error returned by Cull that wraps one of these.
type UnknownKeyError struct {
	Keys []graph.Key

	// Details is the per-key multierror.Error collected by collectMissing,
	// one entry per missing key. The demo CLI prints only Error(), not
	// Details.
	Details *multierror.Error
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("optimize: unknown key(s): %v", e.Keys)
}

// Unwrap lets errors.Is(err, graph.ErrUnknownKey) see through to the
// shared sentinel.
func (e *UnknownKeyError) Unwrap() error { return graph.ErrUnknownKey }

// newUnknownKeyError wraps an UnknownKeyError with a stack trace via
// pkg/errors, the same discipline opentofu applies at API boundaries.
func newUnknownKeyError(missing []graph.Key, details *multierror.Error) error {
	return errors.WithStack(&UnknownKeyError{Keys: missing, Details: details})
}

// CycleError reports that a bounded-iteration rewrite (Fuse, Inline, or
// Dealias) failed to reach a fixed point, which can only happen if the
// input's dependency relation contains a cycle. Visited names an
// observed repeating key, for diagnostics; it is not guaranteed to be
// the only key on the cycle.
type CycleError struct {
	Transform string
	Visited   graph.Key
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("optimize: %s did not terminate at key %q (cyclic graph?)", e.Transform, e.Visited)
}

func (e *CycleError) Unwrap() error { return graph.ErrNonTerminating }

func newCycleError(transform string, at graph.Key) error {
	return errors.WithStack(&CycleError{Transform: transform, Visited: at})
}

// collectMissing scans keys for any absent from g, accumulating one
// error per miss with go-multierror so Cull can report every unknown
// root key at once instead of failing on the first. It returns the
// missing keys themselves (for UnknownKeyError) alongside the combined
// multierror.Error (nil if nothing was missing), stored as
// UnknownKeyError.Details.
func collectMissing(g *graph.Graph, keys []graph.Key) ([]graph.Key, *multierror.Error) {
	var missing []graph.Key
	var merr *multierror.Error
	for _, k := range keys {
		if !g.Has(k) {
			missing = append(missing, k)
			merr = multierror.Append(merr, fmt.Errorf("key %q not found", k))
		}
	}
	return missing, merr
}
