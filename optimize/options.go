package optimize

import "github.com/katalvlaran/flowdag/graph"

// keySetOf builds a lookup set from a slice of keys — the shared backing
// for every transformation's retain/keys option.
func keySetOf(keys []graph.Key) map[graph.Key]struct{} {
	out := make(map[graph.Key]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// fuseConfig is resolved from FuseOptions via the usual functional-
// options shape: a private struct, defaults first, options applied in
// order.
type fuseConfig struct {
	retain map[graph.Key]struct{}
}

// FuseOption configures Fuse. The zero configuration retains nothing
// beyond what the fusibility rule itself already protects (multi-consumer
// or multi-dependency keys).
type FuseOption func(*fuseConfig)

// WithRetain marks keys as never fusible, even if they would otherwise
// qualify (single consumer, single-reference consumer value). Useful for
// keys a caller wants to keep addressable post-optimization regardless
// of structure.
func WithRetain(keys ...graph.Key) FuseOption {
	return func(c *fuseConfig) {
		for _, k := range keys {
			c.retain[k] = struct{}{}
		}
	}
}

func resolveFuseConfig(opts ...FuseOption) fuseConfig {
	cfg := fuseConfig{retain: make(map[graph.Key]struct{})}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// inlineConfig is resolved from InlineOptions.
type inlineConfig struct {
	keys            map[graph.Key]struct{}
	inlineConstants bool
}

// InlineOption configures Inline.
type InlineOption func(*inlineConfig)

// WithKeys selects additional keys (beyond literals, which are governed
// by WithoutConstants) for inlining into their consumers.
func WithKeys(keys ...graph.Key) InlineOption {
	return func(c *inlineConfig) {
		for _, k := range keys {
			c.keys[k] = struct{}{}
		}
	}
}

// WithoutConstants disables the default behavior of inlining every
// literal value into its references.
func WithoutConstants() InlineOption {
	return func(c *inlineConfig) { c.inlineConstants = false }
}

func resolveInlineConfig(opts ...InlineOption) inlineConfig {
	cfg := inlineConfig{keys: make(map[graph.Key]struct{}), inlineConstants: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// inlineFunctionsConfig is resolved from InlineFunctionsOptions.
type inlineFunctionsConfig struct {
	keys map[graph.Key]struct{} // if non-empty, restrict eligibility to this set
}

// InlineFunctionsOption configures InlineFunctions.
type InlineFunctionsOption func(*inlineFunctionsConfig)

// WithCandidateKeys restricts InlineFunctions to only ever consider the
// given keys as inlining candidates, regardless of how many other keys
// would otherwise be eligible.
func WithCandidateKeys(keys ...graph.Key) InlineFunctionsOption {
	return func(c *inlineFunctionsConfig) {
		for _, k := range keys {
			c.keys[k] = struct{}{}
		}
	}
}

func resolveInlineFunctionsConfig(opts ...InlineFunctionsOption) inlineFunctionsConfig {
	cfg := inlineFunctionsConfig{keys: make(map[graph.Key]struct{})}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
