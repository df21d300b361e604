// Package graph defines the task-graph data model: Key, Value, and the
// three concrete value kinds (Lit, Ref, Task — plus List for plain
// ordered-sequence arguments) that every flowdag transformation rewrites.
//
// A Graph is an immutable mapping from Key to Value. Transformations in
// the optimize package never mutate a Graph in place; they build and
// return a new one. Nothing in this package touches a file, a network
// socket, or any global state.
package graph

// Key names one entry of a Graph. Keys are plain strings so callers can
// use whatever scheme their front-end already generates.
type Key string

// Value is the sum type of everything a Graph entry can hold: Lit, Ref,
// Task, or List. It is a closed interface — callers never implement it
// themselves; they build values with L, R, T, and Seq.
type Value interface {
	isValue()
}

// Lit wraps an opaque literal datum. flowdag never interprets Data beyond
// identity and (guarded) equality comparisons — see optimize.Equivalent.
type Lit struct {
	Data any
}

func (Lit) isValue() {}

// L constructs a literal value.
func L(data any) Lit { return Lit{Data: data} }

// Ref is a bare reference to a Key. At the top level of a Graph entry, a
// Ref whose Key exists in the enclosing Graph is an alias; the same Ref
// nested inside a Task's
// arguments or a List is always a plain reference, whether or not the
// key exists in the graph.
type Ref struct {
	Key Key
}

func (Ref) isValue() {}

// R constructs a key reference.
func R(key Key) Ref { return Ref{Key: key} }

// Task is an operator applied to arguments. Op occupies the head
// position; Args may recursively be Lit, Ref, Task, or List.
type Task struct {
	Op   Operator
	Args []Value
}

func (Task) isValue() {}

// T constructs a task value.
func T(op Operator, args ...Value) Task { return Task{Op: op, Args: args} }

// List is a plain ordered sequence argument — e.g. the second argument
// of (sum, [a, b]). A List is never itself classified as a task; only a
// Task's Op field is ever treated as an operator.
type List struct {
	Items []Value
}

func (List) isValue() {}

// Seq constructs a plain ordered-sequence argument.
func Seq(items ...Value) List { return List{Items: items} }

// Graph is an immutable mapping from Key to Value. The zero value is not
// usable; construct one with NewGraph.
type Graph struct {
	entries map[Key]Value
	order   []Key // insertion order, preserved for deterministic iteration
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{entries: make(map[Key]Value)}
}

// New returns a Graph populated from the given key/value pairs. Keys are
// inserted in ascending key order, so that order is also the Graph's
// iteration order.
func New(pairs map[Key]Value) *Graph {
	g := NewGraph()
	// Deterministic population order regardless of map iteration: sort
	// once by key so repeated calls with an equal map produce an equal
	// Graph.order.
	keys := make([]Key, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sortKeys(keys)
	for _, k := range keys {
		g = g.Set(k, pairs[k])
	}
	return g
}

// Set returns a Graph identical to g but with key bound to value. The
// receiver is not mutated — Set clones the entry map and, for a new key,
// the order slice.
func (g *Graph) Set(key Key, value Value) *Graph {
	out := g.clone()
	if _, exists := out.entries[key]; !exists {
		out.order = append(out.order, key)
	}
	out.entries[key] = value
	return out
}

// Without returns a Graph identical to g but with the given keys removed.
func (g *Graph) Without(keys ...Key) *Graph {
	drop := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := NewGraph()
	for _, k := range g.order {
		if _, dropped := drop[k]; dropped {
			continue
		}
		out.entries[k] = g.entries[k]
		out.order = append(out.order, k)
	}
	return out
}

// Get returns the value bound to key and whether key is present.
func (g *Graph) Get(key Key) (Value, bool) {
	v, ok := g.entries[key]
	return v, ok
}

// Has reports whether key is present in g.
func (g *Graph) Has(key Key) bool {
	_, ok := g.entries[key]
	return ok
}

// Len returns the number of entries in g.
func (g *Graph) Len() int { return len(g.entries) }

// Keys returns the keys of g in stable insertion order.
func (g *Graph) Keys() []Key {
	out := make([]Key, len(g.order))
	copy(out, g.order)
	return out
}

// Entries calls fn for every (key, value) pair in g, in stable insertion
// order.
func (g *Graph) Entries(fn func(Key, Value)) {
	for _, k := range g.order {
		fn(k, g.entries[k])
	}
}

// Equal reports whether g and other bind the same keys to equal values.
// Order is not significant. Value equality for Lit entries uses
// reflect.DeepEqual on the literal data; callers that need the
// optimizer's tolerant literal comparison should use
// optimize.Equivalent instead.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for k, v := range g.entries {
		ov, ok := other.entries[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func (g *Graph) clone() *Graph {
	out := &Graph{
		entries: make(map[Key]Value, len(g.entries)+1),
		order:   make([]Key, len(g.order)),
	}
	for k, v := range g.entries {
		out.entries[k] = v
	}
	copy(out.order, g.order)
	return out
}

func sortKeys(keys []Key) {
	// Small helper: insertion sort keeps this dependency-free and is
	// plenty fast for the fixture sizes this constructor is meant for.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
}
