// Package wire is the JSON exchange format between flowdag and the world
// outside graph/optimize — a front-end producing graphs, a scheduler
// consuming them, or the demo CLI at cmd/flowdag. Neither graph nor
// optimize imports this package; a *graph.Graph never needs to leave the
// process to be optimized.
package wire

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowdag/graph"
)

// Node is the wire representation of one graph.Value. Kind discriminates
// which of Data/Key/Op+Args/Items is populated: "lit", "ref", "task", or
// "list".
type Node struct {
	Kind    string `json:"kind" yaml:"kind"`
	Data    any    `json:"data,omitempty" yaml:"data,omitempty"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	Op      string `json:"op,omitempty" yaml:"op,omitempty"`
	Partial bool   `json:"partial,omitempty" yaml:"partial,omitempty"`
	Args    []Node `json:"args,omitempty" yaml:"args,omitempty"`
	Items   []Node `json:"items,omitempty" yaml:"items,omitempty"`
}

// Document is the wire representation of a whole *graph.Graph: a plain
// JSON object from key to Node. encoding/json always marshals map keys
// in sorted order, so a Document's on-wire key order is alphabetical
// regardless of the originating Graph's insertion order — the graph
// model makes no promise about order being semantically significant.
type Document map[string]Node

// Registry maps an operator's wire name to the graph.Operator it decodes
// to. Decode rejects any task node naming an operator absent from the
// registry: an operator no caller declared has no meaning to whatever
// scheduler consumes the decoded graph (flowdag itself never invokes
// operators, so the registry exists purely to catch a typo'd or
// forward-incompatible wire document at the boundary).
type Registry map[string]graph.Operator

// NewRegistry builds a Registry from a set of plain (non-partial)
// operators, keyed by name. A partial application of a registered
// operator is decoded by wrapping the registered base operator in
// graph.Partial — the registry only ever needs to know the base name.
func NewRegistry(ops ...graph.Operator) Registry {
	r := make(Registry, len(ops))
	for _, op := range ops {
		r[op.Name()] = op
	}
	return r
}

// DiscoverRegistry scans doc and builds a Registry containing every
// distinct operator name it finds, each bound to a plain (non-partial)
// graph.Operator of that name. It exists for a generic pass-through tool
// (the demo CLI) that transforms a graph without knowing its domain's
// operator set in advance — a real caller that invokes operators should
// build its Registry from the operators it actually implements instead,
// so Decode rejects a wire document naming one it doesn't.
func DiscoverRegistry(doc Document) Registry {
	r := make(Registry)
	var walk func(n Node)
	walk = func(n Node) {
		switch n.Kind {
		case "task":
			if _, known := r[n.Op]; !known {
				r[n.Op] = graph.Named(n.Op)
			}
			for _, a := range n.Args {
				walk(a)
			}
		case "list":
			for _, it := range n.Items {
				walk(it)
			}
		}
	}
	for _, n := range doc {
		walk(n)
	}
	return r
}

// Encode renders g as a Document. Encoding never fails: every graph.Value
// flowdag can construct has a wire representation.
func Encode(g *graph.Graph) Document {
	doc := make(Document, g.Len())
	g.Entries(func(k graph.Key, v graph.Value) {
		doc[string(k)] = encodeValue(v)
	})
	return doc
}

func encodeValue(v graph.Value) Node {
	switch val := v.(type) {
	case graph.Lit:
		return Node{Kind: "lit", Data: val.Data}
	case graph.Ref:
		return Node{Kind: "ref", Key: string(val.Key)}
	case graph.Task:
		args := make([]Node, len(val.Args))
		for i, a := range val.Args {
			args[i] = encodeValue(a)
		}
		return Node{Kind: "task", Op: val.Op.Name(), Partial: val.Op.IsPartial(), Args: args}
	case graph.List:
		items := make([]Node, len(val.Items))
		for i, it := range val.Items {
			items[i] = encodeValue(it)
		}
		return Node{Kind: "list", Items: items}
	default:
		panic("wire: encodeValue: unknown graph.Value implementation")
	}
}

// Decode parses doc into a *graph.Graph, resolving every task's operator
// name against reg. It returns an error (wrapping a stack trace via
// pkg/errors) on a malformed node or an unregistered operator.
func Decode(doc Document, reg Registry) (*graph.Graph, error) {
	out := graph.NewGraph()
	for _, k := range sortedKeys(doc) {
		v, err := decodeValue(doc[k], reg)
		if err != nil {
			return nil, errors.Wrapf(err, "wire: decoding key %q", k)
		}
		out = out.Set(graph.Key(k), v)
	}
	return out, nil
}

func decodeValue(n Node, reg Registry) (graph.Value, error) {
	switch n.Kind {
	case "lit":
		return graph.L(n.Data), nil
	case "ref":
		return graph.R(graph.Key(n.Key)), nil
	case "task":
		base, ok := reg[n.Op]
		if !ok {
			return nil, errors.Errorf("wire: operator %q is not registered", n.Op)
		}
		op := base
		if n.Partial {
			op = graph.Partial(base)
		}
		args := make([]graph.Value, len(n.Args))
		for i, a := range n.Args {
			av, err := decodeValue(a, reg)
			if err != nil {
				return nil, err
			}
			args[i] = av
		}
		return graph.Task{Op: op, Args: args}, nil
	case "list":
		items := make([]graph.Value, len(n.Items))
		for i, it := range n.Items {
			iv, err := decodeValue(it, reg)
			if err != nil {
				return nil, err
			}
			items[i] = iv
		}
		return graph.List{Items: items}, nil
	default:
		return nil, errors.Errorf("wire: unknown node kind %q", n.Kind)
	}
}

func sortedKeys(doc Document) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// MarshalJSON and UnmarshalJSON round-trip a Document through
// encoding/json; they exist only so callers can read/write a Document
// without importing encoding/json themselves.
func MarshalJSON(doc Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	return b, errors.Wrap(err, "wire: marshal")
}

func UnmarshalJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "wire: unmarshal")
	}
	return doc, nil
}

// MarshalYAML and UnmarshalYAML round-trip a Document through YAML —
// the format a human hand-writes a fixture graph in, where JSON's
// quoting and bracket noise gets in the way.
func MarshalYAML(doc Document) ([]byte, error) {
	b, err := yaml.Marshal(doc)
	return b, errors.Wrap(err, "wire: marshal yaml")
}

func UnmarshalYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "wire: unmarshal yaml")
	}
	return doc, nil
}
