// Package optimize implements flowdag's task-graph rewrite passes: pure
// functions from graph.Graph to graph.Graph (or, for the structural
// equivalence trio, to a bool or a Renaming).
//
// The transformations share the graph package's data model and
// traversal primitives (graph.References, graph.FunctionsOf), this
// package's own substitution helpers (substituteKey, substituteKeys,
// countReferenceOccurrences), and two helpers defined beside one
// transformation and reused by another: consumerSets (fuse.go, also used
// by Dealias and InlineFunctions) and inlineSelected (inline.go, also
// used by InlineFunctions).
package optimize
