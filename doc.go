// Package flowdag is the repository root for a task-graph optimizer.
//
// flowdag rewrites a graph of deferred computations — the intermediate
// representation a parallel task scheduler executes — before that
// scheduler runs it. A graph is a mapping from key to value, where a
// value is a literal, an alias (a reference to another key), or a task
// (an operator applied to arguments). flowdag never invokes an operator;
// it only walks, rewrites, and compares graphs structurally.
//
// Everything lives under two packages:
//
//	graph/    — the Graph/Value data model and the traversal primitives
//	            (References, FunctionsOf) every transformation shares.
//	optimize/ — the six transformations: Cull, Fuse, Inline,
//	            InlineFunctions, Dealias, and the structural-equivalence
//	            trio Equivalent/SyncVars/MergeSync.
//
// A small demonstration CLI lives at cmd/flowdag, backed by the wire
// package's JSON encoding of graphs; neither is imported by graph or
// optimize, which have no I/O and no global state.
//
//	go get github.com/katalvlaran/flowdag
package flowdag
