package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	g "github.com/katalvlaran/flowdag/graph"
)

var (
	add    = g.Named("add")
	inc    = g.Named("inc")
	sumOp  = g.Named("sum")
	double = g.Named("double")
)

func TestReferences_DescendsIntoTasksAndLists(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.L(1))
	gr = gr.Set("y", g.L(1))
	gr = gr.Set("i", g.T(inc, g.R("x")))
	gr = gr.Set("d", g.T(double, g.R("y")))
	gr = gr.Set("out", g.T(sumOp, g.Seq(g.R("i"), g.R("d"))))

	refs := g.References(gr, mustGet(t, gr, "out"))
	assert.Equal(t, map[g.Key]struct{}{"i": {}, "d": {}}, refs)
}

func TestReferences_IgnoresDanglingRefs(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("out", g.T(add, g.R("ghost"), g.L(1)))

	refs := g.References(gr, mustGet(t, gr, "out"))
	assert.Empty(t, refs)
}

func TestFunctionsOf_NestedTasksAndLists(t *testing.T) {
	a, b := g.Named("a"), g.Named("b")

	assert.Equal(t, set(a), g.FunctionsOf(g.T(a, g.L(1))))
	assert.Equal(t, set(a, b), g.FunctionsOf(g.T(a, g.T(b, g.L(1)))))
	assert.Equal(t, set(a, b), g.FunctionsOf(g.T(a, g.Seq(g.T(b, g.L(1))))))
	assert.Equal(t, set(a, b), g.FunctionsOf(g.T(a, g.Seq(g.Seq(g.Seq(g.T(b, g.L(1))))))))
	assert.Empty(t, g.FunctionsOf(g.L(1)))
	assert.Equal(t, set(a), g.FunctionsOf(g.T(a)))
}

func TestReferenceCounts(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.L(1))
	gr = gr.Set("y", g.T(inc, g.R("x")))
	gr = gr.Set("z", g.T(inc, g.R("x")))
	gr = gr.Set("out", g.T(add, g.R("y"), g.L(10)))

	counts := g.ReferenceCounts(gr)
	assert.Equal(t, 2, counts["x"])
	assert.Equal(t, 1, counts["y"])
	assert.Equal(t, 0, counts["z"])
	assert.Equal(t, 0, counts["out"])
}

func TestClassify(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("a", g.T(inc, g.L(1)))
	gr = gr.Set("b", g.R("a"))
	gr = gr.Set("c", g.R("missing"))
	gr = gr.Set("d", g.L(42))

	assert.Equal(t, g.KindTask, gr.Classify("a"))
	assert.Equal(t, g.KindAlias, gr.Classify("b"))
	assert.Equal(t, g.KindLiteral, gr.Classify("c"))
	assert.Equal(t, g.KindLiteral, gr.Classify("d"))
}

func set(ops ...g.Operator) map[g.Operator]struct{} {
	out := make(map[g.Operator]struct{}, len(ops))
	for _, op := range ops {
		out[op] = struct{}{}
	}
	return out
}

func mustGet(t *testing.T, gr *g.Graph, key g.Key) g.Value {
	t.Helper()
	v, ok := gr.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}
