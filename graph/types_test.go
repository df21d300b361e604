package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	g "github.com/katalvlaran/flowdag/graph"
)

func TestGraph_SetIsImmutable(t *testing.T) {
	g1 := g.NewGraph().Set("a", g.L(1))
	g2 := g1.Set("b", g.L(2))

	assert.Equal(t, 1, g1.Len())
	assert.Equal(t, 2, g2.Len())
	assert.False(t, g1.Has("b"))
}

func TestGraph_Without(t *testing.T) {
	gr := g.NewGraph().Set("a", g.L(1)).Set("b", g.L(2)).Set("c", g.L(3))
	out := gr.Without("b")

	assert.ElementsMatch(t, []g.Key{"a", "c"}, out.Keys())
	assert.Equal(t, 3, gr.Len(), "original graph must not be mutated")
}

func TestGraph_Equal(t *testing.T) {
	a := g.New(map[g.Key]g.Value{"x": g.L(1), "y": g.T(g.Named("inc"), g.R("x"))})
	b := g.New(map[g.Key]g.Value{"y": g.T(g.Named("inc"), g.R("x")), "x": g.L(1)})
	c := g.New(map[g.Key]g.Value{"x": g.L(2), "y": g.T(g.Named("inc"), g.R("x"))})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestGraph_KeysPreserveInsertionOrder(t *testing.T) {
	gr := g.NewGraph().Set("z", g.L(1)).Set("a", g.L(2)).Set("m", g.L(3))
	assert.Equal(t, []g.Key{"z", "a", "m"}, gr.Keys())
}
