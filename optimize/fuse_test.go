package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	g "github.com/katalvlaran/flowdag/graph"
	o "github.com/katalvlaran/flowdag/optimize"
)

func TestFuse_LinearChainCollapses(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("w", g.T(inc, g.R("x")))
	gr = gr.Set("x", g.T(inc, g.R("y")))
	gr = gr.Set("y", g.T(inc, g.R("z")))
	gr = gr.Set("z", g.T(add, g.R("a"), g.R("b")))
	gr = gr.Set("a", g.L(1))
	gr = gr.Set("b", g.L(2))

	out := o.Fuse(gr)

	assert.Equal(t, 3, out.Len())
	assert.True(t, out.Has("w"))
	assert.True(t, out.Has("a"))
	assert.True(t, out.Has("b"))

	w, _ := out.Get("w")
	want := g.T(inc, g.T(inc, g.T(inc, g.T(add, g.R("a"), g.R("b")))))
	assert.Equal(t, want, w)
}

func TestFuse_MultiConsumerMidChainStopsFusion(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("a", g.T(inc, g.R("x")))
	gr = gr.Set("b", g.T(inc, g.R("x")))
	gr = gr.Set("c", g.T(inc, g.R("x")))
	gr = gr.Set("d", g.T(inc, g.R("c")))
	gr = gr.Set("x", g.T(inc, g.R("y")))
	gr = gr.Set("y", g.L(0))

	out := o.Fuse(gr)

	assert.True(t, out.Has("x"), "x has three consumers, must be retained")
	assert.False(t, out.Has("c"), "c has a single consumer d and is fused")
	assert.True(t, out.Has("y"), "y is a literal and is never fused, even with a single consumer")

	x, _ := out.Get("x")
	assert.Equal(t, g.T(inc, g.R("y")), x)

	d, _ := out.Get("d")
	assert.Equal(t, g.T(inc, g.T(inc, g.R("x"))), d)

	a, _ := out.Get("a")
	assert.Equal(t, g.T(inc, g.R("x")), a)
}

func TestFuse_LiteralWithSingleConsumerIsRetained(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.L(1))
	gr = gr.Set("y", g.T(inc, g.R("x")))

	out := o.Fuse(gr)

	assert.Equal(t, 2, out.Len(), "a literal is never fused away, even with a single consumer")
	assert.True(t, out.Has("x"))

	y, _ := out.Get("y")
	assert.Equal(t, g.T(inc, g.R("x")), y)
}

func TestFuse_ConsumerWithTwoDistinctDependenciesBlocksFusion(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.T(inc, g.L(1)))
	gr = gr.Set("y", g.T(inc, g.L(2)))
	gr = gr.Set("z", g.T(add, g.R("x"), g.R("y")))

	out := o.Fuse(gr)

	assert.True(t, out.Has("x"))
	assert.True(t, out.Has("y"))
	z, _ := out.Get("z")
	assert.Equal(t, g.T(add, g.R("x"), g.R("y")), z)
}

func TestFuse_RepeatedReferenceBlocksFusion(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("b", g.T(double, g.L(3)))
	gr = gr.Set("c", g.T(add, g.R("b"), g.R("b")))

	out := o.Fuse(gr)

	assert.True(t, out.Has("b"), "b is referenced twice by its sole consumer, so it may not be fused")
	c, _ := out.Get("c")
	assert.Equal(t, g.T(add, g.R("b"), g.R("b")), c)
}

func TestFuse_RetainOptionProtectsKey(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.T(double, g.L(1)))
	gr = gr.Set("y", g.T(inc, g.R("x")))

	out := o.Fuse(gr, o.WithRetain("x"))

	assert.True(t, out.Has("x"), "x would otherwise fuse into its sole consumer y, but WithRetain protects it")
	y, _ := out.Get("y")
	assert.Equal(t, g.T(inc, g.R("x")), y)
}

func TestFuse_Idempotent(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("w", g.T(inc, g.R("x")))
	gr = gr.Set("x", g.T(inc, g.R("y")))
	gr = gr.Set("y", g.L(1))

	once := o.Fuse(gr)
	twice := o.Fuse(once)
	assert.True(t, once.Equal(twice))
}
