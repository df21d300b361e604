package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	g "github.com/katalvlaran/flowdag/graph"
	o "github.com/katalvlaran/flowdag/optimize"
)

func TestDealias_ChainCollapseWithIdentityPromotion(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("a", g.T(rangeO, g.L(5)))
	gr = gr.Set("b", g.R("a"))
	gr = gr.Set("c", g.R("b"))
	gr = gr.Set("d", g.T(sumOp, g.R("c")))
	gr = gr.Set("e", g.R("d"))
	gr = gr.Set("g", g.R("e"))
	gr = gr.Set("f", g.T(inc, g.R("d")))

	out := o.Dealias(gr)

	assert.False(t, out.Has("b"))
	assert.False(t, out.Has("c"))
	assert.False(t, out.Has("e"))

	a, _ := out.Get("a")
	assert.Equal(t, g.T(rangeO, g.L(5)), a)

	d, _ := out.Get("d")
	assert.Equal(t, g.T(sumOp, g.R("a")), d)

	gg, _ := out.Get("g")
	assert.Equal(t, g.T(g.Identity, g.R("d")), gg)

	f, _ := out.Get("f")
	assert.Equal(t, g.T(inc, g.R("d")), f)
}

func TestDealias_NoAliasesIsIdentity(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.L(1))
	gr = gr.Set("y", g.T(inc, g.R("x")))

	out := o.Dealias(gr)
	assert.True(t, out.Equal(gr))
}

func TestDealias_LeafAliasWithNoConsumerBecomesIdentity(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("a", g.L(1))
	gr = gr.Set("b", g.R("a"))

	out := o.Dealias(gr)

	b, _ := out.Get("b")
	assert.Equal(t, g.T(g.Identity, g.R("a")), b)
}
