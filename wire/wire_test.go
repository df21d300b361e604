package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	g "github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/wire"
)

func TestEncodeDecode_RoundTrips(t *testing.T) {
	add := g.Named("add")
	inc := g.Named("inc")

	gr := g.NewGraph()
	gr = gr.Set("x", g.L(1))
	gr = gr.Set("y", g.T(inc, g.R("x")))
	gr = gr.Set("out", g.T(add, g.Seq(g.R("y"), g.L(10))))

	doc := wire.Encode(gr)
	reg := wire.NewRegistry(add, inc)

	out, err := wire.Decode(doc, reg)
	require.NoError(t, err)
	assert.True(t, gr.Equal(out))
}

func TestDecode_UnregisteredOperatorFails(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.T(g.Named("mystery"), g.L(1)))

	doc := wire.Encode(gr)
	_, err := wire.Decode(doc, wire.NewRegistry())
	require.Error(t, err)
}

func TestDecode_PartialOperatorResolvesFromBaseRegistration(t *testing.T) {
	add := g.Named("add")

	gr := g.NewGraph()
	gr = gr.Set("x", g.T(g.Partial(add), g.L(1)))

	doc := wire.Encode(gr)
	out, err := wire.Decode(doc, wire.NewRegistry(add))
	require.NoError(t, err)

	v, _ := out.Get("x")
	task := v.(g.Task)
	assert.True(t, task.Op.IsPartial())
	assert.Equal(t, "add", task.Op.Name())
}

func TestMarshalUnmarshalJSON_RoundTrips(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.L(3.5))
	gr = gr.Set("y", g.R("x"))

	doc := wire.Encode(gr)
	data, err := wire.MarshalJSON(doc)
	require.NoError(t, err)

	back, err := wire.UnmarshalJSON(data)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestMarshalUnmarshalYAML_RoundTrips(t *testing.T) {
	gr := g.NewGraph()
	gr = gr.Set("x", g.L("hello"))
	gr = gr.Set("y", g.R("x"))

	doc := wire.Encode(gr)
	data, err := wire.MarshalYAML(doc)
	require.NoError(t, err)

	back, err := wire.UnmarshalYAML(data)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}
