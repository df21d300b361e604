package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	g "github.com/katalvlaran/flowdag/graph"
	o "github.com/katalvlaran/flowdag/optimize"
)

// uncomparable makes go-cmp panic (unexported field) when compared
// against anything but itself, which only the identity shortcut handles.
type uncomparable struct {
	data []int
}

func TestEquivalent_IdenticalValuesAlwaysEquivalent(t *testing.T) {
	v := g.T(add, g.L(1), g.R("x"))
	assert.True(t, o.Equivalent(v, v, nil))
}

func TestEquivalent_RenamingAppliesToKeys(t *testing.T) {
	a := g.T(add, g.R("x"), g.L(10))
	b := g.T(add, g.R("y"), g.L(10))

	assert.False(t, o.Equivalent(a, b, o.Renaming{}))
	assert.True(t, o.Equivalent(a, b, o.Renaming{"y": "x"}))
}

func TestEquivalent_DifferentOperatorsNotEquivalent(t *testing.T) {
	a := g.T(inc, g.L(1))
	b := g.T(add, g.L(1))
	assert.False(t, o.Equivalent(a, b, nil))
}

func TestEquivalent_DifferentArgumentCountNotEquivalent(t *testing.T) {
	a := g.T(add, g.L(1))
	b := g.T(add, g.L(1), g.L(2))
	assert.False(t, o.Equivalent(a, b, nil))
}

func TestEquivalent_ListsPairwise(t *testing.T) {
	a := g.Seq(g.L(1), g.L(2))
	b := g.Seq(g.L(1), g.L(2))
	assert.True(t, o.Equivalent(a, b, nil))

	c := g.Seq(g.L(1), g.L(3))
	assert.False(t, o.Equivalent(a, c, nil))
}

func TestEquivalent_UncomparableLiteralOnlyEqualToItself(t *testing.T) {
	same := g.L(&uncomparable{data: []int{1, 2, 3}})
	assert.True(t, o.Equivalent(same, same, nil))

	other := g.L(&uncomparable{data: []int{1, 2, 3}})
	assert.False(t, o.Equivalent(same, other, nil))
}

func TestEquivalent_LiteralsCompareByValue(t *testing.T) {
	assert.True(t, o.Equivalent(g.L(42), g.L(42), nil))
	assert.False(t, o.Equivalent(g.L(42), g.L(43), nil))
}
