package integer

import (
	"math/big"
	"testing"

	"github.com/AronisAt79/halo2wrong/maingate"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func limbWithBound(value int64, maxVal int64) AssignedLimb {
	var v *big.Int
	if value >= 0 {
		v = big.NewInt(value)
	}
	return NewAssignedLimb(maingate.Cell{}, v, big.NewInt(maxVal))
}

func TestBoundCombinators(t *testing.T) {
	a := limbWithBound(3, 5)
	b := limbWithBound(6, 7)

	require.Zero(t, a.Add(b).Cmp(big.NewInt(12)))
	require.Zero(t, b.Add(a).Cmp(big.NewInt(12)))
	require.Zero(t, a.Mul2().Cmp(big.NewInt(10)))

	c := limbWithBound(2, 4)
	require.Zero(t, c.Mul3().Cmp(big.NewInt(12)))
	require.Zero(t, c.AddBig(big.NewInt(9)).Cmp(big.NewInt(13)))
	require.Zero(t, c.AddFe(9).Cmp(big.NewInt(13)))

	// operands are untouched
	require.Zero(t, a.MaxVal().Cmp(big.NewInt(5)))
	require.Zero(t, b.MaxVal().Cmp(big.NewInt(7)))
}

func TestBoundCombinatorProps(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("add(a,b) == maxVal(a)+maxVal(b)", prop.ForAll(
		func(x uint64, y uint64) bool {
			a := NewAssignedLimb(maingate.Cell{}, nil, new(big.Int).SetUint64(x))
			b := NewAssignedLimb(maingate.Cell{}, nil, new(big.Int).SetUint64(y))
			expected := new(big.Int).Add(a.MaxVal(), b.MaxVal())
			return a.Add(b).Cmp(expected) == 0
		},
		gen.UInt64(),
		gen.UInt64(),
	))
	properties.Property("mul2(a) == 2*maxVal(a), mul3(a) == 3*maxVal(a)", prop.ForAll(
		func(x uint64) bool {
			a := NewAssignedLimb(maingate.Cell{}, nil, new(big.Int).SetUint64(x))
			two := new(big.Int).Mul(a.MaxVal(), big.NewInt(2))
			three := new(big.Int).Mul(a.MaxVal(), big.NewInt(3))
			return a.Mul2().Cmp(two) == 0 && a.Mul3().Cmp(three) == 0
		},
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestAssignedLimbValueWithinBound(t *testing.T) {
	// in-bound construction succeeds, equality included
	_ = limbWithBound(5, 5)

	require.Panics(t, func() {
		NewAssignedLimb(maingate.Cell{}, big.NewInt(6), big.NewInt(5))
	})
	require.Panics(t, func() {
		NewAssignedLimb(maingate.Cell{}, big.NewInt(1), nil)
	})
}

func TestAssignedLimbConversions(t *testing.T) {
	cell := maingate.Cell{RegionIndex: 1, RowOffset: 2, Column: 3}
	l := NewAssignedLimb(cell, big.NewInt(42), big.NewInt(100))

	av := l.AssignedValue()
	require.Equal(t, cell, av.Cell())
	require.Zero(t, av.Value().Cmp(big.NewInt(42)))

	// the bound survives a round trip when re-asserted externally
	l2 := AssignedLimbFrom(av, big.NewInt(100))
	require.Zero(t, l2.MaxVal().Cmp(big.NewInt(100)))
	require.Zero(t, l2.Value().Cmp(big.NewInt(42)))
	require.Equal(t, cell, l2.Cell())

	// unassigned limbs keep the bound but no value
	u := NewAssignedLimb(cell, nil, big.NewInt(7))
	require.Nil(t, u.Value())
	_, ok := u.Limb()
	require.False(t, ok)
	require.Nil(t, u.AssignedValue().Value())
}
