package maingate_test

import (
	"math/big"
	"testing"

	"github.com/AronisAt79/halo2wrong/maingate"
	"github.com/stretchr/testify/require"
)

func TestAssignedValue(t *testing.T) {
	cell := maingate.Cell{RegionIndex: 2, RowOffset: 7, Column: 1}
	v := big.NewInt(99)
	av := maingate.NewAssignedValue(cell, v)

	require.Equal(t, cell, av.Cell())
	require.Zero(t, av.Value().Cmp(v))

	// the wrapped value is an independent copy
	v.SetInt64(1)
	require.Zero(t, av.Value().Cmp(big.NewInt(99)))
	av.Value().SetInt64(2)
	require.Zero(t, av.Value().Cmp(big.NewInt(99)))

	require.Nil(t, maingate.NewAssignedValue(cell, nil).Value())
}

func TestUnassignedValue(t *testing.T) {
	u := maingate.NewUnassignedValue(big.NewInt(5))
	require.Zero(t, u.Value().Cmp(big.NewInt(5)))
	require.Nil(t, maingate.NewUnassignedValue(nil).Value())
}

func TestValueOf(t *testing.T) {
	require.Zero(t, maingate.ValueOf(42).Value().Cmp(big.NewInt(42)))
	require.Zero(t, maingate.ValueOf("0x2a").Value().Cmp(big.NewInt(42)))
	require.Zero(t, maingate.ValueOf(big.NewInt(42)).Value().Cmp(big.NewInt(42)))
}
