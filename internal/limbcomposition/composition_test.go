package limbs_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	limbs "github.com/AronisAt79/halo2wrong/internal/limbcomposition"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		nbLimbs int
		nbBits  uint
	}{
		{4, 68},
		{6, 66},
		{1, 64},
		{8, 32},
	} {
		bound := new(big.Int).Lsh(big.NewInt(1), tc.nbBits*uint(tc.nbLimbs))
		n, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)
		res := make([]*big.Int, tc.nbLimbs)
		for i := range res {
			res[i] = new(big.Int)
		}
		require.NoError(t, limbs.Decompose(n, tc.nbBits, res))
		for _, r := range res {
			require.LessOrEqual(t, r.BitLen(), int(tc.nbBits))
		}
		n2 := new(big.Int)
		require.NoError(t, limbs.Recompose(res, tc.nbBits, n2))
		require.Zero(t, n.Cmp(n2))
	}
}

func TestCompositionErrors(t *testing.T) {
	res := new(big.Int)
	require.Error(t, limbs.Recompose(nil, 68, res))
	require.Error(t, limbs.Recompose([]*big.Int{big.NewInt(1)}, 68, nil))

	tooLarge := new(big.Int).Lsh(big.NewInt(1), 68*4)
	out := []*big.Int{new(big.Int), new(big.Int), new(big.Int), new(big.Int)}
	require.Error(t, limbs.Decompose(tooLarge, 68, out))
	require.Error(t, limbs.Decompose(big.NewInt(1), 68, []*big.Int{nil}))
}

func TestCompositionProp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("recompose(decompose(x)) == x", prop.ForAll(
		func(a uint64, b uint64) bool {
			v := new(big.Int).SetUint64(a)
			v.Lsh(v, 64)
			v.Add(v, new(big.Int).SetUint64(b))
			res := []*big.Int{new(big.Int), new(big.Int), new(big.Int), new(big.Int)}
			if err := limbs.Decompose(v, 34, res); err != nil {
				return false
			}
			v2 := new(big.Int)
			if err := limbs.Recompose(res, 34, v2); err != nil {
				return false
			}
			return v.Cmp(v2) == 0
		},
		gen.UInt64(),
		gen.UInt64(),
	))
	properties.TestingRun(t)
}
