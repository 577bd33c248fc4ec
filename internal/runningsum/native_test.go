package runningsum

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestCheckWindowParams(t *testing.T) {
	assert := require.New(t)

	assert.NoError(CheckWindowParams(64, 3, 22))
	assert.ErrorIs(CheckWindowParams(64, 3, 23), ErrTooManyWindows)
	assert.NoError(CheckWindowParams(1, 1, 1))
}

// Property 8's concrete case (spec.md §8, §4.4): alpha = 2^66 does not
// fit in NUM_WINDOWS_SHORT=22 windows of FIXED_BASE_WINDOW_SIZE=3 bits
// (22*3 = 66, so alpha = 2^66 is exactly out of range). A strict
// decomposition's final cell must be nonzero, while a non-strict
// Decompose of the same value still succeeds.
func TestPropertyStrictDecompositionRejectsOutOfRangeAlpha(t *testing.T) {
	assert := require.New(t)

	const k, w = 3, 22
	alpha := new(big.Int).Lsh(big.NewInt(1), 66)

	windows, z, err := Decompose(alpha, k, w)
	assert.NoError(err)
	assert.Len(windows, w)
	assert.False(Strict(z))
}

func TestDecomposeReconstructsAlpha(t *testing.T) {
	assert := require.New(t)

	alpha := big.NewInt(0x1ABCDE)
	windows, z, err := Decompose(alpha, 3, 9)
	assert.NoError(err)
	assert.Len(windows, 9)
	assert.Len(z, 10)
	assert.Equal(0, z[0].Cmp(alpha))

	twoPowK := big.NewInt(8)
	for i := 0; i < 9; i++ {
		reconstructed := new(big.Int).Mul(z[i+1], twoPowK)
		reconstructed.Add(reconstructed, windows[i])
		assert.Equal(0, reconstructed.Cmp(z[i]), "window %d", i)
	}
}

func TestDecomposeRejectsInvalidWindowSize(t *testing.T) {
	_, _, err := Decompose(big.NewInt(1), 4, 1)
	require.Error(t, err)
	_, _, err = Decompose(big.NewInt(1), 0, 1)
	require.Error(t, err)
}

// Property 8 (spec.md §8): a strict decomposition's final running-sum
// cell is zero exactly when alpha < 2^(k*W).
func TestPropertyStrictnessMatchesRange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	const k, w = 3, 5
	limit := new(big.Int).Lsh(big.NewInt(1), uint(k*w))

	properties.Property("z_W == 0 iff alpha < 2^(k*W)", prop.ForAll(
		func(seed uint32) bool {
			alpha := new(big.Int).SetUint64(uint64(seed))
			_, z, err := Decompose(alpha, k, w)
			if err != nil {
				return false
			}
			inRange := alpha.Cmp(limit) < 0
			return Strict(z) == inRange
		},
		gen.UInt32Range(0, uint32(1)<<20),
	))

	properties.TestingRun(t)
}

// Property 9 (spec.md §8): every window value Decompose produces is a
// valid k-bit digit, in [0, 2^k), for any alpha.
func TestPropertyWindowsAreKBitDigits(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	const k, w = 3, 9
	limit := big.NewInt(1 << uint(k))

	properties.Property("every window is in [0, 2^k)", prop.ForAll(
		func(seed uint32) bool {
			alpha := new(big.Int).SetUint64(uint64(seed))
			windows, _, err := Decompose(alpha, k, w)
			if err != nil {
				return false
			}
			for _, word := range windows {
				if word.Sign() < 0 || word.Cmp(limit) >= 0 {
					return false
				}
			}
			return true
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}
