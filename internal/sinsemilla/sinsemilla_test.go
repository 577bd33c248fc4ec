package sinsemilla

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestPadAlreadyAligned(t *testing.T) {
	assert := require.New(t)

	bits := make([]bool, 3*K)
	for i := range bits {
		bits[i] = i%2 == 0
	}

	padded := Pad(bits)
	assert.Equal(bits, padded)

	// Pad must never alias its input.
	padded[0] = !padded[0]
	assert.NotEqual(bits[0], padded[0])
}

func TestPadRightPadsToChunkBoundary(t *testing.T) {
	assert := require.New(t)

	bits := make([]bool, K+3)
	for i := range bits {
		bits[i] = true
	}

	padded := Pad(bits)
	assert.Equal(2*K, len(padded))
	for i := K + 3; i < len(padded); i++ {
		assert.False(padded[i])
	}
}

func TestHashToPointRejectsOverlongMessage(t *testing.T) {
	bits := make([]bool, MaxBits+1)
	_, err := HashToPoint("z.cash:test", bits)
	require.ErrorIs(t, err, ErrMessageTooLong)
}

func TestHashIsDeterministic(t *testing.T) {
	assert := require.New(t)

	bits := make([]bool, 4*K)
	for i := range bits {
		bits[i] = i%3 == 0
	}

	h1, err := Hash("z.cash:test", bits)
	assert.NoError(err)
	h2, err := Hash("z.cash:test", bits)
	assert.NoError(err)
	assert.True(h1.Equal(&h2))
}

func TestHashDiffersAcrossDomains(t *testing.T) {
	assert := require.New(t)

	bits := make([]bool, 2*K)

	h1, err := Hash("z.cash:domain-a", bits)
	assert.NoError(err)
	h2, err := Hash("z.cash:domain-b", bits)
	assert.NoError(err)
	assert.False(h1.Equal(&h2))
}

// Property 7 (spec.md §8): Pad never produces a message whose length
// is not a multiple of K, for any input length up to a few chunks.
func TestPropertyPadLengthIsAlwaysAMultipleOfK(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("padded length is a multiple of K", prop.ForAll(
		func(n int) bool {
			bits := make([]bool, n)
			return len(Pad(bits))%K == 0
		},
		gen.IntRange(0, 5*K),
	))

	properties.TestingRun(t)
}

func TestPropertyPadIsIdempotentOnAlignedInput(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("padding an already-aligned message changes nothing", prop.ForAll(
		func(chunks int) bool {
			bits := make([]bool, chunks*K)
			padded := Pad(bits)
			return len(padded) == len(bits)
		},
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}
