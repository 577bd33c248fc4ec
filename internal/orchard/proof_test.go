package orchard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProofBytesRoundTrip(t *testing.T) {
	assert := require.New(t)

	p := Proof{payload: []byte{1, 2, 3, 4, 5}}
	p.binding = bindInstances([]Instance{{Anchor: feFromInt64(1)}})

	encoded := p.Bytes()
	decoded, err := ProofFromBytes(encoded)
	assert.NoError(err)
	assert.Equal(p.binding, decoded.binding)
	assert.Equal(p.payload, decoded.payload)
}

func TestProofFromBytesRejectsShortInput(t *testing.T) {
	_, err := ProofFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrProofEncoding)
}

func TestBindInstancesDependsOnContent(t *testing.T) {
	assert := require.New(t)

	a := bindInstances([]Instance{{Anchor: feFromInt64(1)}})
	b := bindInstances([]Instance{{Anchor: feFromInt64(2)}})
	assert.NotEqual(a, b)

	c := bindInstances([]Instance{{Anchor: feFromInt64(1)}})
	assert.Equal(a, c)
}

func TestCreateRejectsMismatchedLengths(t *testing.T) {
	_, err := Create(ProvingKey{}, []*Circuit{{}}, nil)
	require.ErrorIs(t, err, ErrInstanceEncoding)
}

func TestVerifyRejectsMultipleInstances(t *testing.T) {
	err := Verify(VerifyingKey{}, []Instance{{}, {}}, Proof{})
	require.ErrorIs(t, err, ErrInstanceEncoding)
}
