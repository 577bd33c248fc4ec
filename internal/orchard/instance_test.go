package orchard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstanceBytesRoundTrip(t *testing.T) {
	assert := require.New(t)

	in := Instance{
		Anchor:       feFromInt64(1),
		CvNetX:       feFromInt64(2),
		CvNetY:       feFromInt64(3),
		NfOld:        feFromInt64(4),
		RkX:          feFromInt64(5),
		RkY:          feFromInt64(6),
		Cmx:          feFromInt64(7),
		EnableSpend:  true,
		EnableOutput: false,
	}

	b := in.Bytes()
	assert.Len(b, InstanceByteLen)

	out, n, err := InstanceFromBytes(b)
	assert.NoError(err)
	assert.Equal(InstanceByteLen, n)
	assert.True(in.Anchor.Equal(&out.Anchor))
	assert.True(in.CvNetX.Equal(&out.CvNetX))
	assert.True(in.CvNetY.Equal(&out.CvNetY))
	assert.True(in.NfOld.Equal(&out.NfOld))
	assert.True(in.RkX.Equal(&out.RkX))
	assert.True(in.RkY.Equal(&out.RkY))
	assert.True(in.Cmx.Equal(&out.Cmx))
	assert.Equal(in.EnableSpend, out.EnableSpend)
	assert.Equal(in.EnableOutput, out.EnableOutput)
}

func TestInstanceFromBytesRejectsShortInput(t *testing.T) {
	_, _, err := InstanceFromBytes(make([]byte, InstanceByteLen-1))
	require.ErrorIs(t, err, ErrInstanceEncoding)
}

func TestInstanceFromBytesRejectsInvalidBoolByte(t *testing.T) {
	in := Instance{}
	b := in.Bytes()
	b[len(b)-2] = 0x42

	_, _, err := InstanceFromBytes(b)
	require.Error(t, err)
}

func TestInstancePackOrder(t *testing.T) {
	assert := require.New(t)

	in := Instance{
		Anchor:       feFromInt64(1),
		CvNetX:       feFromInt64(2),
		CvNetY:       feFromInt64(3),
		NfOld:        feFromInt64(4),
		RkX:          feFromInt64(5),
		RkY:          feFromInt64(6),
		Cmx:          feFromInt64(7),
		EnableSpend:  true,
		EnableOutput: true,
	}

	packed := in.Pack()
	assert.Len(packed, NumPublicInputs)
	one := feFromInt64(1)
	assert.True(packed[7].Equal(&one))
	assert.True(packed[8].Equal(&one))
}
