package orchard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveNullifierIsDeterministic(t *testing.T) {
	assert := require.New(t)

	nk := feFromInt64(9)
	rho := feFromInt64(17)
	psi := feFromInt64(23)
	cmOld := nativePoint{X: feFromInt64(2), Y: feFromInt64(3)}

	nf1 := DeriveNullifier(nk, rho, psi, cmOld)
	nf2 := DeriveNullifier(nk, rho, psi, cmOld)
	assert.True(nf1.Equal(&nf2))
}

func TestDeriveNullifierVariesWithRho(t *testing.T) {
	assert := require.New(t)

	nk := feFromInt64(9)
	psi := feFromInt64(23)
	cmOld := nativePoint{X: feFromInt64(2), Y: feFromInt64(3)}

	nf1 := DeriveNullifier(nk, feFromInt64(17), psi, cmOld)
	nf2 := DeriveNullifier(nk, feFromInt64(18), psi, cmOld)
	assert.False(nf1.Equal(&nf2))
}

func TestDeriveNullifierVariesWithCmOld(t *testing.T) {
	assert := require.New(t)

	nk := feFromInt64(9)
	rho := feFromInt64(17)
	psi := feFromInt64(23)

	nf1 := DeriveNullifier(nk, rho, psi, nativePoint{X: feFromInt64(2), Y: feFromInt64(3)})
	nf2 := DeriveNullifier(nk, rho, psi, nativePoint{X: feFromInt64(5), Y: feFromInt64(7)})
	assert.False(nf1.Equal(&nf2))
}
