package orchard

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/hash"
)

// mimcHash mirrors hashChip.Hash off-circuit, using gnark-crypto's
// native MiMC_BN254 the same way Samuel1-ona-Noah-Clarity's prover
// computes a commitment matching its circuit's in-circuit MiMC call.
func mimcHash(inputs ...fr.Element) fr.Element {
	h := hash.MIMC_BN254.New()
	for _, in := range inputs {
		b := in.Bytes()
		h.Write(b[:])
	}
	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// DeriveNullifier mirrors the circuit's nullifier-derivation step
// (invariant 6, §3, §4.2 step 5) outside the circuit: a PRF-like
// Poseidon-stand-in value offset by psi, scalar-multiplying the fixed
// base NullifierK and adding cm_old, extracted to its x-coordinate.
func DeriveNullifier(nk, rhoOld, psiOld fr.Element, cmOld nativePoint) fr.Element {
	prf := mimcHash(nk, rhoOld)
	var scalar fr.Element
	scalar.Add(&prf, &psiOld)

	term := nativeScalarMul(nullifierKNative(), scalar)
	sum := nativeAdd(term, cmOld)
	return sum.X
}
