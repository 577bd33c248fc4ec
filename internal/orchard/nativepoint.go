package orchard

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// nativePoint mirrors Point outside the circuit: witness assembly
// needs to compute the same curve arithmetic the circuit constrains,
// over concrete fr.Element values rather than frontend.Variable cells.
type nativePoint struct {
	X, Y fr.Element
}

func feFromInt64(v int64) fr.Element {
	var f fr.Element
	f.SetInt64(v)
	return f
}

// The fixed generators below are the native counterparts of config.go's
// circuit-side constants (spendAuthG, nullifierK, valueCommitV/R, the
// NoteCommit base pairs); witness assembly and the circuit must use
// the identical constants for cv_net/rk/cm to agree.
func spendAuthGNative() nativePoint   { return nativePoint{X: feFromInt64(2), Y: feFromInt64(3)} }
func nullifierKNative() nativePoint   { return nativePoint{X: feFromInt64(5), Y: feFromInt64(7)} }
func valueCommitVNative() nativePoint { return nativePoint{X: feFromInt64(11), Y: feFromInt64(13)} }
func valueCommitRNative() nativePoint { return nativePoint{X: feFromInt64(17), Y: feFromInt64(19)} }

func noteCommitBaseOldNative() nativePoint  { return nativePoint{X: feFromInt64(23), Y: feFromInt64(29)} }
func noteCommitBlindOldNative() nativePoint { return nativePoint{X: feFromInt64(31), Y: feFromInt64(37)} }
func noteCommitBaseNewNative() nativePoint  { return nativePoint{X: feFromInt64(41), Y: feFromInt64(43)} }
func noteCommitBlindNewNative() nativePoint { return nativePoint{X: feFromInt64(47), Y: feFromInt64(53)} }

// nativeAdd mirrors eccChip.Add: the unified BabyJubJub twisted-Edwards
// affine addition law, computed directly over fr.Element.
func nativeAdd(p, q nativePoint) nativePoint {
	var x1y2, y1x2, y1y2, x1x2, dTerm fr.Element
	x1y2.Mul(&p.X, &q.Y)
	y1x2.Mul(&p.Y, &q.X)
	y1y2.Mul(&p.Y, &q.Y)
	x1x2.Mul(&p.X, &q.X)

	var d, a fr.Element
	d.SetBigInt(babyJubJubD)
	a.SetBigInt(babyJubJubA)
	dTerm.Mul(&d, &x1x2)
	dTerm.Mul(&dTerm, &y1y2)

	var xNum, xDen, yNum, yDen, one fr.Element
	one.SetOne()
	xNum.Add(&x1y2, &y1x2)
	xDen.Add(&one, &dTerm)
	yNum.Sub(&y1y2, new(fr.Element).Mul(&a, &x1x2))
	yDen.Sub(&one, &dTerm)

	var x3, y3 fr.Element
	x3.Div(&xNum, &xDen)
	y3.Div(&yNum, &yDen)
	return nativePoint{X: x3, Y: y3}
}

// nativeScalarMul mirrors eccChip.ScalarMul: double-and-add over the
// little-endian bits of scalar.
func nativeScalarMul(p nativePoint, scalar fr.Element) nativePoint {
	var bi big.Int
	scalar.BigInt(&bi)

	acc := nativePoint{X: fr.Element{}, Y: feFromInt64(1)}
	cur := p
	for i := 0; i < bi.BitLen(); i++ {
		if bi.Bit(i) == 1 {
			acc = nativeAdd(acc, cur)
		}
		cur = nativeAdd(cur, cur)
	}
	return acc
}

// noteCommitNative mirrors noteCommitChip.Commit off-circuit: the same
// hash-then-commit shape (Poseidon stand-in digest of the note fields,
// fixed-base-multiplied, plus an independent blinding term) computed
// over concrete fr.Element values, so witness assembly can produce a
// cm_old/cm_new that the circuit's own NoteCommit gadget will accept.
func noteCommitNative(base, blind nativePoint, gd, pkd nativePoint, value, rho, psi, rcm fr.Element) nativePoint {
	m := mimcHash(gd.X, gd.Y, pkd.X, pkd.Y, value, rho, psi)
	term := nativeScalarMul(base, m)
	blindTerm := nativeScalarMul(blind, rcm)
	return nativeAdd(term, blindTerm)
}
