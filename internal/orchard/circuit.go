// Package orchard implements the Action circuit: the PLONK-style
// arithmetic circuit proving a single shielded spend-and-output pair,
// its native Instance encoding, and the proving/verifying key and
// proof lifecycle around it.
package orchard

import (
	"github.com/consensys/gnark/frontend"
)

// Circuit is the Action circuit witness. Every field is populated
// during proving; during key generation the frontend compiles the
// same struct with its zero value, which is exactly the "witness-less
// default circuit" §4.5 builds keys against — gnark's compiler only
// inspects field types and struct tags, never values, so the same
// Go type serves both the builder and the prover form without an
// option wrapper.
type Circuit struct {
	// Merkle path: 32 sibling hashes and a 32-bit leaf position,
	// least-significant bit first.
	Siblings [TreeDepth]frontend.Variable
	Position [TreeDepth]frontend.Variable

	// Old note.
	GdOld   Point
	PkdOld  Point
	VOld    frontend.Variable
	RhoOld  frontend.Variable
	PsiOld  frontend.Variable
	RcmOld  frontend.Variable
	CmOld   Point
	Sign    frontend.Variable
	VMagAbs frontend.Variable // |v_old - v_new|

	// Spend authorization.
	Alpha frontend.Variable
	AkP   Point
	Nk    frontend.Variable
	Rivk  frontend.Variable

	// New note.
	GdNew  Point
	PkdNew Point
	VNew   frontend.Variable
	PsiNew frontend.Variable
	RcmNew frontend.Variable

	// Value commitment randomness.
	Rcv frontend.Variable

	// Public inputs, in the §3 offset order.
	Anchor        frontend.Variable `gnark:",public"`
	CvNetX        frontend.Variable `gnark:",public"`
	CvNetY        frontend.Variable `gnark:",public"`
	NfOld         frontend.Variable `gnark:",public"`
	RkX           frontend.Variable `gnark:",public"`
	RkY           frontend.Variable `gnark:",public"`
	Cmx           frontend.Variable `gnark:",public"`
	EnableSpend   frontend.Variable `gnark:",public"`
	EnableOutput  frontend.Variable `gnark:",public"`
}

var _ frontend.Circuit = (*Circuit)(nil)

// Define synthesizes the Action circuit, following the ten steps of
// §4.2 in order.
func (c *Circuit) Define(api frontend.API) error {
	// Step 1 (load lookup table) has no counterpart here: gnark's
	// builder manages its own lookup/range-check machinery per
	// constraint, so there is no separate table-loading phase.
	gadgets, err := newGadgetSet(api)
	if err != nil {
		return err
	}

	// Step 2: the shared private inputs are already bound by struct
	// assignment (GdOld, AkP, Nk, VOld, VNew, PsiOld, RhoOld, CmOld).
	gadgets.ECC.AssertNonIdentity(c.GdOld)
	gadgets.ECC.AssertNonIdentity(c.PkdOld)

	// Step 3: Merkle path check from the leaf x(cm_old).
	leaf := c.CmOld.X
	computedAnchor := gadgets.Merkle.Root(leaf, c.Siblings[:], c.Position[:])

	// Step 4: value balance. magnitude is range-checked via the
	// running-sum gadget (the gadget this circuit exists to exercise
	// pervasively) to below 2^(MagnitudeWindowSize*MagnitudeWindows) =
	// 2^66, a loose bound on ValueBits (see magnitude.go); sign is
	// constrained to {+1, -1}.
	rs := newRunningSum(api)
	if err := rs.checkMagnitude(c.VMagAbs); err != nil {
		return err
	}
	api.AssertIsEqual(api.Mul(api.Sub(c.Sign, 1), api.Add(c.Sign, 1)), 0)

	vBalance := api.Sub(c.VOld, c.VNew)
	api.AssertIsEqual(vBalance, api.Mul(c.VMagAbs, c.Sign))

	cv := gadgets.ECC.Add(
		gadgets.ECC.FixedBaseMul(gadgets.ValueCommitV, vBalance),
		gadgets.ECC.FixedBaseMul(gadgets.ValueCommitR, c.Rcv),
	)
	api.AssertIsEqual(cv.X, c.CvNetX)
	api.AssertIsEqual(cv.Y, c.CvNetY)

	// Step 5: nullifier derivation. PRF-like scalar from Poseidon over
	// (nk, rho_old) offset by psi_old, scalar-multiplying NullifierK
	// and adding cm_old; the x-extraction is the nullifier.
	prf := gadgets.Poseidon.Hash(c.Nk, c.RhoOld)
	nfScalar := api.Add(prf, c.PsiOld)
	nfPoint := gadgets.ECC.Add(gadgets.ECC.FixedBaseMul(gadgets.NullifierK, nfScalar), c.CmOld)
	nfOld := nfPoint.X
	api.AssertIsEqual(nfOld, c.NfOld)

	// Step 6: spend authority. rk = [alpha]SpendAuthG + ak_P.
	rk := gadgets.ECC.Add(gadgets.ECC.FixedBaseMul(gadgets.SpendAuthG, c.Alpha), c.AkP)
	api.AssertIsEqual(rk.X, c.RkX)
	api.AssertIsEqual(rk.Y, c.RkY)

	// Step 7: diversified address. ivk = CommitIvk(x(ak_P), nk; rivk);
	// pk_d_old must equal [ivk]g_d_old.
	ivk := gadgets.CommitIvk.Commit(c.AkP.X, c.Nk, c.Rivk)
	derivedPkd := gadgets.ECC.ScalarMul(c.GdOld, ivk)
	api.AssertIsEqual(derivedPkd.X, c.PkdOld.X)
	api.AssertIsEqual(derivedPkd.Y, c.PkdOld.Y)

	// Step 8: old note commitment; constrain against the witnessed
	// cm_old used above (in both the Merkle leaf and the nullifier).
	cmOldComputed, _ := gadgets.NoteCommitOld.Commit(c.GdOld, c.PkdOld, c.VOld, c.RhoOld, c.PsiOld, c.RcmOld)
	api.AssertIsEqual(cmOldComputed.X, c.CmOld.X)
	api.AssertIsEqual(cmOldComputed.Y, c.CmOld.Y)

	// Step 9: new note commitment. rho of the new note is forced to
	// equal nf_old, binding every output deterministically to its
	// spend (faerie-gold prevention).
	gadgets.ECC.AssertNonIdentity(c.GdNew)
	_, cmxNew := gadgets.NoteCommitNew.Commit(c.GdNew, c.PkdNew, c.VNew, nfOld, c.PsiNew, c.RcmNew)
	api.AssertIsEqual(cmxNew, c.Cmx)

	// Step 10: the final q_orchard region binds invariants 1-4.
	// Invariant 1 (value balance) was already bound in step 4; 2-4
	// are bound here.
	api.AssertIsEqual(api.Mul(c.VOld, api.Sub(computedAnchor, c.Anchor)), 0)
	api.AssertIsEqual(api.Mul(c.VOld, api.Sub(1, c.EnableSpend)), 0)
	api.AssertIsEqual(api.Mul(c.VNew, api.Sub(1, c.EnableOutput)), 0)

	return nil
}
