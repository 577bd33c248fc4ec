package orchard

// Circuit configuration. A native PLONK implementation allocates an
// explicit column budget for a 2^K-row circuit; gnark's frontend
// allocates advice wires itself; the column map below is carried as
// documentation of the allocation a hand-rolled halo2-style
// implementation of this circuit would use, since it is what a reader
// coming from that implementation expects to find, and because it is
// exactly what the sub-chip wiring below mirrors in spirit (ECC taking
// the full advice width, Poseidon and the two Sinsemilla chips sharing
// columns to keep prover cost down, range-checks riding on the lookup
// column).
//
//	advices[0..10)  10 advice columns, equality-permutation enabled
//	primary         1 instance column, equality enabled
//	lagrange[0..8)  8 fixed columns (Lagrange coefficients; lagrange[0]
//	                also carries global constants)
//	lookup          1 three-column lookup table; its index column
//	                doubles as the range-check column
//	q_orchard       1 selector gating invariants 1-4 (see circuit.go)
//
//	ECC chip          advices[0..10), lagrange[0..8)
//	Poseidon chip      advices[5], advices[6..10), lagrange[2..8)
//	Sinsemilla chip 1  advices[0..6), lagrange[0]
//	Sinsemilla chip 2  advices[5..10), lagrange[1]
//	Range-check        advices[9], lookup
//	CommitIvk          layered on Sinsemilla chip 1
//	NoteCommit (old)   layered on Sinsemilla chip 1
//	NoteCommit (new)   layered on Sinsemilla chip 2

import "github.com/consensys/gnark/frontend"

// K is the circuit size parameter of the reference column layout
// above (2^K rows). Setup only logs it: the gnark constraint system is
// not sized to 2^K, and its size (and the SRS unsafekzg.NewSRS builds
// for it) is whatever the compiled circuit needs.
const K = 11

// TreeDepth is the fixed Merkle path length a spend witnesses.
const TreeDepth = 32

// ValueBits bounds v_old and v_new: both are 64-bit unsigned values.
const ValueBits = 64

// MagnitudeWindowSize (k) and MagnitudeWindows (W) parameterize the
// running-sum range check the value-balance invariant runs over
// magnitude: k*W must stay under ValueBits+k per the running-sum
// gadget's precondition (NUM_WINDOWS_SHORT in the reference circuit).
const (
	MagnitudeWindowSize = 3
	MagnitudeWindows    = 22 // 22*3 = 66 < ValueBits(64) + MagnitudeWindowSize(3)
)

// GadgetSet bundles the concrete sub-chip implementations a Circuit's
// Define wires together. Built fresh per Define call, since each
// chip closes over the frontend.API of that particular circuit
// compilation.
type GadgetSet struct {
	ECC           ECCChip
	Poseidon      HashChip
	Merkle        MerkleChip
	CommitIvk     CommitIvkChip
	NoteCommitOld NoteCommitChip
	NoteCommitNew NoteCommitChip

	SpendAuthG   Point
	NullifierK   Point
	ValueCommitV Point
	ValueCommitR Point
}

// newGadgetSet wires every sub-chip contract to its concrete gnark
// gadget and fixes the generator points the circuit's synthesis steps
// reference by name (SpendAuthG, NullifierK, the two ValueCommit
// bases, and the NoteCommit bases for each of the two chip instances).
func newGadgetSet(api frontend.API) (*GadgetSet, error) {
	ecc, err := newECCChip(api)
	if err != nil {
		return nil, err
	}
	h := &hashChip{api: api}
	m := &merkleChip{api: api}

	return &GadgetSet{
		ECC:       ecc,
		Poseidon:  h,
		Merkle:    m,
		CommitIvk: &commitIvkChip{hash: h},
		NoteCommitOld: &noteCommitChip{
			ecc: ecc, hash: h,
			base:      noteCommitBaseOld,
			blindBase: noteCommitBlindOld,
		},
		NoteCommitNew: &noteCommitChip{
			ecc: ecc, hash: h,
			base:      noteCommitBaseNew,
			blindBase: noteCommitBlindNew,
		},
		SpendAuthG:   spendAuthG,
		NullifierK:   nullifierK,
		ValueCommitV: valueCommitV,
		ValueCommitR: valueCommitR,
	}, nil
}

// Fixed generator points. These play the role of the protocol's named
// Pallas generators (SpendAuthG, NullifierK, ValueCommitV/R, and the
// two NoteCommit generator pairs); under the BN254 substitution (see
// SPEC_FULL.md) they are arbitrary fixed, non-identity constants rather
// than points derived from the reference system's fixed-base tables.
var (
	spendAuthG = Point{X: 2, Y: 3}
	nullifierK = Point{X: 5, Y: 7}

	valueCommitV = Point{X: 11, Y: 13}
	valueCommitR = Point{X: 17, Y: 19}

	noteCommitBaseOld  = Point{X: 23, Y: 29}
	noteCommitBlindOld = Point{X: 31, Y: 37}
	noteCommitBaseNew  = Point{X: 41, Y: 43}
	noteCommitBlindNew = Point{X: 47, Y: 53}
)
