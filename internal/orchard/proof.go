package orchard

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"golang.org/x/crypto/blake2b"
)

// Proof is the opaque byte payload §4.6 and §6.3 describe: the
// engine's serialized PLONK proof, prefixed by a Blake2b digest
// binding it to the exact sequence of packed instances it was created
// against. Verify recomputes that digest before handing the remaining
// bytes to the engine's verifier, so a proof paired with a different
// instance set is rejected before the (far more expensive) polynomial
// check ever runs.
type Proof struct {
	binding [blake2b.Size256]byte
	payload []byte
}

// instanceAssignment copies an Instance's nine packed values onto
// full's public fields and leaves its witness fields untouched: Create
// applies it to the caller's fully witnessed circuit, Verify to a
// zero-valued Circuit whose witness fields are never read.
func instanceAssignment(full *Circuit, in Instance) {
	packed := in.Pack()
	full.Anchor = packed[0]
	full.CvNetX = packed[1]
	full.CvNetY = packed[2]
	full.NfOld = packed[3]
	full.RkX = packed[4]
	full.RkY = packed[5]
	full.Cmx = packed[6]
	full.EnableSpend = packed[7]
	full.EnableOutput = packed[8]
}

func bindInstances(instances []Instance) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil) // nil key and Size256 never error
	for _, in := range instances {
		h.Write(in.Bytes())
	}
	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Create proves one Action. circuits and instances are accepted as
// slices to mirror §4.6's create(pk, circuits, instances, rng) shape,
// but this implementation supports exactly one (circuit, instance)
// pair per proof: gnark compiles and proves a single circuit value per
// call, and aggregating several Actions' public inputs into one proof
// would require a wrapper circuit batching fixed-size arrays of
// Actions, which is out of scope here (see DESIGN.md). Each circuit
// must already carry the full witness (Siblings, GdOld, Alpha, ...);
// Create overwrites its nine public fields with the packed form of the
// matching instance before handing it to the PLONK prover, so callers
// cannot accidentally submit a witness whose induced public inputs
// disagree with the instance they intend to prove (§4.6, §7 kind 3:
// input-shape errors are caught here, before synthesis).
func Create(pk ProvingKey, circuits []*Circuit, instances []Instance) (Proof, error) {
	if len(circuits) != len(instances) || len(circuits) != 1 {
		return Proof{}, ErrInstanceEncoding
	}

	full := circuits[0]
	instanceAssignment(full, instances[0])

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, full)
	if err != nil {
		return Proof{}, ErrProving
	}

	fullWitness, err := frontend.NewWitness(full, ecc.BN254.ScalarField())
	if err != nil {
		return Proof{}, ErrProving
	}

	logger.Logger().Info().Msg("proving action")
	pproof, err := plonk.Prove(ccs, pk.inner, fullWitness)
	if err != nil {
		return Proof{}, ErrProving
	}

	payload, err := pproof.MarshalBinary()
	if err != nil {
		return Proof{}, ErrProofEncoding
	}

	return Proof{binding: bindInstances(instances), payload: payload}, nil
}

// Verify checks proof against instances under vk. It is the only
// signal of validity §4.6 defines: any failure, whether a binding
// mismatch or an engine verification error, is surfaced the same way.
func Verify(vk VerifyingKey, instances []Instance, proof Proof) error {
	if len(instances) != 1 {
		return ErrInstanceEncoding
	}
	if proof.binding != bindInstances(instances) {
		return ErrVerification
	}

	pproof := plonk.NewProof(ecc.BN254)
	if err := pproof.UnmarshalBinary(proof.payload); err != nil {
		return ErrVerification
	}

	full := &Circuit{}
	instanceAssignment(full, instances[0])
	publicWitness, err := frontend.NewWitness(full, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return ErrVerification
	}

	if err := plonk.Verify(pproof, vk.inner, publicWitness); err != nil {
		return ErrVerification
	}
	return nil
}

// Bytes encodes proof per §6.1: the Blake2b binding digest followed by
// the raw engine proof bytes a caller appends after an Instance's own
// encoding.
func (p Proof) Bytes() []byte {
	out := make([]byte, 0, blake2b.Size256+len(p.payload))
	out = append(out, p.binding[:]...)
	out = append(out, p.payload...)
	return out
}

// ProofFromBytes decodes a Proof encoded by Bytes.
func ProofFromBytes(b []byte) (Proof, error) {
	if len(b) < blake2b.Size256 {
		return Proof{}, ErrProofEncoding
	}
	var p Proof
	copy(p.binding[:], b[:blake2b.Size256])
	p.payload = append([]byte(nil), b[blake2b.Size256:]...)
	return p, nil
}
