package orchard

import (
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/hash"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/test/unsafekzg"
)

// ProvingKey and VerifyingKey wrap gnark's PLONK key types for the
// compiled Action circuit (§4.5). Both are derived
// together from the same compiled constraint system and SRS, so a
// ProvingKey and VerifyingKey built by the same Setup call always
// agree on circuit shape; Pinned lets callers confirm that two keys
// loaded independently (e.g. from disk in different processes) still
// describe the same circuit (§6.4, Property 3).
type ProvingKey struct {
	inner plonk.ProvingKey
}

type VerifyingKey struct {
	inner plonk.VerifyingKey
}

// Setup builds the proving and verifying keys for the Action circuit
// by compiling a default, witness-less Circuit and running PLONK
// key-generation against it (§4.5 steps 1-3). The SRS is produced with
// gnark's test-only unsafekzg helper, matching the reference system's
// own trusted-setup substitute for development use; a production
// deployment would load an MPC-generated SRS of the same degree
// instead of calling this constructor.
func Setup() (ProvingKey, VerifyingKey, error) {
	log := logger.Logger()
	log.Info().Int("k", K).Msg("compiling default circuit")

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &Circuit{})
	if err != nil {
		return ProvingKey{}, VerifyingKey{}, ErrKeyGeneration
	}

	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return ProvingKey{}, VerifyingKey{}, ErrKeyGeneration
	}

	log.Info().Int("nbConstraints", ccs.GetNbConstraints()).Msg("running plonk setup")
	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return ProvingKey{}, VerifyingKey{}, ErrKeyGeneration
	}

	return ProvingKey{inner: pk}, VerifyingKey{inner: vk}, nil
}

// SaveKeys persists a key pair to two files under dir: "proving.key" with
// owner-only permissions (it lets its holder forge proofs) and
// "verifying.key" world-readable, mirroring the permission split
// Samuel1-ona-Noah-Clarity's CircuitManager.SaveKeys uses for its
// Groth16 keys.
func SaveKeys(dir string, pk ProvingKey, vk VerifyingKey) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ErrKeyGeneration
	}

	pkFile, err := os.OpenFile(dir+"/proving.key", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return ErrKeyGeneration
	}
	defer pkFile.Close()
	if _, err := pk.inner.WriteTo(pkFile); err != nil {
		return ErrKeyGeneration
	}

	vkFile, err := os.OpenFile(dir+"/verifying.key", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return ErrKeyGeneration
	}
	defer vkFile.Close()
	if _, err := vk.inner.WriteTo(vkFile); err != nil {
		return ErrKeyGeneration
	}

	return nil
}

// LoadKeys reads back a key pair saved by SaveKeys.
func LoadKeys(dir string) (ProvingKey, VerifyingKey, error) {
	pkFile, err := os.Open(dir + "/proving.key")
	if err != nil {
		return ProvingKey{}, VerifyingKey{}, ErrKeyGeneration
	}
	defer pkFile.Close()

	pk := plonk.NewProvingKey(ecc.BN254)
	if _, err := pk.ReadFrom(pkFile); err != nil {
		return ProvingKey{}, VerifyingKey{}, ErrKeyGeneration
	}

	vkFile, err := os.Open(dir + "/verifying.key")
	if err != nil {
		return ProvingKey{}, VerifyingKey{}, ErrKeyGeneration
	}
	defer vkFile.Close()

	vk := plonk.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(vkFile); err != nil {
		return ProvingKey{}, VerifyingKey{}, ErrKeyGeneration
	}

	return ProvingKey{inner: pk}, VerifyingKey{inner: vk}, nil
}

// Fingerprint returns a stable digest of a VerifyingKey's serialized
// form. Two processes that call Setup() against the same K and the
// same SRS, or that LoadKeys() the same files, must observe equal
// fingerprints; a mismatch means the circuit shape drifted (§6.4,
// Property 3), which callers should treat as ErrKeyFingerprintMatch
// rather than silently proving against a stale key.
func (vk VerifyingKey) Fingerprint() ([32]byte, error) {
	var out [32]byte
	h := hash.MIMC_BN254.New()
	buf := new(fingerprintBuffer)
	if _, err := vk.inner.WriteTo(buf); err != nil {
		return out, ErrKeyFingerprintMatch
	}
	h.Write(buf.Bytes())
	copy(out[:], h.Sum(nil))
	return out, nil
}

// Pinned reports whether vk's fingerprint matches want, the pinned
// fingerprint a deployment recorded the last time it regenerated keys.
func (vk VerifyingKey) Pinned(want [32]byte) (bool, error) {
	got, err := vk.Fingerprint()
	if err != nil {
		return false, err
	}
	return got == want, nil
}

// fingerprintBuffer is a minimal io.Writer sink; avoids pulling in
// bytes.Buffer just to accumulate a WriteTo call's output before
// hashing it.
type fingerprintBuffer struct {
	buf []byte
}

func (b *fingerprintBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *fingerprintBuffer) Bytes() []byte { return b.buf }
