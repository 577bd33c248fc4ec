package orchard

import "errors"

// Error kinds surfaced by circuit configuration, witness assembly, key
// generation, and proving/verification.
var (
	ErrInvalidConfig       = errors.New("orchard: invalid circuit configuration")
	ErrWitnessAssembly     = errors.New("orchard: failed to assemble witness")
	ErrKeyGeneration       = errors.New("orchard: proving/verifying key generation failed")
	ErrProving             = errors.New("orchard: proof generation failed")
	ErrVerification        = errors.New("orchard: proof verification failed")
	ErrInstanceEncoding    = errors.New("orchard: malformed instance encoding")
	ErrProofEncoding       = errors.New("orchard: malformed proof encoding")
	ErrKeyFingerprintMatch = errors.New("orchard: proving/verifying key fingerprint mismatch")
)
