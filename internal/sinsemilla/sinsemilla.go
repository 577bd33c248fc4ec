// Package sinsemilla implements the native (non-circuit) Sinsemilla
// hash-to-curve and commitment primitive: an algebraic hash built from
// iterated point doubling and chunked generator addition, designed so
// that the same recurrence can later be expressed as an in-circuit
// gadget at low constraint cost.
//
// The reference construction runs over the Pallas/Vesta curve cycle.
// gnark-crypto, the only curve-arithmetic library in this corpus,
// supports neither curve nor an IPA commitment scheme, so this package
// substitutes BN254 throughout (see DESIGN.md, "field substitution").
// The algorithm, domain separation, and padding rule are otherwise
// implemented exactly as specified.
package sinsemilla

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// K is the number of bits per message chunk.
const K = 10

// C is the maximum number of chunks in a message, bounding message
// length to K*C bits.
const C = 253

// MaxBits is the maximum accepted message length in bits.
const MaxBits = K * C

// Domain separators for the two hash-to-curve families used to derive
// the incremental accumulator's starting point and its per-chunk
// generators.
const (
	domainQ = "z.cash:SinsemillaQ"
	domainS = "z.cash:SinsemillaS"
)

// ErrMessageTooLong is returned when a message exceeds MaxBits.
var ErrMessageTooLong = errors.New("sinsemilla: message exceeds K*C bits")

// Pad right-pads bits with false to the next multiple of K. A message
// whose length is already a multiple of K is returned unchanged (a
// copy, never the same backing array).
func Pad(bits []bool) []bool {
	rem := len(bits) % K
	if rem == 0 {
		out := make([]bool, len(bits))
		copy(out, bits)
		return out
	}
	padLen := K - rem
	out := make([]bool, len(bits)+padLen)
	copy(out, bits)
	return out
}

// chunkToInt converts a little-endian bit chunk (bit 0 is the least
// significant) to an integer in [0, 2^K).
func chunkToInt(chunk []bool) int {
	v := 0
	for i, b := range chunk {
		if b {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Q derives the per-domain starting point Q(domainPrefix) by hashing
// the domain-separated prefix to a curve point.
func Q(domainPrefix string) (bn254.G1Affine, error) {
	return bn254.HashToG1([]byte(domainPrefix), []byte(domainQ))
}

// S derives the i-th chunk generator S(i), i in [0, 2^K). Unlike Q, S
// is not domain-separated by the caller's prefix: it is a single
// global generator family shared by every domain, indexed only by the
// chunk value.
func S(i int) (bn254.G1Affine, error) {
	msg := []byte{byte(i), byte(i >> 8)}
	return bn254.HashToG1(msg, []byte(domainS))
}

// HashToPoint runs the incremental doubled-sum accumulator:
//
//	acc <- Q(domain)
//	for each K-bit chunk k_i of Pad(bits):
//	    acc <- 2*acc + S(LEB(k_i))
//
// bits must be no longer than MaxBits.
func HashToPoint(domain string, bits []bool) (bn254.G1Affine, error) {
	if len(bits) > MaxBits {
		return bn254.G1Affine{}, ErrMessageTooLong
	}
	padded := Pad(bits)

	acc, err := Q(domain)
	if err != nil {
		return bn254.G1Affine{}, err
	}

	for i := 0; i < len(padded); i += K {
		chunk := padded[i : i+K]
		idx := chunkToInt(chunk)
		gen, err := S(idx)
		if err != nil {
			return bn254.G1Affine{}, err
		}

		var doubled bn254.G1Affine
		doubled.Double(&acc)
		acc.Add(&doubled, &gen)
	}

	return acc, nil
}

// extractX returns the x-coordinate of p as a scalar-field element, or
// zero if p is the point at infinity. (On the reference curve cycle
// this is exact, since Pallas's base field equals Vesta's scalar
// field; under the BN254 substitution this reduces the base-field
// coordinate modulo the scalar field's modulus.)
func extractX(p bn254.G1Affine) fr.Element {
	var x fr.Element
	if p.IsInfinity() {
		return x
	}
	xBig := p.X.BigInt(new(big.Int))
	x.SetBigInt(xBig)
	return x
}

// Hash returns the x-coordinate extraction of HashToPoint(domain, bits).
func Hash(domain string, bits []bool) (fr.Element, error) {
	p, err := HashToPoint(domain, bits)
	if err != nil {
		return fr.Element{}, err
	}
	return extractX(p), nil
}

// rBase is the fixed base point used to blind a commitment; it is
// derived once per domain the same way a message chunk generator is,
// evaluated over the empty message.
func rBase(domain string) (bn254.G1Affine, error) {
	return bn254.HashToG1([]byte{}, []byte(domain+"-r"))
}

// Commit computes hash_to_point(domain||"-M", msg) + r*H(domain||"-r").
func Commit(domain string, bits []bool, r fr.Element) (bn254.G1Affine, error) {
	m, err := HashToPoint(domain+"-M", bits)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	h, err := rBase(domain)
	if err != nil {
		return bn254.G1Affine{}, err
	}

	rBig := new(big.Int)
	r.BigInt(rBig)

	var rH bn254.G1Affine
	rH.ScalarMultiplication(&h, rBig)

	var out bn254.G1Affine
	out.Add(&m, &rH)
	return out, nil
}

// ShortCommit is the x-extraction of Commit.
func ShortCommit(domain string, bits []bool, r fr.Element) (fr.Element, error) {
	p, err := Commit(domain, bits, r)
	if err != nil {
		return fr.Element{}, err
	}
	return extractX(p), nil
}
