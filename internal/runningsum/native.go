// Package runningsum implements the running-sum bit-decomposition
// gadget: it decomposes a field element alpha of at most n bits into W
// windows of k bits each (k <= 3), producing a running-sum sequence
// z_0=alpha, z_{i+1}=(z_i-k_i)/2^k, with z_W forced to zero when the
// decomposition is strict.
//
// This file holds the native (off-circuit) arithmetic: computing the
// window values and the running sum over math/big, shared by the
// witness-construction path and by the in-circuit gadget's hints.
package runningsum

import (
	"errors"
	"math/big"
)

// ErrTooManyWindows is returned when k*W >= n+k, i.e. W carries more
// windows than an n-bit value's decomposition needs.
var ErrTooManyWindows = errors.New("runningsum: k*W >= n+k, too many windows for alpha")

// ErrOutOfRange is returned by a strict decomposition whose witnessed
// value is not less than 2^(k*W).
var ErrOutOfRange = errors.New("runningsum: alpha >= 2^(k*W) in strict decomposition")

// twoPowK returns 2^k as a *big.Int.
func twoPowK(k int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(k))
}

// Decompose runs the running-sum recurrence over alpha, returning the
// window values k_0..k_{W-1} and the running-sum chain z_0..z_W
// (z_0 == alpha). It does not itself reject out-of-range alpha; call
// Strict to check that z_W == 0.
func Decompose(alpha *big.Int, k, w int) (windows []*big.Int, z []*big.Int, err error) {
	if k <= 0 || k > 3 || w <= 0 {
		return nil, nil, errors.New("runningsum: invalid window parameters")
	}

	mod := twoPowK(k)
	windows = make([]*big.Int, w)
	z = make([]*big.Int, w+1)
	z[0] = new(big.Int).Set(alpha)

	cur := new(big.Int).Set(alpha)
	for i := 0; i < w; i++ {
		word := new(big.Int).Mod(cur, mod)
		windows[i] = word

		next := new(big.Int).Sub(cur, word)
		next.Div(next, mod)
		z[i+1] = next
		cur = next
	}

	return windows, z, nil
}

// Strict reports whether the final running-sum cell is zero, i.e.
// whether alpha < 2^(k*W).
func Strict(z []*big.Int) bool {
	return len(z) > 0 && z[len(z)-1].Sign() == 0
}

// CheckWindowParams enforces the precondition k*W < n+k: W windows of
// k bits must not exceed what an n-bit value's decomposition needs.
func CheckWindowParams(n, k, w int) error {
	if k*w >= n+k {
		return ErrTooManyWindows
	}
	return nil
}
