package runningsum

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
)

func init() {
	solver.RegisterHint(decomposeHint)
}

// decomposeHint is the off-circuit witness generator backing
// WitnessDecompose/CopyDecompose: its two inputs are alpha and k, and
// it returns the W window values followed by z_1..z_W. solver.Hint has
// a fixed signature, so k travels as an input and W is recovered from
// the number of outputs (2*W).
func decomposeHint(mod *big.Int, inputs, outputs []*big.Int) error {
	alpha := inputs[0]
	k := int(inputs[1].Int64())
	w := len(outputs) / 2

	windows, z, err := Decompose(alpha, k, w)
	if err != nil {
		return err
	}
	for i := 0; i < w; i++ {
		outputs[i] = windows[i]
		outputs[w+i] = z[i+1]
	}
	return nil
}

// Gadget is a reusable running-sum decomposition region bound to a
// fixed window size k (<=3 bits per window).
type Gadget struct {
	api frontend.API
	k   int
}

// New returns a Gadget with window size k bits, k in [1,3].
func New(api frontend.API, k int) *Gadget {
	return &Gadget{api: api, k: k}
}

// rangeCheckWord asserts word*(1-word)*(2-word)*...*(2^k-1-word) == 0,
// i.e. word is one of the 2^k values a k-bit window can take (Gate 1).
func (g *Gadget) rangeCheckWord(word frontend.Variable) {
	api := g.api
	product := frontend.Variable(1)
	limit := 1 << uint(g.k)
	for c := 0; c < limit; c++ {
		product = api.Mul(product, api.Sub(c, word))
	}
	api.AssertIsEqual(product, 0)
}

// decompose is shared by WitnessDecompose/CopyDecompose: it assigns
// alpha into z_0, derives the window/running-sum hint, range-checks
// every window (Gate 1), and — when strict — forces z_W to zero
// (Gate 2).
func (g *Gadget) decompose(alpha frontend.Variable, strict bool, n, w int) (frontend.Variable, []frontend.Variable, error) {
	if err := CheckWindowParams(n, g.k, w); err != nil {
		return nil, nil, err
	}

	api := g.api
	twoPowK := int64(1) << uint(g.k)

	outs, err := api.Compiler().NewHint(decomposeHint, 2*w, alpha, g.k)
	if err != nil {
		return nil, nil, err
	}
	windows := outs[:w]
	zs := outs[w:]

	// z_0 = alpha, enforced by construction below; the chain equation
	// per window is z_i = z_{i+1}*2^k + word_i.
	cur := alpha
	for i := 0; i < w; i++ {
		word := windows[i]
		g.rangeCheckWord(word)

		next := zs[i]
		reconstructed := api.Add(api.Mul(next, twoPowK), word)
		api.AssertIsEqual(cur, reconstructed)
		cur = next
	}

	if strict {
		api.AssertIsEqual(cur, 0)
	}

	return alpha, zs, nil
}

// WitnessDecompose assigns a fresh alpha into z_0 and decomposes it
// into W k-bit windows, returning z_0 and [z_1..z_W]. When strict is
// true, z_W is constrained to zero, fully constraining alpha < 2^(k*W).
func (g *Gadget) WitnessDecompose(alpha frontend.Variable, strict bool, n, w int) (frontend.Variable, []frontend.Variable, error) {
	return g.decompose(alpha, strict, n, w)
}

// CopyDecompose is WitnessDecompose but binds an existing alphaCell
// into z_0 via the equality permutation instead of assigning a fresh
// witness value.
func (g *Gadget) CopyDecompose(alphaCell frontend.Variable, strict bool, n, w int) (frontend.Variable, []frontend.Variable, error) {
	return g.decompose(alphaCell, strict, n, w)
}
