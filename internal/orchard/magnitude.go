package orchard

import (
	"github.com/consensys/gnark/frontend"

	"github.com/ccoin/orchard/internal/runningsum"
)

// magnitudeCheck range-checks the value-balance magnitude to
// ValueBits using the running-sum gadget, the component this module
// exists to exercise pervasively (spec.md §1).
type magnitudeCheck struct {
	gadget *runningsum.Gadget
}

func newRunningSum(api frontend.API) *magnitudeCheck {
	return &magnitudeCheck{gadget: runningsum.New(api, MagnitudeWindowSize)}
}

// checkMagnitude decomposes v strictly into MagnitudeWindows windows
// of MagnitudeWindowSize bits, which forces v < 2^(k*W); since
// k*W=66 > ValueBits=64, this is a (slightly loose but sound) upper
// bound on the 64-bit magnitude invariant 1 requires, and satisfies
// the gadget's own k*W < n+k precondition.
func (m *magnitudeCheck) checkMagnitude(v frontend.Variable) error {
	_, _, err := m.gadget.WitnessDecompose(v, true, ValueBits, MagnitudeWindows)
	return err
}
