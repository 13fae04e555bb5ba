package tick

import "golang.org/x/exp/constraints"

// clampDelay restricts a requested delay to the scheduler's representable
// range [0, NumQueues). Diode and piston timings are always authored as
// small constants, but they sometimes arrive as the result of arithmetic
// (e.g. repeater delay * lock count) that callers would rather clamp than
// hand-check at every call site.
func clampDelay[N constraints.Integer](delay N) N {
	if delay < 0 {
		return 0
	}
	if delay >= N(NumQueues) {
		return N(NumQueues) - 1
	}
	return delay
}

// ClampDelay is the exported form of clampDelay, for callers that compute
// a delay from game state rather than a compile-time constant. The
// redstone package's rules do not call it.
func ClampDelay[N constraints.Integer](delay N) N {
	return clampDelay(delay)
}
