package sorting

// MinRunPolicy selects how the minimum run length is derived from the length
// of the range being sorted. Runs shorter than the minimum are extended with
// a binary insertion pass before they are pushed on the run stack.
type MinRunPolicy string

const (
	// ClassicMinRunPolicy computes the classical heuristic: a value k with
	// minMerge/2 <= k <= minMerge chosen so that length/k is close to, but
	// strictly below, an exact power of two.
	ClassicMinRunPolicy MinRunPolicy = "classic"

	// LegacyMinRunPolicy reproduces the behavior of the original interactive
	// sorter, which requested a minimum run of length+1 and therefore
	// extended every detected run over the whole remaining range. It turns
	// the engine into one binary insertion pass and is kept only for
	// behavioral parity with that implementation.
	LegacyMinRunPolicy MinRunPolicy = "legacy"
)

func (policy MinRunPolicy) isValid() bool {
	return policy == ClassicMinRunPolicy || policy == LegacyMinRunPolicy
}

// minRunLength expects n >= 0. The driver clamps the returned value to the
// remaining range, so the legacy policy can not push the extension out of
// bounds.
func (policy MinRunPolicy) minRunLength(n int) int {
	if policy == LegacyMinRunPolicy {
		return n + 1
	}

	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}

	return n + r
}
