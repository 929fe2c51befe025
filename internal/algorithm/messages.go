package algorithm

// Fallback texts for the exhausted-plan case, shared by all algorithms.
const (
	sortedHint     = "The sequence is sorted. Check your solution!"
	noMoreMovesMsg = "No more moves are needed. The sequence should already be sorted."
)

// ValidateMove reports whether the attempted pair {a, b} is the swap
// the given step requires. Order does not matter; a nil step is never
// a valid target.
func ValidateMove(step *Step, a, b int) bool {
	if step == nil {
		return false
	}
	return step.Positions(a, b)
}

// DescribeHint returns a human-readable description of the next
// required action for the given algorithm. A nil step means the plan
// is exhausted and the player should verify the result.
func DescribeHint(id string, step *Step) string {
	if step == nil {
		return sortedHint
	}

	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return sortedHint
	}
	return v.hint(*step)
}

// DescribeError explains why the attempted pair {a, b} was rejected
// for the given algorithm and step. A nil step yields the generic
// no-more-moves message.
func DescribeError(id string, step *Step, a, b int) string {
	if step == nil {
		return noMoreMovesMsg
	}

	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return noMoreMovesMsg
	}
	return v.wrongMove(*step, a, b)
}
