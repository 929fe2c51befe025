package algorithm

// StepKind identifies the type of action a plan step requires.
// Only swaps are produced today; the schema reserves room for
// compare/no-action kinds without building unused branches.
type StepKind string

// StepSwap is the only kind the simulators emit.
const StepSwap StepKind = "swap"

// Step is one required action in a plan: a swap of two positions in the
// sequence as it stands at the moment the step executes. ValueI/ValueJ
// capture the values at those positions during simulation and are used
// only for message text, never for validation.
type Step struct {
	Kind   StepKind
	I, J   int
	ValueI int
	ValueJ int

	// Pass carries the bubble-sort pass number, or for insertion sort
	// the index of the element being inserted. Boundary carries the
	// selection-sort sorted-boundary index. Both are message metadata.
	Pass     int
	Boundary int
}

// Positions reports whether the unordered pair {a, b} matches the
// step's recorded position pair.
func (s Step) Positions(a, b int) bool {
	return (s.I == a && s.J == b) || (s.I == b && s.J == a)
}

// Plan is the ordered, immutable list of swap steps that a sorting
// algorithm performs on a given input sequence. Applying the steps in
// order to the original sequence yields a non-decreasing sequence.
type Plan []Step

// Apply executes the plan's swaps in order on a copy of seq and returns
// the result. The input is not modified.
func (p Plan) Apply(seq []int) []int {
	out := append([]int(nil), seq...)
	for _, s := range p {
		out[s.I], out[s.J] = out[s.J], out[s.I]
	}
	return out
}
