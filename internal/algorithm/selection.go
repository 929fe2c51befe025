package algorithm

import "fmt"

func init() {
	register(variant{
		desc: Descriptor{
			ID:          "selection",
			Name:        "Selection Sort",
			Description: "Move the minimum of the unsorted part to its final position.",
			Rules: []string{
				"Find the smallest element in the unsorted part of the sequence.",
				"Swap it with the first element of the unsorted part.",
				"The sorted prefix grows by one position each round.",
				"If the minimum is already in place, no swap is needed.",
			},
		},
		simulate:  simulateSelection,
		hint:      selectionHint,
		wrongMove: selectionWrongMove,
	})
}

// simulateSelection records one swap per boundary position, skipping
// boundaries where the minimum is already in place. Ties break to the
// first occurrence (strict < comparison).
func simulateSelection(seq []int) Plan {
	a := append([]int(nil), seq...)
	n := len(a)

	var plan Plan
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if a[j] < a[min] {
				min = j
			}
		}
		if min != i {
			plan = append(plan, Step{
				Kind:     StepSwap,
				I:        i,
				J:        min,
				ValueI:   a[i],
				ValueJ:   a[min],
				Boundary: i,
			})
			a[i], a[min] = a[min], a[i]
		}
	}
	return plan
}

func selectionHint(s Step) string {
	return fmt.Sprintf("Move the minimum %d to position %d: swap positions %d and %d.",
		s.ValueJ, s.Boundary, s.I, s.J)
}

// The explanation is always phrased in terms of moving the minimum,
// even when the rejected move was unrelated to it.
func selectionWrongMove(s Step, a, b int) string {
	return fmt.Sprintf("Selection sort moves the minimum of the unsorted part to position %d. Swap positions %d and %d instead.",
		s.Boundary, s.I, s.J)
}
