package algorithm

import "fmt"

func init() {
	register(variant{
		desc: Descriptor{
			ID:          "insertion",
			Name:        "Insertion Sort",
			Description: "Shift each element left, one swap at a time, until it fits.",
			Rules: []string{
				"Take the next unsorted element, from left to right.",
				"Swap it with its left neighbour while the neighbour is greater.",
				"Stop shifting once the left neighbour is not greater.",
				"The prefix to the left of the current element stays sorted.",
			},
		},
		simulate:  simulateInsertion,
		hint:      insertionHint,
		wrongMove: insertionWrongMove,
	})
}

// simulateInsertion records one step per single-position swap: an
// element that must move k positions left generates k steps.
func simulateInsertion(seq []int) Plan {
	a := append([]int(nil), seq...)
	n := len(a)

	var plan Plan
	for i := 1; i < n; i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			plan = append(plan, Step{
				Kind:   StepSwap,
				I:      j - 1,
				J:      j,
				ValueI: a[j-1],
				ValueJ: a[j],
				Pass:   i,
			})
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
	return plan
}

func insertionHint(s Step) string {
	return fmt.Sprintf("Shift %d one position left: swap positions %d and %d, because %d > %d.",
		s.ValueJ, s.I, s.J, s.ValueI, s.ValueJ)
}

func insertionWrongMove(s Step, a, b int) string {
	return fmt.Sprintf("Insertion sort shifts the current element left one step at a time. Swap positions %d and %d instead.",
		s.I, s.J)
}
