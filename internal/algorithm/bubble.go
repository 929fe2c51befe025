package algorithm

import "fmt"

func init() {
	register(variant{
		desc: Descriptor{
			ID:          "bubble",
			Name:        "Bubble Sort",
			Description: "Repeatedly swap adjacent elements that are out of order.",
			Rules: []string{
				"Compare neighbouring elements from left to right.",
				"Swap them when the left one is greater than the right one.",
				"After each pass the largest remaining element settles at the end.",
				"Stop when a full pass needs no swap.",
			},
		},
		simulate:  simulateBubble,
		hint:      bubbleHint,
		wrongMove: bubbleWrongMove,
	})
}

// simulateBubble records the swaps of a classic adjacent-pair bubble
// sort with early termination. Comparisons that need no swap are not
// recorded; only actual swaps become steps.
func simulateBubble(seq []int) Plan {
	a := append([]int(nil), seq...)
	n := len(a)

	var plan Plan
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for i := 0; i < n-1-pass; i++ {
			if a[i] > a[i+1] {
				plan = append(plan, Step{
					Kind:   StepSwap,
					I:      i,
					J:      i + 1,
					ValueI: a[i],
					ValueJ: a[i+1],
					Pass:   pass + 1,
				})
				a[i], a[i+1] = a[i+1], a[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return plan
}

func bubbleHint(s Step) string {
	return fmt.Sprintf("Pass %d: swap %d and %d at positions %d and %d, because %d > %d.",
		s.Pass, s.ValueI, s.ValueJ, s.I, s.J, s.ValueI, s.ValueJ)
}

func bubbleWrongMove(s Step, a, b int) string {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff != 1 {
		return fmt.Sprintf("Bubble sort only swaps adjacent elements. Positions %d and %d are not next to each other.", a, b)
	}
	return fmt.Sprintf("Not that pair. Bubble sort now swaps positions %d and %d, because %d > %d.",
		s.I, s.J, s.ValueI, s.ValueJ)
}
