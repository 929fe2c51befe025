package session

import (
	"errors"
	"testing"
	"time"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/algorithm"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/config"
)

func TestStartNewGame(t *testing.T) {
	s := New(Options{Seed: 42})

	res, err := s.StartNewGame("bubble")
	if err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}

	if s.State() != StatePlaying {
		t.Errorf("state = %s, want playing", s.State())
	}
	if res.Algorithm.ID != "bubble" {
		t.Errorf("algorithm = %s, want bubble", res.Algorithm.ID)
	}
	if len(res.Sequence) < 5 || len(res.Sequence) > 7 {
		t.Errorf("sequence length = %d, want 5-7", len(res.Sequence))
	}
	if res.TotalSteps == 0 {
		t.Error("TotalSteps = 0; generated sequence should never start sorted")
	}
	if res.Hint == "" {
		t.Error("empty first hint")
	}

	// The returned sequence is a copy.
	res.Sequence[0] = -99
	if s.Snapshot().Sequence[0] == -99 {
		t.Error("StartResult.Sequence aliases the live sequence")
	}
}

func TestStartNewGameRandomAlgorithm(t *testing.T) {
	s := New(Options{Seed: 7})

	res, err := s.StartNewGame("")
	if err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}

	if !algorithm.Exists(res.Algorithm.ID) {
		t.Errorf("random algorithm %q is not registered", res.Algorithm.ID)
	}
}

func TestStartNewGameUnknownAlgorithm(t *testing.T) {
	s := New(Options{Seed: 42})
	if _, err := s.StartNewGame("bubble"); err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}
	before := s.Snapshot()

	_, err := s.StartNewGame("quicksort")
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if !errors.Is(err, algorithm.ErrUnknown) {
		t.Errorf("error = %v, want ErrUnknown", err)
	}

	// Prior game is untouched.
	after := s.Snapshot()
	if after.State != before.State || after.Algorithm.ID != before.Algorithm.ID {
		t.Error("failed start mutated the prior session")
	}
	for i := range before.Sequence {
		if after.Sequence[i] != before.Sequence[i] {
			t.Fatalf("failed start mutated the sequence: %v vs %v", after.Sequence, before.Sequence)
		}
	}
}

func TestChangeAlgorithm(t *testing.T) {
	s := New(Options{Seed: 42})
	if _, err := s.StartNewGame("bubble"); err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}

	res, err := s.ChangeAlgorithm("insertion")
	if err != nil {
		t.Fatalf("ChangeAlgorithm() failed: %v", err)
	}
	if res.Algorithm.ID != "insertion" {
		t.Errorf("algorithm = %s, want insertion", res.Algorithm.ID)
	}

	if _, err := s.ChangeAlgorithm("quicksort"); !errors.Is(err, algorithm.ErrUnknown) {
		t.Errorf("ChangeAlgorithm(quicksort) error = %v, want ErrUnknown", err)
	}
	if s.Algorithm().ID != "insertion" {
		t.Error("failed change discarded the prior game")
	}
}

func TestSelectToggle(t *testing.T) {
	s := New(Options{Seed: 42})
	if _, err := s.StartNewGame("bubble"); err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}

	res := s.SelectElement(2)
	if !res.OK || res.Action != ActionSelected {
		t.Fatalf("first select = %+v, want selected", res)
	}
	if s.Snapshot().SelectedIndex != 2 {
		t.Errorf("SelectedIndex = %d, want 2", s.Snapshot().SelectedIndex)
	}

	res = s.SelectElement(2)
	if !res.OK || res.Action != ActionDeselected {
		t.Fatalf("second select = %+v, want deselected", res)
	}
	if s.Snapshot().SelectedIndex != noSelection {
		t.Error("selection not cleared after toggle")
	}

	if s.Stats().TotalMoves != 0 {
		t.Errorf("toggling selection counted %d moves, want 0", s.Stats().TotalMoves)
	}
}

func TestSelectInvalid(t *testing.T) {
	s := New(Options{Seed: 42})

	// Idle session accepts no selection.
	if res := s.SelectElement(0); res.OK {
		t.Error("SelectElement succeeded on idle session")
	}

	if _, err := s.StartNewGame("bubble"); err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}

	for _, idx := range []int{-1, 99} {
		res := s.SelectElement(idx)
		if res.OK {
			t.Errorf("SelectElement(%d) succeeded, want failure", idx)
		}
		if res.Message == "" {
			t.Errorf("SelectElement(%d) failure has no message", idx)
		}
	}
	if s.Stats().TotalMoves != 0 {
		t.Error("invalid selections counted as moves")
	}
}

func TestBubbleScenario(t *testing.T) {
	// [5,3,4] under bubble sort: swap(0,1), then swap(1,2).
	s := New(Options{Seed: 1})
	if _, err := s.startWith("bubble", []int{5, 3, 4}); err != nil {
		t.Fatalf("startWith() failed: %v", err)
	}

	if got := s.Progress().Total; got != 2 {
		t.Fatalf("plan length = %d, want 2", got)
	}

	// Correct first move.
	s.SelectElement(0)
	res := s.SelectElement(1)
	if res.Move == nil || !res.Move.Correct {
		t.Fatalf("swap(0,1) rejected: %+v", res)
	}
	snap := s.Snapshot()
	for i, want := range []int{3, 5, 4} {
		if snap.Sequence[i] != want {
			t.Fatalf("after swap(0,1) sequence = %v, want [3 5 4]", snap.Sequence)
		}
	}
	if snap.Progress.Completed != 1 {
		t.Errorf("cursor = %d, want 1", snap.Progress.Completed)
	}

	// Incorrect second move.
	s.SelectElement(0)
	res = s.SelectElement(2)
	if res.Move == nil || res.Move.Correct {
		t.Fatalf("swap(0,2) accepted: %+v", res)
	}
	if len(res.Move.Expected) != 2 || res.Move.Expected[0] != 1 || res.Move.Expected[1] != 2 {
		t.Errorf("Expected = %v, want [1 2]", res.Move.Expected)
	}
	if s.Progress().Completed != 1 {
		t.Error("incorrect move advanced the cursor")
	}

	// Correct final move completes the game.
	s.SelectElement(1)
	res = s.SelectElement(2)
	if res.Move == nil || !res.Move.Correct || !res.Move.Completed {
		t.Fatalf("swap(1,2) did not complete the game: %+v", res)
	}
	if s.State() != StateCompleted {
		t.Errorf("state = %s, want completed", s.State())
	}
	if !s.IsSorted() {
		t.Error("completed game is not sorted")
	}

	stats := s.Stats()
	if stats.TotalMoves != 3 || stats.CorrectMoves != 2 || stats.IncorrectMoves != 1 {
		t.Errorf("stats = %+v, want 3 total, 2 correct, 1 incorrect", stats)
	}
	if stats.Efficiency != 67 {
		t.Errorf("efficiency = %d, want 67", stats.Efficiency)
	}
}

func TestSelectionScenario(t *testing.T) {
	// [4,1,3] under selection sort: swap(0,1), then swap(1,2).
	s := New(Options{Seed: 1})
	if _, err := s.startWith("selection", []int{4, 1, 3}); err != nil {
		t.Fatalf("startWith() failed: %v", err)
	}

	moves := [][2]int{{0, 1}, {1, 2}}
	for _, m := range moves {
		s.SelectElement(m[0])
		res := s.SelectElement(m[1])
		if res.Move == nil || !res.Move.Correct {
			t.Fatalf("swap(%d,%d) rejected: %+v", m[0], m[1], res)
		}
	}

	snap := s.Snapshot()
	for i, want := range []int{1, 3, 4} {
		if snap.Sequence[i] != want {
			t.Fatalf("final sequence = %v, want [1 3 4]", snap.Sequence)
		}
	}
	if snap.State != StateCompleted {
		t.Errorf("state = %s, want completed", snap.State)
	}
}

func TestReplayPlanCompletes(t *testing.T) {
	for _, id := range algorithm.IDs() {
		t.Run(id, func(t *testing.T) {
			s := New(Options{Seed: 99})
			if _, err := s.StartNewGame(id); err != nil {
				t.Fatalf("StartNewGame() failed: %v", err)
			}

			lastPct := 0
			for {
				snap := s.Snapshot()
				if snap.Expected == nil {
					break
				}
				s.SelectElement(snap.Expected.I)
				res := s.SelectElement(snap.Expected.J)
				if res.Move == nil || !res.Move.Correct {
					t.Fatalf("plan replay rejected swap(%d,%d): %+v", snap.Expected.I, snap.Expected.J, res)
				}
				if res.Move.Progress.Percentage < lastPct {
					t.Fatalf("percentage went backwards: %d -> %d", lastPct, res.Move.Progress.Percentage)
				}
				lastPct = res.Move.Progress.Percentage
			}

			if s.State() != StateCompleted {
				t.Errorf("state = %s, want completed", s.State())
			}
			if !s.IsSorted() {
				t.Error("replayed game is not sorted")
			}
			p := s.Progress()
			if p.Completed != p.Total || p.Remaining != 0 {
				t.Errorf("progress = %+v, want fully completed", p)
			}
			if s.Stats().Efficiency != 100 {
				t.Errorf("efficiency = %d, want 100", s.Stats().Efficiency)
			}
		})
	}
}

func TestWrongMoveChangesNothing(t *testing.T) {
	s := New(Options{Seed: 1})
	if _, err := s.startWith("bubble", []int{5, 3, 4}); err != nil {
		t.Fatalf("startWith() failed: %v", err)
	}
	before := s.Snapshot()

	s.SelectElement(0)
	res := s.SelectElement(2)
	if res.Move == nil || res.Move.Correct {
		t.Fatalf("expected rejected move, got %+v", res)
	}

	after := s.Snapshot()
	for i := range before.Sequence {
		if after.Sequence[i] != before.Sequence[i] {
			t.Fatal("rejected move mutated the sequence")
		}
	}
	if after.Progress.Completed != before.Progress.Completed {
		t.Error("rejected move advanced the cursor")
	}
	if after.Progress.Percentage != before.Progress.Percentage {
		t.Error("rejected move changed the percentage")
	}
	if after.SelectedIndex != noSelection {
		t.Error("selection survived the rejected swap")
	}
	if res.Move.Message == "" || res.Move.Hint == "" {
		t.Error("rejected move carries no guidance")
	}
}

func TestStatsInvariant(t *testing.T) {
	s := New(Options{Seed: 3})
	if _, err := s.startWith("insertion", []int{9, 2, 7, 1}); err != nil {
		t.Fatalf("startWith() failed: %v", err)
	}

	// Mix of correct and incorrect attempts.
	attempts := [][2]int{{2, 3}, {0, 1}, {0, 3}, {1, 2}}
	for _, m := range attempts {
		s.SelectElement(m[0])
		s.SelectElement(m[1])

		stats := s.Stats()
		if stats.TotalMoves != stats.CorrectMoves+stats.IncorrectMoves {
			t.Fatalf("stats invariant broken: %+v", stats)
		}
	}
}

func TestCompletedGameAcceptsNoMoves(t *testing.T) {
	s := New(Options{Seed: 1})
	if _, err := s.startWith("bubble", []int{2, 1}); err != nil {
		t.Fatalf("startWith() failed: %v", err)
	}

	s.SelectElement(0)
	res := s.SelectElement(1)
	if res.Move == nil || !res.Move.Completed {
		t.Fatalf("single swap should complete the game: %+v", res)
	}

	if res := s.SelectElement(0); res.OK {
		t.Error("completed session accepted a selection")
	}

	stats := s.Stats()
	if stats.TotalMoves != 1 {
		t.Errorf("stats mutated after completion: %+v", stats)
	}
}

func TestEmptyPlanCompletesOnAttempt(t *testing.T) {
	// A caller-supplied sorted sequence yields an empty plan; the first
	// attempt confirms the sort and wins immediately.
	s := New(Options{Seed: 1})
	if _, err := s.startWith("bubble", []int{1, 2, 3}); err != nil {
		t.Fatalf("startWith() failed: %v", err)
	}
	if s.Progress().Total != 0 {
		t.Fatalf("plan length = %d, want 0", s.Progress().Total)
	}
	if s.Progress().Percentage != 0 {
		t.Errorf("empty-plan percentage = %d, want 0", s.Progress().Percentage)
	}

	s.SelectElement(0)
	res := s.SelectElement(1)
	if res.Move == nil || !res.Move.Correct || !res.Move.Completed {
		t.Fatalf("attempt on sorted exhausted plan = %+v, want success", res)
	}
	if s.State() != StateCompleted {
		t.Errorf("state = %s, want completed", s.State())
	}
}

func TestDurationFreezesAtCompletion(t *testing.T) {
	current := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(Options{Seed: 1, Now: func() time.Time { return current }})

	if _, err := s.startWith("bubble", []int{2, 1}); err != nil {
		t.Fatalf("startWith() failed: %v", err)
	}

	current = current.Add(5 * time.Second)
	if got := s.Stats().DurationSeconds; got != 5 {
		t.Errorf("playing duration = %d, want 5", got)
	}

	s.SelectElement(0)
	s.SelectElement(1)
	if s.State() != StateCompleted {
		t.Fatal("game did not complete")
	}

	current = current.Add(30 * time.Second)
	if got := s.Stats().DurationSeconds; got != 5 {
		t.Errorf("completed duration = %d, want frozen at 5", got)
	}
}

func TestEfficiencyWithNoMoves(t *testing.T) {
	s := New(Options{Seed: 1})
	if s.Stats().Efficiency != 100 {
		t.Errorf("idle efficiency = %d, want 100", s.Stats().Efficiency)
	}
}

func TestSnapshotDefensiveCopy(t *testing.T) {
	s := New(Options{Seed: 42})
	if _, err := s.StartNewGame("selection"); err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}

	snap := s.Snapshot()
	snap.Sequence[0] = -99

	if s.Snapshot().Sequence[0] == -99 {
		t.Error("Snapshot.Sequence aliases the live sequence")
	}
}

func TestCustomSequenceConfig(t *testing.T) {
	s := New(Options{
		Seed:     11,
		Sequence: config.SequenceConfig{MinCount: 9, MaxCount: 9, MinValue: 1, MaxValue: 9},
	})

	res, err := s.StartNewGame("insertion")
	if err != nil {
		t.Fatalf("StartNewGame() failed: %v", err)
	}
	if len(res.Sequence) != 9 {
		t.Errorf("sequence length = %d, want 9", len(res.Sequence))
	}
}
