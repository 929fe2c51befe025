// Package session owns the mutable per-game state of the sorting
// trainer: the live sequence, the step plan, the cursor into it, the
// pending selection and the move statistics. Sessions are constructed
// independently, so multiple games and tests run in isolation without
// shared state. All gameplay failures are structured results; the only
// error a session returns is an unrecognized algorithm identifier.
package session

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/algorithm"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/config"
)

// noSelection marks an empty selectedIndex.
const noSelection = -1

// Options configures a new session.
type Options struct {
	// Seed seeds the RNG for sequence generation and random algorithm
	// choice. 0 means seed from the current time.
	Seed int64

	// Sequence overrides the sequence generation ranges.
	// The zero value means the defaults (5-7 values in [1,20]).
	Sequence config.SequenceConfig

	// Now overrides the clock, for tests. nil means time.Now.
	Now func() time.Time
}

// Session is a single trainer game. Not safe for concurrent use; each
// caller holds its own instance.
type Session struct {
	state     State
	sequence  []int
	original  []int
	algorithm algorithm.Descriptor
	plan      algorithm.Plan
	cursor    int
	selected  int

	totalMoves     int
	correctMoves   int
	incorrectMoves int
	startedAt      time.Time
	endedAt        time.Time

	rng    *rand.Rand
	seqCfg config.SequenceConfig
	now    func() time.Time
}

// New creates an idle session. Call StartNewGame to begin playing.
func New(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	seqCfg := opts.Sequence
	if seqCfg == (config.SequenceConfig{}) {
		seqCfg = config.DefaultTrainerConfig().Sequence
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Session{
		state:    StateIdle,
		selected: noSelection,
		rng:      rand.New(rand.NewSource(seed)),
		seqCfg:   seqCfg,
		now:      now,
	}
}

// StartNewGame resets all state and begins a fresh game. An empty
// algorithmID picks one uniformly at random among the registered
// algorithms. An unrecognized ID is an error and leaves any prior
// game untouched.
func (s *Session) StartNewGame(algorithmID string) (StartResult, error) {
	if algorithmID == "" {
		ids := algorithm.IDs()
		if len(ids) == 0 {
			return StartResult{}, fmt.Errorf("session: no algorithms registered")
		}
		algorithmID = ids[s.rng.Intn(len(ids))]
	}

	if _, err := algorithm.Lookup(algorithmID); err != nil {
		return StartResult{}, err
	}

	return s.startWith(algorithmID, generateSequence(s.rng, s.seqCfg))
}

// startWith begins a game over a caller-supplied sequence. Any failure
// leaves the prior game untouched.
func (s *Session) startWith(algorithmID string, seq []int) (StartResult, error) {
	desc, err := algorithm.Lookup(algorithmID)
	if err != nil {
		return StartResult{}, err
	}

	plan, err := algorithm.GeneratePlan(algorithmID, seq)
	if err != nil {
		return StartResult{}, err
	}

	s.state = StatePlaying
	s.sequence = seq
	s.original = append([]int(nil), seq...)
	s.algorithm = desc
	s.plan = plan
	s.cursor = 0
	s.selected = noSelection
	s.totalMoves = 0
	s.correctMoves = 0
	s.incorrectMoves = 0
	s.startedAt = s.now()
	s.endedAt = time.Time{}

	return StartResult{
		Sequence:   append([]int(nil), seq...),
		Algorithm:  desc,
		TotalSteps: len(plan),
		Hint:       algorithm.DescribeHint(desc.ID, s.expectedStep()),
	}, nil
}

// ChangeAlgorithm starts a new game with the given algorithm. Unlike
// StartNewGame the identifier is mandatory.
func (s *Session) ChangeAlgorithm(algorithmID string) (StartResult, error) {
	if _, err := algorithm.Lookup(algorithmID); err != nil {
		return StartResult{}, err
	}
	return s.StartNewGame(algorithmID)
}

// SelectElement handles a click on the element at index. The first
// selection is remembered; selecting it again clears it; selecting a
// different index consumes the selection and attempts the swap.
func (s *Session) SelectElement(index int) SelectResult {
	if s.state != StatePlaying {
		return SelectResult{
			OK:      false,
			Index:   index,
			Message: "No active game. Start a new game first.",
		}
	}
	if index < 0 || index >= len(s.sequence) {
		return SelectResult{
			OK:      false,
			Index:   index,
			Message: fmt.Sprintf("Position %d is outside the sequence.", index),
		}
	}

	switch {
	case s.selected == noSelection:
		s.selected = index
		return SelectResult{OK: true, Action: ActionSelected, Index: index}

	case s.selected == index:
		s.selected = noSelection
		return SelectResult{OK: true, Action: ActionDeselected, Index: index}

	default:
		// The selection is consumed regardless of the swap outcome.
		a := s.selected
		s.selected = noSelection
		move := s.attemptSwap(a, index)
		return SelectResult{OK: true, Action: ActionSwap, Index: index, Move: &move}
	}
}

// attemptSwap validates the pair {a, b} against the step at the
// cursor. Every attempt counts toward totalMoves, win or lose.
func (s *Session) attemptSwap(a, b int) MoveResult {
	if s.state != StatePlaying {
		return MoveResult{Message: "No active game."}
	}

	s.totalMoves++

	step := s.expectedStep()
	if step == nil {
		// Plan exhausted. If the sequence is sorted the game is won;
		// otherwise the attempt is rejected without touching anything
		// beyond the move count.
		if s.IsSorted() {
			s.complete()
			return MoveResult{
				Correct:   true,
				Completed: true,
				A:         a,
				B:         b,
				Message:   "The sequence is sorted!",
				Hint:      algorithm.DescribeHint(s.algorithm.ID, nil),
				Progress:  s.Progress(),
			}
		}
		return MoveResult{
			A:        a,
			B:        b,
			Message:  algorithm.DescribeError(s.algorithm.ID, nil, a, b),
			Hint:     algorithm.DescribeHint(s.algorithm.ID, nil),
			Progress: s.Progress(),
		}
	}

	if !algorithm.ValidateMove(step, a, b) {
		s.incorrectMoves++
		return MoveResult{
			A:        a,
			B:        b,
			Expected: []int{step.I, step.J},
			Message:  algorithm.DescribeError(s.algorithm.ID, step, a, b),
			Hint:     algorithm.DescribeHint(s.algorithm.ID, step),
			Progress: s.Progress(),
		}
	}

	s.correctMoves++
	s.sequence[step.I], s.sequence[step.J] = s.sequence[step.J], s.sequence[step.I]
	s.cursor++

	if s.cursor == len(s.plan) {
		s.complete()
	}

	return MoveResult{
		Correct:   true,
		Completed: s.state == StateCompleted,
		A:         step.I,
		B:         step.J,
		Message:   fmt.Sprintf("Correct! Swapped %d and %d.", step.ValueI, step.ValueJ),
		Hint:      algorithm.DescribeHint(s.algorithm.ID, s.expectedStep()),
		Progress:  s.Progress(),
	}
}

// complete transitions to the terminal state and freezes the clock.
func (s *Session) complete() {
	s.state = StateCompleted
	if s.endedAt.IsZero() {
		s.endedAt = s.now()
	}
}

// expectedStep returns the step at the cursor, or nil when the plan is
// exhausted.
func (s *Session) expectedStep() *algorithm.Step {
	if s.cursor < 0 || s.cursor >= len(s.plan) {
		return nil
	}
	step := s.plan[s.cursor]
	return &step
}

// IsSorted reports whether the live sequence is currently
// non-decreasing. Recomputed on demand, independent of the plan.
func (s *Session) IsSorted() bool {
	return sorted(s.sequence)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Algorithm returns the descriptor of the current game's algorithm.
func (s *Session) Algorithm() algorithm.Descriptor {
	return s.algorithm
}

// Progress reports how far through the plan the game is. Percentage is
// 0 for an empty plan.
func (s *Session) Progress() Progress {
	total := len(s.plan)
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(s.cursor) / float64(total)))
	}
	return Progress{
		Completed:  s.cursor,
		Total:      total,
		Percentage: pct,
		Remaining:  total - s.cursor,
	}
}

// Stats returns the move counters plus derived duration and
// efficiency. Duration keeps counting while playing and freezes at
// completion.
func (s *Session) Stats() Stats {
	duration := 0
	switch {
	case !s.endedAt.IsZero():
		duration = int(s.endedAt.Sub(s.startedAt).Seconds())
	case !s.startedAt.IsZero():
		duration = int(s.now().Sub(s.startedAt).Seconds())
	}

	efficiency := 100
	if s.totalMoves > 0 {
		efficiency = int(math.Round(100 * float64(s.correctMoves) / float64(s.totalMoves)))
	}

	return Stats{
		TotalMoves:      s.totalMoves,
		CorrectMoves:    s.correctMoves,
		IncorrectMoves:  s.incorrectMoves,
		DurationSeconds: duration,
		Efficiency:      efficiency,
	}
}

// Snapshot returns a read-only composite of the whole session for the
// presentation layer.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:         s.state,
		Sequence:      append([]int(nil), s.sequence...),
		Algorithm:     s.algorithm,
		SelectedIndex: s.selected,
		Progress:      s.Progress(),
		Stats:         s.Stats(),
		Hint:          algorithm.DescribeHint(s.algorithm.ID, s.expectedStep()),
		Expected:      s.expectedStep(),
	}
}
