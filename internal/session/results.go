package session

import "github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/algorithm"

// State represents the lifecycle state of a session.
type State string

const (
	StateIdle      State = "idle"
	StatePlaying   State = "playing"
	StateCompleted State = "completed"

	// StatePaused is reserved. No transition enters or leaves it.
	StatePaused State = "paused"
)

// Action describes what a SelectElement call did.
type Action string

const (
	ActionSelected   Action = "selected"
	ActionDeselected Action = "deselected"
	ActionSwap       Action = "swap"
)

// StartResult is returned by StartNewGame and ChangeAlgorithm.
type StartResult struct {
	Sequence   []int
	Algorithm  algorithm.Descriptor
	TotalSteps int
	Hint       string
}

// SelectResult is returned by SelectElement. OK is false for invalid
// input (wrong state, out-of-range index); gameplay outcomes are never
// errors. Move is set only when Action is ActionSwap.
type SelectResult struct {
	OK      bool
	Action  Action
	Index   int
	Message string
	Move    *MoveResult
}

// MoveResult is the outcome of one swap attempt.
type MoveResult struct {
	Correct   bool
	Completed bool

	// A and B are the swapped positions on success, or the attempted
	// positions on a rejected move.
	A, B int

	// Expected holds the positions the plan required, for highlighting.
	// Set only on a rejected move.
	Expected []int

	Message  string
	Hint     string
	Progress Progress
}

// Progress is a snapshot of how far through the plan the game is.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
	Remaining  int
}

// Stats holds the per-game counters and derived figures.
// Efficiency is the percentage of attempted swaps that were correct;
// with no moves made it is vacuously 100.
type Stats struct {
	TotalMoves      int
	CorrectMoves    int
	IncorrectMoves  int
	DurationSeconds int
	Efficiency      int
}

// Snapshot is a read-only composite of the session state for the
// presentation layer to poll after any mutating call. Sequence is a
// copy; mutating it does not affect the session.
type Snapshot struct {
	State         State
	Sequence      []int
	Algorithm     algorithm.Descriptor
	SelectedIndex int
	Progress      Progress
	Stats         Stats
	Hint          string
	Expected      *algorithm.Step
}
