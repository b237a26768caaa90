package model

// Boost is one matched boost for a driver or team. Recomputed on every pass,
// never persisted.
type Boost struct {
	EntityID      int
	Boosted       int // 1 for drivers and single team boosts, 2 for doubles
	ManuallyFixed bool
	Cancelled     bool
}

// Single and double boost amounts.
const (
	BoostSingle = 1
	BoostDouble = 2
)

// Record is a message surfaced for human triage: deadline violations and
// messages unrelated to the selected race. Dates are pre-formatted for display.
type Record struct {
	Title  string
	Sender string
	Date   string
	Body   string
}

// UnmatchedMessage is a boost-looking message the engine could not match.
// Reason is a human-readable explanation; ID keys the fix-up override.
type UnmatchedMessage struct {
	ID     string
	Title  string
	Sender string
	Date   string
	Body   string
	Reason string
}
