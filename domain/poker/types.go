package poker

import "errors"

// Status is the state of a seat at the end of a hand.
type Status string

const (
	StatusActive Status = "alive"
	StatusFolded Status = "folded"
)

// Player is the terminal view of a seat that the Judger reads.
type Player struct {
	Name    string
	Hand    Card
	Status  Status
	InChips uint // chips put in the pot during the hand
}

// HasFolded reports whether the player gave up the hand.
func (p Player) HasFolded() bool {
	return p.Status == StatusFolded
}

// Outcome is the result of judging a finished hand.
type Outcome struct {
	Winners []int     // indexes into the judged players, ascending
	Payoffs []float64 // one entry per judged player
}

// Errors returned by the Judger.
var (
	ErrNoPlayers   = errors.New("no players to judge")
	ErrNoWinner    = errors.New("empty winner set")
	ErrUnknownRank = errors.New("unrecognized rank")
	ErrUnknownSuit = errors.New("unrecognized suit")
)
