package ledger

import "github.com/luca-patrignani/leduc-holdem/domain/poker"

// Block is a single judged hand linked to the previous one by its hash.
type Block struct {
	Index     int        `json:"index"`
	Timestamp int64      `json:"timestamp"`
	PrevHash  string     `json:"prev_hash"`
	Hash      string     `json:"hash"`
	Hand      HandRecord `json:"hand"`
}

// HandRecord is the outcome of a hand in log form. Cards use the two-letter
// text form of poker.ParseCard; Public is empty when the hand ended before
// the public card was revealed.
type HandRecord struct {
	Players []string  `json:"players,omitempty"`
	Hands   []string  `json:"hands"`
	Public  string    `json:"public_card,omitempty"`
	InChips []uint    `json:"in_chips"`
	Folded  []bool    `json:"folded"`
	Winners []int     `json:"winners"`
	Payoffs []float64 `json:"payoffs"`
}

// NewHandRecord captures the judged players, the public card and the outcome.
func NewHandRecord(players []poker.Player, public *poker.Card, o poker.Outcome) HandRecord {
	r := HandRecord{
		Players: make([]string, len(players)),
		Hands:   make([]string, len(players)),
		InChips: make([]uint, len(players)),
		Folded:  make([]bool, len(players)),
		Winners: append([]int(nil), o.Winners...),
		Payoffs: append([]float64(nil), o.Payoffs...),
	}
	for i, p := range players {
		r.Players[i] = p.Name
		r.Hands[i] = p.Hand.String()
		r.InChips[i] = p.InChips
		r.Folded[i] = p.HasFolded()
	}
	if public != nil {
		r.Public = public.String()
	}
	return r
}
