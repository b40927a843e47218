package poker

import (
	"fmt"
	"slices"
	"sort"
)

// Judger decides the winners of a finished hand and how the pot is shared.
//
// Only two showdown tiers exist: a hole card pairing the public card beats
// any unpaired hole card, and within a tier the higher score wins. The score
// encodes rank first and suit second, so suit breaks rank ties.
type Judger struct {
	rankOrder map[Rank]int
	suitOrder map[Suit]int
}

// NewJudger creates a Judger with the rank and suit order tables.
func NewJudger() *Judger {
	j := &Judger{
		rankOrder: make(map[Rank]int, 13),
		suitOrder: make(map[Suit]int, 4),
	}
	for i, r := range Ranks() {
		j.rankOrder[r] = i
	}
	for i, s := range Suits() {
		j.suitOrder[s] = i
	}
	return j
}

// Score returns rank_index*4 + suit_index, a distinct value for each of the
// 52 cards. A higher score is a better high card.
func (j *Judger) Score(c Card) (int, error) {
	r, ok := j.rankOrder[c.rank]
	if !ok {
		return 0, fmt.Errorf("%w %d in card %s", ErrUnknownRank, c.rank, c)
	}
	s, ok := j.suitOrder[c.suit]
	if !ok {
		return 0, fmt.Errorf("%w %d in card %s", ErrUnknownSuit, c.suit, c)
	}
	return r*4 + s, nil
}

// JudgeGame returns one payoff per player for the finished hand. public is
// nil when the hand ended before the public card was revealed.
func (j *Judger) JudgeGame(players []Player, public *Card) ([]float64, error) {
	o, err := j.Judge(players, public)
	if err != nil {
		return nil, err
	}
	return o.Payoffs, nil
}

// Judge evaluates the finished hand and returns the winner set together
// with the payoffs. The rules are tried in order:
//
//  1. a single non-folded player takes the pot
//  2. without a public card the best hole card wins
//  3. with a public card, pairs beat high cards and the best card of the
//     strongest tier wins
//
// Winners with equal scores split the pot evenly. Folded players' chips stay
// in the pot. Players are never modified.
func (j *Judger) Judge(players []Player, public *Card) (Outcome, error) {
	if len(players) == 0 {
		return Outcome{}, ErrNoPlayers
	}
	if err := j.validate(players, public); err != nil {
		return Outcome{}, err
	}

	winners, err := j.winners(players, public)
	if err != nil {
		return Outcome{}, err
	}
	payoffs, err := calculatePayoffs(winners, players)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Winners: winners, Payoffs: payoffs}, nil
}

// validate checks every card the decision depends on before any rule runs.
func (j *Judger) validate(players []Player, public *Card) error {
	if public != nil {
		if _, err := j.Score(*public); err != nil {
			return fmt.Errorf("public card: %w", err)
		}
	}
	for i, p := range players {
		if p.HasFolded() {
			continue
		}
		if _, err := j.Score(p.Hand); err != nil {
			return fmt.Errorf("player %d (%s): %w", i, p.Name, err)
		}
	}
	return nil
}

type scored struct {
	idx   int
	score int
}

func (j *Judger) winners(players []Player, public *Card) ([]int, error) {
	var alive []scored
	for i, p := range players {
		if p.HasFolded() {
			continue
		}
		score, err := j.Score(p.Hand)
		if err != nil {
			return nil, err
		}
		alive = append(alive, scored{idx: i, score: score})
	}

	// everybody else folded
	if len(alive) == 1 {
		return []int{alive[0].idx}, nil
	}

	if public == nil {
		return best(alive), nil
	}

	var paired, unpaired []scored
	for _, s := range alive {
		if players[s.idx].Hand.rank == public.rank {
			paired = append(paired, s)
		} else {
			unpaired = append(unpaired, s)
		}
	}
	if len(paired) > 0 {
		return best(paired), nil
	}
	return best(unpaired), nil
}

// best returns the indexes holding the maximum score of the group.
func best(group []scored) []int {
	if len(group) == 0 {
		return nil
	}

	// sort by score descending
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].score > group[j].score
	})

	winners := []int{group[0].idx}
	for i := 1; i < len(group); i++ {
		if group[i].score != group[0].score {
			break
		}
		winners = append(winners, group[i].idx)
	}
	slices.Sort(winners)
	return winners
}

// calculatePayoffs shares the whole pot among the winners. Every payoff is
// the share won minus the chips put in, so the payoffs sum to zero.
func calculatePayoffs(winners []int, players []Player) ([]float64, error) {
	if len(winners) == 0 {
		return nil, ErrNoWinner
	}

	var total uint
	for _, p := range players {
		total += p.InChips
	}
	share := float64(total) / float64(len(winners))

	payoffs := make([]float64, len(players))
	for i, p := range players {
		payoffs[i] = -float64(p.InChips)
	}
	for _, w := range winners {
		payoffs[w] += share
	}
	return payoffs, nil
}
