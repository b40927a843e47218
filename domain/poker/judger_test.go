package poker

import (
	"errors"
	"slices"
	"testing"
)

func mustCard(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func cardPtr(t *testing.T, s string) *Card {
	t.Helper()
	c := mustCard(t, s)
	return &c
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestScore(t *testing.T) {
	j := NewJudger()
	score, err := j.Score(mustCard(t, "SK"))
	if err != nil {
		t.Fatal(err)
	}
	if score != 47 {
		t.Fatalf("expected score(SK) = 47, got %d", score)
	}
	score, err = j.Score(mustCard(t, "CQ"))
	if err != nil {
		t.Fatal(err)
	}
	if score != 40 {
		t.Fatalf("expected score(CQ) = 40, got %d", score)
	}
}

func TestScoreIsBijective(t *testing.T) {
	j := NewJudger()
	seen := make(map[int]Card)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			c, _ := NewCard(s, r)
			score, err := j.Score(c)
			if err != nil {
				t.Fatal(err)
			}
			if score < 0 || score > 51 {
				t.Fatalf("score %d of %s out of range", score, c)
			}
			if other, ok := seen[score]; ok {
				t.Fatalf("%s and %s share score %d", c, other, score)
			}
			seen[score] = c
		}
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 scores, got %d", len(seen))
	}
}

func TestScoreUnknownValues(t *testing.T) {
	j := NewJudger()
	if _, err := j.Score(Card{}); !errors.Is(err, ErrUnknownRank) {
		t.Fatalf("expected ErrUnknownRank, got %v", err)
	}
	if _, err := j.Score(Card{suit: 9, rank: Ace}); !errors.Is(err, ErrUnknownSuit) {
		t.Fatalf("expected ErrUnknownSuit, got %v", err)
	}
}

func TestJudgeGame_PairBeatsHighCard(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "SA"), Status: StatusActive, InChips: 10},
		{Name: "Bob", Hand: mustCard(t, "C2"), Status: StatusActive, InChips: 10},
	}
	o, err := NewJudger().Judge(players, cardPtr(t, "S2"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{1}) {
		t.Fatalf("expected Bob to win, got winners %v", o.Winners)
	}
	if !slices.Equal(o.Payoffs, []float64{-10, 10}) {
		t.Fatalf("expected payoffs [-10 10], got %v", o.Payoffs)
	}
}

func TestJudgeGame_HighCardWins(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "SK"), Status: StatusActive, InChips: 5},
		{Name: "Bob", Hand: mustCard(t, "CQ"), Status: StatusActive, InChips: 5},
	}
	payoffs, err := NewJudger().JudgeGame(players, cardPtr(t, "HA"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(payoffs, []float64{5, -5}) {
		t.Fatalf("expected payoffs [5 -5], got %v", payoffs)
	}
}

func TestJudgeGame_SuitBreaksRankTie(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "C9"), Status: StatusActive, InChips: 3},
		{Name: "Bob", Hand: mustCard(t, "S9"), Status: StatusActive, InChips: 3},
	}
	o, err := NewJudger().Judge(players, cardPtr(t, "D4"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{1}) {
		t.Fatalf("expected spade to win, got winners %v", o.Winners)
	}

	// same without the public card
	o, err = NewJudger().Judge(players, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{1}) {
		t.Fatalf("expected spade to win preflop, got winners %v", o.Winners)
	}
}

func TestJudgeGame_FoldOut(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "SA"), Status: StatusFolded, InChips: 5},
		{Name: "Bob", Hand: mustCard(t, "C2"), Status: StatusActive, InChips: 10},
		{Name: "Carol", Hand: mustCard(t, "HK"), Status: StatusFolded, InChips: 20},
	}
	// the public card pairs nobody and Alice holds the best card, but she folded
	o, err := NewJudger().Judge(players, cardPtr(t, "D7"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{1}) {
		t.Fatalf("expected Bob to take the pot, got winners %v", o.Winners)
	}
	expected := []float64{-5, 35 - 10, -20}
	if !slices.Equal(o.Payoffs, expected) {
		t.Fatalf("expected payoffs %v, got %v", expected, o.Payoffs)
	}
}

func TestJudgeGame_FoldedPlayersStillFundPot(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "S3"), Status: StatusActive, InChips: 4},
		{Name: "Bob", Hand: mustCard(t, "HA"), Status: StatusFolded, InChips: 2},
		{Name: "Carol", Hand: mustCard(t, "D5"), Status: StatusActive, InChips: 4},
	}
	o, err := NewJudger().Judge(players, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{2}) {
		t.Fatalf("expected Carol to win, got winners %v", o.Winners)
	}
	if !slices.Equal(o.Payoffs, []float64{-4, -2, 6}) {
		t.Fatalf("unexpected payoffs %v", o.Payoffs)
	}
}

func TestJudgeGame_PairAmongThreePlayers(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "SA"), Status: StatusActive, InChips: 6},
		{Name: "Bob", Hand: mustCard(t, "D7"), Status: StatusActive, InChips: 6},
		{Name: "Carol", Hand: mustCard(t, "SK"), Status: StatusActive, InChips: 6},
	}
	o, err := NewJudger().Judge(players, cardPtr(t, "H7"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{1}) {
		t.Fatalf("expected the pair to win, got winners %v", o.Winners)
	}
	if !slices.Equal(o.Payoffs, []float64{-6, 12, -6}) {
		t.Fatalf("unexpected payoffs %v", o.Payoffs)
	}
}

func TestJudgeGame_BestPairWins(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "C7"), Status: StatusActive, InChips: 1},
		{Name: "Bob", Hand: mustCard(t, "D7"), Status: StatusActive, InChips: 1},
		{Name: "Carol", Hand: mustCard(t, "SA"), Status: StatusActive, InChips: 1},
	}
	o, err := NewJudger().Judge(players, cardPtr(t, "H7"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{1}) {
		t.Fatalf("expected the diamond pair to win, got winners %v", o.Winners)
	}
}

func TestJudgeGame_ForcedTieSplitsPot(t *testing.T) {
	// a single deck never deals the same card twice, the duplicate forces a tie
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "SA"), Status: StatusActive, InChips: 10},
		{Name: "Bob", Hand: mustCard(t, "SA"), Status: StatusActive, InChips: 20},
	}
	o, err := NewJudger().Judge(players, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{0, 1}) {
		t.Fatalf("expected a tie, got winners %v", o.Winners)
	}
	if !slices.Equal(o.Payoffs, []float64{5, -5}) {
		t.Fatalf("expected payoffs [5 -5], got %v", o.Payoffs)
	}

	players = []Player{
		{Name: "Alice", Hand: mustCard(t, "HQ"), Status: StatusActive, InChips: 4},
		{Name: "Bob", Hand: mustCard(t, "HQ"), Status: StatusActive, InChips: 4},
		{Name: "Carol", Hand: mustCard(t, "CQ"), Status: StatusActive, InChips: 4},
	}
	o, err = NewJudger().Judge(players, cardPtr(t, "SQ"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Winners, []int{0, 1}) {
		t.Fatalf("expected paired tie, got winners %v", o.Winners)
	}
	if !slices.Equal(o.Payoffs, []float64{2, 2, -4}) {
		t.Fatalf("expected payoffs [2 2 -4], got %v", o.Payoffs)
	}
}

func TestJudgeGame_ZeroSumOverAllDeals(t *testing.T) {
	j := NewJudger()
	var deck []Card
	for _, s := range Suits() {
		for _, r := range Ranks() {
			c, _ := NewCard(s, r)
			deck = append(deck, c)
		}
	}
	for a := range deck {
		for b := range deck {
			if a == b {
				continue
			}
			players := []Player{
				{Hand: deck[a], Status: StatusActive, InChips: 3},
				{Hand: deck[b], Status: StatusActive, InChips: 7},
			}
			publics := []*Card{nil}
			for p := range deck {
				if p != a && p != b {
					publics = append(publics, &deck[p])
				}
			}
			for _, public := range publics {
				o, err := j.Judge(players, public)
				if err != nil {
					t.Fatal(err)
				}
				if len(o.Winners) != 1 {
					t.Fatalf("%s vs %s on %v: expected one winner, got %v", deck[a], deck[b], public, o.Winners)
				}
				if sum(o.Payoffs) != 0 {
					t.Fatalf("%s vs %s on %v: payoffs %v do not sum to zero", deck[a], deck[b], public, o.Payoffs)
				}
			}
		}
	}
}

func TestJudgeGame_UnevenSplitSumsToZero(t *testing.T) {
	players := []Player{
		{Hand: mustCard(t, "DJ"), Status: StatusActive, InChips: 1},
		{Hand: mustCard(t, "DJ"), Status: StatusActive, InChips: 1},
		{Hand: mustCard(t, "DJ"), Status: StatusActive, InChips: 2},
		{Hand: mustCard(t, "C2"), Status: StatusActive, InChips: 3},
	}
	payoffs, err := NewJudger().JudgeGame(players, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(payoffs) != len(players) {
		t.Fatalf("expected %d payoffs, got %d", len(players), len(payoffs))
	}
	if s := sum(payoffs); s > 1e-9 || s < -1e-9 {
		t.Fatalf("payoffs %v sum to %v", payoffs, s)
	}
	if payoffs[3] != -3 {
		t.Fatalf("expected loser payoff -3, got %v", payoffs[3])
	}
}

func TestJudgeGame_UnknownCard(t *testing.T) {
	j := NewJudger()
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "SA"), Status: StatusActive, InChips: 1},
		{Name: "Bob", Hand: Card{}, Status: StatusActive, InChips: 1},
	}
	if _, err := j.JudgeGame(players, cardPtr(t, "H2")); !errors.Is(err, ErrUnknownRank) {
		t.Fatalf("expected ErrUnknownRank, got %v", err)
	}

	players[1].Hand = Card{suit: 8, rank: Two}
	if _, err := j.JudgeGame(players, nil); !errors.Is(err, ErrUnknownSuit) {
		t.Fatalf("expected ErrUnknownSuit, got %v", err)
	}

	// folded hands are not inspected
	players[1].Status = StatusFolded
	if _, err := j.JudgeGame(players, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Card{suit: Club, rank: 1}
	players[1].Status = StatusActive
	players[1].Hand = mustCard(t, "C3")
	if _, err := j.JudgeGame(players, &bad); !errors.Is(err, ErrUnknownRank) {
		t.Fatalf("expected ErrUnknownRank for public card, got %v", err)
	}
}

func TestJudgeGame_NoWinner(t *testing.T) {
	players := []Player{
		{Hand: mustCard(t, "SA"), Status: StatusFolded, InChips: 1},
		{Hand: mustCard(t, "C2"), Status: StatusFolded, InChips: 1},
	}
	if _, err := NewJudger().JudgeGame(players, nil); !errors.Is(err, ErrNoWinner) {
		t.Fatalf("expected ErrNoWinner, got %v", err)
	}
	if _, err := NewJudger().JudgeGame(nil, nil); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

func TestJudgeGame_DoesNotModifyPlayers(t *testing.T) {
	players := []Player{
		{Name: "Alice", Hand: mustCard(t, "S5"), Status: StatusActive, InChips: 2},
		{Name: "Bob", Hand: mustCard(t, "H5"), Status: StatusActive, InChips: 8},
	}
	before := slices.Clone(players)
	public := mustCard(t, "D9")
	if _, err := NewJudger().JudgeGame(players, &public); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(players, before) {
		t.Fatalf("players changed: %v -> %v", before, players)
	}
	if public != mustCard(t, "D9") {
		t.Fatalf("public card changed to %s", public)
	}
}

func TestJudgeGame_ConcurrentUse(t *testing.T) {
	j := NewJudger()
	players := []Player{
		{Hand: mustCard(t, "SK"), Status: StatusActive, InChips: 5},
		{Hand: mustCard(t, "CQ"), Status: StatusActive, InChips: 5},
	}
	public := mustCard(t, "HA")
	errChan := make(chan error)
	n := 8
	for i := 0; i < n; i++ {
		go func() {
			payoffs, err := j.JudgeGame(players, &public)
			if err == nil && !slices.Equal(payoffs, []float64{5, -5}) {
				err = errors.New("unexpected payoffs")
			}
			errChan <- err
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-errChan; err != nil {
			t.Fatal(err)
		}
	}
}
