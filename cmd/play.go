package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/luca-patrignani/leduc-holdem/domain/deck"
	"github.com/luca-patrignani/leduc-holdem/domain/poker"
	"github.com/luca-patrignani/leduc-holdem/ledger"
)

// Summary aggregates the results of a run of hands.
type Summary struct {
	Names  []string
	Stacks []float64 // net chips won or lost per seat
	Wins   []int     // hands won per seat, split pots included
	Hands  int
	Splits int // hands whose pot was split
}

func seatName(i int) string {
	return "Player " + strconv.Itoa(i+1)
}

// playHands deals cfg.Hands hands straight to showdown: every seat antes,
// receives one hole card and, unless cfg.NoPublic, shares the public card.
// Each judged hand is appended to history.
func playHands(cfg Config, dealer *deck.Dealer, judger *poker.Judger, history *ledger.History, logger *slog.Logger) (Summary, error) {
	s := Summary{
		Names:  make([]string, cfg.Players),
		Stacks: make([]float64, cfg.Players),
		Wins:   make([]int, cfg.Players),
	}
	for i := range s.Names {
		s.Names[i] = seatName(i)
	}

	for h := 1; h <= cfg.Hands; h++ {
		dealer.Shuffle()

		players := make([]poker.Player, cfg.Players)
		for i := range players {
			c, err := dealer.DealCard()
			if err != nil {
				return s, fmt.Errorf("hand %d: deal to seat %d: %w", h, i, err)
			}
			players[i] = poker.Player{
				Name:    s.Names[i],
				Hand:    c,
				Status:  poker.StatusActive,
				InChips: cfg.Ante,
			}
		}

		var public *poker.Card
		if !cfg.NoPublic {
			c, err := dealer.DealCard()
			if err != nil {
				return s, fmt.Errorf("hand %d: deal public card: %w", h, err)
			}
			public = &c
		}

		o, err := judger.Judge(players, public)
		if err != nil {
			return s, fmt.Errorf("hand %d: %w", h, err)
		}
		record := ledger.NewHandRecord(players, public, o)
		if err := history.Append(record); err != nil {
			return s, fmt.Errorf("hand %d: %w", h, err)
		}

		for i, p := range o.Payoffs {
			s.Stacks[i] += p
		}
		for _, w := range o.Winners {
			s.Wins[w]++
		}
		if len(o.Winners) > 1 {
			s.Splits++
		}
		s.Hands++

		logger.Debug("hand judged",
			"hand", h,
			"hands", record.Hands,
			"public", record.Public,
			"winners", o.Winners,
			"payoffs", o.Payoffs,
		)
	}
	return s, nil
}
