package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/leduc-holdem/domain/poker"
)

// prettyCard renders a card with its suit symbol, e.g. A♠.
func prettyCard(c poker.Card) string {
	if c.IsFaceDown() {
		return poker.FaceDown
	}
	var suit string
	switch c.Suit() {
	case poker.Club:
		suit = pterm.Gray("♣")
	case poker.Diamond:
		suit = pterm.LightRed("♦")
	case poker.Heart:
		suit = pterm.LightRed("♥")
	case poker.Spade:
		suit = pterm.Gray("♠")
	default:
		suit = "?"
	}
	return c.Rank().String() + suit
}

func formatPayoff(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func signedPayoff(p float64) string {
	s := formatPayoff(p)
	if p > 0 {
		return pterm.LightGreen("+" + s)
	}
	if p < 0 {
		return pterm.LightRed(s)
	}
	return s
}

// outcomePanel describes a judged hand: the public card, every seat with its
// hole card and payoff, and the winners.
func outcomePanel(players []poker.Player, public *poker.Card, o poker.Outcome) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	board := "not revealed"
	if public != nil {
		board = prettyCard(*public)
	}
	info := pterm.Sprintfln("Public card: %s", board)

	winner := make(map[int]bool, len(o.Winners))
	for _, w := range o.Winners {
		winner[w] = true
	}
	for i, p := range players {
		status := pterm.LightGreen("Active")
		if p.HasFolded() {
			status = pterm.LightRed("Folded")
		}
		line := fmt.Sprintf("%s %s %s in %d, payoff %s", pterm.LightCyan(p.Name), prettyCard(p.Hand), status, p.InChips, signedPayoff(o.Payoffs[i]))
		if winner[i] {
			line += " " + pterm.LightYellow("WINNER")
		}
		info += pterm.Sprintln(line)
	}
	if len(o.Winners) > 1 {
		info += pterm.Sprintfln("Pot split %d ways", len(o.Winners))
	}
	return pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(info)
}

// summaryTable renders one row per seat with its wins and net result.
func summaryTable(s Summary) (string, error) {
	data := pterm.TableData{{"Seat", "Wins", "Net chips"}}
	for i, name := range s.Names {
		data = append(data, []string{name, strconv.Itoa(s.Wins[i]), signedPayoff(s.Stacks[i])})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	title := pterm.LightYellow(fmt.Sprintf("|%d HANDS, %d SPLIT|", s.Hands, s.Splits))
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint(table), nil
}
