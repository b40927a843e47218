package poker

import (
	"fmt"
	"strings"
)

// Suit of a card. Suits are ordered Club < Diamond < Heart < Spade and the
// order breaks ties between cards of equal rank.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣
	Diamond Suit = 1 // ♦
	Heart   Suit = 2 // ♥
	Spade   Suit = 3 // ♠
)

// Rank of a card, from Two (lowest) to Ace (highest).
// Rank 0 indicates a face-down or uninitialized card.
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// FaceDown is the text form of a hidden or undealt card
const FaceDown = "??"

const (
	suitLetters = "CDHS"
	rankLetters = "23456789TJQKA"
)

// Card represents a playing card with suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: Two through Ace
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// ParseCard reads the two-letter form used in hand logs: the suit letter
// followed by the rank letter, e.g. "SA" (ace of spades) or "C2".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: expected suit and rank letters", s)
	}
	suit := strings.IndexByte(suitLetters, s[0])
	if suit < 0 {
		return Card{}, fmt.Errorf("invalid card %q: unknown suit %q", s, s[0])
	}
	rank := strings.IndexByte(rankLetters, s[1])
	if rank < 0 {
		return Card{}, fmt.Errorf("invalid card %q: unknown rank %q", s, s[1])
	}
	return NewCard(Suit(suit), Two+Rank(rank))
}

// Suits returns the suit domain from lowest to highest.
func Suits() []Suit {
	return []Suit{Club, Diamond, Heart, Spade}
}

// Ranks returns the rank domain from lowest to highest.
func Ranks() []Rank {
	ranks := make([]Rank, 0, len(rankLetters))
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suit returns the suit value of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank value of the Card (0 when face down).
func (c Card) Rank() Rank {
	return c.rank
}

// IsFaceDown reports whether the card is the zero value.
func (c Card) IsFaceDown() bool {
	return c.rank == 0
}

func (s Suit) String() string {
	if s > Spade {
		return "?"
	}
	return suitLetters[s : s+1]
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	i := int(r - Two)
	return rankLetters[i : i+1]
}

// String returns the two-letter form accepted by ParseCard.
func (c Card) String() string {
	if c.rank == 0 {
		return FaceDown
	}
	return c.suit.String() + c.rank.String()
}
