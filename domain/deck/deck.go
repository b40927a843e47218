package deck

import (
	"errors"

	"github.com/luca-patrignani/leduc-holdem/domain/poker"
)

// DeckSize is the number of distinct cards in a full deck.
const DeckSize = 52

var ErrEmptyDeck = errors.New("deal from an empty deck")

// Dealer owns the deck of a single hand. It is not safe for concurrent use.
type Dealer struct {
	src   Source
	cards []poker.Card
}

// NewDealer creates a Dealer holding a full deck shuffled with src. A nil
// src falls back to NewRandomSource.
func NewDealer(src Source) *Dealer {
	if src == nil {
		src = NewRandomSource()
	}
	d := &Dealer{src: src}
	d.Shuffle()
	return d
}

// FullDeck returns the 52 cards in construction order: spades, hearts,
// diamonds and clubs, each from Two to Ace.
func FullDeck() []poker.Card {
	cards := make([]poker.Card, 0, DeckSize)
	for _, suit := range []poker.Suit{poker.Spade, poker.Heart, poker.Diamond, poker.Club} {
		for _, rank := range poker.Ranks() {
			c, err := poker.NewCard(suit, rank)
			if err != nil {
				// the domains above are the valid ones
				panic(err)
			}
			cards = append(cards, c)
		}
	}
	return cards
}

// Shuffle puts every card back in the deck and permutes it with the source.
func (d *Dealer) Shuffle() {
	d.cards = FullDeck()
	d.src.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DealCard removes the top card of the deck and returns it. Dealt cards are
// never returned again until the next Shuffle.
func (d *Dealer) DealCard() (poker.Card, error) {
	n := len(d.cards)
	if n == 0 {
		return poker.Card{}, ErrEmptyDeck
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Dealer) Remaining() int {
	return len(d.cards)
}
