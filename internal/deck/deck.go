package deck

import (
	"errors"
	rand "math/rand/v2"
	"sort"
)

// ErrEmptyDeck is returned by Draw when no cards remain. Table sizes keep
// this from happening in normal play, so hitting it means a sequencing bug
// in the caller rather than a user-facing condition.
var ErrEmptyDeck = errors.New("draw from empty deck")

// Deck represents a deck of playing cards dealt from the top
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a fresh 52-card deck shuffled with the provided RNG.
// Every round gets its own deck; decks are never reused across rounds.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Diamonds; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.Shuffle()
	return d
}

// Stacked creates a deck holding exactly the given cards in order, drawn
// from the last element first. Used to rig deals in tests and demos.
func Stacked(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle randomizes the order of cards using backward Fisher-Yates,
// giving every permutation equal probability.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card of the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// DrawN draws n cards from the deck
func (d *Deck) DrawN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// SortByBigTwoOrder sorts a hand ascending by Big 2 order
func SortByBigTwoOrder(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].BigTwoOrder() < cards[j].BigTwoOrder()
	})
}

// SortByPokerValue sorts a hand ascending by poker value
func SortByPokerValue(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].PokerValue() < cards[j].PokerValue()
	})
}
