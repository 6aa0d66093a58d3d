package deck

import "fmt"

// Suit represents a card suit. The declaration order is the Big 2 suit
// order (Diamonds lowest, Spades highest) so it can double as a tiebreak index.
type Suit int

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. It is an immutable value type;
// two cards are equal iff their suit and rank are equal.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// PokerValue returns the card's value under standard poker ordering.
// Face cards are 11-13 and the Ace is high (14).
func (c Card) PokerValue() int {
	return int(c.Rank)
}

// BlackjackValue returns the card's value under blackjack scoring.
// Face cards count 10 and the Ace counts 11; soft-ace demotion is the
// scorer's job, not the card's.
func (c Card) BlackjackValue() int {
	switch {
	case c.Rank >= Jack && c.Rank <= King:
		return 10
	case c.Rank == Ace:
		return 11
	default:
		return int(c.Rank)
	}
}

// BigTwoOrder returns the card's position in the Big 2 total order,
// 0 (3♦) through 51 (2♠). Ranks run 3 < 4 < ... < K < A < 2 with the
// suit as tiebreak, so every card has a distinct value.
func (c Card) BigTwoOrder() int {
	return bigTwoRankIndex(c.Rank)*4 + int(c.Suit)
}

func bigTwoRankIndex(r Rank) int {
	if r == Two {
		return 12
	}
	return int(r) - 3
}
