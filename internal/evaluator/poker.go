package evaluator

import (
	"sort"

	"github.com/louken/cardhouse/internal/deck"
)

// HandCategory classifies a five-card poker hand, weakest to strongest.
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable hand description
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Hand is the result of evaluating a five-card poker hand.
//
// Tiebreak is the sum of the five card values and is the only comparison made
// between hands of equal category. This is deliberately coarser than
// kicker-by-kicker poker rules; equal category and equal sum is a push.
// The wheel counts its ace low so a five-high straight sums below a six-high.
type Hand struct {
	Category HandCategory
	Tiebreak int
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if stronger
func (h Hand) Compare(other Hand) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	if h.Tiebreak != other.Tiebreak {
		if h.Tiebreak < other.Tiebreak {
			return -1
		}
		return 1
	}
	return 0
}

// Evaluate classifies a five-card hand. It is only defined for exactly five
// cards; the draw-poker machine is the sole caller and always deals five.
func Evaluate(cards []deck.Card) Hand {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.PokerValue()
	}
	sort.Ints(values)

	flush := true
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straight, wheel := straightShape(values)

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	var pairs, trips, quads int
	for _, n := range counts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	if wheel {
		// ace plays low in the wheel
		sum -= 13
	}

	category := HighCard
	switch {
	case flush && straight && values[0] == 10:
		category = RoyalFlush
	case flush && straight:
		category = StraightFlush
	case quads == 1:
		category = FourOfAKind
	case trips == 1 && pairs == 1:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case trips == 1:
		category = ThreeOfAKind
	case pairs == 2:
		category = TwoPair
	case pairs == 1:
		category = OnePair
	}

	return Hand{Category: category, Tiebreak: sum}
}

// straightShape reports whether the sorted values form a five-card run,
// and whether that run is the wheel (A-2-3-4-5).
func straightShape(values []int) (straight, wheel bool) {
	if len(values) != 5 {
		return false, false
	}
	run := true
	for i := 0; i < 4; i++ {
		if values[i+1] != values[i]+1 {
			run = false
			break
		}
	}
	if run {
		return true, false
	}
	if values[0] == 2 && values[1] == 3 && values[2] == 4 && values[3] == 5 && values[4] == 14 {
		return true, true
	}
	return false, false
}
