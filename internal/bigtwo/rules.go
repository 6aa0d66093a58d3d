// Package bigtwo implements the Big 2 combination rules: classifying a
// candidate play into its combo shape and deciding whether one play beats
// another. The state machines in internal/game layer turn order, control and
// settlement on top of these pure functions.
package bigtwo

import "github.com/louken/cardhouse/internal/deck"

// ComboType is the shape of a Big 2 play. The five-card shapes are declared
// in ascending strength so the type itself is the first comparison key.
type ComboType int

const (
	Invalid ComboType = iota
	Single
	Pair
	Triple
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

// String returns the combo shape name
func (ct ComboType) String() string {
	switch ct {
	case Single:
		return "Single"
	case Pair:
		return "Pair"
	case Triple:
		return "Triple"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Quads"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Invalid"
	}
}

// Combo is a classified play. Cards are sorted ascending by Big 2 order and
// Value is the Big 2 order of the card that decides comparisons: the highest
// card for most shapes, the highest card of the set rank for triples, full
// houses and quads (the kicker never decides).
type Combo struct {
	Type  ComboType
	Cards []deck.Card
	Value int
}

// Classify maps a candidate play onto its combo shape, or Invalid when the
// cards form no legal Big 2 combination (a 2-card non-pair, any 4-card play,
// a 5-card play matching none of the five-card shapes).
func Classify(cards []deck.Card) Combo {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	deck.SortByBigTwoOrder(sorted)

	switch len(sorted) {
	case 1:
		return Combo{Type: Single, Cards: sorted, Value: sorted[0].BigTwoOrder()}
	case 2:
		if sorted[0].Rank == sorted[1].Rank {
			return Combo{Type: Pair, Cards: sorted, Value: sorted[1].BigTwoOrder()}
		}
	case 3:
		if sorted[0].Rank == sorted[1].Rank && sorted[1].Rank == sorted[2].Rank {
			return Combo{Type: Triple, Cards: sorted, Value: sorted[2].BigTwoOrder()}
		}
	case 5:
		return classifyFive(sorted)
	}
	return Combo{Type: Invalid, Cards: sorted}
}

func classifyFive(sorted []deck.Card) Combo {
	straight := isStraight(sorted)

	flush := true
	for _, c := range sorted[1:] {
		if c.Suit != sorted[0].Suit {
			flush = false
			break
		}
	}

	counts := make(map[deck.Rank]int, 5)
	for _, c := range sorted {
		counts[c.Rank]++
	}

	high := sorted[4].BigTwoOrder()
	switch {
	case straight && flush:
		return Combo{Type: StraightFlush, Cards: sorted, Value: high}
	case hasCount(counts, 4):
		return Combo{Type: Quads, Cards: sorted, Value: setValue(sorted, counts, 4)}
	case hasCount(counts, 3) && hasCount(counts, 2):
		return Combo{Type: FullHouse, Cards: sorted, Value: setValue(sorted, counts, 3)}
	case flush:
		return Combo{Type: Flush, Cards: sorted, Value: high}
	case straight:
		return Combo{Type: Straight, Cards: sorted, Value: high}
	}
	return Combo{Type: Invalid, Cards: sorted}
}

// isStraight reports whether five sorted cards occupy five consecutive Big 2
// rank groups. The order tops out at 2, so J-Q-K-A-2 is a straight while
// 2-3-4-5-6 is not; nothing wraps past the 2.
func isStraight(sorted []deck.Card) bool {
	for i := 0; i < 4; i++ {
		if sorted[i+1].BigTwoOrder()/4 != sorted[i].BigTwoOrder()/4+1 {
			return false
		}
	}
	return true
}

func hasCount(counts map[deck.Rank]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

// setValue returns the highest Big 2 order among the cards of the rank that
// appears n times (the triple of a full house, the quad of four of a kind).
func setValue(sorted []deck.Card, counts map[deck.Rank]int, n int) int {
	value := -1
	for _, c := range sorted {
		if counts[c.Rank] == n && c.BigTwoOrder() > value {
			value = c.BigTwoOrder()
		}
	}
	return value
}

// Beats reports whether combo c beats target. Both must be valid, and only
// plays of the same cardinality ever compare. Five-card plays compare by
// shape first, then by Value; smaller plays compare by Value alone.
func (c Combo) Beats(target Combo) bool {
	if c.Type == Invalid || target.Type == Invalid {
		return false
	}
	if len(c.Cards) != len(target.Cards) {
		return false
	}
	if len(c.Cards) == 5 && c.Type != target.Type {
		return c.Type > target.Type
	}
	return c.Value > target.Value
}

// Remove returns hand without the played cards. Each played card removes at
// most one matching card from the hand.
func Remove(hand []deck.Card, played []deck.Card) []deck.Card {
	remove := make(map[deck.Card]int, len(played))
	for _, c := range played {
		remove[c]++
	}
	out := make([]deck.Card, 0, len(hand))
	for _, c := range hand {
		if n, ok := remove[c]; ok && n > 0 {
			remove[c] = n - 1
			continue
		}
		out = append(out, c)
	}
	return out
}

// Contains reports whether the hand holds every played card.
func Contains(hand []deck.Card, played []deck.Card) bool {
	have := make(map[deck.Card]int, len(hand))
	for _, c := range hand {
		have[c]++
	}
	for _, c := range played {
		if have[c] == 0 {
			return false
		}
		have[c]--
	}
	return true
}
