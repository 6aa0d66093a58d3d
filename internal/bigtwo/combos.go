package bigtwo

import "github.com/louken/cardhouse/internal/deck"

// Combos enumerates the candidate plays available from a hand, grouped by
// cardinality and ordered cheapest-first. Fives stays empty: the agents do
// not enumerate straights or flushes, a deliberate capability gap in the AI
// (five-card plays are still fully validated when a human submits one).
type Combos struct {
	Singles [][]deck.Card
	Pairs   [][]deck.Card
	Triples [][]deck.Card
	Fives   [][]deck.Card
}

// FindCombos enumerates singles, pairs and triples from a hand by grouping
// it by rank. Every distinct pair is produced; one triple per rank, plus a
// second overlapping one when all four copies of a rank are held.
func FindCombos(hand []deck.Card) Combos {
	sorted := make([]deck.Card, len(hand))
	copy(sorted, hand)
	deck.SortByBigTwoOrder(sorted)

	var combos Combos
	for _, c := range sorted {
		combos.Singles = append(combos.Singles, []deck.Card{c})
	}

	groups := make(map[deck.Rank][]deck.Card)
	order := make([]deck.Rank, 0, 13)
	for _, c := range sorted {
		if _, seen := groups[c.Rank]; !seen {
			order = append(order, c.Rank)
		}
		groups[c.Rank] = append(groups[c.Rank], c)
	}

	for _, r := range order {
		group := groups[r]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				combos.Pairs = append(combos.Pairs, []deck.Card{group[i], group[j]})
			}
		}
		if len(group) >= 3 {
			combos.Triples = append(combos.Triples, group[:3:3])
			if len(group) == 4 {
				combos.Triples = append(combos.Triples, group[1:4:4])
			}
		}
	}

	return combos
}

// BySize returns the enumerated combos of the given cardinality.
func (c Combos) BySize(n int) [][]deck.Card {
	switch n {
	case 1:
		return c.Singles
	case 2:
		return c.Pairs
	case 3:
		return c.Triples
	case 5:
		return c.Fives
	default:
		return nil
	}
}
