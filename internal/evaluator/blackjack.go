// Package evaluator holds the pure hand-scoring functions shared by the game
// state machines: blackjack totals and five-card poker classification.
package evaluator

import "github.com/louken/cardhouse/internal/deck"

// BlackjackScore returns the blackjack total of a hand. Aces start at 11 and
// are demoted to 1 one at a time while the hand is bust, so the result is
// either <= 21 or a hard total with no soft aces left to demote.
// Order of the cards never affects the result.
func BlackjackScore(cards []deck.Card) int {
	score := 0
	aces := 0
	for _, c := range cards {
		score += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}
