package game

import (
	"fmt"

	"github.com/louken/cardhouse/internal/deck"
)

// Direction is a higher-or-lower guess
type Direction int

const (
	GuessHigher Direction = iota
	GuessLower
)

// String returns the direction name
func (d Direction) String() string {
	if d == GuessHigher {
		return "higher"
	}
	return "lower"
}

// GuessResult reports one reveal to the presentation layer
type GuessResult struct {
	Revealed  deck.Card
	Correct   bool
	Push      bool
	Potential int
	Terminal  bool
}

// HighLowRound runs the all-in streak game: the entire balance is wagered on
// entry and each correct guess grows the potential payout by half the
// original stake. One wrong guess zeroes it; collecting banks it.
type HighLowRound struct {
	s    *Session
	deck *deck.Deck

	current   deck.Card
	original  int
	potential int
	settled   bool
}

// HighLowSnapshot is the presentation view of a higher-or-lower round
type HighLowSnapshot struct {
	Current   deck.Card
	Original  int
	Potential int
	Remaining int
	Settled   bool
}

// StartHighLow wagers the player's entire balance and reveals the first
// card. The potential payout starts at the stake itself.
func (s *Session) StartHighLow() (*HighLowRound, error) {
	if s.phase != PhaseBetting {
		return nil, fmt.Errorf("%w: round already in progress", ErrWrongPhase)
	}
	if s.GameOver() {
		return nil, ErrGameOver
	}
	// all-in by construction; whatever bet was staged is replaced
	s.bet = s.balance
	if err := s.beginRound(); err != nil {
		return nil, err
	}

	r := &HighLowRound{s: s, deck: s.newDeck(), original: s.bet, potential: s.bet}
	s.round = r

	card, err := r.deck.Draw()
	if err != nil {
		return nil, err
	}
	r.current = card
	s.logger.Debug("highlow started", "stake", r.original, "card", card)
	return r, nil
}

// Kind identifies the game
func (r *HighLowRound) Kind() Kind { return KindHighLow }

// Settled reports whether the round has reached its terminal phase
func (r *HighLowRound) Settled() bool { return r.settled }

// Snapshot returns the presentation view of the round
func (r *HighLowRound) Snapshot() HighLowSnapshot {
	return HighLowSnapshot{
		Current:   r.current,
		Original:  r.original,
		Potential: r.potential,
		Remaining: r.deck.Remaining(),
		Settled:   r.settled,
	}
}

// Guess wagers the streak on the next card being higher or lower by rank
// (deuce low, ace high; suits never break the tie). Equal rank is a push.
// A wrong guess ends the round with nothing; exhausting the deck banks the
// streak automatically.
func (r *HighLowRound) Guess(dir Direction) (GuessResult, error) {
	if r.settled {
		return GuessResult{}, ErrRoundOver
	}
	next, err := r.deck.Draw()
	if err != nil {
		return GuessResult{}, err
	}

	result := GuessResult{Revealed: next}
	switch {
	case next.Rank == r.current.Rank:
		result.Push = true
	case (next.Rank > r.current.Rank) == (dir == GuessHigher):
		result.Correct = true
		r.potential += r.original / 2
	default:
		r.potential = 0
		r.settled = true
		result.Terminal = true
		r.s.settle(OutcomeLoss, 0, fmt.Sprintf("%s was not %s. Streak lost.", next, dir))
	}
	result.Potential = r.potential

	r.current = next
	if !r.settled && r.deck.IsEmpty() {
		result.Terminal = true
		r.collect("Deck exhausted. Streak banked.")
	}
	return result, nil
}

// Collect ends the round and banks the current potential payout.
func (r *HighLowRound) Collect() error {
	if r.settled {
		return ErrRoundOver
	}
	r.collect("Streak collected.")
	return nil
}

// collect banks the streak. The multiplier is potential/original, so the
// payout is the potential itself; settling in chips keeps it exact.
func (r *HighLowRound) collect(message string) {
	r.settled = true
	r.s.settleWinExact(r.potential, message)
}
