package game

import (
	"fmt"
	"sort"

	"github.com/louken/cardhouse/internal/deck"
	"github.com/louken/cardhouse/internal/evaluator"
)

// PokerRound runs one hand of five-card draw against the house dealer: one
// hold-and-draw for the player, a fixed swap heuristic for the dealer, then
// a showdown on hand rank.
type PokerRound struct {
	s      *Session
	deck   *deck.Deck
	player []deck.Card
	dealer []deck.Card

	held    [5]bool
	drawn   bool
	settled bool
}

// PokerSnapshot is the presentation view of a draw-poker round. The dealer's
// cards stay face down until the showdown.
type PokerSnapshot struct {
	Player       []deck.Card
	Dealer       []deck.Card
	DealerHidden bool
	Held         [5]bool
	Drawn        bool
	PlayerHand   evaluator.Hand
	DealerHand   evaluator.Hand // only meaningful once DealerHidden is false
	Settled      bool
}

// StartPoker deducts the bet and deals five cards to each seat face down.
func (s *Session) StartPoker() (*PokerRound, error) {
	if err := s.beginRound(); err != nil {
		return nil, err
	}
	r := &PokerRound{s: s, deck: s.newDeck()}
	s.round = r

	var err error
	if r.player, err = r.deck.DrawN(5); err != nil {
		return nil, err
	}
	if r.dealer, err = r.deck.DrawN(5); err != nil {
		return nil, err
	}
	return r, nil
}

// Kind identifies the game
func (r *PokerRound) Kind() Kind { return KindPoker }

// Settled reports whether the round has reached its terminal phase
func (r *PokerRound) Settled() bool { return r.settled }

// Snapshot returns the presentation view of the round
func (r *PokerRound) Snapshot() PokerSnapshot {
	snap := PokerSnapshot{
		Player:       append([]deck.Card(nil), r.player...),
		Dealer:       append([]deck.Card(nil), r.dealer...),
		DealerHidden: !r.settled,
		Held:         r.held,
		Drawn:        r.drawn,
		PlayerHand:   evaluator.Evaluate(r.player),
		Settled:      r.settled,
	}
	if r.settled {
		snap.DealerHand = evaluator.Evaluate(r.dealer)
	}
	return snap
}

// ToggleHold flips the held flag on one of the player's five cards. Holds
// are seat-local state, only meaningful before the draw.
func (r *PokerRound) ToggleHold(i int) error {
	if r.settled {
		return ErrRoundOver
	}
	if r.drawn {
		return fmt.Errorf("%w: cards already drawn", ErrWrongPhase)
	}
	if i < 0 || i >= len(r.player) {
		return fmt.Errorf("%w: no card at index %d", ErrInvalidPlay, i)
	}
	r.held[i] = !r.held[i]
	return nil
}

// Draw replaces every non-held card, exactly once per round, then runs the
// dealer's swap and settles the showdown.
func (r *PokerRound) Draw() error {
	if r.settled {
		return ErrRoundOver
	}
	if r.drawn {
		return fmt.Errorf("%w: only one draw per round", ErrWrongPhase)
	}
	for i := range r.player {
		if r.held[i] {
			continue
		}
		card, err := r.deck.Draw()
		if err != nil {
			return err
		}
		r.player[i] = card
	}
	r.drawn = true
	r.held = [5]bool{}

	if err := r.dealerSwap(); err != nil {
		return err
	}
	r.finish()
	return nil
}

// dealerSwap is the house heuristic: holding a pair or better, keep all
// five; otherwise discard the three lowest cards by poker value and redraw.
func (r *PokerRound) dealerSwap() error {
	if evaluator.Evaluate(r.dealer).Category >= evaluator.OnePair {
		return nil
	}
	sort.Slice(r.dealer, func(i, j int) bool {
		return r.dealer[i].PokerValue() > r.dealer[j].PokerValue()
	})
	for i := 2; i < 5; i++ {
		card, err := r.deck.Draw()
		if err != nil {
			return err
		}
		r.dealer[i] = card
	}
	return nil
}

func (r *PokerRound) finish() {
	r.settled = true

	pHand := evaluator.Evaluate(r.player)
	dHand := evaluator.Evaluate(r.dealer)
	versus := fmt.Sprintf("%s vs %s.", pHand.Category, dHand.Category)

	switch pHand.Compare(dHand) {
	case 1:
		r.s.settle(OutcomeWin, pokerWinMultiplier, "You win. "+versus)
	case -1:
		r.s.settle(OutcomeLoss, 0, "Dealer wins. "+versus)
	default:
		r.s.settle(OutcomePush, 0, "Push. "+versus)
	}
}
