package game

import (
	"fmt"

	"github.com/louken/cardhouse/internal/deck"
	"github.com/louken/cardhouse/internal/evaluator"
)

// dealerStandsAt is the dealer's draw threshold: hit below 17, stand on any
// 17 including soft.
const dealerStandsAt = 17

// BlackjackRound runs one hand of blackjack against the house dealer.
type BlackjackRound struct {
	s      *Session
	deck   *deck.Deck
	player []deck.Card
	dealer []deck.Card

	playerDone bool
	settled    bool
	natural    bool
}

// BlackjackSnapshot is the presentation view of a blackjack round. The
// dealer's hole card stays hidden until the player stands or the round ends.
type BlackjackSnapshot struct {
	Player       []deck.Card
	Dealer       []deck.Card
	DealerHidden bool
	PlayerScore  int
	DealerScore  int // only meaningful once DealerHidden is false
	Natural      bool
	Settled      bool
}

// StartBlackjack deducts the bet and deals two cards to each seat. A natural
// 21 settles immediately without a dealer turn.
func (s *Session) StartBlackjack() (*BlackjackRound, error) {
	if err := s.beginRound(); err != nil {
		return nil, err
	}
	r := &BlackjackRound{s: s, deck: s.newDeck()}
	s.round = r

	for i := 0; i < 2; i++ {
		for _, hand := range []*[]deck.Card{&r.player, &r.dealer} {
			card, err := r.deck.Draw()
			if err != nil {
				return nil, err
			}
			*hand = append(*hand, card)
		}
	}
	s.logger.Debug("blackjack dealt",
		"player", evaluator.BlackjackScore(r.player),
		"dealer", evaluator.BlackjackScore(r.dealer))

	if evaluator.BlackjackScore(r.player) == 21 {
		r.finish()
	}
	return r, nil
}

// Kind identifies the game
func (r *BlackjackRound) Kind() Kind { return KindBlackjack }

// Settled reports whether the round has reached its terminal phase
func (r *BlackjackRound) Settled() bool { return r.settled }

// Snapshot returns the presentation view of the round
func (r *BlackjackRound) Snapshot() BlackjackSnapshot {
	hidden := !r.playerDone && !r.settled
	snap := BlackjackSnapshot{
		Player:       append([]deck.Card(nil), r.player...),
		Dealer:       append([]deck.Card(nil), r.dealer...),
		DealerHidden: hidden,
		PlayerScore:  evaluator.BlackjackScore(r.player),
		Natural:      r.natural,
		Settled:      r.settled,
	}
	if !hidden {
		snap.DealerScore = evaluator.BlackjackScore(r.dealer)
	}
	return snap
}

// Hit draws one card for the player; going over 21 settles the round as an
// immediate loss.
func (r *BlackjackRound) Hit() error {
	if r.settled {
		return ErrRoundOver
	}
	card, err := r.deck.Draw()
	if err != nil {
		return err
	}
	r.player = append(r.player, card)
	if evaluator.BlackjackScore(r.player) > 21 {
		r.finish()
	}
	return nil
}

// Stand ends the player's turn. The dealer then draws to 17 and the round
// settles on the comparison.
func (r *BlackjackRound) Stand() error {
	if r.settled {
		return ErrRoundOver
	}
	r.playerDone = true
	for evaluator.BlackjackScore(r.dealer) < dealerStandsAt {
		card, err := r.deck.Draw()
		if err != nil {
			return err
		}
		r.dealer = append(r.dealer, card)
	}
	r.finish()
	return nil
}

func (r *BlackjackRound) finish() {
	r.settled = true
	r.playerDone = true

	pScore := evaluator.BlackjackScore(r.player)
	dScore := evaluator.BlackjackScore(r.dealer)

	switch {
	case pScore > 21:
		r.s.settle(OutcomeLoss, 0, fmt.Sprintf("Bust at %d. Dealer wins.", pScore))
	case dScore > 21:
		r.natural = pScore == 21
		r.s.settle(OutcomeWin, blackjackWinMultiplier, fmt.Sprintf("Dealer busts at %d. You win.", dScore))
	case pScore > dScore:
		r.natural = pScore == 21
		r.s.settle(OutcomeWin, blackjackWinMultiplier, fmt.Sprintf("%d beats %d. You win.", pScore, dScore))
	case pScore < dScore:
		r.s.settle(OutcomeLoss, 0, fmt.Sprintf("Dealer's %d beats %d.", dScore, pScore))
	default:
		r.s.settle(OutcomePush, 0, fmt.Sprintf("Push at %d.", pScore))
	}
}
