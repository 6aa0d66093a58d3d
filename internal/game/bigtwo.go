package game

import (
	"fmt"

	"github.com/louken/cardhouse/internal/bigtwo"
	"github.com/louken/cardhouse/internal/deck"
)

// BigTwoMove reports what an opponent seat did on its turn, for presentation.
type BigTwoMove struct {
	Seat   int
	Passed bool
	Cards  []deck.Card
}

// BigTwoRound runs heads-up Big 2: the human seat against one agent. Thirteen
// cards each; the seat holding the lowest card leads with control.
type BigTwoRound struct {
	s     *Session
	hands [2][]deck.Card // 0 = human, 1 = agent; kept sorted ascending

	selected map[int]bool // human's selected hand indices, seat-local
	last     bigtwo.Combo
	hasLast  bool
	turn     int
	control  bool
	settled  bool
}

// BigTwoSnapshot is the presentation view of a heads-up round. The opponent
// hand is exposed only as a count.
type BigTwoSnapshot struct {
	Hand          []deck.Card
	Selected      map[int]bool
	OpponentCount int
	LastPlayed    []deck.Card
	Turn          int
	Control       bool
	Settled       bool
}

// StartBigTwo deducts the bet and deals thirteen cards to each seat. The
// holder of the lowest card by Big 2 order leads with control.
func (s *Session) StartBigTwo() (*BigTwoRound, error) {
	if err := s.beginRound(); err != nil {
		return nil, err
	}
	r := &BigTwoRound{s: s, selected: make(map[int]bool), control: true}
	s.round = r

	d := s.newDeck()
	for seat := 0; seat < 2; seat++ {
		hand, err := d.DrawN(13)
		if err != nil {
			return nil, err
		}
		deck.SortByBigTwoOrder(hand)
		r.hands[seat] = hand
	}
	if r.hands[1][0].BigTwoOrder() < r.hands[0][0].BigTwoOrder() {
		r.turn = 1
	}
	s.logger.Debug("big2 dealt", "leader", r.turn)
	return r, nil
}

// Kind identifies the game
func (r *BigTwoRound) Kind() Kind { return KindBigTwo }

// Settled reports whether the round has reached its terminal phase
func (r *BigTwoRound) Settled() bool { return r.settled }

// Turn returns the active seat (0 = human)
func (r *BigTwoRound) Turn() int { return r.turn }

// Snapshot returns the presentation view of the round
func (r *BigTwoRound) Snapshot() BigTwoSnapshot {
	selected := make(map[int]bool, len(r.selected))
	for i, on := range r.selected {
		if on {
			selected[i] = true
		}
	}
	var lastPlayed []deck.Card
	if r.hasLast {
		lastPlayed = append([]deck.Card(nil), r.last.Cards...)
	}
	return BigTwoSnapshot{
		Hand:          append([]deck.Card(nil), r.hands[0]...),
		Selected:      selected,
		OpponentCount: len(r.hands[1]),
		LastPlayed:    lastPlayed,
		Turn:          r.turn,
		Control:       r.control,
		Settled:       r.settled,
	}
}

// ToggleSelect flips the selection on one of the human seat's cards, by
// index into the sorted hand.
func (r *BigTwoRound) ToggleSelect(i int) error {
	if r.settled {
		return ErrRoundOver
	}
	if r.turn != 0 {
		return ErrNotYourTurn
	}
	if i < 0 || i >= len(r.hands[0]) {
		return fmt.Errorf("%w: no card at index %d", ErrInvalidPlay, i)
	}
	r.selected[i] = !r.selected[i]
	return nil
}

// Play submits the human seat's selected cards. The play must form a legal
// combo and, without control, match the last play's cardinality and beat it.
// A rejected play leaves the round untouched.
func (r *BigTwoRound) Play() error {
	if r.settled {
		return ErrRoundOver
	}
	if r.turn != 0 {
		return ErrNotYourTurn
	}
	picked := r.selectedCards()
	if len(picked) == 0 {
		return fmt.Errorf("%w: no cards selected", ErrInvalidPlay)
	}

	combo := bigtwo.Classify(picked)
	if err := r.validate(combo); err != nil {
		return err
	}

	r.apply(0, combo)
	if r.settled {
		return nil
	}
	r.turn = 1
	return nil
}

// Pass yields the human seat's turn. Passing is only legal when a play is on
// the table; with a single opponent it immediately hands control across and
// clears the last play.
func (r *BigTwoRound) Pass() error {
	if r.settled {
		return ErrRoundOver
	}
	if r.turn != 0 {
		return ErrNotYourTurn
	}
	if r.control {
		return fmt.Errorf("%w: cannot pass with control", ErrInvalidPlay)
	}
	clear(r.selected)
	r.turn = 1
	r.control = true
	r.hasLast = false
	return nil
}

// PlayOpponent computes and applies the agent's move: with control the
// lowest single, otherwise the cheapest single or pair that beats the last
// play, else a pass that returns control to the human seat.
func (r *BigTwoRound) PlayOpponent() (BigTwoMove, error) {
	if r.settled {
		return BigTwoMove{}, ErrRoundOver
	}
	if r.turn != 1 {
		return BigTwoMove{}, ErrNotYourTurn
	}

	hand := r.hands[1]
	var play []deck.Card
	if r.control || !r.hasLast {
		play = hand[:1]
	} else {
		play = r.findResponse(hand)
	}

	if play == nil {
		r.turn = 0
		r.control = true
		r.hasLast = false
		return BigTwoMove{Seat: 1, Passed: true}, nil
	}

	combo := bigtwo.Classify(play)
	r.apply(1, combo)
	if !r.settled {
		r.turn = 0
	}
	return BigTwoMove{Seat: 1, Cards: combo.Cards}, nil
}

// findResponse scans the sorted hand for the cheapest play matching the last
// play's cardinality: the first qualifying single, or the first adjacent
// equal-rank pair that beats it. Larger shapes are never answered.
func (r *BigTwoRound) findResponse(hand []deck.Card) []deck.Card {
	switch len(r.last.Cards) {
	case 1:
		for _, c := range hand {
			if c.BigTwoOrder() > r.last.Value {
				return []deck.Card{c}
			}
		}
	case 2:
		for i := 0; i+1 < len(hand); i++ {
			if hand[i].Rank != hand[i+1].Rank {
				continue
			}
			if hand[i+1].BigTwoOrder() > r.last.Value {
				return []deck.Card{hand[i], hand[i+1]}
			}
		}
	}
	return nil
}

func (r *BigTwoRound) validate(combo bigtwo.Combo) error {
	if combo.Type == bigtwo.Invalid {
		return fmt.Errorf("%w: cards form no legal combo", ErrInvalidPlay)
	}
	if r.control || !r.hasLast {
		return nil
	}
	if len(combo.Cards) != len(r.last.Cards) {
		return fmt.Errorf("%w: must play %d cards", ErrInvalidPlay, len(r.last.Cards))
	}
	if !combo.Beats(r.last) {
		return fmt.Errorf("%w: does not beat %s", ErrInvalidPlay, r.last.Type)
	}
	return nil
}

func (r *BigTwoRound) apply(seat int, combo bigtwo.Combo) {
	r.hands[seat] = bigtwo.Remove(r.hands[seat], combo.Cards)
	r.last = combo
	r.hasLast = true
	r.control = false
	clear(r.selected)

	if len(r.hands[seat]) == 0 {
		r.settled = true
		if seat == 0 {
			r.s.settle(OutcomeWin, bigTwoWinMultiplier, "You shed every card. Big 2 winner.")
		} else {
			r.s.settle(OutcomeLoss, 0, "Opponent shed every card first.")
		}
	}
}

func (r *BigTwoRound) selectedCards() []deck.Card {
	picked := make([]deck.Card, 0, len(r.selected))
	for i, on := range r.selected {
		if on && i < len(r.hands[0]) {
			picked = append(picked, r.hands[0][i])
		}
	}
	return picked
}
