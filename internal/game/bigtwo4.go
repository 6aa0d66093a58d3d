package game

import (
	"fmt"

	"github.com/louken/cardhouse/internal/bigtwo"
	"github.com/louken/cardhouse/internal/deck"
)

// bigTwoSeats is the table size of the four-player variant
const bigTwoSeats = 4

// BigTwoFourRound runs four-handed Big 2: the human in seat 0, agents in
// seats 1-3, turn order round-robin. Control returns to the last seat that
// played once every other seat has passed in sequence.
type BigTwoFourRound struct {
	s     *Session
	hands [bigTwoSeats][]deck.Card // kept sorted ascending

	selected   map[int]bool
	last       bigtwo.Combo
	hasLast    bool
	turn       int
	lastPlayer int
	passStreak int
	control    bool
	settled    bool
}

// BigTwoFourSnapshot is the presentation view of a four-handed round.
// Opponent hands are exposed only as counts, indexed by seat.
type BigTwoFourSnapshot struct {
	Hand       []deck.Card
	Selected   map[int]bool
	Counts     [bigTwoSeats]int
	LastPlayed []deck.Card
	LastPlayer int
	Turn       int
	Control    bool
	Settled    bool
}

// StartBigTwoFour deducts the bet and deals the whole deck round-robin, one
// card per seat in turn. The seat holding 3 of diamonds leads with control.
func (s *Session) StartBigTwoFour() (*BigTwoFourRound, error) {
	if err := s.beginRound(); err != nil {
		return nil, err
	}
	r := &BigTwoFourRound{s: s, selected: make(map[int]bool), control: true}
	s.round = r

	d := s.newDeck()
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		r.hands[i%bigTwoSeats] = append(r.hands[i%bigTwoSeats], card)
	}
	for seat := range r.hands {
		deck.SortByBigTwoOrder(r.hands[seat])
	}

	// every card is dealt, so the global low card decides the leader
	leader, low := 0, 52
	for seat := range r.hands {
		if v := r.hands[seat][0].BigTwoOrder(); v < low {
			leader, low = seat, v
		}
	}
	r.turn = leader
	r.lastPlayer = leader
	s.logger.Debug("big2 four-handed dealt", "leader", leader)
	return r, nil
}

// Kind identifies the game
func (r *BigTwoFourRound) Kind() Kind { return KindBigTwoFour }

// Settled reports whether the round has reached its terminal phase
func (r *BigTwoFourRound) Settled() bool { return r.settled }

// Turn returns the active seat (0 = human)
func (r *BigTwoFourRound) Turn() int { return r.turn }

// Snapshot returns the presentation view of the round
func (r *BigTwoFourRound) Snapshot() BigTwoFourSnapshot {
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
	snap := BigTwoFourSnapshot{
		Hand:       append([]deck.Card(nil), r.hands[0]...),
		Selected:   selected,
		LastPlayed: lastPlayed,
		LastPlayer: r.lastPlayer,
		Turn:       r.turn,
		Control:    r.control,
		Settled:    r.settled,
	}
	for seat := range r.hands {
		snap.Counts[seat] = len(r.hands[seat])
	}
	return snap
}

// ToggleSelect flips the selection on one of the human seat's cards
func (r *BigTwoFourRound) ToggleSelect(i int) error {
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

// Play submits the human seat's selected cards
func (r *BigTwoFourRound) Play() error {
	if r.settled {
		return ErrRoundOver
	}
	if r.turn != 0 {
		return ErrNotYourTurn
	}
	picked := make([]deck.Card, 0, len(r.selected))
	for i, on := range r.selected {
		if on && i < len(r.hands[0]) {
			picked = append(picked, r.hands[0][i])
		}
	}
	if len(picked) == 0 {
		return fmt.Errorf("%w: no cards selected", ErrInvalidPlay)
	}

	combo := bigtwo.Classify(picked)
	if err := r.validate(combo); err != nil {
		return err
	}
	r.apply(0, combo)
	return nil
}

// Pass yields the human seat's turn. Legal only when a play is on the table.
func (r *BigTwoFourRound) Pass() error {
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
	r.pass()
	return nil
}

// PlayOpponent computes and applies the current agent seat's move. With
// control it plays its largest enumerated combo (triple over pair over
// single; the agents never enumerate five-card shapes). Responding, it plays
// the first same-size combo that beats the table, else passes.
func (r *BigTwoFourRound) PlayOpponent() (BigTwoMove, error) {
	if r.settled {
		return BigTwoMove{}, ErrRoundOver
	}
	if r.turn == 0 {
		return BigTwoMove{}, ErrNotYourTurn
	}

	seat := r.turn
	combos := bigtwo.FindCombos(r.hands[seat])

	var play []deck.Card
	if r.control || !r.hasLast {
		for _, group := range [][][]deck.Card{combos.Fives, combos.Triples, combos.Pairs, combos.Singles} {
			if len(group) > 0 {
				play = group[0]
				break
			}
		}
	} else {
		for _, candidate := range combos.BySize(len(r.last.Cards)) {
			if bigtwo.Classify(candidate).Beats(r.last) {
				play = candidate
				break
			}
		}
	}

	if play == nil {
		r.pass()
		return BigTwoMove{Seat: seat, Passed: true}, nil
	}

	combo := bigtwo.Classify(play)
	r.apply(seat, combo)
	return BigTwoMove{Seat: seat, Cards: combo.Cards}, nil
}

func (r *BigTwoFourRound) validate(combo bigtwo.Combo) error {
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

func (r *BigTwoFourRound) apply(seat int, combo bigtwo.Combo) {
	r.hands[seat] = bigtwo.Remove(r.hands[seat], combo.Cards)
	r.last = combo
	r.hasLast = true
	r.control = false
	r.lastPlayer = seat
	r.passStreak = 0
	clear(r.selected)

	if len(r.hands[seat]) == 0 {
		r.settled = true
		if seat == 0 {
			r.s.settle(OutcomeWin, bigTwoWinMultiplier, "You shed every card. Big 2 winner.")
		} else {
			r.s.settle(OutcomeLoss, 0, fmt.Sprintf("Seat %d shed every card first.", seat))
		}
		return
	}
	r.turn = (seat + 1) % bigTwoSeats
}

// pass advances the turn; once every seat but the last player has passed in
// sequence, the trick ends and control returns to that seat with the table
// cleared.
func (r *BigTwoFourRound) pass() {
	r.passStreak++
	if r.passStreak >= bigTwoSeats-1 {
		r.turn = r.lastPlayer
		r.control = true
		r.hasLast = false
		r.passStreak = 0
		return
	}
	r.turn = (r.turn + 1) % bigTwoSeats
}
