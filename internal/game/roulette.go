package game

import "fmt"

// cylinderSize is the number of chambers in the revolver
const cylinderSize = 6

// Target is who the acting player points the revolver at
type Target int

const (
	TargetSelf Target = iota
	TargetOpponent
)

// String returns the target name
func (t Target) String() string {
	if t == TargetSelf {
		return "self"
	}
	return "opponent"
}

// TriggerResult reports one pull to the presentation layer
type TriggerResult struct {
	Fired      bool
	Eliminated int // seat index, meaningful only when Fired
	NextTurn   int
}

// RouletteRound runs Russian roulette between two human seats. One chamber
// of six is loaded at random; the chamber index is shared between both seats
// and advances by one on every safe pull, never resetting mid-round. No
// chips ride on this game.
type RouletteRound struct {
	s *Session

	bulletIndex  int
	currentIndex int
	turn         int
	eliminated   int // -1 while both seats live
}

// RouletteSnapshot is the presentation view of a roulette round. The bullet
// position is never exposed; PullsSurvived is how far the cylinder has come.
type RouletteSnapshot struct {
	Turn          int
	PullsSurvived int
	Eliminated    int // -1 while both seats live
	Settled       bool
}

// StartRoulette begins a round with a single bullet in a uniformly random
// chamber. No bet is involved; the betting phase requirement still holds so
// a round in another game cannot be interrupted.
func (s *Session) StartRoulette() (*RouletteRound, error) {
	if s.phase != PhaseBetting {
		return nil, fmt.Errorf("%w: round already in progress", ErrWrongPhase)
	}
	r := &RouletteRound{
		s:           s,
		bulletIndex: s.rng.IntN(cylinderSize),
		eliminated:  -1,
	}
	s.round = r
	s.phase = PhasePlaying
	s.result = nil
	s.logger.Debug("roulette started")
	return r, nil
}

// Kind identifies the game
func (r *RouletteRound) Kind() Kind { return KindRoulette }

// Settled reports whether the round has reached its terminal phase
func (r *RouletteRound) Settled() bool { return r.eliminated >= 0 }

// Turn returns the acting seat (0 or 1)
func (r *RouletteRound) Turn() int { return r.turn }

// Snapshot returns the presentation view of the round
func (r *RouletteRound) Snapshot() RouletteSnapshot {
	return RouletteSnapshot{
		Turn:          r.turn,
		PullsSurvived: r.currentIndex,
		Eliminated:    r.eliminated,
		Settled:       r.Settled(),
	}
}

// PullTrigger fires the current chamber at the chosen target. On the loaded
// chamber the target is eliminated and the round ends, absorbing all further
// pulls; otherwise the cylinder advances and the turn passes across.
func (r *RouletteRound) PullTrigger(target Target) (TriggerResult, error) {
	if r.Settled() {
		return TriggerResult{}, ErrRoundOver
	}

	if r.currentIndex == r.bulletIndex {
		victim := r.turn
		if target == TargetOpponent {
			victim = 1 - r.turn
		}
		r.eliminated = victim
		r.s.settleNoChips(OutcomeLoss, fmt.Sprintf("Chamber %d was loaded. Seat %d is out.", r.currentIndex+1, victim))
		return TriggerResult{Fired: true, Eliminated: victim, NextTurn: r.turn}, nil
	}

	r.currentIndex++
	r.turn = 1 - r.turn
	return TriggerResult{NextTurn: r.turn}, nil
}
