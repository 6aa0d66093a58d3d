// Package game owns the per-round state machines for the suite's games and
// the session-level chip ledger they settle into. Machines validate intents,
// mutate their own round state, drive the built-in opponent agents, and hand
// a settlement back to the session when a round reaches its terminal phase.
// Nothing in this package touches presentation.
package game

import "errors"

// Phase is the lifecycle stage of a round. It only ever moves forward:
// betting, then playing, then result; starting the next round resets it.
type Phase int

const (
	PhaseBetting Phase = iota
	PhasePlaying
	PhaseResult
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Kind identifies which game a round is running. It is chosen once when the
// round is created; no per-action dispatch ever re-examines it.
type Kind int

const (
	KindBlackjack Kind = iota
	KindPoker
	KindBigTwo
	KindBigTwoFour
	KindHighLow
	KindRoulette
)

// String returns the game name
func (k Kind) String() string {
	switch k {
	case KindBlackjack:
		return "blackjack"
	case KindPoker:
		return "poker"
	case KindBigTwo:
		return "big2"
	case KindBigTwoFour:
		return "big2-four"
	case KindHighLow:
		return "highlow"
	case KindRoulette:
		return "roulette"
	default:
		return "unknown"
	}
}

// Outcome is the result of a settled round from the human seat's view.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomePush
	OutcomeWin
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Settlement records how a finished round changed the chip ledger.
// ChipDelta is relative to the balance before the bet was deducted:
// a win gains the profit, a push is zero, a loss is the forfeited bet.
type Settlement struct {
	Outcome   Outcome
	Message   string
	ChipDelta int
}

// Round is the common surface of an active game machine. Game-specific
// intents live on the concrete types returned by the Session's Start
// methods.
type Round interface {
	Kind() Kind
	Settled() bool
}

var (
	// ErrInvalidBet rejects a bet that is non-positive or exceeds the balance.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrWrongPhase rejects an intent that is illegal in the current phase.
	ErrWrongPhase = errors.New("wrong phase")
	// ErrNotYourTurn rejects an intent for a seat that is not active.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrInvalidPlay rejects a malformed or insufficient play; the round
	// state is untouched.
	ErrInvalidPlay = errors.New("invalid play")
	// ErrRoundOver rejects intents against a round that already settled.
	ErrRoundOver = errors.New("round is over")
	// ErrGameOver halts betting once the balance is exhausted, until Reset.
	ErrGameOver = errors.New("out of chips")
)
