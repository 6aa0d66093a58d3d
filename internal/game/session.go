package game

import (
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/louken/cardhouse/internal/deck"
)

// StartingBalance is the bankroll a fresh or reset session begins with.
const StartingBalance = 10000

// Total-return multipliers applied to the bet on a win. Blackjack pays flat
// 1:1 even on a natural 21 (kept as observed; standard casinos pay 3:2).
const (
	blackjackWinMultiplier = 2
	pokerWinMultiplier     = 2
	bigTwoWinMultiplier    = 3
)

// Session owns the chip ledger and the active round. All chip movement goes
// through PlaceBet (debit at round start) and settle (the single credit
// point); the machines never touch the balance directly.
type Session struct {
	balance int
	bet     int
	phase   Phase
	round   Round
	result  *Settlement

	rng    *rand.Rand
	logger *log.Logger

	starting int

	// deckFactory overrides deck construction when set; tests use it to
	// stack known deals.
	deckFactory func() *deck.Deck
}

// SessionOption configures a session at creation time
type SessionOption func(*Session)

// WithStartingBalance overrides the default starting bankroll
func WithStartingBalance(chips int) SessionOption {
	return func(s *Session) {
		if chips > 0 {
			s.starting = chips
		}
	}
}

// NewSession creates a session with the starting bankroll. The RNG seeds
// every deck and bullet placement, so a fixed seed reproduces whole rounds.
func NewSession(rng *rand.Rand, logger *log.Logger, opts ...SessionOption) *Session {
	s := &Session{
		starting: StartingBalance,
		phase:    PhaseBetting,
		rng:      rng,
		logger:   logger.WithPrefix("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.balance = s.starting
	return s
}

// Balance returns the current bankroll (excluding any bet in flight)
func (s *Session) Balance() int { return s.balance }

// Bet returns the wager for the current round
func (s *Session) Bet() int { return s.bet }

// Phase returns the current round phase
func (s *Session) Phase() Phase { return s.phase }

// Round returns the active round machine, or nil between rounds
func (s *Session) Round() Round { return s.round }

// Result returns the settlement of the last round, once it reached result phase
func (s *Session) Result() (Settlement, bool) {
	if s.result == nil {
		return Settlement{}, false
	}
	return *s.result, true
}

// GameOver reports whether the bankroll is exhausted with nothing in flight.
// Betting and starting rounds are refused until Reset.
func (s *Session) GameOver() bool {
	return s.balance <= 0 && s.bet == 0 && s.phase == PhaseBetting
}

// Reset restores the starting bankroll and returns to the betting phase.
func (s *Session) Reset() {
	s.balance = s.starting
	s.bet = 0
	s.phase = PhaseBetting
	s.round = nil
	s.result = nil
	s.logger.Debug("session reset", "balance", s.balance)
}

// PlaceBet adds amount to the current wager. Only legal in the betting
// phase; the combined bet can never exceed the balance.
func (s *Session) PlaceBet(amount int) error {
	if s.phase != PhaseBetting {
		return fmt.Errorf("%w: cannot bet during %s", ErrWrongPhase, s.phase)
	}
	if s.GameOver() {
		return ErrGameOver
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidBet)
	}
	if s.bet+amount > s.balance {
		return fmt.Errorf("%w: %d exceeds balance %d", ErrInvalidBet, s.bet+amount, s.balance)
	}
	s.bet += amount
	return nil
}

// BetAll wagers the entire balance
func (s *Session) BetAll() error {
	if s.phase != PhaseBetting {
		return fmt.Errorf("%w: cannot bet during %s", ErrWrongPhase, s.phase)
	}
	if s.GameOver() {
		return ErrGameOver
	}
	s.bet = s.balance
	return nil
}

// BetHalf wagers half the balance
func (s *Session) BetHalf() error {
	if s.phase != PhaseBetting {
		return fmt.Errorf("%w: cannot bet during %s", ErrWrongPhase, s.phase)
	}
	if s.GameOver() {
		return ErrGameOver
	}
	half := s.balance / 2
	if half <= 0 {
		return fmt.Errorf("%w: balance too small to halve", ErrInvalidBet)
	}
	s.bet = half
	return nil
}

// ClearBet zeroes the pending wager during the betting phase
func (s *Session) ClearBet() error {
	if s.phase != PhaseBetting {
		return fmt.Errorf("%w: cannot clear bet during %s", ErrWrongPhase, s.phase)
	}
	s.bet = 0
	return nil
}

// beginRound deducts the wager and moves to the playing phase. Every Start
// method for a betting game funnels through here.
func (s *Session) beginRound() error {
	if s.phase != PhaseBetting {
		return fmt.Errorf("%w: round already in progress", ErrWrongPhase)
	}
	if s.GameOver() {
		return ErrGameOver
	}
	if s.bet <= 0 || s.bet > s.balance {
		return fmt.Errorf("%w: no valid bet placed", ErrInvalidBet)
	}
	s.balance -= s.bet
	s.phase = PhasePlaying
	s.result = nil
	return nil
}

// newDeck constructs a fresh shuffled deck for a round
func (s *Session) newDeck() *deck.Deck {
	if s.deckFactory != nil {
		return s.deckFactory()
	}
	return deck.New(s.rng)
}

// settle is the single place the balance is credited. A win pays back
// floor(bet x multiplier) in total, a push refunds the bet exactly, a loss
// returns nothing (the bet was deducted at round start).
func (s *Session) settle(outcome Outcome, multiplier float64, message string) {
	var payout int
	switch outcome {
	case OutcomeWin:
		payout = int(math.Floor(float64(s.bet) * multiplier))
	case OutcomePush:
		payout = s.bet
	}
	s.balance += payout
	s.result = &Settlement{
		Outcome:   outcome,
		Message:   message,
		ChipDelta: payout - s.bet,
	}
	s.phase = PhaseResult
	s.logger.Debug("round settled",
		"outcome", outcome, "bet", s.bet, "payout", payout, "balance", s.balance)
}

// settleWinExact credits a win whose payout is already known in chips,
// avoiding float rounding when the multiplier is a ratio of two totals.
func (s *Session) settleWinExact(payout int, message string) {
	s.balance += payout
	s.result = &Settlement{
		Outcome:   OutcomeWin,
		Message:   message,
		ChipDelta: payout - s.bet,
	}
	s.phase = PhaseResult
	s.logger.Debug("round settled",
		"outcome", OutcomeWin, "bet", s.bet, "payout", payout, "balance", s.balance)
}

// settleNoChips ends a round that sits outside the betting economy.
func (s *Session) settleNoChips(outcome Outcome, message string) {
	s.result = &Settlement{Outcome: outcome, Message: message}
	s.phase = PhaseResult
	s.logger.Debug("round ended", "outcome", outcome)
}

// FinishRound acknowledges a settled round and returns to the betting phase.
func (s *Session) FinishRound() error {
	if s.phase != PhaseResult {
		return fmt.Errorf("%w: round not settled", ErrWrongPhase)
	}
	s.bet = 0
	s.phase = PhaseBetting
	s.round = nil
	return nil
}

// Abandon forfeits an unfinished round. The wagered bet is lost; there is no
// partial refund.
func (s *Session) Abandon() {
	if s.phase != PhasePlaying {
		return
	}
	s.logger.Debug("round abandoned", "bet", s.bet)
	s.bet = 0
	s.phase = PhaseBetting
	s.round = nil
	s.result = nil
}
