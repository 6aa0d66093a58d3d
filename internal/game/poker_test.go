package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louken/cardhouse/internal/deck"
	"github.com/louken/cardhouse/internal/evaluator"
)

// toPoker stacks the deal (five to the player, five to the dealer, then
// replacements in draw order) and starts a 100-chip round.
func toPoker(t *testing.T, cards ...deck.Card) (*Session, *PokerRound) {
	t.Helper()
	s := newTestSession(t)
	require.NoError(t, s.PlaceBet(100))
	stackDeck(s, cards...)
	r, err := s.StartPoker()
	require.NoError(t, err)
	return s, r
}

func TestPokerHoldAndDraw(t *testing.T) {
	s, r := toPoker(t,
		// player: pair of kings and junk
		card(deck.Spades, deck.King), card(deck.Hearts, deck.King),
		card(deck.Diamonds, deck.Two), card(deck.Clubs, deck.Five),
		card(deck.Hearts, deck.Nine),
		// dealer: pair of queens, kept as dealt
		card(deck.Spades, deck.Queen), card(deck.Hearts, deck.Queen),
		card(deck.Diamonds, deck.Seven), card(deck.Clubs, deck.Eight),
		card(deck.Clubs, deck.Two),
		// player replacements
		card(deck.Diamonds, deck.King), card(deck.Clubs, deck.Three),
		card(deck.Spades, deck.Four),
	)

	require.NoError(t, r.ToggleHold(0))
	require.NoError(t, r.ToggleHold(1))
	require.NoError(t, r.Draw())

	snap := r.Snapshot()
	assert.True(t, snap.Settled)
	assert.Equal(t, evaluator.ThreeOfAKind, snap.PlayerHand.Category)
	assert.Equal(t, evaluator.OnePair, snap.DealerHand.Category)

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeWin, result.Outcome)
	assert.Equal(t, 100, result.ChipDelta)
}

func TestPokerDealerRedrawsWeakHand(t *testing.T) {
	s, r := toPoker(t,
		// player: heart flush, held pat
		card(deck.Hearts, deck.Two), card(deck.Hearts, deck.Three),
		card(deck.Hearts, deck.Four), card(deck.Hearts, deck.Five),
		card(deck.Hearts, deck.Seven),
		// dealer: ace high, keeps the top two and redraws three
		card(deck.Spades, deck.Ace), card(deck.Diamonds, deck.Jack),
		card(deck.Diamonds, deck.Nine), card(deck.Clubs, deck.Seven),
		card(deck.Clubs, deck.Three),
		// dealer replacements complete a broadway straight
		card(deck.Spades, deck.King), card(deck.Spades, deck.Queen),
		card(deck.Spades, deck.Ten),
	)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.ToggleHold(i))
	}
	require.NoError(t, r.Draw())

	snap := r.Snapshot()
	assert.Equal(t, evaluator.Flush, snap.PlayerHand.Category)
	assert.Equal(t, evaluator.Straight, snap.DealerHand.Category)

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeWin, result.Outcome)
	assert.Equal(t, StartingBalance+100, s.Balance())
}

func TestPokerSingleDrawPerRound(t *testing.T) {
	s, r := toPoker(t,
		card(deck.Hearts, deck.Two), card(deck.Hearts, deck.Three),
		card(deck.Hearts, deck.Four), card(deck.Hearts, deck.Five),
		card(deck.Hearts, deck.Seven),
		card(deck.Spades, deck.Queen), card(deck.Hearts, deck.Queen),
		card(deck.Diamonds, deck.Seven), card(deck.Clubs, deck.Eight),
		card(deck.Clubs, deck.Two),
	)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.ToggleHold(i))
	}
	require.NoError(t, r.Draw())
	assert.ErrorIs(t, r.Draw(), ErrRoundOver)

	_, ok := s.Result()
	assert.True(t, ok)
}

func TestPokerToggleHoldValidation(t *testing.T) {
	_, r := toPoker(t,
		card(deck.Hearts, deck.Two), card(deck.Hearts, deck.Three),
		card(deck.Hearts, deck.Four), card(deck.Hearts, deck.Five),
		card(deck.Hearts, deck.Seven),
		card(deck.Spades, deck.Queen), card(deck.Hearts, deck.Queen),
		card(deck.Diamonds, deck.Seven), card(deck.Clubs, deck.Eight),
		card(deck.Clubs, deck.Two),
	)

	assert.ErrorIs(t, r.ToggleHold(-1), ErrInvalidPlay)
	assert.ErrorIs(t, r.ToggleHold(5), ErrInvalidPlay)

	require.NoError(t, r.ToggleHold(2))
	require.NoError(t, r.ToggleHold(2))
	assert.False(t, r.Snapshot().Held[2])
}

func TestPokerDealerHiddenBeforeShowdown(t *testing.T) {
	_, r := toPoker(t,
		card(deck.Hearts, deck.Two), card(deck.Hearts, deck.Three),
		card(deck.Hearts, deck.Four), card(deck.Hearts, deck.Five),
		card(deck.Hearts, deck.Seven),
		card(deck.Spades, deck.Queen), card(deck.Hearts, deck.Queen),
		card(deck.Diamonds, deck.Seven), card(deck.Clubs, deck.Eight),
		card(deck.Clubs, deck.Two),
	)

	snap := r.Snapshot()
	assert.True(t, snap.DealerHidden)
	assert.Equal(t, evaluator.Hand{}, snap.DealerHand)
}
