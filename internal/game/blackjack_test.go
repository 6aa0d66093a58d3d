package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louken/cardhouse/internal/deck"
)

// toBlackjack stacks the deal (player, dealer, player, dealer, then draws)
// and starts a 100-chip round.
func toBlackjack(t *testing.T, cards ...deck.Card) (*Session, *BlackjackRound) {
	t.Helper()
	s := newTestSession(t)
	require.NoError(t, s.PlaceBet(100))
	stackDeck(s, cards...)
	r, err := s.StartBlackjack()
	require.NoError(t, err)
	return s, r
}

func TestBlackjackDealerHiddenUntilStand(t *testing.T) {
	_, r := toBlackjack(t,
		card(deck.Spades, deck.King), card(deck.Hearts, deck.Nine),
		card(deck.Spades, deck.Ten), card(deck.Diamonds, deck.Eight),
	)

	snap := r.Snapshot()
	assert.True(t, snap.DealerHidden)
	assert.Equal(t, 20, snap.PlayerScore)
	assert.Zero(t, snap.DealerScore)

	require.NoError(t, r.Stand())
	snap = r.Snapshot()
	assert.False(t, snap.DealerHidden)
	assert.Equal(t, 17, snap.DealerScore)
}

func TestBlackjackNaturalSettlesOnDeal(t *testing.T) {
	s, r := toBlackjack(t,
		card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Nine),
		card(deck.Spades, deck.King), card(deck.Diamonds, deck.Eight),
	)

	assert.True(t, r.Settled())
	assert.True(t, r.Snapshot().Natural)

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeWin, result.Outcome)
	// naturals pay the same flat 1:1 as any other win
	assert.Equal(t, 100, result.ChipDelta)
}

func TestBlackjackHitToBust(t *testing.T) {
	s, r := toBlackjack(t,
		card(deck.Spades, deck.King), card(deck.Hearts, deck.Nine),
		card(deck.Spades, deck.Six), card(deck.Diamonds, deck.Eight),
		card(deck.Clubs, deck.Nine),
	)

	require.NoError(t, r.Hit())
	assert.True(t, r.Settled())

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeLoss, result.Outcome)
	assert.Equal(t, -100, result.ChipDelta)

	assert.ErrorIs(t, r.Hit(), ErrRoundOver)
	assert.ErrorIs(t, r.Stand(), ErrRoundOver)
}

func TestBlackjackAceDemotesOnHit(t *testing.T) {
	_, r := toBlackjack(t,
		card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Nine),
		card(deck.Spades, deck.Six), card(deck.Diamonds, deck.Eight),
		card(deck.Clubs, deck.Nine),
	)

	// soft 17 plus a nine is hard 16, not a bust
	require.NoError(t, r.Hit())
	assert.False(t, r.Settled())
	assert.Equal(t, 16, r.Snapshot().PlayerScore)
}

func TestBlackjackDealerDrawsToSeventeen(t *testing.T) {
	s, r := toBlackjack(t,
		card(deck.Spades, deck.King), card(deck.Hearts, deck.King),
		card(deck.Spades, deck.Nine), card(deck.Hearts, deck.Six),
		card(deck.Diamonds, deck.Queen),
	)

	require.NoError(t, r.Stand())
	snap := r.Snapshot()
	assert.Equal(t, 26, snap.DealerScore)

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeWin, result.Outcome)
	assert.Equal(t, StartingBalance+100, s.Balance())
}

func TestBlackjackDealerStandsOnSeventeen(t *testing.T) {
	s, r := toBlackjack(t,
		card(deck.Spades, deck.King), card(deck.Hearts, deck.Ten),
		card(deck.Spades, deck.Six), card(deck.Hearts, deck.Seven),
	)

	require.NoError(t, r.Stand())
	assert.Len(t, r.Snapshot().Dealer, 2)

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeLoss, result.Outcome)
}
