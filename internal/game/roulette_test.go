package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louken/cardhouse/internal/deck"
)

func TestRouletteSafePullsAdvanceAndAlternate(t *testing.T) {
	s := newTestSession(t)
	r, err := s.StartRoulette()
	require.NoError(t, err)
	r.bulletIndex = 3

	for pull := 0; pull < 3; pull++ {
		res, err := r.PullTrigger(TargetSelf)
		require.NoError(t, err)
		assert.False(t, res.Fired)
		assert.Equal(t, (pull+1)%2, res.NextTurn)
	}

	snap := r.Snapshot()
	assert.Equal(t, 3, snap.PullsSurvived)
	assert.Equal(t, -1, snap.Eliminated)
	assert.False(t, snap.Settled)
}

func TestRouletteLoadedChamberEliminatesSelf(t *testing.T) {
	s := newTestSession(t)
	r, err := s.StartRoulette()
	require.NoError(t, err)
	r.bulletIndex = 0

	res, err := r.PullTrigger(TargetSelf)
	require.NoError(t, err)
	assert.True(t, res.Fired)
	assert.Equal(t, 0, res.Eliminated)
	assert.True(t, r.Settled())

	// no chips ride on this game
	assert.Equal(t, StartingBalance, s.Balance())
	result, ok := s.Result()
	require.True(t, ok)
	assert.Zero(t, result.ChipDelta)
}

func TestRouletteLoadedChamberEliminatesOpponent(t *testing.T) {
	s := newTestSession(t)
	r, err := s.StartRoulette()
	require.NoError(t, err)
	r.bulletIndex = 1

	_, err = r.PullTrigger(TargetSelf)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Turn())

	// seat 1 points the live chamber across the table
	res, err := r.PullTrigger(TargetOpponent)
	require.NoError(t, err)
	assert.True(t, res.Fired)
	assert.Equal(t, 0, res.Eliminated)
}

func TestRouletteTerminalStateAbsorbs(t *testing.T) {
	s := newTestSession(t)
	r, err := s.StartRoulette()
	require.NoError(t, err)
	r.bulletIndex = 0

	_, err = r.PullTrigger(TargetSelf)
	require.NoError(t, err)

	_, err = r.PullTrigger(TargetSelf)
	assert.ErrorIs(t, err, ErrRoundOver)
	_, err = r.PullTrigger(TargetOpponent)
	assert.ErrorIs(t, err, ErrRoundOver)

	require.NoError(t, s.FinishRound())
	assert.Equal(t, PhaseBetting, s.Phase())
}

func TestRouletteBlocksOtherRoundInFlight(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.PlaceBet(100))
	stackDeck(s,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine),
		card(deck.Clubs, deck.Seven), card(deck.Diamonds, deck.Eight),
	)
	_, err := s.StartBlackjack()
	require.NoError(t, err)

	_, err = s.StartRoulette()
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestRouletteBulletIndexWithinCylinder(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 20; i++ {
		r, err := s.StartRoulette()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.bulletIndex, 0)
		assert.Less(t, r.bulletIndex, cylinderSize)
		s.Abandon()
	}
}
