package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louken/cardhouse/internal/bigtwo"
	"github.com/louken/cardhouse/internal/deck"
)

// toBigTwo deals all diamonds to the human seat and all clubs to the agent,
// so the human holds the 3 of diamonds and leads. Bet is 100 chips.
func toBigTwo(t *testing.T) (*Session, *BigTwoRound) {
	t.Helper()
	s := newTestSession(t)
	require.NoError(t, s.PlaceBet(100))

	var cards []deck.Card
	for _, suit := range []deck.Suit{deck.Diamonds, deck.Clubs} {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			cards = append(cards, card(suit, rank))
		}
	}
	stackDeck(s, cards...)

	r, err := s.StartBigTwo()
	require.NoError(t, err)
	return s, r
}

func TestBigTwoLowestCardLeads(t *testing.T) {
	_, r := toBigTwo(t)

	assert.Equal(t, 0, r.Turn())
	snap := r.Snapshot()
	assert.True(t, snap.Control)
	assert.Len(t, snap.Hand, 13)
	assert.Equal(t, 13, snap.OpponentCount)
	assert.Equal(t, card(deck.Diamonds, deck.Three), snap.Hand[0])
}

func TestBigTwoPlayRemovesExactCards(t *testing.T) {
	_, r := toBigTwo(t)

	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.Play())

	snap := r.Snapshot()
	assert.Len(t, snap.Hand, 12)
	assert.NotContains(t, snap.Hand, card(deck.Diamonds, deck.Three))
	assert.Equal(t, []deck.Card{card(deck.Diamonds, deck.Three)}, snap.LastPlayed)
	assert.Equal(t, 1, r.Turn())
	assert.False(t, snap.Control)
}

func TestBigTwoPlayValidation(t *testing.T) {
	_, r := toBigTwo(t)

	// nothing selected
	assert.ErrorIs(t, r.Play(), ErrInvalidPlay)

	// two diamonds of different rank form no combo
	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.ToggleSelect(1))
	assert.ErrorIs(t, r.Play(), ErrInvalidPlay)
	assert.Len(t, r.Snapshot().Hand, 13)

	// deselect and lead a legal single
	require.NoError(t, r.ToggleSelect(1))
	require.NoError(t, r.Play())
	assert.Len(t, r.Snapshot().Hand, 12)
}

func TestBigTwoOpponentBeatsSingle(t *testing.T) {
	_, r := toBigTwo(t)

	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.Play())

	move, err := r.PlayOpponent()
	require.NoError(t, err)
	assert.False(t, move.Passed)
	// cheapest club above the 3 of diamonds is the 3 of clubs
	assert.Equal(t, []deck.Card{card(deck.Clubs, deck.Three)}, move.Cards)
	assert.Equal(t, 0, r.Turn())
	assert.Equal(t, 12, r.Snapshot().OpponentCount)
}

func TestBigTwoTurnEnforcement(t *testing.T) {
	_, r := toBigTwo(t)

	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.Play())
	_, err := r.PlayOpponent()
	require.NoError(t, err)

	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.Play())
	assert.ErrorIs(t, r.ToggleSelect(0), ErrNotYourTurn)
	assert.ErrorIs(t, r.Play(), ErrNotYourTurn)
	assert.ErrorIs(t, r.Pass(), ErrNotYourTurn)
}

func TestBigTwoPassHandsControlAcross(t *testing.T) {
	_, r := toBigTwo(t)

	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.Play())
	_, err := r.PlayOpponent()
	require.NoError(t, err)

	// passing may not be the best move here, but it must be legal
	require.NoError(t, r.Pass())
	snap := r.Snapshot()
	assert.Nil(t, snap.LastPlayed)
	assert.Equal(t, 1, r.Turn())

	// opponent now leads fresh with its lowest card
	move, err := r.PlayOpponent()
	require.NoError(t, err)
	assert.False(t, move.Passed)
	assert.Len(t, move.Cards, 1)
}

func TestBigTwoMustMatchCardinality(t *testing.T) {
	_, r := toBigTwo(t)

	pair := bigtwo.Classify([]deck.Card{card(deck.Clubs, deck.Five), card(deck.Hearts, deck.Five)})
	r.last, r.hasLast, r.control = pair, true, false

	// a single deuce cannot answer a pair, however high it ranks
	require.NoError(t, r.ToggleSelect(12))
	assert.ErrorIs(t, r.Play(), ErrInvalidPlay)
	assert.Len(t, r.Snapshot().Hand, 13)
}

func TestBigTwoCannotPassWithControl(t *testing.T) {
	_, r := toBigTwo(t)
	assert.ErrorIs(t, r.Pass(), ErrInvalidPlay)
}

func TestBigTwoOpponentPassReturnsControl(t *testing.T) {
	_, r := toBigTwo(t)

	// strip the agent down to cards that cannot answer a deuce
	r.hands[1] = []deck.Card{card(deck.Clubs, deck.Three), card(deck.Clubs, deck.Four)}
	require.NoError(t, r.ToggleSelect(12)) // 2 of diamonds, highest in hand
	require.NoError(t, r.Play())

	move, err := r.PlayOpponent()
	require.NoError(t, err)
	assert.True(t, move.Passed)
	assert.Equal(t, 0, r.Turn())
	snap := r.Snapshot()
	assert.True(t, snap.Control)
	assert.Nil(t, snap.LastPlayed)
}

func TestBigTwoHumanWinPaysTriple(t *testing.T) {
	s, r := toBigTwo(t)

	r.hands[0] = []deck.Card{card(deck.Diamonds, deck.Four)}
	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.Play())

	assert.True(t, r.Settled())
	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeWin, result.Outcome)
	assert.Equal(t, 200, result.ChipDelta)
	assert.Equal(t, StartingBalance+200, s.Balance())
}

func TestBigTwoOpponentWinForfeitsBet(t *testing.T) {
	s, r := toBigTwo(t)

	r.hands[1] = []deck.Card{card(deck.Clubs, deck.Four)}
	require.NoError(t, r.ToggleSelect(0))
	require.NoError(t, r.Play())

	move, err := r.PlayOpponent()
	require.NoError(t, err)
	assert.False(t, move.Passed)
	assert.True(t, r.Settled())

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeLoss, result.Outcome)
	assert.Equal(t, -100, result.ChipDelta)
	assert.Equal(t, StartingBalance-100, s.Balance())

	_, err = r.PlayOpponent()
	assert.ErrorIs(t, err, ErrRoundOver)
}
