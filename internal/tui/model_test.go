package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louken/cardhouse/internal/game"
	"github.com/louken/cardhouse/internal/randutil"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	sess := game.NewSession(randutil.New(1), log.New(io.Discard))
	return NewModel(sess, log.New(io.Discard), WithOpponentDelay(time.Millisecond))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(*Model)
	}
	return m
}

func TestLobbyToBetting(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "1")
	assert.Equal(t, screenBetting, m.screen)
	assert.Equal(t, game.KindBlackjack, m.pending)

	m = press(m, "esc")
	assert.Equal(t, screenLobby, m.screen)
}

func TestBetCommands(t *testing.T) {
	m := newTestModel(t)

	require.NoError(t, m.applyBetCommand("250"))
	assert.Equal(t, 250, m.session.Bet())

	require.NoError(t, m.applyBetCommand("all"))
	assert.Equal(t, game.StartingBalance, m.session.Bet())

	require.NoError(t, m.applyBetCommand("half"))
	assert.Equal(t, game.StartingBalance/2, m.session.Bet())

	require.NoError(t, m.applyBetCommand("clear"))
	assert.Zero(t, m.session.Bet())

	assert.Error(t, m.applyBetCommand("a lot"))
	assert.Error(t, m.applyBetCommand("-50"))
}

func TestBettingEnterDealsBlackjack(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "1", "1", "0", "0", "enter")
	require.NotNil(t, m.session.Round())
	assert.Equal(t, game.KindBlackjack, m.session.Round().Kind())
	// a natural on the deal jumps straight to the result screen
	assert.Contains(t, []screen{screenBlackjack, screenResult}, m.screen)
}

func TestHighLowStartsAllIn(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "5")
	assert.Equal(t, screenHighLow, m.screen)
	assert.Zero(t, m.session.Balance())
	assert.Equal(t, game.StartingBalance, m.session.Bet())
}

func TestRouletteStartsWithoutBet(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "6")
	assert.Equal(t, screenRoulette, m.screen)
	assert.Equal(t, game.StartingBalance, m.session.Balance())
	require.NotNil(t, m.session.Round())
	assert.Equal(t, game.KindRoulette, m.session.Round().Kind())
}

func TestBigTwoKeysDriveRound(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3", "1", "0", "0", "enter")
	require.NotNil(t, m.session.Round())
	assert.Equal(t, screenBigTwo, m.screen)

	r := m.session.Round().(*game.BigTwoRound)
	if r.Turn() == 1 {
		// opponent leads, then passing is always legal without control
		next, _ := m.Update(opponentTurnMsg{})
		m = next.(*Model)
		require.Equal(t, 0, r.Turn())
		require.Equal(t, 12, r.Snapshot().OpponentCount)
		m = press(m, "p")
	} else {
		// leading with control is always legal for a single
		m = press(m, " ", "enter")
		require.Len(t, r.Snapshot().Hand, 12)
	}
	assert.Equal(t, 1, r.Turn())
}

func TestResultScreenReturnsToLobby(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "5") // all in on higher-or-lower

	r := m.session.Round().(*game.HighLowRound)
	require.NoError(t, r.Collect())
	m.screen = screenResult

	m = press(m, "enter")
	assert.Equal(t, screenLobby, m.screen)
	assert.Equal(t, game.PhaseBetting, m.session.Phase())
}

func TestOpponentPacingUsesClock(t *testing.T) {
	mock := quartz.NewMock(t)
	sess := game.NewSession(randutil.New(1), log.New(io.Discard))
	m := NewModel(sess, log.New(io.Discard),
		WithClock(mock), WithOpponentDelay(500*time.Millisecond))

	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	cmd := m.opponentAfterDelay()
	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()

	ctx := context.Background()
	call := trap.MustWait(ctx)
	call.MustRelease(ctx)
	mock.Advance(500 * time.Millisecond).MustWait(ctx)

	msg := <-msgs
	assert.IsType(t, opponentTurnMsg{}, msg)
}

func TestViewRendersEachScreen(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(*Model)

	assert.Contains(t, m.View(), "Blackjack")

	m = press(m, "2")
	assert.Contains(t, m.View(), "Betting")

	m = press(m, "h", "a", "l", "f", "enter")
	require.Equal(t, screenPoker, m.screen)
	view := m.View()
	assert.Contains(t, view, "Dealer")
	assert.Contains(t, view, "You")
}

func TestEventLogIsBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxEvents+50; i++ {
		m.addEvent("click")
	}
	assert.Len(t, m.events, maxEvents)
}
