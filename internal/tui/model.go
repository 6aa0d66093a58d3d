// Package tui is the terminal front end for the card house. It is a single
// Bubble Tea model that walks a small screen machine: lobby, betting, one
// board per game, result. All rule decisions live in the game package; the
// model only translates key presses into intents and renders snapshots.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/louken/cardhouse/internal/game"
)

// screen identifies which view the model is showing
type screen int

const (
	screenLobby screen = iota
	screenBetting
	screenBlackjack
	screenPoker
	screenBigTwo
	screenBigTwoFour
	screenHighLow
	screenRoulette
	screenResult
)

// opponentTurnMsg fires after the opponent pacing delay and lets an agent
// seat act
type opponentTurnMsg struct{}

// maxEvents bounds the event log
const maxEvents = 200

// Model is the Bubble Tea model for the whole suite
type Model struct {
	session *game.Session
	logger  *log.Logger
	clock   quartz.Clock
	delay   time.Duration

	screen  screen
	pending game.Kind

	betInput textinput.Model
	eventLog viewport.Model
	events   []string
	cursor   int
	errMsg   string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// Option configures the model
type Option func(*Model)

// WithClock substitutes the pacing clock, mockable in tests
func WithClock(clock quartz.Clock) Option {
	return func(m *Model) { m.clock = clock }
}

// WithOpponentDelay sets the pause before an agent seat acts
func WithOpponentDelay(d time.Duration) Option {
	return func(m *Model) { m.delay = d }
}

// NewModel creates the model around an existing session
func NewModel(session *game.Session, logger *log.Logger, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "bet amount, or: all, half, clear"
	ti.CharLimit = 12
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		session:  session,
		logger:   logger.WithPrefix("tui"),
		clock:    quartz.NewReal(),
		delay:    600 * time.Millisecond,
		betInput: ti,
		eventLog: vp,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.eventLog.Width = msg.Width - 4
		m.eventLog.Height = 6
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}
		m.errMsg = ""
		return m.handleKey(msg)

	case opponentTurnMsg:
		return m.advanceOpponent()
	}

	var cmd tea.Cmd
	m.eventLog, cmd = m.eventLog.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLobby:
		return m.updateLobby(msg)
	case screenBetting:
		return m.updateBetting(msg)
	case screenBlackjack:
		return m.updateBlackjack(msg)
	case screenPoker:
		return m.updatePoker(msg)
	case screenBigTwo, screenBigTwoFour:
		return m.updateBigTwo(msg)
	case screenHighLow:
		return m.updateHighLow(msg)
	case screenRoulette:
		return m.updateRoulette(msg)
	case screenResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m *Model) updateLobby(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	case "1":
		return m.gotoBetting(game.KindBlackjack)
	case "2":
		return m.gotoBetting(game.KindPoker)
	case "3":
		return m.gotoBetting(game.KindBigTwo)
	case "4":
		return m.gotoBetting(game.KindBigTwoFour)
	case "5":
		// higher-or-lower is all in, no amount to choose
		r, err := m.session.StartHighLow()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.addEvent(fmt.Sprintf("All in for %d. First card: %s", r.Snapshot().Original, r.Snapshot().Current))
		m.screen = screenHighLow
		return m, nil
	case "6":
		if _, err := m.session.StartRoulette(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.addEvent("The cylinder spins. Seat 0 goes first.")
		m.screen = screenRoulette
		return m, nil
	case "r":
		if m.session.GameOver() {
			m.session.Reset()
			m.addEvent("Fresh chips on the table.")
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) gotoBetting(kind game.Kind) (tea.Model, tea.Cmd) {
	if m.session.GameOver() {
		m.errMsg = game.ErrGameOver.Error()
		return m, nil
	}
	m.pending = kind
	m.betInput.SetValue("")
	m.betInput.Focus()
	m.screen = screenBetting
	return m, textinput.Blink
}

func (m *Model) updateBetting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		_ = m.session.ClearBet()
		m.screen = screenLobby
		return m, nil
	case "enter":
		if err := m.applyBetCommand(strings.TrimSpace(m.betInput.Value())); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.betInput.SetValue("")
		if m.session.Bet() == 0 {
			return m, nil
		}
		return m.startPendingRound()
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

// applyBetCommand interprets the bet line: a chip amount, or one of the
// words all, half and clear. An empty line keeps the staged bet.
func (m *Model) applyBetCommand(input string) error {
	switch strings.ToLower(input) {
	case "":
		return nil
	case "all", "a":
		return m.session.BetAll()
	case "half", "h":
		return m.session.BetHalf()
	case "clear", "c":
		return m.session.ClearBet()
	}
	amount, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("not a bet: %q", input)
	}
	if err := m.session.ClearBet(); err != nil {
		return err
	}
	return m.session.PlaceBet(amount)
}

func (m *Model) startPendingRound() (tea.Model, tea.Cmd) {
	m.cursor = 0
	switch m.pending {
	case game.KindBlackjack:
		r, err := m.session.StartBlackjack()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.screen = screenBlackjack
		if r.Settled() {
			return m.showResult()
		}
	case game.KindPoker:
		if _, err := m.session.StartPoker(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.screen = screenPoker
	case game.KindBigTwo:
		r, err := m.session.StartBigTwo()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.screen = screenBigTwo
		if r.Turn() != 0 {
			m.addEvent("Opponent holds the lowest card and leads.")
			return m, m.opponentAfterDelay()
		}
	case game.KindBigTwoFour:
		r, err := m.session.StartBigTwoFour()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.screen = screenBigTwoFour
		if r.Turn() != 0 {
			m.addEvent(fmt.Sprintf("Seat %d holds the 3%s and leads.", r.Turn(), "♦"))
			return m, m.opponentAfterDelay()
		}
	}
	return m, nil
}

func (m *Model) updateBlackjack(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.session.Round().(*game.BlackjackRound)
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "h":
		if err := r.Hit(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		snap := r.Snapshot()
		m.addEvent(fmt.Sprintf("You draw %s (%d).", snap.Player[len(snap.Player)-1], snap.PlayerScore))
	case "s":
		if err := r.Stand(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.addEvent(fmt.Sprintf("Dealer shows %d.", r.Snapshot().DealerScore))
	default:
		return m, nil
	}
	if r.Settled() {
		return m.showResult()
	}
	return m, nil
}

func (m *Model) updatePoker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.session.Round().(*game.PokerRound)
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < 4 {
			m.cursor++
		}
	case " ", "x":
		if err := r.ToggleHold(m.cursor); err != nil {
			m.errMsg = err.Error()
		}
	case "d", "enter":
		if err := r.Draw(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m.showResult()
	}
	return m, nil
}

// bigTwoTable is the shared surface of the two- and four-player rounds
type bigTwoTable interface {
	game.Round
	Turn() int
	ToggleSelect(int) error
	Play() error
	Pass() error
	PlayOpponent() (game.BigTwoMove, error)
}

func (m *Model) bigTwoRound() (bigTwoTable, int) {
	switch r := m.session.Round().(type) {
	case *game.BigTwoRound:
		return r, len(r.Snapshot().Hand)
	case *game.BigTwoFourRound:
		return r, len(r.Snapshot().Hand)
	}
	return nil, 0
}

func (m *Model) updateBigTwo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, handLen := m.bigTwoRound()
	if r == nil {
		return m, nil
	}
	switch msg.String() {
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < handLen-1 {
			m.cursor++
		}
	case " ", "x":
		if err := r.ToggleSelect(m.cursor); err != nil {
			m.errMsg = err.Error()
		}
	case "enter":
		if err := r.Play(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if m.cursor >= handLen-1 && m.cursor > 0 {
			m.cursor = 0
		}
		m.addEvent("You play.")
		if r.Settled() {
			return m.showResult()
		}
		return m, m.opponentAfterDelay()
	case "p":
		if err := r.Pass(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.addEvent("You pass.")
		return m, m.opponentAfterDelay()
	}
	return m, nil
}

func (m *Model) updateHighLow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.session.Round().(*game.HighLowRound)
	if !ok {
		return m, nil
	}
	guess := func(dir game.Direction) (tea.Model, tea.Cmd) {
		res, err := r.Guess(dir)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		switch {
		case res.Push:
			m.addEvent(fmt.Sprintf("%s matches rank. Push, streak holds at %d.", res.Revealed, res.Potential))
		case res.Correct:
			m.addEvent(fmt.Sprintf("%s. Correct, streak at %d.", res.Revealed, res.Potential))
		default:
			m.addEvent(fmt.Sprintf("%s. Wrong.", res.Revealed))
		}
		if r.Settled() {
			return m.showResult()
		}
		return m, nil
	}

	switch msg.String() {
	case "h", "up":
		return guess(game.GuessHigher)
	case "l", "down":
		return guess(game.GuessLower)
	case "c", "enter":
		if err := r.Collect(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m.showResult()
	}
	return m, nil
}

func (m *Model) updateRoulette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.session.Round().(*game.RouletteRound)
	if !ok {
		return m, nil
	}
	pull := func(target game.Target) (tea.Model, tea.Cmd) {
		seat := r.Turn()
		res, err := r.PullTrigger(target)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if res.Fired {
			m.addEvent(fmt.Sprintf("BANG. Seat %d is out.", res.Eliminated))
			return m.showResult()
		}
		m.addEvent(fmt.Sprintf("Seat %d pulls at %s. Click. Seat %d is up.", seat, target, res.NextTurn))
		return m, nil
	}

	switch msg.String() {
	case "s":
		return pull(game.TargetSelf)
	case "o":
		return pull(game.TargetOpponent)
	}
	return m, nil
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if err := m.session.FinishRound(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.screen = screenLobby
		return m, nil
	}
	return m, nil
}

func (m *Model) showResult() (tea.Model, tea.Cmd) {
	if result, ok := m.session.Result(); ok {
		m.addEvent(result.Message)
	}
	m.screen = screenResult
	return m, nil
}

// opponentAfterDelay paces agent seats so their moves read as turns rather
// than an instant cascade. The quartz clock makes the pause mockable.
func (m *Model) opponentAfterDelay() tea.Cmd {
	return func() tea.Msg {
		fired := make(chan struct{})
		timer := m.clock.AfterFunc(m.delay, func() {
			close(fired)
		})
		defer timer.Stop()
		<-fired
		return opponentTurnMsg{}
	}
}

// advanceOpponent lets one agent seat act, then schedules the next agent if
// the turn is still away from the human seat.
func (m *Model) advanceOpponent() (tea.Model, tea.Cmd) {
	r, _ := m.bigTwoRound()
	if r == nil || r.Settled() || r.Turn() == 0 {
		return m, nil
	}
	move, err := r.PlayOpponent()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if move.Passed {
		m.addEvent(fmt.Sprintf("Seat %d passes.", move.Seat))
	} else {
		m.addEvent(fmt.Sprintf("Seat %d plays %s.", move.Seat, renderHand(move.Cards)))
	}
	if r.Settled() {
		return m.showResult()
	}
	if r.Turn() != 0 {
		return m, m.opponentAfterDelay()
	}
	return m, nil
}

func (m *Model) addEvent(line string) {
	m.events = append(m.events, line)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
	m.eventLog.SetContent(strings.Join(m.events, "\n"))
	m.eventLog.GotoBottom()
	m.logger.Debug("event", "line", line)
}
