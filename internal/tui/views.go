package tui

import (
	"fmt"
	"strings"

	"github.com/louken/cardhouse/internal/deck"
	"github.com/louken/cardhouse/internal/game"
)

// View renders the current screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" cardhouse "))
	b.WriteString("  ")
	b.WriteString(BalanceStyle.Render(fmt.Sprintf("chips: %d", m.session.Balance())))
	if bet := m.session.Bet(); bet > 0 {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  bet: %d", bet)))
	}
	b.WriteString("\n\n")

	switch m.screen {
	case screenLobby:
		b.WriteString(m.viewLobby())
	case screenBetting:
		b.WriteString(m.viewBetting())
	case screenBlackjack:
		b.WriteString(m.viewBlackjack())
	case screenPoker:
		b.WriteString(m.viewPoker())
	case screenBigTwo:
		b.WriteString(m.viewBigTwo())
	case screenBigTwoFour:
		b.WriteString(m.viewBigTwoFour())
	case screenHighLow:
		b.WriteString(m.viewHighLow())
	case screenRoulette:
		b.WriteString(m.viewRoulette())
	case screenResult:
		b.WriteString(m.viewResult())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.errMsg))
	}
	if len(m.events) > 0 {
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("table talk"))
		b.WriteString("\n")
		b.WriteString(m.eventLog.View())
	}
	return b.String()
}

func (m *Model) viewLobby() string {
	var b strings.Builder
	b.WriteString("Pick a game:\n\n")
	b.WriteString("  1. Blackjack\n")
	b.WriteString("  2. Five-card draw\n")
	b.WriteString("  3. Big 2 (heads up)\n")
	b.WriteString("  4. Big 2 (four seats)\n")
	b.WriteString("  5. Higher or lower (all in)\n")
	b.WriteString("  6. Russian roulette\n\n")
	if m.session.GameOver() {
		b.WriteString(WarningStyle.Render("Out of chips. Press r to start over."))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render("1-6 choose • q quit"))
	return b.String()
}

func (m *Model) viewBetting() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Betting for %s.\n\n", m.pending))
	b.WriteString(m.betInput.View())
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("enter amount or all/half/clear • enter deal • esc back"))
	return b.String()
}

func (m *Model) viewBlackjack() string {
	r, ok := m.session.Round().(*game.BlackjackRound)
	if !ok {
		return ""
	}
	snap := r.Snapshot()

	var b strings.Builder
	if snap.DealerHidden {
		b.WriteString(fmt.Sprintf("Dealer:  %s %s\n", renderCard(snap.Dealer[0]), renderHiddenHand(len(snap.Dealer)-1)))
	} else {
		b.WriteString(fmt.Sprintf("Dealer:  %s  (%d)\n", renderHand(snap.Dealer), snap.DealerScore))
	}
	b.WriteString(fmt.Sprintf("You:     %s  (%d)\n\n", renderHand(snap.Player), snap.PlayerScore))
	b.WriteString(HelpStyle.Render("h hit • s stand"))
	return b.String()
}

func (m *Model) viewPoker() string {
	r, ok := m.session.Round().(*game.PokerRound)
	if !ok {
		return ""
	}
	snap := r.Snapshot()

	var b strings.Builder
	if snap.DealerHidden {
		b.WriteString(fmt.Sprintf("Dealer:  %s\n", renderHiddenHand(len(snap.Dealer))))
	} else {
		b.WriteString(fmt.Sprintf("Dealer:  %s  %s\n", renderHand(snap.Dealer), snap.DealerHand.Category))
	}
	b.WriteString("You:     ")
	b.WriteString(renderPickerHand(snap.Player, m.cursor, func(i int) bool { return snap.Held[i] }))
	b.WriteString(fmt.Sprintf("  %s\n\n", snap.PlayerHand.Category))
	b.WriteString(HelpStyle.Render("←/→ move • space hold • d draw"))
	return b.String()
}

func (m *Model) viewBigTwo() string {
	r, ok := m.session.Round().(*game.BigTwoRound)
	if !ok {
		return ""
	}
	snap := r.Snapshot()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Opponent: %s\n\n", renderHiddenHand(snap.OpponentCount)))
	b.WriteString(m.viewBigTwoTable(snap.LastPlayed, snap.Control, snap.Turn == 0))
	b.WriteString("You:      ")
	b.WriteString(renderPickerHand(snap.Hand, m.cursor, func(i int) bool { return snap.Selected[i] }))
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("←/→ move • space select • enter play • p pass"))
	return b.String()
}

func (m *Model) viewBigTwoFour() string {
	r, ok := m.session.Round().(*game.BigTwoFourRound)
	if !ok {
		return ""
	}
	snap := r.Snapshot()

	var b strings.Builder
	for seat := 1; seat < len(snap.Counts); seat++ {
		marker := "  "
		if snap.Turn == seat {
			marker = CursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%sSeat %d: %d cards\n", marker, seat, snap.Counts[seat]))
	}
	b.WriteString("\n")
	b.WriteString(m.viewBigTwoTable(snap.LastPlayed, snap.Control, snap.Turn == 0))
	b.WriteString("You:      ")
	b.WriteString(renderPickerHand(snap.Hand, m.cursor, func(i int) bool { return snap.Selected[i] }))
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("←/→ move • space select • enter play • p pass"))
	return b.String()
}

func (m *Model) viewBigTwoTable(lastPlayed []deck.Card, control bool, humansTurn bool) string {
	var b strings.Builder
	if len(lastPlayed) > 0 {
		b.WriteString(fmt.Sprintf("Table:    %s\n", renderHand(lastPlayed)))
	} else if control && humansTurn {
		b.WriteString(SuccessStyle.Render("Table is yours. Lead anything legal."))
		b.WriteString("\n")
	} else {
		b.WriteString("Table:    (empty)\n")
	}
	if !humansTurn {
		b.WriteString(InfoStyle.Render("Waiting on the table..."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewHighLow() string {
	r, ok := m.session.Round().(*game.HighLowRound)
	if !ok {
		return ""
	}
	snap := r.Snapshot()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Card up:  %s\n", renderCard(snap.Current)))
	b.WriteString(fmt.Sprintf("Streak:   %s (staked %d)\n", BalanceStyle.Render(fmt.Sprint(snap.Potential)), snap.Original))
	b.WriteString(fmt.Sprintf("Cards left: %d\n\n", snap.Remaining))
	b.WriteString(HelpStyle.Render("h higher • l lower • c collect"))
	return b.String()
}

func (m *Model) viewRoulette() string {
	r, ok := m.session.Round().(*game.RouletteRound)
	if !ok {
		return ""
	}
	snap := r.Snapshot()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Six chambers, one bullet. %d safe pulls so far.\n", snap.PullsSurvived))
	b.WriteString(fmt.Sprintf("Seat %d holds the revolver.\n\n", snap.Turn))
	b.WriteString(HelpStyle.Render("s point at self • o point across the table"))
	return b.String()
}

func (m *Model) viewResult() string {
	result, ok := m.session.Result()
	if !ok {
		return ""
	}

	var b strings.Builder
	switch result.Outcome {
	case game.OutcomeWin:
		b.WriteString(SuccessStyle.Render(result.Message))
	case game.OutcomeLoss:
		b.WriteString(ErrorStyle.Render(result.Message))
	default:
		b.WriteString(WarningStyle.Render(result.Message))
	}
	if result.ChipDelta != 0 {
		b.WriteString(fmt.Sprintf("\n%+d chips", result.ChipDelta))
	}
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("enter back to the lobby"))
	return b.String()
}
