package tui

import (
	"strings"

	"github.com/louken/cardhouse/internal/deck"
)

// renderCard draws a single card, red suits in red
func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// renderHand draws a row of cards separated by spaces
func renderHand(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

// renderHiddenHand draws n face-down cards
func renderHiddenHand(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = HiddenCardStyle.Render("[?]")
	}
	return strings.Join(parts, " ")
}

// renderPickerHand draws a hand with a cursor and per-card marks, used for
// the poker hold picker and the Big 2 selection
func renderPickerHand(cards []deck.Card, cursor int, marked func(int) bool) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		label := c.String()
		switch {
		case marked != nil && marked(i):
			label = SelectedCardStyle.Render("[" + label + "]")
		case c.IsRed():
			label = RedCardStyle.Render(" " + label + " ")
		default:
			label = BlackCardStyle.Render(" " + label + " ")
		}
		if i == cursor {
			label = CursorStyle.Render(">") + label
		} else {
			label = " " + label
		}
		parts[i] = label
	}
	return strings.Join(parts, "")
}
