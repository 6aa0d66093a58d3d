package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/louken/cardhouse/internal/config"
	"github.com/louken/cardhouse/internal/game"
	"github.com/louken/cardhouse/internal/randutil"
	"github.com/louken/cardhouse/internal/tui"
)

type PlayCmd struct {
	Config string `kong:"default='cardhouse.hcl',help='Path to HCL config file'"`
	Seed   int64  `kong:"default='0',help='RNG seed, overrides the config (0 seeds from the clock)'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Session.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// the terminal belongs to the TUI, logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(logFile, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.Info("starting", "version", version, "seed", seed)

	applyTheme(cfg.UI.Theme)

	sess := game.NewSession(randutil.New(seed), logger,
		game.WithStartingBalance(cfg.Session.StartingBalance))
	model := tui.NewModel(sess, logger,
		tui.WithOpponentDelay(time.Duration(cfg.UI.OpponentDelayMS)*time.Millisecond))

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// applyTheme pins the color profile for the light and dark themes; the
// default theme lets the terminal decide.
func applyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetColorProfile(termenv.ColorProfile())
	}
}
