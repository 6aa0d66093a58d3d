package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/louken/cardhouse/internal/simulate"
)

type SimulateCmd struct {
	Game    string `kong:"default='blackjack',help='Game to simulate: blackjack, poker, big2, big2x4, highlow'"`
	Rounds  int    `kong:"default='10000',help='Number of rounds to play'"`
	Bet     int    `kong:"default='100',help='Chips wagered per round'"`
	Seed    int64  `kong:"default='1',help='Base RNG seed; workers offset from it'"`
	Workers int    `kong:"default='0',help='Worker count (0 uses every CPU)'"`
	Verbose bool   `kong:"short='d',help='Debug logging'"`
}

func (c *SimulateCmd) Run() error {
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	runner, err := simulate.New(simulate.Config{
		Game:    c.Game,
		Rounds:  c.Rounds,
		Bet:     c.Bet,
		Seed:    c.Seed,
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	lo, hi := stats.ConfidenceInterval95()
	fmt.Printf("%s, %d rounds at %d chips (%d workers, seed %d)\n",
		c.Game, stats.Rounds, c.Bet, workers, c.Seed)
	fmt.Printf("  wins %d  pushes %d  losses %d  (win rate %.1f%%)\n",
		stats.Wins, stats.Pushes, stats.Losses, stats.WinRate()*100)
	fmt.Printf("  chips per round %+.2f  [%+.2f, %+.2f] 95%% CI\n",
		stats.Mean(), lo, hi)
	if stats.Busts > 0 {
		fmt.Printf("  bankroll busted %d times\n", stats.Busts)
	}
	return nil
}
