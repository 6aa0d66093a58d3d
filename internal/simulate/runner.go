// Package simulate plays unattended rounds against the built-in opponents
// and reports chip expectancy per game. Rounds are split across workers,
// each with an independently seeded session, and the per-worker statistics
// are merged at the end.
package simulate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/louken/cardhouse/internal/game"
	"github.com/louken/cardhouse/internal/randutil"
)

// Config holds configuration for a simulation run
type Config struct {
	Game    string // blackjack, poker, big2, big2x4, highlow
	Rounds  int
	Bet     int
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Runner plays scripted rounds of one game
type Runner struct {
	config Config
}

// New creates a runner with the given configuration
func New(config Config) (*Runner, error) {
	switch config.Game {
	case "blackjack", "poker", "big2", "big2x4", "highlow":
	default:
		return nil, fmt.Errorf("unknown game %q", config.Game)
	}
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive")
	}
	if config.Bet <= 0 {
		return nil, fmt.Errorf("bet must be positive")
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Runner{config: config}, nil
}

// Run executes the simulation. Each worker owns a session seeded from the
// base seed, so a fixed seed and worker count reproduce the whole run.
func (r *Runner) Run(ctx context.Context) (*Statistics, error) {
	workers := r.config.Workers
	perWorker := r.config.Rounds / workers
	remainder := r.config.Rounds % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *Statistics, workers)

	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		workerSeed := r.config.Seed + int64(w)

		g.Go(func() error {
			stats, err := r.runWorker(ctx, workerSeed, rounds)
			if err != nil {
				return err
			}
			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	total := &Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	return total, nil
}

func (r *Runner) runWorker(ctx context.Context, seed int64, rounds int) (*Statistics, error) {
	sess := game.NewSession(randutil.New(seed), r.config.Logger)
	stats := &Statistics{}

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if sess.GameOver() {
			stats.Busts++
			sess.Reset()
		}

		if err := r.playRound(sess); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}

		result, ok := sess.Result()
		if !ok {
			return nil, fmt.Errorf("round %d did not settle", i+1)
		}
		stats.Add(result)

		if err := sess.FinishRound(); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func (r *Runner) playRound(sess *game.Session) error {
	if r.config.Game == "highlow" {
		return playHighLow(sess)
	}

	bet := r.config.Bet
	if bet > sess.Balance() {
		bet = sess.Balance()
	}
	if err := sess.PlaceBet(bet); err != nil {
		return err
	}

	switch r.config.Game {
	case "blackjack":
		return playBlackjack(sess)
	case "poker":
		return playPoker(sess)
	case "big2":
		return playBigTwo(sess)
	case "big2x4":
		return playBigTwoFour(sess)
	}
	return fmt.Errorf("unknown game %q", r.config.Game)
}
