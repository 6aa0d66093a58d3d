package simulate

import (
	"github.com/louken/cardhouse/internal/deck"
	"github.com/louken/cardhouse/internal/game"
)

// The policies below are deliberately simple baselines: hit to 17, hold
// pairs, shed low singles, bank a modest streak. They exist to exercise the
// machines and measure the house edge, not to play well.

func playBlackjack(sess *game.Session) error {
	r, err := sess.StartBlackjack()
	if err != nil {
		return err
	}
	for !r.Settled() && r.Snapshot().PlayerScore < 17 {
		if err := r.Hit(); err != nil {
			return err
		}
	}
	if !r.Settled() {
		return r.Stand()
	}
	return nil
}

func playPoker(sess *game.Session) error {
	r, err := sess.StartPoker()
	if err != nil {
		return err
	}

	// hold every card whose rank appears at least twice
	hand := r.Snapshot().Player
	counts := make(map[deck.Rank]int, len(hand))
	for _, c := range hand {
		counts[c.Rank]++
	}
	for i, c := range hand {
		if counts[c.Rank] >= 2 {
			if err := r.ToggleHold(i); err != nil {
				return err
			}
		}
	}
	return r.Draw()
}

func playBigTwo(sess *game.Session) error {
	r, err := sess.StartBigTwo()
	if err != nil {
		return err
	}
	for !r.Settled() {
		if r.Turn() == 0 {
			if err := bigTwoSeatZero(r); err != nil {
				return err
			}
			continue
		}
		if _, err := r.PlayOpponent(); err != nil {
			return err
		}
	}
	return nil
}

// bigTwoSeatZero plays the human seat with the same shape of policy the
// agent uses: lead the lowest single, answer with the first legal single or
// pair, pass when nothing fits. Candidates are probed through Play, which
// leaves the round untouched on rejection.
func bigTwoSeatZero(r *game.BigTwoRound) error {
	snap := r.Snapshot()
	for i := range snap.Hand {
		if err := r.ToggleSelect(i); err != nil {
			return err
		}
		if err := r.Play(); err == nil {
			return nil
		}
		if err := r.ToggleSelect(i); err != nil {
			return err
		}
	}
	if len(snap.LastPlayed) == 2 {
		for i := 0; i+1 < len(snap.Hand); i++ {
			if snap.Hand[i].Rank != snap.Hand[i+1].Rank {
				continue
			}
			if err := r.ToggleSelect(i); err != nil {
				return err
			}
			if err := r.ToggleSelect(i + 1); err != nil {
				return err
			}
			if err := r.Play(); err == nil {
				return nil
			}
			if err := r.ToggleSelect(i); err != nil {
				return err
			}
			if err := r.ToggleSelect(i + 1); err != nil {
				return err
			}
		}
	}
	return r.Pass()
}

func playBigTwoFour(sess *game.Session) error {
	r, err := sess.StartBigTwoFour()
	if err != nil {
		return err
	}
	for !r.Settled() {
		if r.Turn() == 0 {
			if err := bigTwoFourSeatZero(r); err != nil {
				return err
			}
			continue
		}
		if _, err := r.PlayOpponent(); err != nil {
			return err
		}
	}
	return nil
}

func bigTwoFourSeatZero(r *game.BigTwoFourRound) error {
	snap := r.Snapshot()
	for i := range snap.Hand {
		if err := r.ToggleSelect(i); err != nil {
			return err
		}
		if err := r.Play(); err == nil {
			return nil
		}
		if err := r.ToggleSelect(i); err != nil {
			return err
		}
	}
	if len(snap.LastPlayed) == 2 {
		for i := 0; i+1 < len(snap.Hand); i++ {
			if snap.Hand[i].Rank != snap.Hand[i+1].Rank {
				continue
			}
			if err := r.ToggleSelect(i); err != nil {
				return err
			}
			if err := r.ToggleSelect(i + 1); err != nil {
				return err
			}
			if err := r.Play(); err == nil {
				return nil
			}
			if err := r.ToggleSelect(i); err != nil {
				return err
			}
			if err := r.ToggleSelect(i + 1); err != nil {
				return err
			}
		}
	}
	return r.Pass()
}

// playHighLow rides the streak until it has grown by two correct guesses,
// then banks. Higher on an eight or below, lower otherwise.
func playHighLow(sess *game.Session) error {
	r, err := sess.StartHighLow()
	if err != nil {
		return err
	}

	correct := 0
	for !r.Settled() && correct < 2 {
		snap := r.Snapshot()
		dir := game.GuessLower
		if snap.Current.Rank <= deck.Eight {
			dir = game.GuessHigher
		}
		res, err := r.Guess(dir)
		if err != nil {
			return err
		}
		if res.Correct {
			correct++
		}
	}
	if !r.Settled() {
		return r.Collect()
	}
	return nil
}
