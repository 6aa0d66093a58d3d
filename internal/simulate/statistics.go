package simulate

import (
	"math"

	"github.com/louken/cardhouse/internal/game"
)

// Statistics aggregates settled rounds from a simulation run. Chip deltas
// feed a running sum and sum of squares so the mean, deviation and a 95%
// confidence interval come out without storing every round.
type Statistics struct {
	Rounds int
	Wins   int
	Pushes int
	Losses int

	SumDelta  float64
	SumDelta2 float64
	Busts     int // times the bankroll hit zero and was reset
}

// Add records one settled round
func (s *Statistics) Add(result game.Settlement) {
	delta := float64(result.ChipDelta)
	s.Rounds++
	s.SumDelta += delta
	s.SumDelta2 += delta * delta

	switch result.Outcome {
	case game.OutcomeWin:
		s.Wins++
	case game.OutcomePush:
		s.Pushes++
	case game.OutcomeLoss:
		s.Losses++
	}
}

// Merge folds another worker's statistics into this one
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Pushes += other.Pushes
	s.Losses += other.Losses
	s.SumDelta += other.SumDelta
	s.SumDelta2 += other.SumDelta2
	s.Busts += other.Busts
}

// Mean returns the average chip delta per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumDelta / float64(s.Rounds)
}

// Variance returns the sample variance of the chip delta
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumDelta2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the chip delta
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of rounds won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}
