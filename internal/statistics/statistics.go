// Package statistics accumulates observed opponent tendencies and summary
// statistics for simulation runs.
package statistics

import (
	"math"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/profile"
)

// OpponentObserver counts an opponent's preflop and postflop actions so a
// style profile can be adapted toward what they actually do.
type OpponentObserver struct {
	hands      int
	voluntary  int
	raisedPre  int
	aggressive int
	passive    int
}

// RecordPreflop records one preflop decision: whether the opponent put money
// in voluntarily and whether they raised.
func (o *OpponentObserver) RecordPreflop(voluntary, raised bool) {
	o.hands++
	if voluntary {
		o.voluntary++
	}
	if raised {
		o.raisedPre++
	}
}

// RecordPostflop records one postflop decision as aggressive (bet/raise) or
// passive (check/call).
func (o *OpponentObserver) RecordPostflop(aggressive bool) {
	if aggressive {
		o.aggressive++
	} else {
		o.passive++
	}
}

// Hands returns how many preflop decisions have been observed
func (o *OpponentObserver) Hands() int {
	return o.hands
}

// Observed summarizes the counts into the tendency shape profile adaptation
// consumes. With no observations it returns the zero value.
func (o *OpponentObserver) Observed() profile.Observed {
	if o.hands == 0 {
		return profile.Observed{}
	}

	obs := profile.Observed{
		VPIP:  float64(o.voluntary) / float64(o.hands),
		PFR:   float64(o.raisedPre) / float64(o.hands),
		Hands: o.hands,
	}

	// Aggression factor: bets and raises per passive action, as a multiplier
	// around 1.0
	if o.passive > 0 {
		obs.Aggression = float64(o.aggressive) / float64(o.passive)
	} else if o.aggressive > 0 {
		obs.Aggression = 2.0
	} else {
		obs.Aggression = 1.0
	}

	return obs
}

// Summary accumulates scalar samples and reports mean, spread and a 95%
// confidence interval.
type Summary struct {
	n    int
	sum  float64
	sum2 float64
}

// Add incorporates a sample
func (s *Summary) Add(v float64) {
	s.n++
	s.sum += v
	s.sum2 += v * v
}

// Merge folds another summary into this one
func (s *Summary) Merge(other Summary) {
	s.n += other.n
	s.sum += other.sum
	s.sum2 += other.sum2
}

// N returns the sample count
func (s *Summary) N() int {
	return s.n
}

// Mean returns the arithmetic mean of all samples
func (s *Summary) Mean() float64 {
	if s.n == 0 {
		return 0
	}
	return s.sum / float64(s.n)
}

// Variance returns the sample variance
func (s *Summary) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sum2 - float64(s.n)*mean*mean) / float64(s.n-1)
}

// StdDev returns the sample standard deviation
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Summary) StdError() float64 {
	if s.n == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.n))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}
