// Package equity estimates a hand's probability of winning at showdown
// against N unknown opponent hands. Flop onwards runs a Monte Carlo
// simulation over the hand evaluator; earlier streets fall back to static
// strength rankings plus a closed-form draw allowance.
package equity

import (
	"math"
	rand "math/rand/v2"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/evaluator"
)

// Trial counts per street. Deeper streets have fewer unknown cards and less
// variance, so they need fewer trials to reach the same accuracy.
const (
	flopTrials  = 320
	turnTrials  = 240
	riverTrials = 180
	minTrials   = 80
)

// maxDrawEquity caps the closed-form draw allowance
const maxDrawEquity = 0.35

// Estimator estimates win probabilities. The random source is injected so a
// host that needs reproducibility can seed it; estimates are otherwise not
// deterministic across runs.
type Estimator struct {
	rng *rand.Rand
}

// NewEstimator creates an estimator around the given random source
func NewEstimator(rng *rand.Rand) *Estimator {
	return &Estimator{rng: rng}
}

// Estimate returns P(win or split share) for the hole cards against the
// given number of independent random opponent hands. The result is always
// in [0, 1]; with zero opponents there is no one to lose to and the
// estimate is exactly 1.
func (e *Estimator) Estimate(hole, board []deck.Card, opponents int) float64 {
	if opponents <= 0 {
		return 1.0
	}
	if len(hole) != 2 || len(board) > 5 {
		return 0.0
	}

	if len(board) >= 3 {
		return e.simulate(hole, board, opponents)
	}
	return heuristicEquity(hole, board, opponents)
}

// trialCount scales the per-street baseline down by the square root of the
// opponent count, floored so short-handed accuracy never collapses.
func trialCount(boardSize, opponents int) int {
	base := riverTrials
	switch boardSize {
	case 3:
		base = flopTrials
	case 4:
		base = turnTrials
	}

	trials := int(float64(base) / math.Sqrt(float64(opponents)))
	if trials < minTrials {
		trials = minTrials
	}
	return trials
}

func (e *Estimator) simulate(hole, board []deck.Card, opponents int) float64 {
	known := make([]deck.Card, 0, len(hole)+len(board))
	known = append(known, hole...)
	known = append(known, board...)

	// Build the excluding deck once; each trial draws from a scratch copy
	stub := deck.NewWithout(e.rng, known...)
	available := stub.DealN(stub.Remaining())

	toCome := 5 - len(board)
	// The deck bounds how many opponents can be dealt in; extra opponents
	// beyond that cannot change the estimate anyway
	if limit := (len(available) - toCome) / 2; opponents > limit {
		opponents = limit
	}

	trials := trialCount(len(board), opponents)
	draws := toCome + 2*opponents

	scratch := make([]deck.Card, len(available))
	finalBoard := make([]deck.Card, 0, 5)
	total := 0.0

	for t := 0; t < trials; t++ {
		copy(scratch, available)
		// Partial Fisher-Yates: the first `draws` positions become this
		// trial's board runout and opponent holes
		for i := 0; i < draws; i++ {
			j := i + e.rng.IntN(len(scratch)-i)
			scratch[i], scratch[j] = scratch[j], scratch[i]
		}

		finalBoard = finalBoard[:0]
		finalBoard = append(finalBoard, board...)
		finalBoard = append(finalBoard, scratch[:toCome]...)

		hero, err := evaluator.Evaluate(hole, finalBoard)
		if err != nil {
			continue
		}

		beaten := false
		ties := 0
		for opp := 0; opp < opponents; opp++ {
			oppHole := scratch[toCome+2*opp : toCome+2*opp+2]
			villain, err := evaluator.Evaluate(oppHole, finalBoard)
			if err != nil {
				continue
			}
			switch evaluator.Compare(hero, villain) {
			case -1:
				beaten = true
			case 0:
				ties++
			}
			if beaten {
				break
			}
		}

		if !beaten {
			total += 1.0 / float64(1+ties)
		}
	}

	return total / float64(trials)
}

// heuristicEquity covers boards of 0-2 cards where simulation is not run.
// The static percentile table supplies a baseline and a draw allowance is
// added only when the hand has no made pair or better.
func heuristicEquity(hole, board []deck.Card, opponents int) float64 {
	strength := deck.HandPercentile(hole)

	// More opponents dilute raw hand strength
	est := strength / (1.0 + 0.12*float64(opponents-1))

	if !madePairOrBetter(hole, board) {
		est += drawEquity(hole, board)
	}

	return clamp01(est)
}

// drawEquity is a closed-form win-rate-equivalent allowance for draws,
// valued by cards still to come.
func drawEquity(hole, board []deck.Card) float64 {
	d := DetectDraws(hole, board)
	twoToCome := 5-len(board) >= 2

	add := 0.0
	if d.FlushDraw {
		if twoToCome {
			add += 0.35
		} else {
			add += 0.19
		}
	}
	if d.OpenEnded {
		if twoToCome {
			add += 0.31
		} else {
			add += 0.17
		}
	} else if d.Gutshot {
		if twoToCome {
			add += 0.17
		} else {
			add += 0.09
		}
	}

	if add > maxDrawEquity {
		add = maxDrawEquity
	}
	return add
}

func madePairOrBetter(hole, board []deck.Card) bool {
	if len(hole) == 2 && hole[0].Rank == hole[1].Rank {
		return true
	}
	for _, h := range hole {
		for _, b := range board {
			if h.Rank == b.Rank {
				return true
			}
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
