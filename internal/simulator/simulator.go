// Package simulator deals batches of random decision spots through the
// policy engine and aggregates what it does with them. Drill pages use the
// aggregate to show how a style behaves; it is also the cheapest way to
// smoke-test a range file.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/equity"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/policy"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/profile"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/randutil"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/ranges"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/statistics"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/texture"
)

// Config holds simulation parameters
type Config struct {
	Hands     int
	Opponents int
	Profile   profile.Profile
	Tables    *ranges.Tables
	Seed      int64
	Workers   int
	Logger    *log.Logger
}

// Result aggregates what the engine did across all dealt spots
type Result struct {
	Decisions  int
	Actions    map[policy.Action]int
	Equity     statistics.Summary
	Confidence statistics.Summary
}

// Simulator runs batches of decision spots
type Simulator struct {
	cfg Config
}

// New creates a simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
		if cfg.Workers > 8 {
			cfg.Workers = 8
		}
	}
	if cfg.Opponents <= 0 {
		cfg.Opponents = 1
	}
	return &Simulator{cfg: cfg}
}

// Run executes the simulation. Hands are distributed across workers; each
// hand derives its own seed from the base seed so runs are reproducible
// regardless of worker scheduling.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.cfg.Hands <= 0 {
		return nil, fmt.Errorf("hand count must be positive, got %d", s.cfg.Hands)
	}

	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	total := &Result{Actions: make(map[policy.Action]int)}

	perWorker := s.cfg.Hands / s.cfg.Workers
	remainder := s.cfg.Hands % s.cfg.Workers

	start := 0
	for w := 0; w < s.cfg.Workers; w++ {
		count := perWorker
		if w < remainder {
			count++
		}
		lo, hi := start, start+count
		start = hi

		g.Go(func() error {
			local := &Result{Actions: make(map[policy.Action]int)}
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				s.playSpot(int64(i), local)
			}

			mu.Lock()
			defer mu.Unlock()
			total.Decisions += local.Decisions
			for a, n := range local.Actions {
				total.Actions[a] += n
			}
			total.Equity.Merge(local.Equity)
			total.Confidence.Merge(local.Confidence)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cfg.Logger != nil {
		s.cfg.Logger.Info("simulation complete",
			"hands", total.Decisions,
			"meanEquity", total.Equity.Mean(),
			"meanConfidence", total.Confidence.Mean())
	}

	return total, nil
}

// playSpot deals one random decision spot and records the engine's choice
func (s *Simulator) playSpot(index int64, out *Result) {
	rng := randutil.New(s.cfg.Seed + index)

	d := deck.New(rng)
	d.Shuffle()
	hole := d.DealN(2)

	// Rotate streets so every run exercises the whole state machine
	var street policy.Street
	var boardSize int
	switch index % 4 {
	case 0:
		street, boardSize = policy.Preflop, 0
	case 1:
		street, boardSize = policy.Flop, 3
	case 2:
		street, boardSize = policy.Turn, 4
	default:
		street, boardSize = policy.River, 5
	}
	board := d.DealN(boardSize)

	pot := 1.5 + float64(rng.IntN(8))
	var bet float64
	if rng.Float64() < 0.5 {
		bet = pot * (0.4 + 0.6*rng.Float64())
	}
	raises := 0
	if street == policy.Preflop && bet > 0 {
		raises = 1 + rng.IntN(3)
	}

	gc := policy.GameContext{
		Street:           street,
		Position:         ranges.Position(rng.IntN(6)),
		Hole:             hole,
		Board:            board,
		Pot:              pot,
		Bet:              bet,
		Stack:            100,
		BigBlind:         1,
		Opponents:        s.cfg.Opponents,
		Raises:           raises,
		Opener:           ranges.Position(rng.IntN(6)),
		InPosition:       rng.Float64() < 0.5,
		PreflopAggressor: rng.Float64() < 0.5,
		Texture:          texture.Classify(board),
	}

	estimator := equity.NewEstimator(rng)
	logger := log.New(io.Discard)
	if s.cfg.Logger != nil {
		logger = s.cfg.Logger
	}
	engine := policy.New(s.cfg.Tables, s.cfg.Profile, estimator, rng, logger)

	decision := engine.Decide(gc)

	out.Decisions++
	out.Actions[decision.Action]++
	out.Confidence.Add(decision.Confidence)
	out.Equity.Add(estimator.Estimate(hole, board, s.cfg.Opponents))
}
