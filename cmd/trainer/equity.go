package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/equity"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/randutil"
)

// EquityCmd estimates equity for a spot from the command line
type EquityCmd struct {
	Hole      string `arg:"" help:"Hole cards, e.g. AhAd"`
	Board     string `arg:"" optional:"" help:"Board cards (0, 3, 4 or 5)"`
	Opponents int    `default:"1" help:"Number of unknown opponents"`
	Seed      int64  `default:"0" help:"Random seed (0 uses the current time)"`
}

func (c *EquityCmd) Run(logger *log.Logger) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("hole cards: %w", err)
	}

	var board []deck.Card
	if c.Board != "" {
		board, err = deck.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("board cards: %w", err)
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	estimator := equity.NewEstimator(randutil.New(seed))
	est := estimator.Estimate(hole, board, c.Opponents)

	logger.Debug("estimated", "hand", deck.HandKey(hole), "board", c.Board, "opponents", c.Opponents, "seed", seed)
	fmt.Printf("equity vs %d: %.1f%%\n", c.Opponents, est*100)
	return nil
}
