package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/evaluator"
)

// EvaluateCmd scores a hand from the command line
type EvaluateCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. AsKs"`
	Board string `arg:"" optional:"" help:"Board cards, e.g. QsJsTs"`
}

func (c *EvaluateCmd) Run(logger *log.Logger) error {
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

	eval, err := evaluator.Evaluate(hole, board)
	if err != nil {
		return err
	}

	fmt.Println(eval)
	if !eval.Incomplete {
		best := ""
		for _, card := range eval.Best {
			best += card.String() + " "
		}
		fmt.Printf("best five: %s\n", best)
	}

	logger.Debug("evaluated", "hand", deck.HandKey(hole), "category", eval.Category, "score", eval.Score)
	return nil
}
