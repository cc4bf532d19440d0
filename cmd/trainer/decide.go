package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/equity"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/policy"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/profile"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/randutil"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/ranges"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/texture"
)

// DecideCmd runs the decision engine on a single fully-specified spot
type DecideCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. AsKs"`
	Board string `arg:"" optional:"" help:"Board cards"`

	Position  string  `default:"BTN" help:"Hero position (UTG, MP, CO, BTN, SB, BB)"`
	Opener    string  `default:"UTG" help:"Position of the original raiser when facing one"`
	Pot       float64 `default:"1.5" help:"Pot size"`
	Bet       float64 `default:"0" help:"Current bet to match"`
	Committed float64 `default:"0" help:"Hero chips already in this street"`
	Stack     float64 `default:"100" help:"Hero remaining stack"`
	BigBlind  float64 `default:"1" help:"Big blind size"`
	Opponents int     `default:"1" help:"Active opponents"`
	Raises    int     `default:"0" help:"Raises so far this street"`

	InPosition  bool `help:"Hero acts last postflop"`
	Aggressor   bool `help:"Hero was the preflop aggressor"`
	CheckedBack bool `help:"Opponent checked back the previous street"`

	Profile  string `default:"gto" help:"Style profile preset"`
	Profiles string `default:"" help:"HCL profile file (adds to the built-in presets)"`
	Ranges   string `default:"" help:"HCL range file (defaults to built-in tables)"`
	Seed     int64  `default:"0" help:"Random seed (0 uses the current time)"`
}

func (c *DecideCmd) Run(logger *log.Logger) error {
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

	position, err := ranges.ParsePosition(c.Position)
	if err != nil {
		return err
	}
	opener, err := ranges.ParsePosition(c.Opener)
	if err != nil {
		return err
	}

	catalog, err := profile.Load(c.Profiles)
	if err != nil {
		return err
	}
	prof, err := profile.Find(catalog, c.Profile)
	if err != nil {
		return err
	}

	tables := ranges.Defaults()
	if c.Ranges != "" {
		tables, err = ranges.Load(c.Ranges)
		if err != nil {
			return err
		}
	}

	street := policy.Preflop
	switch len(board) {
	case 3:
		street = policy.Flop
	case 4:
		street = policy.Turn
	case 5:
		street = policy.River
	case 0:
	default:
		return fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	engine := policy.New(tables, prof, equity.NewEstimator(rng), rng, logger)
	decision := engine.Decide(policy.GameContext{
		Street:           street,
		Position:         position,
		Hole:             hole,
		Board:            board,
		Pot:              c.Pot,
		Bet:              c.Bet,
		Committed:        c.Committed,
		Stack:            c.Stack,
		BigBlind:         c.BigBlind,
		Opponents:        c.Opponents,
		Raises:           c.Raises,
		Opener:           opener,
		InPosition:       c.InPosition,
		PreflopAggressor: c.Aggressor,
		CheckedBack:      c.CheckedBack,
		Texture:          texture.Classify(board),
	})

	if decision.Amount > 0 {
		fmt.Printf("%s %.1f (confidence %.2f)\n", decision.Action, decision.Amount, decision.Confidence)
	} else {
		fmt.Printf("%s (confidence %.2f)\n", decision.Action, decision.Confidence)
	}
	fmt.Println(decision.Rationale)
	return nil
}
