package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/policy"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/profile"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/ranges"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/simulator"
)

// SimulateCmd deals random spots through the engine and reports aggregates
type SimulateCmd struct {
	Hands     int    `default:"1000" help:"Number of decision spots to deal"`
	Opponents int    `default:"1" help:"Active opponents per spot"`
	Profile   string `default:"gto" help:"Style profile preset"`
	Profiles  string `default:"" help:"HCL profile file (adds to the built-in presets)"`
	Ranges    string `default:"" help:"HCL range file (defaults to built-in tables)"`
	Seed      int64  `default:"0" help:"Random seed (0 uses the current time)"`
	Workers   int    `default:"0" help:"Worker goroutines (0 picks automatically)"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
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

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := simulator.New(simulator.Config{
		Hands:     c.Hands,
		Opponents: c.Opponents,
		Profile:   prof,
		Tables:    tables,
		Seed:      seed,
		Workers:   c.Workers,
		Logger:    logger,
	})

	result, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("decisions: %d (profile %s, seed %d)\n", result.Decisions, prof.Name, seed)
	for action := policy.Fold; action <= policy.AllIn; action++ {
		n := result.Actions[action]
		fmt.Printf("  %-5s %6d  %5.1f%%\n", action, n, 100*float64(n)/float64(result.Decisions))
	}
	lo, hi := result.Equity.ConfidenceInterval95()
	fmt.Printf("mean equity %.3f (95%% CI %.3f-%.3f)\n", result.Equity.Mean(), lo, hi)
	fmt.Printf("mean confidence %.3f\n", result.Confidence.Mean())
	return nil
}
