// Package policy implements the decision engine: given full game context and
// a player style profile, it produces one probabilistic action. Preflop
// reasoning runs over injected range-frequency tables; postflop reasoning
// runs over the equity estimator and the board texture summary.
package policy

import (
	"fmt"
	"math"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/equity"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/profile"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/ranges"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/texture"
)

// Street is a betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the street name
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "?"
	}
}

// Action is one of the fixed poker actions
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	default:
		return "?"
	}
}

// GameContext is the full input to a single decision. The caller constructs
// it fresh per decision point; the engine never retains it.
type GameContext struct {
	Street   Street
	Position ranges.Position
	Hole     []deck.Card
	Board    []deck.Card

	Pot       float64 // chips already in the middle
	Bet       float64 // current bet to match this street
	Committed float64 // hero's chips already in this street
	Stack     float64 // hero's remaining stack
	BigBlind  float64

	Opponents int // active opponents still in the hand

	// Raises counts raises so far this street. Preflop: 0 = unopened,
	// 1 = facing an open, 2 = facing a 3-bet, 3+ = facing a 4-bet.
	Raises int

	// Opener is the position of the original preflop raiser when facing one
	Opener ranges.Position

	InPosition       bool
	PreflopAggressor bool

	// CheckedBack is true when the in-position opponent declined to bet the
	// previous street, opening up probe betting.
	CheckedBack bool

	Texture texture.Summary
}

// Decision is the engine's output: one action, an absolute amount for
// bets/raises, a confidence scalar and a human-readable rationale.
type Decision struct {
	Action     Action
	Amount     float64
	Confidence float64
	Rationale  string
}

// Engine produces decisions. It is stateless across calls and safe to share
// between deals as long as the random source is not used concurrently.
type Engine struct {
	tables    *ranges.Tables
	profile   profile.Profile
	estimator *equity.Estimator
	rng       *rand.Rand
	logger    *log.Logger
}

// New creates a decision engine. Range tables are explicit configuration;
// pass synthetic tables in tests rather than relying on any globals.
func New(tables *ranges.Tables, prof profile.Profile, estimator *equity.Estimator, rng *rand.Rand, logger *log.Logger) *Engine {
	return &Engine{
		tables:    tables,
		profile:   prof,
		estimator: estimator,
		rng:       rng,
		logger:    logger.WithPrefix("policy"),
	}
}

// Decide returns exactly one action for the given context. Every input
// combination reaches a terminal action; mixed-frequency branches are
// resolved by the engine's random source.
func (e *Engine) Decide(gc GameContext) Decision {
	call := gc.Bet - gc.Committed
	if call < 0 {
		call = 0
	}

	var d Decision
	switch {
	case call > 0 && call >= gc.Stack:
		d = e.decideForStack(gc, call)
	case gc.Street == Preflop:
		d = e.decidePreflop(gc, call)
	default:
		d = e.decidePostflop(gc, call)
	}

	if d.Amount < 0 {
		d.Amount = 0
	}
	if d.Amount > gc.Stack {
		d.Amount = gc.Stack
	}
	d.Confidence = clamp01(d.Confidence)

	e.logger.Debug("decision",
		"street", gc.Street,
		"position", gc.Position,
		"hand", deck.HandKey(gc.Hole),
		"pot", gc.Pot,
		"toCall", call,
		"action", d.Action,
		"amount", d.Amount,
		"confidence", d.Confidence)

	return d
}

// decideForStack handles the all-in short-circuit: the amount to call meets
// or exceeds the remaining stack, so the whole state machine collapses to a
// pot-odds binary.
func (e *Engine) decideForStack(gc GameContext, call float64) Decision {
	if call > gc.Stack {
		call = gc.Stack
	}

	required := 0.0
	if gc.Pot+call > 0 {
		required = call / (gc.Pot + call)
	}
	// Foldier profiles demand a bigger edge before stacking off
	adjusted := required * (0.8 + 0.4*e.profile.FoldToBet)

	eq := e.estimator.Estimate(gc.Hole, gc.Board, gc.Opponents)
	t := &thoughts{}
	t.add("facing a bet for my whole stack")
	t.add("need %.0f%% equity, have %.0f%%", adjusted*100, eq*100)

	if eq >= adjusted {
		t.add("calling off")
		return Decision{Action: AllIn, Amount: gc.Stack, Confidence: eq, Rationale: t.String()}
	}
	t.add("folding")
	return Decision{Action: Fold, Confidence: 1 - eq, Rationale: t.String()}
}

// thoughts accumulates the rationale for a decision as it forms
type thoughts struct {
	notes []string
}

func (t *thoughts) add(format string, args ...any) {
	t.notes = append(t.notes, fmt.Sprintf(format, args...))
}

func (t *thoughts) String() string {
	if len(t.notes) == 0 {
		return "no clear read"
	}
	return strings.Join(t.notes, "; ")
}

// roundToHalf rounds an amount to the nearest half unit
func roundToHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

// betOrAllIn builds a bet/raise decision, degrading to all-in when the
// desired amount consumes the stack.
func betOrAllIn(action Action, amount, stack, confidence float64, rationale string) Decision {
	amount = roundToHalf(amount)
	if amount >= stack {
		return Decision{Action: AllIn, Amount: stack, Confidence: confidence, Rationale: rationale}
	}
	return Decision{Action: action, Amount: amount, Confidence: confidence, Rationale: rationale}
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
