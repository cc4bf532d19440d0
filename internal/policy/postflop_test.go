package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/profile"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/randutil"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/ranges"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/texture"
)

// Top pair top kicker on a dry flop as the aggressor in position: the engine
// should continuation bet at a high frequency with a small sizing.
func TestValueBetOnDryFlop(t *testing.T) {
	board := deck.MustParseCards("Ah7c2d")
	gc := GameContext{
		Street:           Flop,
		Position:         ranges.BTN,
		Hole:             deck.MustParseCards("AsKs"),
		Board:            board,
		Pot:              10,
		Stack:            100,
		BigBlind:         1,
		Opponents:        1,
		InPosition:       true,
		PreflopAggressor: true,
		Texture:          texture.Classify(board),
	}

	bets := 0
	for seed := int64(0); seed < 200; seed++ {
		e := newTestEngine(seed, profile.GTO(), ranges.Defaults())
		d := e.Decide(gc)
		switch d.Action {
		case Bet:
			bets++
			pct := d.Amount / gc.Pot
			assert.GreaterOrEqual(t, pct, 0.25, "seed %d: sizing too small", seed)
			assert.LessOrEqual(t, pct, 0.45, "seed %d: sizing too big on a dry board", seed)
		case Check:
		default:
			t.Fatalf("seed %d: unexpected action %v with no bet to face", seed, d.Action)
		}
	}
	assert.Greater(t, bets, 160, "top pair should c-bet most of the time")
}

// Trash with no draw facing a pot-sized bet folds, and the fold's confidence
// reflects the profile's fold-to-c-bet tendency.
func TestTrashFoldsToPotSizedBet(t *testing.T) {
	board := deck.MustParseCards("As9d5c")
	gc := GameContext{
		Street:    Flop,
		Position:  ranges.BB,
		Hole:      deck.MustParseCards("7h2c"),
		Board:     board,
		Pot:       10,
		Bet:       10,
		Stack:     100,
		BigBlind:  1,
		Opponents: 1,
		Texture:   texture.Classify(board),
	}

	prof := profile.GTO()
	folds := 0
	for seed := int64(0); seed < 100; seed++ {
		e := newTestEngine(seed, prof, ranges.Defaults())
		d := e.Decide(gc)
		if d.Action == Fold {
			folds++
			assert.InDelta(t, prof.FoldToCBet, d.Confidence, 1e-9, "seed %d", seed)
		}
	}
	assert.Greater(t, folds, 90, "72o with no draw folds nearly always")
}

func TestDrawContinuesAgainstSmallBet(t *testing.T) {
	// Flush draw facing a third-pot bet never folds before the river
	board := deck.MustParseCards("Kh9h2c")
	gc := GameContext{
		Street:    Flop,
		Hole:      deck.MustParseCards("Qh5h"),
		Board:     board,
		Pot:       12,
		Bet:       4,
		Stack:     100,
		BigBlind:  1,
		Opponents: 1,
		Texture:   texture.Classify(board),
	}

	for seed := int64(0); seed < 100; seed++ {
		e := newTestEngine(seed, profile.GTO(), ranges.Defaults())
		d := e.Decide(gc)
		assert.NotEqual(t, Fold, d.Action, "seed %d: a flush draw has the price to continue", seed)
	}
}

func TestStationCallsDown(t *testing.T) {
	station, err := profile.ByName("station")
	require.NoError(t, err)
	gto := profile.GTO()

	board := deck.MustParseCards("As9d5c")
	gc := GameContext{
		Street:    Flop,
		Hole:      deck.MustParseCards("7h2c"),
		Board:     board,
		Pot:       10,
		Bet:       10,
		Stack:     100,
		BigBlind:  1,
		Opponents: 1,
		Texture:   texture.Classify(board),
	}

	count := func(prof profile.Profile) int {
		calls := 0
		for seed := int64(0); seed < 200; seed++ {
			e := newTestEngine(seed, prof, ranges.Defaults())
			if d := e.Decide(gc); d.Action == Call {
				calls++
			}
		}
		return calls
	}

	assert.Greater(t, count(station), count(gto), "a calling station folds less than baseline")
}

func TestMonsterRaisesOrCalls(t *testing.T) {
	// A set facing a bet never folds
	board := deck.MustParseCards("Ah7c2d")
	gc := GameContext{
		Street:    Flop,
		Hole:      deck.MustParseCards("7s7d"),
		Board:     board,
		Pot:       10,
		Bet:       6,
		Stack:     100,
		BigBlind:  1,
		Opponents: 1,
		Texture:   texture.Classify(board),
	}

	sawRaise := false
	for seed := int64(0); seed < 100; seed++ {
		e := newTestEngine(seed, profile.GTO(), ranges.Defaults())
		d := e.Decide(gc)
		switch d.Action {
		case Raise, AllIn:
			sawRaise = true
			assert.Greater(t, d.Amount, gc.Bet, "seed %d: a raise must exceed the bet", seed)
		case Call:
			assert.Equal(t, gc.Bet, d.Amount, "seed %d", seed)
		default:
			t.Fatalf("seed %d: a set never folds here, got %v", seed, d.Action)
		}
	}
	assert.True(t, sawRaise, "a set should raise for value at least sometimes")
}

func TestProbeBetAfterCheckBack(t *testing.T) {
	board := deck.MustParseCards("Qd8s3cJh")
	gc := GameContext{
		Street:      Turn,
		Hole:        deck.MustParseCards("QsTs"),
		Board:       board,
		Pot:         8,
		Stack:       100,
		BigBlind:    1,
		Opponents:   1,
		InPosition:  true,
		CheckedBack: true,
		Texture:     texture.Classify(board),
	}

	bets := 0
	for seed := int64(0); seed < 100; seed++ {
		e := newTestEngine(seed, profile.GTO(), ranges.Defaults())
		d := e.Decide(gc)
		if d.Action == Bet {
			bets++
			assert.GreaterOrEqual(t, d.Amount, gc.BigBlind, "seed %d: bets never go below the big blind", seed)
		}
	}
	assert.Greater(t, bets, 30, "a check-back invites probing")
}

// Every syntactically valid context must produce exactly one action with the
// amount inside the stack and the confidence inside the unit interval.
func TestDecisionTotality(t *testing.T) {
	profiles := profile.Presets()
	tables := ranges.Defaults()
	boardSizes := []int{0, 3, 4, 5}

	rng := randutil.New(99)
	for trial := 0; trial < 500; trial++ {
		d := deck.New(rng)
		d.Shuffle()
		hole := d.DealN(2)
		size := boardSizes[trial%len(boardSizes)]
		board := d.DealN(size)
		street := Preflop
		if size > 0 {
			street = Street(size - 2) // 3 cards = flop, 5 = river
		}

		pot := float64(rng.IntN(200))
		bet := float64(rng.IntN(120))
		stack := float64(1 + rng.IntN(300))
		gc := GameContext{
			Street:           street,
			Position:         ranges.Position(rng.IntN(6)),
			Opener:           ranges.Position(rng.IntN(6)),
			Hole:             hole,
			Board:            board,
			Pot:              pot,
			Bet:              bet,
			Committed:        float64(rng.IntN(20)),
			Stack:            stack,
			BigBlind:         1,
			Opponents:        1 + rng.IntN(5),
			Raises:           rng.IntN(4),
			InPosition:       rng.IntN(2) == 0,
			CheckedBack:      rng.IntN(2) == 0,
			PreflopAggressor: rng.IntN(2) == 0,
			Texture:          texture.Classify(board),
		}

		prof := profiles[trial%len(profiles)]
		e := newTestEngine(int64(trial), prof, tables)
		dec := e.Decide(gc)

		if dec.Action < Fold || dec.Action > AllIn {
			t.Fatalf("trial %d: out-of-range action %d", trial, dec.Action)
		}
		assert.GreaterOrEqual(t, dec.Amount, 0.0, "trial %d", trial)
		assert.LessOrEqual(t, dec.Amount, stack, "trial %d", trial)
		assert.GreaterOrEqual(t, dec.Confidence, 0.0, "trial %d", trial)
		assert.LessOrEqual(t, dec.Confidence, 1.0, "trial %d", trial)
		assert.NotEmpty(t, dec.Rationale, "trial %d", trial)
	}
}
