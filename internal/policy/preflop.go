package policy

import (
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/profile"
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/ranges"
)

// Baseline tendencies of the GTO reference profile that table frequencies
// are scaled against.
const (
	baselineFourBet    = 0.03
	baselineFoldTo3Bet = 0.55
)

func (e *Engine) decidePreflop(gc GameContext, call float64) Decision {
	hand := deck.HandKey(gc.Hole)
	switch {
	case gc.Raises == 0:
		return e.preflopOpen(gc, hand, call)
	case gc.Raises == 1:
		return e.preflopVsOpen(gc, hand, call)
	case gc.Raises == 2:
		return e.preflopVs3Bet(gc, hand, call)
	default:
		return e.preflopVs4Bet(gc, hand, call)
	}
}

// preflopOpen handles the unopened pot. A 100% table entry opens
// unconditionally before any random draw, so those spots are deterministic.
func (e *Engine) preflopOpen(gc GameContext, hand string, call float64) Decision {
	t := &thoughts{}
	t.add("unopened pot with %s in %s", hand, gc.Position)

	if f, ok := e.tables.OpenFreq(gc.Position, hand); ok {
		freq := f.Raise / 100
		if freq >= 1 {
			t.add("always opens here")
			return e.openRaise(gc, 1, t)
		}

		scaled := clamp01(freq * e.profile.VPIP / profile.BaselineVPIP)
		t.add("mixed open at %.0f%%", scaled*100)
		if e.rng.Float64() < scaled {
			return e.openRaise(gc, scaled, t)
		}
		t.add("declining this time")
		return checkOrFold(gc, call, 1-scaled, t)
	}

	// Off-table hands: only profiles looser than baseline open them, and
	// only in proportion to the hand's heuristic strength.
	if e.profile.VPIP > profile.BaselineVPIP {
		strength := deck.KeyPercentile(hand)
		p := clamp01((e.profile.VPIP - profile.BaselineVPIP) * 2 * strength)
		t.add("%s is outside the chart, loose open at %.0f%%", hand, p*100)
		if e.rng.Float64() < p {
			return e.openRaise(gc, p, t)
		}
	} else {
		t.add("%s is outside the chart", hand)
	}

	return checkOrFold(gc, call, 1, t)
}

// openRaise sizes an open by position, scaled by aggression and rounded to
// the nearest half unit.
func (e *Engine) openRaise(gc GameContext, confidence float64, t *thoughts) Decision {
	mult := 2.5
	switch gc.Position {
	case ranges.UTG, ranges.MP:
		mult = 3.0
	case ranges.SB: // bigger to tax the positional disadvantage
		mult = 3.0
	}

	size := mult * gc.BigBlind * (0.9 + e.profile.Aggression*0.2)
	t.add("raising to %.1f", roundToHalf(size))
	return betOrAllIn(Raise, size, gc.Stack, confidence, t.String())
}

// preflopVsOpen handles facing a single raise: 3-bet, flat or fold.
func (e *Engine) preflopVsOpen(gc GameContext, hand string, call float64) Decision {
	t := &thoughts{}
	t.add("%s opened, I have %s", gc.Opener, hand)

	var p3, pc float64
	if f, ok := e.tables.VsOpenFreq(gc.Position, gc.Opener, hand); ok {
		p3, pc = f.ThreeBet/100, f.Call/100
		t.add("chart says 3-bet %.0f%% / call %.0f%%", p3*100, pc*100)
	} else {
		strength := deck.KeyPercentile(hand)
		loose := e.profile.VPIP / profile.BaselineVPIP
		pc = clamp01((strength - 0.5) * 0.6 * loose)
		p3 = clamp01((strength - 0.82) * 1.6 * loose)
		t.add("off the chart, speculative 3-bet %.0f%% / call %.0f%%", p3*100, pc*100)
	}

	// Never let the continue frequencies exceed certainty
	if sum := p3 + pc; sum > 1 {
		p3 /= sum
		pc /= sum
	}

	r := e.rng.Float64()
	switch {
	case r < p3:
		size := gc.Bet * 3.0
		if !gc.InPosition {
			size = gc.Bet * 3.5
		}
		t.add("3-betting to %.1f", roundToHalf(size))
		return betOrAllIn(Raise, size, gc.Stack, p3, t.String())
	case r < p3+pc:
		t.add("flatting")
		return Decision{Action: Call, Amount: call, Confidence: pc, Rationale: t.String()}
	default:
		t.add("folding to the open")
		return Decision{Action: Fold, Confidence: 1 - p3 - pc, Rationale: t.String()}
	}
}

// preflopVs3Bet handles facing a 3-bet after opening: 4-bet, call or fold,
// with frequencies bent by the profile's own 4-bet and fold-to-3-bet
// tendencies.
func (e *Engine) preflopVs3Bet(gc GameContext, hand string, call float64) Decision {
	t := &thoughts{}
	t.add("facing a 3-bet with %s", hand)

	var p4, pc float64
	if f, ok := e.tables.Vs3BetFreq(gc.Position, gc.Opener, hand); ok {
		p4 = f.FourBet / 100 * (e.profile.FourBetFreq / baselineFourBet)
		pc = f.Call / 100 * (1 - e.profile.FoldTo3Bet) / (1 - baselineFoldTo3Bet)
		t.add("chart says 4-bet %.0f%% / call %.0f%% after style", p4*100, pc*100)
	} else {
		strength := deck.KeyPercentile(hand)
		pc = clamp01((strength - 0.8) * 2 * (1 - e.profile.FoldTo3Bet))
		p4 = clamp01((strength - 0.9) * 3 * (e.profile.FourBetFreq / baselineFourBet))
		t.add("off the chart, speculative 4-bet %.0f%% / call %.0f%%", p4*100, pc*100)
	}

	p4, pc = clamp01(p4), clamp01(pc)
	if sum := p4 + pc; sum > 1 {
		p4 /= sum
		pc /= sum
	}

	r := e.rng.Float64()
	switch {
	case r < p4:
		size := gc.Bet * 2.3
		if !gc.InPosition {
			size = gc.Bet * 2.5
		}
		t.add("4-betting to %.1f", roundToHalf(size))
		return betOrAllIn(Raise, size, gc.Stack, p4, t.String())
	case r < p4+pc:
		t.add("calling the 3-bet")
		return Decision{Action: Call, Amount: call, Confidence: pc, Rationale: t.String()}
	default:
		t.add("letting it go")
		return Decision{Action: Fold, Confidence: 1 - p4 - pc, Rationale: t.String()}
	}
}

// preflopVs4Bet handles facing a 4-bet. A 5-bet is always an effective
// all-in at normal stack depths.
func (e *Engine) preflopVs4Bet(gc GameContext, hand string, call float64) Decision {
	t := &thoughts{}
	t.add("facing a 4-bet with %s", hand)

	var p5, pc float64
	if f, ok := e.tables.Vs4BetFreq(gc.Position, gc.Opener, hand); ok {
		p5 = clamp01(f.FiveBet / 100 * e.profile.Aggression)
		pc = f.Call / 100
		t.add("chart says 5-bet %.0f%% / call %.0f%%", p5*100, pc*100)
	} else if e.profile.FourBetFreq > 0.05 && deck.KeyPercentile(hand) >= 0.75 {
		// Rare bluff 5-bet reserved for hyper-aggressive styles holding a
		// top-quartile hand
		p5 = 0.10
		t.add("off the chart but this style can bluff-jam %.0f%%", p5*100)
	} else {
		t.add("off the chart")
	}

	if sum := p5 + pc; sum > 1 {
		p5 /= sum
		pc /= sum
	}

	r := e.rng.Float64()
	switch {
	case r < p5:
		t.add("5-bet shoving")
		return Decision{Action: AllIn, Amount: gc.Stack, Confidence: p5, Rationale: t.String()}
	case r < p5+pc:
		t.add("calling the 4-bet")
		return Decision{Action: Call, Amount: call, Confidence: pc, Rationale: t.String()}
	default:
		t.add("folding to the 4-bet")
		return Decision{Action: Fold, Confidence: 1 - p5 - pc, Rationale: t.String()}
	}
}

// checkOrFold closes out a declined spot: check when nothing is owed (the
// big blind option), fold otherwise.
func checkOrFold(gc GameContext, call, confidence float64, t *thoughts) Decision {
	if call <= 0 {
		t.add("checking my option")
		return Decision{Action: Check, Confidence: confidence, Rationale: t.String()}
	}
	t.add("folding")
	return Decision{Action: Fold, Confidence: confidence, Rationale: t.String()}
}
