package policy

import (
	"math"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/equity"
)

func (e *Engine) decidePostflop(gc GameContext, call float64) Decision {
	eq := e.estimator.Estimate(gc.Hole, gc.Board, gc.Opponents)
	if call <= 0 {
		return e.postflopNoBet(gc, eq)
	}
	return e.postflopFacingBet(gc, eq, call)
}

// postflopNoBet decides between betting and checking when nothing is owed.
func (e *Engine) postflopNoBet(gc GameContext, eq float64) Decision {
	t := &thoughts{}
	t.add("%s, %.0f%% equity, no bet to face", gc.Street, eq*100)

	// Very strong out of position: sometimes check to set up a check-raise
	if !gc.InPosition && eq > 0.7 {
		p := clamp01(0.25 * e.profile.Aggression)
		if e.rng.Float64() < p {
			t.add("checking to spring a check-raise")
			return Decision{Action: Check, Confidence: eq, Rationale: t.String()}
		}
	}

	// In position after a check-back: probe bet
	if gc.InPosition && gc.CheckedBack {
		freq := 0.45 + 0.3*eq
		if gc.Texture.Dry {
			freq += 0.15
		}
		if e.rng.Float64() < clamp01(freq) {
			size := math.Max((0.40+0.10*eq)*gc.Pot, gc.BigBlind)
			t.add("they checked back, probing for %.1f", roundToHalf(size))
			return betOrAllIn(Bet, size, gc.Stack, eq, t.String())
		}
		t.add("checking behind the check-back")
		return Decision{Action: Check, Confidence: 1 - eq, Rationale: t.String()}
	}

	freq := e.betFrequency(gc, eq, t)
	if e.rng.Float64() < freq {
		size := math.Max(e.betSize(gc, eq)*gc.Pot, gc.BigBlind)
		t.add("betting %.1f", roundToHalf(size))
		return betOrAllIn(Bet, size, gc.Stack, eq, t.String())
	}

	t.add("checking")
	return Decision{Action: Check, Confidence: 1 - freq, Rationale: t.String()}
}

// betFrequency computes the general bet/check frequency: the c-bet base for
// the preflop aggressor, a much lower donk base otherwise, bent by position,
// street and equity tier.
func (e *Engine) betFrequency(gc GameContext, eq float64, t *thoughts) float64 {
	base := e.profile.CBetFreq * 0.4
	if gc.PreflopAggressor {
		base = e.profile.CBetFreq * 1.2
		t.add("continuing my preflop aggression")
	} else {
		t.add("leading into the raiser is rare")
	}

	if gc.InPosition {
		base *= 1.15
	} else {
		base *= 0.85
	}

	switch gc.Street {
	case Turn:
		base *= 0.75
	case River:
		base *= 0.6
	}

	var freq float64
	switch {
	case eq > 0.7:
		freq = base * 1.4
		if gc.Street == River {
			// Strong value still bets the river
			freq *= 1.5
		}
		if freq > 0.95 {
			freq = 0.95
		}
		t.add("strong enough to bet for value")
	case eq >= 0.4:
		freq = base
		if gc.Texture.Dry {
			freq = base * 1.1
		} else if gc.Texture.Wet {
			freq = base * 0.8
		}
		t.add("medium strength, board shapes the frequency")
	default:
		freq = e.profile.BluffFreq * 0.5
		if gc.Texture.Dry {
			freq = e.profile.BluffFreq * 0.8
		} else if gc.Texture.Wet {
			freq *= 0.5
		}
		t.add("only a bluff makes sense here")
	}

	return clamp01(freq)
}

// betSize returns the bet as a fraction of the pot, varying by street and
// texture, polarized on the river.
func (e *Engine) betSize(gc GameContext, eq float64) float64 {
	switch gc.Street {
	case Turn:
		if eq > 0.7 {
			return 0.65
		}
		return 0.50
	case River:
		if eq > 0.75 || eq < 0.4 {
			return 0.70
		}
		return 0.50
	default:
		// Flop: a third pot on dry boards, growing with coordination
		return 0.33 + 0.25*gc.Texture.Connectedness
	}
}

// postflopFacingBet decides between raising, calling and folding when a bet
// is in front of us, branching on equity tier.
func (e *Engine) postflopFacingBet(gc GameContext, eq float64, call float64) Decision {
	t := &thoughts{}
	t.add("%s, facing %.1f into %.1f with %.0f%% equity", gc.Street, call, gc.Pot, eq*100)

	defense := 1.0
	switch gc.Street {
	case Turn:
		defense = 0.85
	case River:
		defense = 0.70
	}
	if gc.InPosition {
		defense *= 1.15
	}

	// Monster out of position: attempt a check-raise before the general policy
	if !gc.InPosition && eq > 0.75 {
		if e.rng.Float64() < clamp01(0.3*e.profile.Aggression) {
			t.add("springing the check-raise")
			return betOrAllIn(Raise, gc.Bet*3, gc.Stack, eq, t.String())
		}
	}

	switch {
	case eq > 0.8:
		streetBoost := 1.0 + 0.25*float64(gc.Street-Flop)
		p := clamp01(0.4 * e.profile.Aggression * streetBoost)
		if e.rng.Float64() < p {
			t.add("raising for value")
			return betOrAllIn(Raise, gc.Bet*3, gc.Stack, eq, t.String())
		}
		t.add("slow-playing the call")
		return Decision{Action: Call, Amount: call, Confidence: eq, Rationale: t.String()}

	case eq > 0.6:
		p := clamp01(0.12 * e.profile.Aggression * defense)
		if e.rng.Float64() < p {
			t.add("turning up the pressure")
			return betOrAllIn(Raise, gc.Bet*3, gc.Stack, eq, t.String())
		}
		t.add("good hand, calling")
		return Decision{Action: Call, Amount: call, Confidence: eq, Rationale: t.String()}

	case eq > 0.35:
		required := call / (gc.Pot + call)
		adjusted := required * (0.7 + 0.6*e.profile.FoldToCBet) / defense
		if eq >= adjusted {
			t.add("price is right: need %.0f%%, have %.0f%%", adjusted*100, eq*100)
			return Decision{Action: Call, Amount: call, Confidence: eq, Rationale: t.String()}
		}
		if gc.InPosition && gc.Street < River {
			if e.rng.Float64() < clamp01(0.15*e.profile.Aggression) {
				t.add("floating in position")
				return Decision{Action: Call, Amount: call, Confidence: 0.15 * e.profile.Aggression, Rationale: t.String()}
			}
		}
		t.add("priced out")
	}

	return e.foldWithCarveOuts(gc, eq, call, t)
}

// foldWithCarveOuts is the terminal fold path, with the draw-continue,
// bluff-raise and calling-station exceptions applied first.
func (e *Engine) foldWithCarveOuts(gc GameContext, eq float64, call float64, t *thoughts) Decision {
	betPct := 1.0
	if gc.Pot > 0 {
		betPct = call / gc.Pot
	}

	if gc.Street < River && betPct <= 0.75 {
		if draws := equity.DetectDraws(gc.Hole, gc.Board); draws.Any() {
			t.add("drawing with a reasonable price")
			return Decision{Action: Call, Amount: call, Confidence: eq, Rationale: t.String()}
		}
	}

	if e.rng.Float64() < clamp01(0.08*e.profile.BluffFreq) {
		t.add("turning it into a bluff")
		return betOrAllIn(Raise, gc.Bet*3, gc.Stack, e.profile.BluffFreq, t.String())
	}

	if e.profile.FoldToCBet < 0.3 && e.rng.Float64() < clamp01(0.35-e.profile.FoldToCBet) {
		t.add("can't help but call")
		return Decision{Action: Call, Amount: call, Confidence: 1 - e.profile.FoldToCBet, Rationale: t.String()}
	}

	t.add("folding")
	return Decision{Action: Fold, Confidence: e.profile.FoldToCBet, Rationale: t.String()}
}
