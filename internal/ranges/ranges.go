// Package ranges holds the preflop range-frequency tables the decision
// policy consults. Tables are explicit immutable configuration passed into
// the engine, never package globals, so tests can supply synthetic tables.
package ranges

import "fmt"

// Position at a 6-max table, ordered by preflop acting order
type Position int

const (
	UTG Position = iota
	MP
	CO
	BTN
	SB
	BB
)

// String returns the conventional short name of a position
func (p Position) String() string {
	switch p {
	case UTG:
		return "UTG"
	case MP:
		return "MP"
	case CO:
		return "CO"
	case BTN:
		return "BTN"
	case SB:
		return "SB"
	case BB:
		return "BB"
	default:
		return "?"
	}
}

// ParsePosition parses a position short name
func ParsePosition(s string) (Position, error) {
	for p := UTG; p <= BB; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// Freq holds action frequencies in percent (0-100) for one hand in one
// spot. Fold is the implied complement. A 100 entry is deterministic, not
// probabilistic.
type Freq struct {
	Raise    float64
	Call     float64
	ThreeBet float64
	FourBet  float64
	FiveBet  float64
}

// Pair keys defense tables by hero and original raiser positions
type Pair struct {
	Hero    Position
	Villain Position
}

// Tables is the full set of preflop range-frequency tables. Missing
// positions or hands are expected and handled by heuristic fallback in the
// policy engine; they are never errors.
type Tables struct {
	Open   map[Position]map[string]Freq
	VsOpen map[Pair]map[string]Freq
	Vs3Bet map[Pair]map[string]Freq
	Vs4Bet map[Pair]map[string]Freq
}

// OpenFreq looks up the open-raise frequency for a hand in a position
func (t *Tables) OpenFreq(pos Position, hand string) (Freq, bool) {
	if t == nil || t.Open == nil {
		return Freq{}, false
	}
	hands, ok := t.Open[pos]
	if !ok {
		return Freq{}, false
	}
	f, ok := hands[hand]
	return f, ok
}

// VsOpenFreq looks up 3-bet/call frequencies facing an open
func (t *Tables) VsOpenFreq(hero, villain Position, hand string) (Freq, bool) {
	return lookupPair(t, t.VsOpen, hero, villain, hand)
}

// Vs3BetFreq looks up 4-bet/call frequencies facing a 3-bet
func (t *Tables) Vs3BetFreq(hero, villain Position, hand string) (Freq, bool) {
	return lookupPair(t, t.Vs3Bet, hero, villain, hand)
}

// Vs4BetFreq looks up 5-bet/call frequencies facing a 4-bet
func (t *Tables) Vs4BetFreq(hero, villain Position, hand string) (Freq, bool) {
	return lookupPair(t, t.Vs4Bet, hero, villain, hand)
}

func lookupPair(t *Tables, m map[Pair]map[string]Freq, hero, villain Position, hand string) (Freq, bool) {
	if t == nil || m == nil {
		return Freq{}, false
	}
	if hands, ok := m[Pair{Hero: hero, Villain: villain}]; ok {
		if f, ok := hands[hand]; ok {
			return f, true
		}
	}
	return Freq{}, false
}
