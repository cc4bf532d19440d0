package equity

import (
	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
)

// Draws reports which draws the hero holds. A draw must use at least one
// hole card; board-only draws belong to everyone and carry no extra equity.
type Draws struct {
	FlushDraw bool
	OpenEnded bool
	Gutshot   bool
}

// Any returns true if any draw is present
func (d Draws) Any() bool {
	return d.FlushDraw || d.OpenEnded || d.Gutshot
}

// DetectDraws finds flush and straight draws for the given hole cards and
// board. Made flushes and straights are not draws and report nothing.
func DetectDraws(hole, board []deck.Card) Draws {
	var d Draws
	if len(hole) != 2 {
		return d
	}

	d.FlushDraw = hasFlushDraw(hole, board)
	d.OpenEnded, d.Gutshot = straightDraws(hole, board)
	return d
}

func hasFlushDraw(hole, board []deck.Card) bool {
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		total, fromHole := 0, 0
		for _, c := range hole {
			if c.Suit == suit {
				total++
				fromHole++
			}
		}
		for _, c := range board {
			if c.Suit == suit {
				total++
			}
		}
		if total == 4 && fromHole > 0 {
			return true
		}
	}
	return false
}

func straightDraws(hole, board []deck.Card) (openEnded, gutshot bool) {
	// present[v] marks rank values 1..14, with the ace present at both ends
	var present, fromHole [15]bool
	mark := func(c deck.Card, hero bool) {
		v := int(c.Rank)
		present[v] = true
		if hero {
			fromHole[v] = true
		}
		if c.Rank == deck.Ace {
			present[1] = true
			if hero {
				fromHole[1] = true
			}
		}
	}
	for _, c := range hole {
		mark(c, true)
	}
	for _, c := range board {
		mark(c, false)
	}

	// A made straight anywhere kills the draw
	for lo := 1; lo+4 <= 14; lo++ {
		made := true
		for v := lo; v <= lo+4; v++ {
			if !present[v] {
				made = false
				break
			}
		}
		if made {
			return false, false
		}
	}

	// Four consecutive ranks open on both ends
	for lo := 2; lo+3 <= 13; lo++ {
		run, hero := true, false
		for v := lo; v <= lo+3; v++ {
			if !present[v] {
				run = false
				break
			}
			if fromHole[v] {
				hero = true
			}
		}
		if run && hero {
			return true, false
		}
	}

	// Four of five ranks inside a window
	for lo := 1; lo+4 <= 14; lo++ {
		count, hero := 0, false
		for v := lo; v <= lo+4; v++ {
			if present[v] {
				count++
				if fromHole[v] {
					hero = true
				}
			}
		}
		if count == 4 && hero {
			return false, true
		}
	}

	return false, false
}
