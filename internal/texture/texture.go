// Package texture classifies board coordination. The decision policy consumes
// only this flag vocabulary; display layers may derive richer descriptions.
package texture

import (
	"sort"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
)

// Summary describes how coordinated a board is
type Summary struct {
	Dry           bool
	Wet           bool
	Paired        bool
	FlushDraw     bool
	StraightDraw  bool
	HighCard      deck.Rank
	Connectedness float64 // 0 = fully disconnected, 1 = maximally connected
}

// Classify computes the texture summary from the board alone.
// Boards with fewer than three cards classify as neutral.
func Classify(board []deck.Card) Summary {
	if len(board) < 3 {
		return Summary{}
	}

	var s Summary

	suitCounts := make(map[deck.Suit]int, 4)
	rankCounts := make(map[deck.Rank]int, len(board))
	ranks := make([]int, 0, len(board))
	for _, c := range board {
		suitCounts[c.Suit]++
		rankCounts[c.Rank]++
		ranks = append(ranks, int(c.Rank))
		if c.Rank > s.HighCard {
			s.HighCard = c.Rank
		}
	}

	maxSuit := 0
	for _, n := range suitCounts {
		if n > maxSuit {
			maxSuit = n
		}
	}
	s.FlushDraw = maxSuit >= 2

	for _, n := range rankCounts {
		if n >= 2 {
			s.Paired = true
		}
	}

	s.Connectedness = connectedness(ranks)
	s.StraightDraw = s.Connectedness >= 0.45

	s.Wet = maxSuit >= 3 || (s.FlushDraw && s.Connectedness >= 0.5) || s.Connectedness >= 0.7
	s.Dry = !s.Wet && !s.Paired && maxSuit < 3 && s.Connectedness < 0.4

	return s
}

// connectedness measures how tightly the board ranks cluster. Adjacent ranks
// contribute fully, gaps decay the contribution, pairs contribute nothing.
func connectedness(ranks []int) float64 {
	uniq := make([]int, 0, len(ranks))
	seen := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		if !seen[r] {
			seen[r] = true
			uniq = append(uniq, r)
		}
	}
	if len(uniq) < 2 {
		return 0
	}
	sort.Ints(uniq)

	total := 0.0
	for i := 1; i < len(uniq); i++ {
		gap := uniq[i] - uniq[i-1]
		switch {
		case gap == 1:
			total += 1.0
		case gap == 2:
			total += 0.6
		case gap == 3:
			total += 0.3
		case gap == 4:
			total += 0.1
		}
	}
	return total / float64(len(uniq)-1)
}
