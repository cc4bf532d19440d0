// Package evaluator scores the best five-card poker hand obtainable from two
// hole cards and up to five board cards. Every five-card subset is classified
// with fixed rules and the maximum kept, so the result is correct by
// construction with no special-casing beyond the wheel straight.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
)

// Category represents the class of a poker hand, weakest first
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// categoryBase separates categories in the combined score. The base-15
// kicker value of five positions tops out at 15^5-1 = 759374, so any hand of
// a higher category always outranks any hand of a lower one.
const categoryBase = 10_000_000

// Evaluation is the result of scoring a hand. Score is a single comparable
// value: higher is strictly better, equal means an exact chop.
type Evaluation struct {
	Category Category
	Score    int
	Best     []deck.Card

	// Incomplete marks a degraded result from fewer than five total cards.
	// It is usable for display only, never for equity math.
	Incomplete bool
}

// String returns a human-readable description of the evaluation
func (e Evaluation) String() string {
	if e.Incomplete {
		return fmt.Sprintf("%s (incomplete)", e.Category)
	}
	return e.Category.String()
}

// Evaluate returns the best five-card evaluation for two hole cards plus
// zero to five board cards. Malformed input (wrong hole count, oversized
// board, duplicate or unrecognized cards) is a caller contract violation and
// is rejected with an error rather than silently guessed at.
func Evaluate(hole, board []deck.Card) (Evaluation, error) {
	if len(hole) != 2 {
		return Evaluation{}, fmt.Errorf("expected 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return Evaluation{}, fmt.Errorf("board has %d cards, maximum is 5", len(board))
	}

	cards := make([]deck.Card, 0, 7)
	cards = append(cards, hole...)
	cards = append(cards, board...)
	for _, c := range cards {
		if !c.Valid() {
			return Evaluation{}, fmt.Errorf("invalid card %v", c)
		}
	}
	if !deck.Distinct(cards) {
		return Evaluation{}, fmt.Errorf("duplicate card between hole %v and board %v", hole, board)
	}

	if len(cards) < 5 {
		return evaluatePartial(cards), nil
	}

	best := Evaluation{Score: -1}
	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five := []deck.Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						cat, tiebreak := classifyFive(five)
						score := int(cat)*categoryBase + tiebreak
						if score > best.Score {
							best = Evaluation{Category: cat, Score: score, Best: five}
						}
					}
				}
			}
		}
	}

	return best, nil
}

// Compare returns 1 if a is stronger, -1 if b is stronger, 0 on exact tie
func Compare(a, b Evaluation) int {
	if a.Score > b.Score {
		return 1
	}
	if a.Score < b.Score {
		return -1
	}
	return 0
}

// DetermineWinners returns the indices of the winning evaluations,
// with all tied hands at the top rank sharing the win.
func DetermineWinners(evals []Evaluation) []int {
	if len(evals) == 0 {
		return nil
	}

	best := evals[0].Score
	for _, e := range evals[1:] {
		if e.Score > best {
			best = e.Score
		}
	}

	var winners []int
	for i, e := range evals {
		if e.Score == best {
			winners = append(winners, i)
		}
	}
	return winners
}

// classifyFive classifies exactly five cards and returns the category plus a
// kicker tiebreak value. Tiebreak ranks are ordered by descending frequency
// then descending rank and folded together base-15, so two hands of the same
// category compare correctly on kickers without a second comparison path.
func classifyFive(five []deck.Card) (Category, int) {
	ranks := make([]int, 5)
	flush := true
	for i, c := range five {
		ranks[i] = int(c.Rank)
		if c.Suit != five[0].Suit {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	straightHigh := straightHighCard(ranks)

	switch {
	case flush && straightHigh == int(deck.Ace):
		return RoyalFlush, 0
	case flush && straightHigh > 0:
		return StraightFlush, straightHigh
	}

	counts := make(map[int]int, 5)
	for _, r := range ranks {
		counts[r]++
	}

	switch {
	case hasCount(counts, 4):
		return FourOfAKind, frequencyTiebreak(ranks, counts)
	case hasCount(counts, 3) && hasCount(counts, 2):
		return FullHouse, frequencyTiebreak(ranks, counts)
	case flush:
		return Flush, frequencyTiebreak(ranks, counts)
	case straightHigh > 0:
		return Straight, straightHigh
	case hasCount(counts, 3):
		return ThreeOfAKind, frequencyTiebreak(ranks, counts)
	case pairCount(counts) == 2:
		return TwoPair, frequencyTiebreak(ranks, counts)
	case pairCount(counts) == 1:
		return Pair, frequencyTiebreak(ranks, counts)
	default:
		return HighCard, frequencyTiebreak(ranks, counts)
	}
}

// straightHighCard returns the high card of a straight formed by the given
// descending ranks, or 0 if they do not form one. The wheel A-2-3-4-5 counts
// as a straight whose high card is 5, not the Ace.
func straightHighCard(desc []int) int {
	for i := 1; i < len(desc); i++ {
		if desc[i] != desc[i-1]-1 {
			// Wheel: A,5,4,3,2 with the ace playing low
			if i == 1 && desc[0] == int(deck.Ace) && desc[1] == int(deck.Five) {
				for j := 2; j < len(desc); j++ {
					if desc[j] != desc[j-1]-1 {
						return 0
					}
				}
				return int(deck.Five)
			}
			return 0
		}
	}
	return desc[0]
}

// frequencyTiebreak folds the five ranks, ordered by descending count then
// descending rank, into a single base-15 integer.
func frequencyTiebreak(desc []int, counts map[int]int) int {
	ordered := make([]int, len(desc))
	copy(ordered, desc)
	sort.Slice(ordered, func(i, j int) bool {
		if counts[ordered[i]] != counts[ordered[j]] {
			return counts[ordered[i]] > counts[ordered[j]]
		}
		return ordered[i] > ordered[j]
	})

	value := 0
	for _, r := range ordered {
		value = value*15 + r
	}
	return value
}

func hasCount(counts map[int]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

func pairCount(counts map[int]int) int {
	pairs := 0
	for _, c := range counts {
		if c == 2 {
			pairs++
		}
	}
	return pairs
}

// evaluatePartial classifies fewer than five cards for display purposes.
// Only made-by-frequency categories are reachable; straights and flushes
// need a full five cards.
func evaluatePartial(cards []deck.Card) Evaluation {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	counts := make(map[int]int, len(ranks))
	for _, r := range ranks {
		counts[r]++
	}

	var cat Category
	switch {
	case hasCount(counts, 4):
		cat = FourOfAKind
	case hasCount(counts, 3):
		cat = ThreeOfAKind
	case pairCount(counts) == 2:
		cat = TwoPair
	case pairCount(counts) == 1:
		cat = Pair
	default:
		cat = HighCard
	}

	return Evaluation{
		Category:   cat,
		Score:      int(cat)*categoryBase + frequencyTiebreak(ranks, counts),
		Incomplete: true,
	}
}
