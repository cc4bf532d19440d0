package evaluator

import (
	"testing"

	"github.com/ZWhiteTrace/gto-poker-trainer/internal/deck"
)

func mustEvaluate(t *testing.T, hole, board string) Evaluation {
	t.Helper()
	var boardCards []deck.Card
	if board != "" {
		boardCards = deck.MustParseCards(board)
	}
	eval, err := Evaluate(deck.MustParseCards(hole), boardCards)
	if err != nil {
		t.Fatalf("Evaluate(%s, %s) failed: %v", hole, board, err)
	}
	return eval
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		board    string
		expected Category
	}{
		{"royal flush", "AsKs", "QsJsTs2h3d", RoyalFlush},
		{"straight flush", "9s8s", "7s6s5s2h3d", StraightFlush},
		{"four of a kind", "AsAd", "AhAc7s2d9h", FourOfAKind},
		{"full house", "AsAd", "AhKcKs2d9h", FullHouse},
		{"flush", "As2s", "9s7s5sKdQh", Flush},
		{"straight", "9h8c", "7s6d5c2hKd", Straight},
		{"three of a kind", "AsAd", "Ah7c5s2d9h", ThreeOfAKind},
		{"two pair", "AsKd", "AhKc5s2d9h", TwoPair},
		{"pair", "AsKd", "Ah7c5s2d9h", Pair},
		{"high card", "AsKd", "Jh7c5s2d9h", HighCard},
		{"wheel straight", "As2d", "3c4h5s9dKh", Straight},
		{"steel wheel", "As2s", "3s4s5s9dKh", StraightFlush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := mustEvaluate(t, tt.hole, tt.board)
			if eval.Category != tt.expected {
				t.Errorf("category = %v, want %v", eval.Category, tt.expected)
			}
			if eval.Incomplete {
				t.Error("full hand flagged incomplete")
			}
		})
	}
}

func TestCategoryHierarchy(t *testing.T) {
	// Weakest instance of each category, strongest first; any instance of a
	// higher category must outrank any instance of a lower one.
	ladder := []struct {
		name  string
		hole  string
		board string
	}{
		{"royal flush", "AsKs", "QsJsTs"},
		{"straight flush", "5s6s", "7s8s9s"},
		{"four of a kind", "2s2d", "2h2c3s"},
		{"full house", "2s2d", "2h3c3s"},
		{"flush", "2s3s", "4s5s7s"},
		{"straight", "As2d", "3c4h5s"},
		{"three of a kind", "2s2d", "2h4c5s"},
		{"two pair", "2s2d", "3h3c5s"},
		{"pair", "2s2d", "3h4c5s"},
		{"high card", "2s3d", "4h5c7s"},
	}

	evals := make([]Evaluation, len(ladder))
	for i, l := range ladder {
		evals[i] = mustEvaluate(t, l.hole, l.board)
	}

	for i := 0; i < len(evals); i++ {
		for j := i + 1; j < len(evals); j++ {
			if Compare(evals[i], evals[j]) != 1 {
				t.Errorf("%s should beat %s", ladder[i].name, ladder[j].name)
			}
		}
	}
}

func TestWheelRanksBelowSixHighStraight(t *testing.T) {
	wheel := mustEvaluate(t, "As2d", "3c4h5s")
	sixHigh := mustEvaluate(t, "2s3d", "4c5h6s")
	trips := mustEvaluate(t, "9s9d", "9h4c2s")

	if wheel.Category != Straight {
		t.Fatalf("wheel category = %v, want Straight", wheel.Category)
	}
	if Compare(sixHigh, wheel) != 1 {
		t.Error("six-high straight should beat the wheel")
	}
	if Compare(wheel, trips) != 1 {
		t.Error("wheel should beat three of a kind")
	}
}

func TestRoyalFlushContainment(t *testing.T) {
	royal := mustEvaluate(t, "AsKs", "QsJsTs")
	kingHighSF := mustEvaluate(t, "KdQd", "JdTd9d")
	quadAces := mustEvaluate(t, "AsAd", "AhAcKs")

	if royal.Category != RoyalFlush {
		t.Fatalf("category = %v, want RoyalFlush", royal.Category)
	}
	if Compare(royal, kingHighSF) != 1 {
		t.Error("royal flush should beat a king-high straight flush")
	}
	if Compare(kingHighSF, quadAces) != 1 {
		t.Error("any straight flush should beat any four of a kind")
	}
}

func TestKickerOrdering(t *testing.T) {
	tests := []struct {
		name           string
		strong, weak   string
		board          string
	}{
		{"ace kicker beats queen kicker", "AsKd", "QsKh", "Kc7s5d2h9c"},
		{"higher pair wins", "AsAd", "KsKd", "Qc7s5d2h9c"},
		{"two pair high pair decides", "AsQd", "KsQh", "AhKcQc7s5d"},
		{"flush high card decides", "AsTs", "Ks4s", "9s7s5s2h3d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strong := mustEvaluate(t, tt.strong, tt.board)
			weak := mustEvaluate(t, tt.weak, tt.board)
			if Compare(strong, weak) != 1 {
				t.Errorf("%s (%v) should beat %s (%v)", tt.strong, strong, tt.weak, weak)
			}
		})
	}
}

func TestExactTie(t *testing.T) {
	// Both players play the board straight
	board := "9s8d7c6h5s"
	a := mustEvaluate(t, "2s2d", board)
	b := mustEvaluate(t, "3s3d", board)
	if Compare(a, b) != 0 {
		t.Errorf("identical best hands should tie, got Compare=%d", Compare(a, b))
	}
}

func TestDetermineWinners(t *testing.T) {
	board := deck.MustParseCards("Kc7s5d2h9c")
	evaluate := func(hole string) Evaluation {
		eval, err := Evaluate(deck.MustParseCards(hole), board)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		return eval
	}

	evals := []Evaluation{
		evaluate("AsKd"), // top pair top kicker
		evaluate("AhKh"), // same hand, different suits
		evaluate("QsJd"), // queen high
	}

	winners := DetermineWinners(evals)
	if len(winners) != 2 || winners[0] != 0 || winners[1] != 1 {
		t.Errorf("winners = %v, want [0 1]", winners)
	}

	if DetermineWinners(nil) != nil {
		t.Error("no hands should yield no winners")
	}
}

func TestIncompleteHand(t *testing.T) {
	eval := mustEvaluate(t, "AsAd", "")
	if !eval.Incomplete {
		t.Error("two-card hand should be incomplete")
	}
	if eval.Category != Pair {
		t.Errorf("pocket pair preflop category = %v, want Pair", eval.Category)
	}

	eval = mustEvaluate(t, "AsKd", "")
	if eval.Category != HighCard {
		t.Errorf("unpaired preflop category = %v, want HighCard", eval.Category)
	}
}

func TestEvaluateRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
	}{
		{"one hole card", "As", "KdQc2s"},
		{"three hole cards", "AsKdQc", "2s3d4c"},
		{"oversized board", "AsKd", "2s3d4c5h6s7d"},
		{"duplicate across hole and board", "AsKd", "As3d4c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hole := deck.MustParseCards(tt.hole)
			board := deck.MustParseCards(tt.board)
			if _, err := Evaluate(hole, board); err == nil {
				t.Error("expected error for malformed input")
			}
		})
	}
}
