package ranges

import (
	"fmt"
	"strings"
)

var rankOrder = "23456789TJQKA"

func rankIndex(c byte) int {
	return strings.IndexByte(rankOrder, c)
}

// Expand expands a comma-separated range specification into the canonical
// hand keys it covers. Supported forms: "AA", "77+", "AKs", "A2s+", "T9o",
// "A5s-A2s", and "AK" for both suited and offsuit.
func Expand(spec string) ([]string, error) {
	var hands []string
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		expanded, err := expandToken(token)
		if err != nil {
			return nil, fmt.Errorf("range token %q: %w", token, err)
		}
		hands = append(hands, expanded...)
	}
	return hands, nil
}

// MustExpand expands a range specification and panics on error. The built-in
// default tables use it; their specs are fixed at compile time.
func MustExpand(spec string) []string {
	hands, err := Expand(spec)
	if err != nil {
		panic(err)
	}
	return hands
}

func expandToken(token string) ([]string, error) {
	if strings.Contains(token, "-") {
		parts := strings.SplitN(token, "-", 2)
		return expandSpan(parts[0], parts[1])
	}

	plus := strings.HasSuffix(token, "+")
	token = strings.TrimSuffix(token, "+")

	if len(token) < 2 || len(token) > 3 {
		return nil, fmt.Errorf("malformed hand")
	}
	hi, lo := rankIndex(token[0]), rankIndex(token[1])
	if hi < 0 || lo < 0 {
		return nil, fmt.Errorf("unknown rank")
	}

	// Pairs
	if hi == lo {
		if len(token) != 2 {
			return nil, fmt.Errorf("pairs carry no suit marker")
		}
		if !plus {
			return []string{token}, nil
		}
		var hands []string
		for r := hi; r < len(rankOrder); r++ {
			hands = append(hands, string(rankOrder[r])+string(rankOrder[r]))
		}
		return hands, nil
	}

	if hi < lo {
		hi, lo = lo, hi
	}

	var suffixes []string
	if len(token) == 3 {
		if token[2] != 's' && token[2] != 'o' {
			return nil, fmt.Errorf("suit marker must be 's' or 'o'")
		}
		suffixes = []string{string(token[2])}
	} else {
		suffixes = []string{"s", "o"}
	}

	var hands []string
	for _, suffix := range suffixes {
		if !plus {
			hands = append(hands, key(hi, lo, suffix))
			continue
		}
		// "A2s+" walks the kicker up to just under the high card
		for k := lo; k < hi; k++ {
			hands = append(hands, key(hi, k, suffix))
		}
	}
	return hands, nil
}

// expandSpan handles "99-22" (pair runs) and "A5s-A2s" (same high card,
// kicker descending).
func expandSpan(top, bottom string) ([]string, error) {
	if len(top) == 2 && len(bottom) == 2 && top[0] == top[1] && bottom[0] == bottom[1] {
		from, to := rankIndex(bottom[0]), rankIndex(top[0])
		if from < 0 || to < 0 || from > to {
			return nil, fmt.Errorf("malformed pair span")
		}
		var hands []string
		for r := from; r <= to; r++ {
			hands = append(hands, string(rankOrder[r])+string(rankOrder[r]))
		}
		return hands, nil
	}

	if len(top) != 3 || len(bottom) != 3 || top[0] != bottom[0] || top[2] != bottom[2] {
		return nil, fmt.Errorf("span endpoints must share high card and suitedness")
	}
	hi := rankIndex(top[0])
	from, to := rankIndex(bottom[1]), rankIndex(top[1])
	if hi < 0 || from < 0 || to < 0 || from > to {
		return nil, fmt.Errorf("malformed span")
	}

	var hands []string
	for k := from; k <= to; k++ {
		hands = append(hands, key(hi, k, string(top[2])))
	}
	return hands, nil
}

func key(hi, lo int, suffix string) string {
	return string(rankOrder[hi]) + string(rankOrder[lo]) + suffix
}
