package ranges

// Defaults returns the built-in GTO-baseline range tables. They intentionally
// cover only the hands a balanced strategy plays on purpose; anything absent
// is left to the policy engine's heuristic fallback.
func Defaults() *Tables {
	t := &Tables{
		Open:   make(map[Position]map[string]Freq),
		VsOpen: make(map[Pair]map[string]Freq),
		Vs3Bet: make(map[Pair]map[string]Freq),
		Vs4Bet: make(map[Pair]map[string]Freq),
	}

	open := func(pos Position, spec string, raise float64) {
		if t.Open[pos] == nil {
			t.Open[pos] = make(map[string]Freq)
		}
		for _, hand := range MustExpand(spec) {
			t.Open[pos][hand] = Freq{Raise: raise}
		}
	}

	// Opening ranges tighten from the button back toward UTG. The edges of
	// each range are mixed; the core opens always.
	open(UTG, "77+,ATs+,KTs+,QTs+,JTs,AJo+,KQo", 100)
	open(UTG, "66,55,A5s-A2s,T9s,98s,ATo", 50)
	open(MP, "55+,A2s+,K9s+,Q9s+,J9s+,T9s,98s,87s,ATo+,KJo+", 100)
	open(MP, "44,33,76s,65s,A9o,KTo,QJo", 50)
	open(CO, "22+,A2s+,K6s+,Q8s+,J8s+,T8s+,97s+,86s+,75s+,65s,A8o+,KTo+,QTo+,JTo", 100)
	open(CO, "K5s-K2s,54s,A5o-A2o,K9o,Q9o,T9o", 45)
	open(BTN, "22+,A2s+,K2s+,Q4s+,J7s+,T6s+,96s+,85s+,74s+,64s+,53s+,A2o+,K8o+,Q9o+,J9o+,T8o+,98o", 100)
	open(BTN, "43s,K7o-K5o,Q8o,J8o,97o,87o,76o", 55)
	open(SB, "22+,A2s+,K4s+,Q6s+,J7s+,T7s+,97s+,86s+,75s+,65s,A4o+,K9o+,Q9o+,J9o+,T9o", 100)
	open(SB, "K3s,K2s,54s,A3o,A2o,K8o,Q8o,98o", 40)

	defend := func(table map[Pair]map[string]Freq, hero, villain Position, spec string, f Freq) {
		p := Pair{Hero: hero, Villain: villain}
		if table[p] == nil {
			table[p] = make(map[string]Freq)
		}
		for _, hand := range MustExpand(spec) {
			table[p][hand] = f
		}
	}

	// Facing an open: 3-bet the top, flat the playable middle. The in-front
	// positions defend tighter against early opens.
	for hero := MP; hero <= BB; hero++ {
		for villain := UTG; villain < hero; villain++ {
			late := villain >= CO

			defend(t.VsOpen, hero, villain, "QQ+,AKs,AKo", Freq{ThreeBet: 100})
			defend(t.VsOpen, hero, villain, "JJ,TT,AQs,AQo,KQs", Freq{ThreeBet: 40, Call: 60})
			defend(t.VsOpen, hero, villain, "99-22,AJs,ATs,KJs,QJs,JTs,T9s,98s,87s,76s", Freq{Call: 100})
			if late {
				defend(t.VsOpen, hero, villain, "A5s-A2s,K9s,QTs,J9s,65s,54s", Freq{ThreeBet: 55, Call: 35})
				defend(t.VsOpen, hero, villain, "AJo,KQo,ATo,KJs", Freq{Call: 100})
			} else {
				defend(t.VsOpen, hero, villain, "A5s,A4s", Freq{ThreeBet: 30})
			}
		}
	}

	// Facing a 3-bet after we opened
	for hero := UTG; hero <= SB; hero++ {
		for villain := UTG; villain <= BB; villain++ {
			if villain == hero {
				continue
			}
			defend(t.Vs3Bet, hero, villain, "KK+", Freq{FourBet: 100})
			defend(t.Vs3Bet, hero, villain, "QQ,AKs,AKo", Freq{FourBet: 55, Call: 45})
			defend(t.Vs3Bet, hero, villain, "JJ,TT,AQs,KQs,AJs,A5s,A4s", Freq{Call: 100})
			defend(t.Vs3Bet, hero, villain, "99,88,ATs,KJs,QJs,JTs,T9s", Freq{Call: 60})
		}
	}

	// Facing a 4-bet after we 3-bet; the 5-bet is an effective all-in
	for hero := UTG; hero <= BB; hero++ {
		for villain := UTG; villain <= BB; villain++ {
			if villain == hero {
				continue
			}
			defend(t.Vs4Bet, hero, villain, "KK+", Freq{FiveBet: 100})
			defend(t.Vs4Bet, hero, villain, "QQ,AKs", Freq{FiveBet: 50, Call: 50})
			defend(t.Vs4Bet, hero, villain, "AKo,JJ", Freq{Call: 70})
			defend(t.Vs4Bet, hero, villain, "A5s", Freq{FiveBet: 25})
		}
	}

	return t
}
