package ranges

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// rangeFile is the HCL schema for external range tables:
//
//	open "BTN" {
//	  range "A2s+,K9s+" { raise = 100 }
//	}
//	vs_open "BB" "BTN" {
//	  range "QQ+,AKs" { threebet = 100 }
//	}
type rangeFile struct {
	Opens   []openBlock    `hcl:"open,block"`
	VsOpens []defenseBlock `hcl:"vs_open,block"`
	Vs3Bets []defenseBlock `hcl:"vs_3bet,block"`
	Vs4Bets []defenseBlock `hcl:"vs_4bet,block"`
}

type openBlock struct {
	Position string       `hcl:"position,label"`
	Ranges   []rangeBlock `hcl:"range,block"`
}

type defenseBlock struct {
	Hero    string       `hcl:"hero,label"`
	Villain string       `hcl:"villain,label"`
	Ranges  []rangeBlock `hcl:"range,block"`
}

type rangeBlock struct {
	Spec     string  `hcl:"spec,label"`
	Raise    float64 `hcl:"raise,optional"`
	Call     float64 `hcl:"call,optional"`
	ThreeBet float64 `hcl:"threebet,optional"`
	FourBet  float64 `hcl:"fourbet,optional"`
	FiveBet  float64 `hcl:"fivebet,optional"`
}

// Load reads range tables from an HCL file. A missing file is not an error:
// the built-in defaults are returned, matching how the rest of the
// configuration surface degrades.
func Load(filename string) (*Tables, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Defaults(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse range file: %s", diags.Error())
	}

	var rf rangeFile
	if diags := gohcl.DecodeBody(file.Body, nil, &rf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode range file: %s", diags.Error())
	}

	return tablesFromFile(&rf)
}

func tablesFromFile(rf *rangeFile) (*Tables, error) {
	t := &Tables{
		Open:   make(map[Position]map[string]Freq),
		VsOpen: make(map[Pair]map[string]Freq),
		Vs3Bet: make(map[Pair]map[string]Freq),
		Vs4Bet: make(map[Pair]map[string]Freq),
	}

	for _, blk := range rf.Opens {
		pos, err := ParsePosition(blk.Position)
		if err != nil {
			return nil, err
		}
		if t.Open[pos] == nil {
			t.Open[pos] = make(map[string]Freq)
		}
		for _, rb := range blk.Ranges {
			if err := applyRange(t.Open[pos], rb); err != nil {
				return nil, err
			}
		}
	}

	pairTables := []struct {
		blocks []defenseBlock
		target map[Pair]map[string]Freq
	}{
		{rf.VsOpens, t.VsOpen},
		{rf.Vs3Bets, t.Vs3Bet},
		{rf.Vs4Bets, t.Vs4Bet},
	}
	for _, pt := range pairTables {
		for _, blk := range pt.blocks {
			hero, err := ParsePosition(blk.Hero)
			if err != nil {
				return nil, err
			}
			villain, err := ParsePosition(blk.Villain)
			if err != nil {
				return nil, err
			}
			p := Pair{Hero: hero, Villain: villain}
			if pt.target[p] == nil {
				pt.target[p] = make(map[string]Freq)
			}
			for _, rb := range blk.Ranges {
				if err := applyRange(pt.target[p], rb); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

func applyRange(hands map[string]Freq, rb rangeBlock) error {
	freq := Freq{
		Raise:    rb.Raise,
		Call:     rb.Call,
		ThreeBet: rb.ThreeBet,
		FourBet:  rb.FourBet,
		FiveBet:  rb.FiveBet,
	}
	for _, field := range []float64{freq.Raise, freq.Call, freq.ThreeBet, freq.FourBet, freq.FiveBet} {
		if field < 0 || field > 100 {
			return fmt.Errorf("frequency %v out of range in %q", field, rb.Spec)
		}
	}

	expanded, err := Expand(rb.Spec)
	if err != nil {
		return err
	}
	for _, hand := range expanded {
		hands[hand] = freq
	}
	return nil
}
