package profile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// profileFile is the HCL schema for external style profiles:
//
//	profile "sticky" {
//	  base = "station"
//	  vpip = 0.50
//	}
//
// Unset attributes inherit from the base preset (GTO when no base is named).
type profileFile struct {
	Profiles []profileBlock `hcl:"profile,block"`
}

type profileBlock struct {
	Name         string   `hcl:"name,label"`
	Base         *string  `hcl:"base"`
	VPIP         *float64 `hcl:"vpip"`
	PFR          *float64 `hcl:"pfr"`
	Aggression   *float64 `hcl:"aggression"`
	BluffFreq    *float64 `hcl:"bluff_freq"`
	FoldToBet    *float64 `hcl:"fold_to_bet"`
	ThreeBetFreq *float64 `hcl:"three_bet_freq"`
	FourBetFreq  *float64 `hcl:"four_bet_freq"`
	FoldTo3Bet   *float64 `hcl:"fold_to_3bet"`
	CBetFreq     *float64 `hcl:"cbet_freq"`
	FoldToCBet   *float64 `hcl:"fold_to_cbet"`
}

// Load reads style profiles from an HCL file and returns the full catalog:
// the built-in presets plus the file's profiles, with file definitions
// winning name collisions. An empty or missing filename returns just the
// built-ins, matching how the range tables degrade.
func Load(filename string) ([]Profile, error) {
	catalog := Presets()
	if filename == "" {
		return catalog, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return catalog, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile file: %s", diags.Error())
	}

	var pf profileFile
	if diags := gohcl.DecodeBody(file.Body, nil, &pf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile file: %s", diags.Error())
	}

	for _, blk := range pf.Profiles {
		p, err := profileFromBlock(blk)
		if err != nil {
			return nil, err
		}
		catalog = upsert(catalog, p)
	}
	return catalog, nil
}

// Find looks up a profile by name in a catalog
func Find(profiles []Profile, name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown profile %q", name)
}

func profileFromBlock(blk profileBlock) (Profile, error) {
	base := GTO()
	if blk.Base != nil {
		var err error
		base, err = ByName(*blk.Base)
		if err != nil {
			return Profile{}, fmt.Errorf("profile %q: %w", blk.Name, err)
		}
	}

	p := base
	p.Name = blk.Name
	set(&p.VPIP, blk.VPIP)
	set(&p.PFR, blk.PFR)
	set(&p.Aggression, blk.Aggression)
	set(&p.BluffFreq, blk.BluffFreq)
	set(&p.FoldToBet, blk.FoldToBet)
	set(&p.ThreeBetFreq, blk.ThreeBetFreq)
	set(&p.FourBetFreq, blk.FourBetFreq)
	set(&p.FoldTo3Bet, blk.FoldTo3Bet)
	set(&p.CBetFreq, blk.CBetFreq)
	set(&p.FoldToCBet, blk.FoldToCBet)

	if err := validate(p); err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w", blk.Name, err)
	}
	return p, nil
}

func set(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func validate(p Profile) error {
	if p.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if p.Aggression <= 0 || p.Aggression > 4 {
		return fmt.Errorf("aggression %v outside (0, 4]", p.Aggression)
	}
	fields := map[string]float64{
		"vpip": p.VPIP, "pfr": p.PFR, "bluff_freq": p.BluffFreq,
		"fold_to_bet": p.FoldToBet, "three_bet_freq": p.ThreeBetFreq,
		"four_bet_freq": p.FourBetFreq, "fold_to_3bet": p.FoldTo3Bet,
		"cbet_freq": p.CBetFreq, "fold_to_cbet": p.FoldToCBet,
	}
	for name, v := range fields {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %v outside [0, 1]", name, v)
		}
	}
	return nil
}

func upsert(catalog []Profile, p Profile) []Profile {
	for i := range catalog {
		if catalog[i].Name == p.Name {
			catalog[i] = p
			return catalog
		}
	}
	return append(catalog, p)
}
