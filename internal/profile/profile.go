// Package profile defines player style profiles: small immutable records of
// tendency parameters consumed by the decision policy engine.
package profile

// Profile holds the tendency scalars for a playing style. Values are
// probability-like in [0,1] except Aggression, which acts as a multiplier
// and may exceed 1. Profiles are never mutated; adaptation produces a new
// value.
type Profile struct {
	Name         string
	VPIP         float64
	PFR          float64
	Aggression   float64
	BluffFreq    float64
	FoldToBet    float64
	ThreeBetFreq float64
	FourBetFreq  float64
	FoldTo3Bet   float64
	CBetFreq     float64
	FoldToCBet   float64
}

// BaselineVPIP is the GTO reference VPIP that range frequencies are scaled
// against.
const BaselineVPIP = 0.24

// GTO returns the balanced baseline profile
func GTO() Profile {
	return Profile{
		Name:         "gto",
		VPIP:         BaselineVPIP,
		PFR:          0.19,
		Aggression:   1.0,
		BluffFreq:    0.30,
		FoldToBet:    0.45,
		ThreeBetFreq: 0.08,
		FourBetFreq:  0.03,
		FoldTo3Bet:   0.55,
		CBetFreq:     0.65,
		FoldToCBet:   0.45,
	}
}

// Presets returns the built-in profile catalog: the GTO baseline plus five
// stylistic archetypes spanning the loose/tight and aggressive/passive axes.
func Presets() []Profile {
	return []Profile{
		GTO(),
		{
			Name:         "tag", // tight aggressive
			VPIP:         0.20,
			PFR:          0.17,
			Aggression:   1.2,
			BluffFreq:    0.25,
			FoldToBet:    0.50,
			ThreeBetFreq: 0.09,
			FourBetFreq:  0.035,
			FoldTo3Bet:   0.58,
			CBetFreq:     0.72,
			FoldToCBet:   0.42,
		},
		{
			Name:         "lag", // loose aggressive
			VPIP:         0.32,
			PFR:          0.26,
			Aggression:   1.4,
			BluffFreq:    0.45,
			FoldToBet:    0.35,
			ThreeBetFreq: 0.12,
			FourBetFreq:  0.05,
			FoldTo3Bet:   0.45,
			CBetFreq:     0.80,
			FoldToCBet:   0.35,
		},
		{
			Name:         "nit", // tight passive
			VPIP:         0.14,
			PFR:          0.10,
			Aggression:   0.7,
			BluffFreq:    0.10,
			FoldToBet:    0.65,
			ThreeBetFreq: 0.04,
			FourBetFreq:  0.02,
			FoldTo3Bet:   0.75,
			CBetFreq:     0.50,
			FoldToCBet:   0.60,
		},
		{
			Name:         "station", // loose passive calling station
			VPIP:         0.45,
			PFR:          0.08,
			Aggression:   0.6,
			BluffFreq:    0.08,
			FoldToBet:    0.20,
			ThreeBetFreq: 0.03,
			FourBetFreq:  0.015,
			FoldTo3Bet:   0.35,
			CBetFreq:     0.40,
			FoldToCBet:   0.20,
		},
		{
			Name:         "maniac", // hyper loose aggressive
			VPIP:         0.55,
			PFR:          0.40,
			Aggression:   1.8,
			BluffFreq:    0.60,
			FoldToBet:    0.25,
			ThreeBetFreq: 0.18,
			FourBetFreq:  0.09,
			FoldTo3Bet:   0.30,
			CBetFreq:     0.90,
			FoldToCBet:   0.25,
		},
	}
}

// ByName looks up a built-in preset by name
func ByName(name string) (Profile, error) {
	return Find(Presets(), name)
}

// Observed summarizes an opponent's tendencies measured over a session
type Observed struct {
	VPIP       float64
	PFR        float64
	Aggression float64
	Hands      int
}

// Adapt derives a new profile from a base, shifted toward observed opponent
// statistics. The weight of the shift grows with sample size, saturating
// around 200 hands. The base is never modified.
func Adapt(base Profile, obs Observed) Profile {
	if obs.Hands <= 0 {
		return base
	}

	weight := float64(obs.Hands) / (float64(obs.Hands) + 50.0)
	if weight > 0.8 {
		weight = 0.8
	}

	adapted := base
	adapted.Name = base.Name + "-adapted"
	adapted.VPIP = blend(base.VPIP, obs.VPIP, weight)
	adapted.PFR = blend(base.PFR, obs.PFR, weight)
	adapted.Aggression = blend(base.Aggression, obs.Aggression, weight)

	// A looser observed opponent widens continue frequencies and trims folds
	looseness := adapted.VPIP / BaselineVPIP
	adapted.FoldToBet = clamp01(base.FoldToBet / looseness)
	adapted.FoldToCBet = clamp01(base.FoldToCBet / looseness)
	adapted.BluffFreq = clamp01(base.BluffFreq * (0.5 + 0.5*looseness))

	return adapted
}

func blend(base, observed, weight float64) float64 {
	return base*(1-weight) + observed*weight
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
