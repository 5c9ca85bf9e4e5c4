package matcher

import (
	"math"

	"minerprofit-backend/lib/hashrate"
	"minerprofit-backend/lib/minername"
)

// Scorer computes a compatibility score between a catalog product name
// and a source miner name. Scores at or below zero never match.
type Scorer interface {
	Score(product, miner minername.ParsedName) float64
}

// Weights are the point values used by WeightedScorer. They are a
// heuristic starting point, not derived from labeled data.
type Weights struct {
	ExactModel   float64 `json:"exact_model"`
	PartialModel float64 `json:"partial_model"`

	ExactHashrate float64 `json:"exact_hashrate"`
	// NearHashrate applies within NearTolerance relative difference,
	// FarHashrate within FarTolerance.
	NearHashrate  float64 `json:"near_hashrate"`
	NearTolerance float64 `json:"near_tolerance"`
	FarHashrate   float64 `json:"far_hashrate"`
	FarTolerance  float64 `json:"far_tolerance"`

	Hydro        float64 `json:"hydro"`
	Pro          float64 `json:"pro"`
	Xp           float64 `json:"xp"`
	Plus         float64 `json:"plus"`
	Immersion    float64 `json:"immersion"`
	Manufacturer float64 `json:"manufacturer"`

	HydroMismatch float64 `json:"hydro_mismatch"`
	ProMismatch   float64 `json:"pro_mismatch"`
	XpMismatch    float64 `json:"xp_mismatch"`

	// CoolingGate disqualifies pairs that disagree on hydro or immersion
	// cooling, the same way a model mismatch does.
	CoolingGate bool `json:"cooling_gate"`
}

// DefaultWeights is the 5/4/3/2/1 scale with -3/-2/-2 variant penalties.
var DefaultWeights = Weights{
	ExactModel:   5,
	PartialModel: 3,

	ExactHashrate: 4,
	NearHashrate:  2,
	NearTolerance: 0.10,
	FarHashrate:   1,
	FarTolerance:  0.20,

	Hydro:        2,
	Pro:          2,
	Xp:           2,
	Plus:         1,
	Immersion:    1,
	Manufacturer: 1,

	HydroMismatch: -3,
	ProMismatch:   -2,
	XpMismatch:    -2,

	CoolingGate: true,
}

// DefaultThreshold is the minimum score a best candidate must reach on
// the DefaultWeights scale.
const DefaultThreshold = 3

// Disqualified is returned when the model families differ.
const Disqualified = 0

type WeightedScorer struct {
	Weights Weights
}

func NewWeightedScorer(weights Weights) WeightedScorer {
	return WeightedScorer{Weights: weights}
}

func (s WeightedScorer) Score(product, miner minername.ParsedName) float64 {
	w := s.Weights

	if product.Model == "" || miner.Model == "" {
		return Disqualified
	}

	var score float64
	switch {
	case product.Model == miner.Model:
		score += w.ExactModel
	case minername.BaseModel(product.Model) == minername.BaseModel(miner.Model):
		score += w.PartialModel
	default:
		return Disqualified
	}

	if w.CoolingGate && (product.IsHydro != miner.IsHydro || product.IsImmersion != miner.IsImmersion) {
		return Disqualified
	}

	score += s.hashrateScore(product, miner)

	score += flagScore(product.IsHydro, miner.IsHydro, w.Hydro, w.HydroMismatch)
	score += flagScore(product.IsPro, miner.IsPro, w.Pro, w.ProMismatch)
	score += flagScore(product.IsXp, miner.IsXp, w.Xp, w.XpMismatch)
	score += flagScore(product.IsPlus, miner.IsPlus, w.Plus, 0)
	score += flagScore(product.IsImmersion, miner.IsImmersion, w.Immersion, 0)

	if product.Manufacturer != "" && product.Manufacturer == miner.Manufacturer {
		score += w.Manufacturer
	}

	return score
}

func (s WeightedScorer) hashrateScore(product, miner minername.ParsedName) float64 {
	w := s.Weights
	if !product.HasHashrate || !miner.HasHashrate {
		return 0
	}

	a := product.HashrateValue
	b := miner.HashrateValue
	if !hashrate.SameUnit(product.HashrateUnit, miner.HashrateUnit) {
		if !hashrate.Known(product.HashrateUnit) || !hashrate.Known(miner.HashrateUnit) {
			return 0
		}
		a = hashrate.Normalize(a, product.HashrateUnit)
		b = hashrate.Normalize(b, miner.HashrateUnit)
	}

	if a == b {
		return w.ExactHashrate
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return 0
	}
	diff := math.Abs(a-b) / largest
	switch {
	case diff <= w.NearTolerance:
		return w.NearHashrate
	case diff <= w.FarTolerance:
		return w.FarHashrate
	}
	return 0
}

// flagScore awards bonus when both sides agree that a variant is present,
// and penalty when they disagree. Two absent flags are neutral.
func flagScore(a, b bool, bonus, penalty float64) float64 {
	if a != b {
		return penalty
	}
	if a {
		return bonus
	}
	return 0
}
