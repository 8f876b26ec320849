package parser

import (
	"math"

	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
)

// Tuning holds the empirically chosen constants of the engine. They encode
// heuristic calibration, not correctness requirements, so they are
// overridable; DefaultTuning supplies the calibrated values.
type Tuning struct {
	// FuzzyThreshold is the minimum normalized Levenshtein similarity for
	// a fuzzy label match.
	FuzzyThreshold float64
	// FallbackConfidence is the fixed confidence of text-scan extractions.
	FallbackConfidence int
	// BaseConfidence is the additive floor of the overall score.
	BaseConfidence float64
	// AverageWeight scales the mean per-parameter confidence.
	AverageWeight float64
	// ParameterBonus is added per extracted parameter, up to
	// ParameterBonusCap.
	ParameterBonus int
	// ParameterBonusCap bounds the breadth bonus.
	ParameterBonusCap int
	// StructureBonus is added when the mean confidence exceeds
	// StructureBonusMin, rewarding well-structured sheets.
	StructureBonus int
	// StructureBonusMin is the mean-confidence gate for StructureBonus.
	StructureBonusMin float64
	// ConfidenceCap bounds the overall score. Heuristic extraction is
	// never certain, so the cap sits below 100.
	ConfidenceCap int
}

// DefaultTuning returns the calibrated engine constants.
func DefaultTuning() Tuning {
	return Tuning{
		FuzzyThreshold:     0.80,
		FallbackConfidence: 50,
		BaseConfidence:     30,
		AverageWeight:      0.4,
		ParameterBonus:     5,
		ParameterBonusCap:  30,
		StructureBonus:     15,
		StructureBonusMin:  80,
		ConfidenceCap:      95,
	}
}

// Dedupe collapses candidate locations to one winner per parameter, keeping
// the highest-confidence entry. Winners appear in first-seen parameter
// order; on equal confidence the earlier candidate is kept.
func Dedupe(locations []models.ParameterLocation) []models.ParameterLocation {
	index := make(map[string]int)
	var winners []models.ParameterLocation
	for _, loc := range locations {
		i, seen := index[loc.Parameter]
		if !seen {
			index[loc.Parameter] = len(winners)
			winners = append(winners, loc)
			continue
		}
		if loc.Confidence > winners[i].Confidence {
			winners[i] = loc
		}
	}
	return winners
}

// OverallConfidence scores a whole extraction from its deduplicated winners.
// The score rewards both per-match certainty and breadth of coverage while
// staying bounded by the cap; zero winners score zero.
func OverallConfidence(winners []models.ParameterLocation, t Tuning) int {
	if len(winners) == 0 {
		return 0
	}

	sum := 0
	for _, w := range winners {
		sum += w.Confidence
	}
	avg := float64(sum) / float64(len(winners))

	bonus := len(winners) * t.ParameterBonus
	if bonus > t.ParameterBonusCap {
		bonus = t.ParameterBonusCap
	}

	structure := 0
	if avg > t.StructureBonusMin {
		structure = t.StructureBonus
	}

	overall := int(math.Round(t.BaseConfidence + avg*t.AverageWeight + float64(bonus) + float64(structure)))
	if overall > t.ConfidenceCap {
		overall = t.ConfidenceCap
	}
	return overall
}
