package esgview

import (
	"math"
	"strings"
)

// maxClaimScore is the top of the ordinal claim-score scale; it sets the
// per-claim denominator during aggregation.
const maxClaimScore = 4

// Scores holds the aggregated greenwashing scores for one company, each a
// percentage in [0,100] where higher means less greenwashing risk.
type Scores struct {
	E     float64
	S     float64
	G     float64
	Total float64
}

// CalculateScores aggregates a company's claims into E/S/G/Total percentage
// scores: sum(netScore*weight) / sum(maxClaimScore*weight) * 100, where
// weight is the SASB weight of the claim's topic for the company's industry
// (1 when the table is absent or silent). Categories other than E, S and G
// count as E. A category with no claims scores 0.
func CalculateScores(industry string, claims []ClaimRecord, table *WeightTable) Scores {
	type tally struct{ num, den float64 }
	byCategory := map[string]*tally{"E": {}, "S": {}, "G": {}}
	var total tally

	for _, claim := range claims {
		weight := 1
		if table != nil {
			if w, ok := table.Weight(claim.Topic, industry); ok {
				weight = w
			}
		}

		net := NetScore(claim.RiskScore, claim.Adjustment)
		weighted := net * float64(weight)
		max := maxClaimScore * float64(weight)

		category := strings.ToUpper(strings.TrimSpace(claim.Category))
		t, ok := byCategory[category]
		if !ok {
			t = byCategory["E"]
		}
		t.num += weighted
		t.den += max
		total.num += weighted
		total.den += max
	}

	percent := func(t tally) float64 {
		if t.den == 0 {
			return 0
		}
		return math.Round(t.num/t.den*1000) / 10
	}

	return Scores{
		E:     percent(*byCategory["E"]),
		S:     percent(*byCategory["S"]),
		G:     percent(*byCategory["G"]),
		Total: percent(total),
	}
}
