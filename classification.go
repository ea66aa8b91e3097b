package esgview

import (
	"strconv"
	"strings"
)

// Tier is a discrete greenwashing-risk bucket. Ordering is by severity:
// TierHigh is the riskiest, TierNone the safest. TierUnscored marks values
// that could not be classified and are rendered as-is.
type Tier int

// Risk tiers.
const (
	TierHigh Tier = iota
	TierMedium
	TierLow
	TierNone
	TierUnscored
)

// String returns the stable identifier for the tier, used in logs and tests.
func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	case TierNone:
		return "none"
	default:
		return "unscored"
	}
}

// Classification is a display-ready risk label: the tier plus the short text
// shown to the user. The display accent is a pure Theme lookup on the tier.
type Classification struct {
	Tier  Tier
	Label string
}

// Accent resolves the display accent for this classification.
func (c Classification) Accent(a Accents) ColorPair {
	switch c.Tier {
	case TierHigh:
		return a.High
	case TierMedium:
		return a.Medium
	case TierLow:
		return a.Low
	case TierNone:
		return a.None
	default:
		return a.Unscored
	}
}

// PercentBands partitions the percentage score domain (roughly [0,100]) into
// four tiers. Classification is inverse to the score: higher score, lower
// risk. A score s maps to high when s <= High, medium when s <= Medium, low
// when s <= Low, and none above that.
type PercentBands struct {
	High   float64
	Medium float64
	Low    float64
}

// DefaultPercentBands returns the current production bands.
func DefaultPercentBands() PercentBands {
	return PercentBands{High: 39, Medium: 59, Low: 84}
}

// LegacyPercentBands returns the superseded bands, kept for datasets scored
// under the earlier scale.
func LegacyPercentBands() PercentBands {
	return PercentBands{High: 25, Medium: 50, Low: 75}
}

// Classify maps a company-level percentage score to a tier. Labels are the
// single-character forms used in the list view.
func (b PercentBands) Classify(score float64) Classification {
	switch {
	case score <= b.High:
		return Classification{Tier: TierHigh, Label: "高"}
	case score <= b.Medium:
		return Classification{Tier: TierMedium, Label: "中"}
	case score <= b.Low:
		return Classification{Tier: TierLow, Label: "低"}
	default:
		return Classification{Tier: TierNone, Label: "無"}
	}
}

// OrdinalBands partitions the small ordinal claim-score domain (0-4) into
// tiers. Higher is safer here as well: a value v maps to none when
// v >= None, low when v >= Low, medium when v >= Medium, and high below.
type OrdinalBands struct {
	None   float64
	Low    float64
	Medium float64
}

// DefaultOrdinalBands returns the claim-score bands.
func DefaultOrdinalBands() OrdinalBands {
	return OrdinalBands{None: 3.5, Low: 2.5, Medium: 1.5}
}

// Classify maps a numeric claim score to a tier. The label carries the value
// so the exact score stays visible next to the tier.
func (b OrdinalBands) Classify(value float64) Classification {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	switch {
	case value >= b.None:
		return Classification{Tier: TierNone, Label: "無風險 (" + text + ")"}
	case value >= b.Low:
		return Classification{Tier: TierLow, Label: "低風險 (" + text + ")"}
	case value >= b.Medium:
		return Classification{Tier: TierMedium, Label: "中風險 (" + text + ")"}
	default:
		return Classification{Tier: TierHigh, Label: "高風險 (" + text + ")"}
	}
}

// ClassifyRaw classifies a claim score as stored, tolerating the categorical
// and malformed variants: non-numeric values pass through unclassified with
// their original text, and an absent value becomes a placeholder.
func (b OrdinalBands) ClassifyRaw(raw string) Classification {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Classification{Tier: TierUnscored, Label: "-"}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Classification{Tier: TierUnscored, Label: trimmed}
	}
	return b.Classify(value)
}

// NetScore returns a claim's risk score after subtracting the corroborating
// evidence adjustment, floored at zero. Non-numeric risk scores count as
// zero.
func NetScore(riskScore string, adjustment float64) float64 {
	risk, err := strconv.ParseFloat(strings.TrimSpace(riskScore), 64)
	if err != nil {
		risk = 0
	}
	net := risk - adjustment
	if net < 0 {
		return 0
	}
	return net
}
