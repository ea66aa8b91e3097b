package esgview

import "strings"

// DefaultPreviewLen is how many runes of claim and evidence text the
// comparison tables show before truncating; the full text stays available on
// the expanded row.
const DefaultPreviewLen = 15

// Preview truncates s to n runes, appending an ellipsis when it was cut.
// Empty input becomes the "-" placeholder.
func Preview(s string, n int) string {
	if s == "" {
		return "-"
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Tone qualifies a consistency status for display.
type Tone int

// Status tones.
const (
	ToneNeutral Tone = iota
	TonePositive      // status contains 一致
	ToneNegative      // status contains 不一致
)

// StatusTone derives the tone from the status text. 不一致 is checked first
// since it contains 一致 as a substring.
func StatusTone(status string) Tone {
	switch {
	case strings.Contains(status, "不一致"):
		return ToneNegative
	case strings.Contains(status, "一致"):
		return TonePositive
	default:
		return ToneNeutral
	}
}

// InternalRow is one row of the internal claim-vs-evidence comparison panel.
type InternalRow struct {
	Category string
	Topic    string
	Page     string
	Claim    string // full text, shown when the row is expanded
	Preview  string
	Factor   string
	Risk     Classification // initial risk score, ordinal scale
}

// ExternalRow is one row of the external news cross-check panel.
type ExternalRow struct {
	Category        string
	Claim           string
	ClaimPreview    string
	Evidence        string
	EvidencePreview string
	EvidenceURL     string
	Status          string
	StatusTone      Tone
	Rating          string
	Verified        bool
	Net             Classification // net score after evidence adjustment
}

// TopicWeight marks how a disclosure topic relates to an industry.
type TopicWeight int

// Topic weights.
const (
	WeightNormal    TopicWeight = iota // weight 1
	WeightHeavy                        // weight 2
	WeightUndefined                    // industry absent from the table
)

// TopicCell is one cell of the industry topic-weight grid.
type TopicCell struct {
	Topic  string
	Weight TopicWeight
}

// Detail is everything the detail view needs for one selected company. The
// panels are independent: absence of data in one never blocks the others.
type Detail struct {
	Company  Company
	Internal []InternalRow
	External []ExternalRow
	// Topics is the fixed topic grid for the company's industry. It is
	// empty and TopicsAvailable false when the reference table never
	// loaded.
	Topics          []TopicCell
	TopicsAvailable bool
}

// InternalFor returns the internal rows narrowed to an E/S/G field, or all
// rows when field is empty.
func (d Detail) InternalFor(field string) []InternalRow {
	if field == "" {
		return d.Internal
	}
	var out []InternalRow
	for _, row := range d.Internal {
		if strings.EqualFold(strings.TrimSpace(row.Category), field) {
			out = append(out, row)
		}
	}
	return out
}

// Composer assembles detail-view panel datasets.
type Composer struct {
	Percent    PercentBands
	Ordinal    OrdinalBands
	PreviewLen int
}

// NewComposer returns a Composer with the default classification bands and
// preview length.
func NewComposer() *Composer {
	return &Composer{
		Percent:    DefaultPercentBands(),
		Ordinal:    DefaultOrdinalBands(),
		PreviewLen: DefaultPreviewLen,
	}
}

// ScoreLabel classifies a company-level percentage score.
func (c *Composer) ScoreLabel(score float64) Classification {
	return c.Percent.Classify(score)
}

// Compose builds the panel datasets for company. A nil table marks the
// topic-weight panel unavailable rather than failing the detail view.
func (c *Composer) Compose(company Company, table *WeightTable) Detail {
	d := Detail{Company: company}

	for _, claim := range company.Claims {
		d.Internal = append(d.Internal, InternalRow{
			Category: claim.Category,
			Topic:    claim.Topic,
			Page:     orPlaceholder(claim.Page),
			Claim:    claim.Claim,
			Preview:  Preview(claim.Claim, c.PreviewLen),
			Factor:   orPlaceholder(claim.Factor),
			Risk:     c.Ordinal.ClassifyRaw(claim.RiskScore),
		})

		status := claim.Status
		if status == "" {
			status = "待確認"
		}
		d.External = append(d.External, ExternalRow{
			Category:        claim.Category,
			Claim:           claim.Claim,
			ClaimPreview:    Preview(claim.Claim, c.PreviewLen),
			Evidence:        claim.Evidence,
			EvidencePreview: Preview(claim.Evidence, c.PreviewLen),
			EvidenceURL:     claim.EvidenceURL,
			Status:          status,
			StatusTone:      StatusTone(status),
			Rating:          orPlaceholder(claim.Rating),
			Verified:        claim.Verified,
			Net:             c.Ordinal.Classify(NetScore(claim.RiskScore, claim.Adjustment)),
		})
	}

	if table != nil && len(table.Entries) > 0 {
		d.TopicsAvailable = true
		known := table.HasIndustry(company.Industry)
		for _, topic := range table.Topics() {
			cell := TopicCell{Topic: topic, Weight: WeightUndefined}
			if known {
				cell.Weight = WeightNormal
				if w, ok := table.Weight(topic, company.Industry); ok && w == 2 {
					cell.Weight = WeightHeavy
				}
			}
			d.Topics = append(d.Topics, cell)
		}
	}

	return d
}

func orPlaceholder(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
