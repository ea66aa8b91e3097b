// Package esgview provides domain types for browsing ESG greenwashing-risk
// scores: a searchable company list and per-company claim analysis panels.
package esgview

import "context"

// Company represents one analyzed sustainability report: a company-year pair
// with its aggregated greenwashing scores and the claims extracted from the
// report. The JSON shape matches the payload emitted by the analysis backend.
type Company struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	StockID  string  `json:"stockId,omitempty"` // ticker code; may be absent
	Industry string  `json:"industry"`
	Year     int     `json:"year"`
	URL      string  `json:"url,omitempty"` // source report link
	Total    float64 `json:"greenwashingScore"`
	E        float64 `json:"eScore"`
	S        float64 `json:"sScore"`
	G        float64 `json:"gScore"`

	// Claims is owned exclusively by this record; entries are never shared
	// between companies.
	Claims []ClaimRecord `json:"layer4Data"`
}

// ClaimRecord is a single claim extracted from a sustainability report,
// optionally cross-checked against external evidence. Field tags mirror the
// backend's column names.
type ClaimRecord struct {
	Category string `json:"ESG_category"` // E, S or G
	Topic    string `json:"SASB_topic"`
	Page     string `json:"page_number,omitempty"`
	Claim    string `json:"report_claim"`
	Factor   string `json:"greenwashing_factor,omitempty"`

	// RiskScore is stored as text upstream; it is usually a number on the
	// 0-4 ordinal scale but can be a categorical label. Coercion happens at
	// classification time, never here.
	RiskScore  string  `json:"risk_score"`
	Adjustment float64 `json:"adjustment_score,omitempty"`

	Evidence    string `json:"external_evidence,omitempty"`
	EvidenceURL string `json:"external_evidence_url,omitempty"`
	Status      string `json:"consistency_status,omitempty"`
	Rating      string `json:"MSCI_flag,omitempty"` // external rating flag
	Verified    bool   `json:"is_verified,omitempty"`
}

// Keyword is one entry of a company's keyword-frequency resource, consumed by
// the keyword panel.
type Keyword struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CompanyLoader loads the company dataset supplied by the host at startup.
type CompanyLoader interface {
	Load(path string) ([]Company, error)
}

// WeightSource provides the SASB reference table. The load is best-effort: a
// failure degrades topic-weight panels, it never fails the application.
type WeightSource interface {
	WeightTable(ctx context.Context) (*WeightTable, error)
}

// KeywordSource fetches the keyword-frequency resource for one company
// report, keyed by ticker code and reporting year.
type KeywordSource interface {
	Keywords(ctx context.Context, stockID string, year int) ([]Keyword, error)
}

// Viewer displays the dashboard over a company dataset.
type Viewer interface {
	// View displays the companies and blocks until the user exits.
	View(ctx context.Context, companies []Company) error
}

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format or terminal color names; empty
// strings mean no override.
type ColorPair struct {
	Foreground string
	Background string
}

// Accents contains the display accents for every classified element.
type Accents struct {
	High     ColorPair // high-risk tier
	Medium   ColorPair
	Low      ColorPair
	None     ColorPair // no-risk tier
	Unscored ColorPair // unclassified claim scores

	Consistent   ColorPair // consistency status containing 「一致」
	Inconsistent ColorPair // consistency status containing 「不一致」
	Verified     ColorPair // verified-evidence badge

	UIBackground string
	UIForeground string
	Muted        string
}

// Theme provides accents for rendering classified data.
type Theme interface {
	Accents() Accents
}
