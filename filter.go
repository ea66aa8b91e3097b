package esgview

import (
	"strconv"
	"strings"
)

// Criteria describes the list-view filter inputs. Zero values mean no
// constraint for their predicate.
type Criteria struct {
	// Search is matched as a case-insensitive substring against the ticker
	// code, and against the company name when MatchName is set.
	Search string
	// Industry must equal the company's industry category exactly.
	Industry string
	// Year is compared as a string against the company's reporting year.
	// Numeric-looking but non-numeric values therefore never match; this is
	// deliberate, not a missing conversion.
	Year string
	// MatchName extends Search to company names.
	MatchName bool
}

// Filter returns the companies matching all three predicates, preserving the
// input order. An empty result is valid.
func Filter(companies []Company, c Criteria) []Company {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	var out []Company
	for _, company := range companies {
		if !matchSearch(company, search, c.MatchName) {
			continue
		}
		if c.Industry != "" && company.Industry != c.Industry {
			continue
		}
		if c.Year != "" && strconv.Itoa(company.Year) != c.Year {
			continue
		}
		out = append(out, company)
	}
	return out
}

func matchSearch(company Company, search string, matchName bool) bool {
	if search == "" {
		return true
	}
	// An absent ticker is a non-match, not an error.
	if company.StockID != "" && strings.Contains(strings.ToLower(company.StockID), search) {
		return true
	}
	if matchName && strings.Contains(strings.ToLower(company.Name), search) {
		return true
	}
	return false
}
