package bubbletea

import (
	"strings"

	"github.com/sustainlab/esgview"
)

// ParseQuery turns the search line into filter criteria. Plain words become
// the search text; "industry:" and "year:" prefixes (or their "i:"/"y:"
// shorthands) set the exact-match filters, so one input line covers all
// three predicates.
func ParseQuery(input string) esgview.Criteria {
	var c esgview.Criteria
	var terms []string

	for _, token := range strings.Fields(input) {
		switch {
		case hasPrefixFold(token, "industry:"):
			c.Industry = token[len("industry:"):]
		case hasPrefixFold(token, "i:"):
			c.Industry = token[len("i:"):]
		case hasPrefixFold(token, "year:"):
			c.Year = token[len("year:"):]
		case hasPrefixFold(token, "y:"):
			c.Year = token[len("y:"):]
		default:
			terms = append(terms, token)
		}
	}

	c.Search = strings.Join(terms, " ")
	return c
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
