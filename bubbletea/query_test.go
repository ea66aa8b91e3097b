package bubbletea_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustainlab/esgview"
	"github.com/sustainlab/esgview/bubbletea"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  esgview.Criteria
	}{
		{
			name:  "empty input",
			input: "",
			want:  esgview.Criteria{},
		},
		{
			name:  "plain search text",
			input: "台積電",
			want:  esgview.Criteria{Search: "台積電"},
		},
		{
			name:  "multiple words join",
			input: "台積 電子",
			want:  esgview.Criteria{Search: "台積 電子"},
		},
		{
			name:  "industry prefix",
			input: "industry:半導體業",
			want:  esgview.Criteria{Industry: "半導體業"},
		},
		{
			name:  "year prefix",
			input: "year:2025",
			want:  esgview.Criteria{Year: "2025"},
		},
		{
			name:  "shorthand prefixes",
			input: "i:水泥工業 y:2024",
			want:  esgview.Criteria{Industry: "水泥工業", Year: "2024"},
		},
		{
			name:  "prefixes compose with search text",
			input: "2330 industry:半導體業 year:2025",
			want:  esgview.Criteria{Search: "2330", Industry: "半導體業", Year: "2025"},
		},
		{
			name:  "prefix matching is case insensitive",
			input: "YEAR:2025",
			want:  esgview.Criteria{Year: "2025"},
		},
		{
			name:  "surrounding whitespace ignored",
			input: "   2330   ",
			want:  esgview.Criteria{Search: "2330"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bubbletea.ParseQuery(tt.input))
		})
	}
}
