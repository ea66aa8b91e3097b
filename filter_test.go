package esgview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustainlab/esgview"
)

func testCompanies() []esgview.Company {
	return []esgview.Company{
		{Name: "台積電", StockID: "2330", Industry: "半導體業", Year: 2025},
		{Name: "聯電", StockID: "2303", Industry: "半導體業", Year: 2024},
		{Name: "台泥", StockID: "1101", Industry: "水泥工業", Year: 2025},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty criteria returns the full set unfiltered", func(t *testing.T) {
		t.Parallel()

		companies := testCompanies()
		got := esgview.Filter(companies, esgview.Criteria{})

		assert.Equal(t, companies, got)
	})

	t.Run("industry and year compose with AND", func(t *testing.T) {
		t.Parallel()

		got := esgview.Filter(testCompanies(), esgview.Criteria{
			Industry: "半導體業",
			Year:     "2025",
		})

		// Exactly the records matching both predicates, order preserved.
		assert.Len(t, got, 1)
		assert.Equal(t, "台積電", got[0].Name)
	})

	t.Run("search matches ticker substring", func(t *testing.T) {
		t.Parallel()

		got := esgview.Filter(testCompanies(), esgview.Criteria{Search: "23"})

		assert.Len(t, got, 2)
		assert.Equal(t, "2330", got[0].StockID)
		assert.Equal(t, "2303", got[1].StockID)
	})

	t.Run("search matches name only when enabled", func(t *testing.T) {
		t.Parallel()

		companies := testCompanies()

		got := esgview.Filter(companies, esgview.Criteria{Search: "台泥"})
		assert.Empty(t, got)

		got = esgview.Filter(companies, esgview.Criteria{Search: "台泥", MatchName: true})
		assert.Len(t, got, 1)
	})

	t.Run("absent ticker is a non-match, not an error", func(t *testing.T) {
		t.Parallel()

		companies := []esgview.Company{
			{Name: "無代號公司", Industry: "其他", Year: 2024},
		}

		got := esgview.Filter(companies, esgview.Criteria{Search: "2330"})
		assert.Empty(t, got)
	})

	t.Run("year compares as string equality", func(t *testing.T) {
		t.Parallel()

		companies := testCompanies()

		// "2025.0" looks numeric but is not the string "2025".
		got := esgview.Filter(companies, esgview.Criteria{Year: "2025.0"})
		assert.Empty(t, got)

		got = esgview.Filter(companies, esgview.Criteria{Year: "2025"})
		assert.Len(t, got, 2)
	})

	t.Run("blank search passes everything", func(t *testing.T) {
		t.Parallel()

		got := esgview.Filter(testCompanies(), esgview.Criteria{Search: "   "})
		assert.Len(t, got, 3)
	})

	t.Run("empty result is valid", func(t *testing.T) {
		t.Parallel()

		got := esgview.Filter(testCompanies(), esgview.Criteria{Industry: "金融業"})
		assert.Empty(t, got)
	})
}
