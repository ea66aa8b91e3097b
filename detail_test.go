package esgview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustainlab/esgview"
)

func TestComposer_Compose(t *testing.T) {
	t.Parallel()

	company := esgview.Company{
		Name:     "台積電",
		StockID:  "2330",
		Industry: "半導體業",
		Year:     2025,
		Claims: []esgview.ClaimRecord{
			{
				Category:    "E",
				Topic:       "溫室氣體排放",
				Page:        "12",
				Claim:       "本公司承諾於二零五零年前達成全面淨零碳排放目標",
				Factor:      "目標缺乏中期查核點",
				RiskScore:   "2",
				Adjustment:  0.5,
				Evidence:    "外部新聞指出實際排放量連續兩年上升",
				EvidenceURL: "https://news.example.com/2330",
				Status:      "與報告不一致",
				Rating:      "BBB",
				Verified:    true,
			},
			{
				Category:  "S",
				Topic:     "勞工安全",
				Claim:     "工安事故率較去年下降",
				RiskScore: "4",
			},
		},
	}

	composer := esgview.NewComposer()
	detail := composer.Compose(company, weightTable())

	t.Run("internal rows", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, detail.Internal, 2)

		row := detail.Internal[0]
		assert.Equal(t, "E", row.Category)
		assert.Equal(t, "12", row.Page)
		assert.Equal(t, "本公司承諾於二零五零年前達成全...", row.Preview)
		assert.Equal(t, company.Claims[0].Claim, row.Claim)
		assert.Equal(t, esgview.TierMedium, row.Risk.Tier)

		// Missing optional fields render as placeholders.
		assert.Equal(t, "-", detail.Internal[1].Page)
		assert.Equal(t, "-", detail.Internal[1].Factor)
	})

	t.Run("external rows classify the net score", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, detail.External, 2)

		row := detail.External[0]
		assert.Equal(t, esgview.TierMedium, row.Net.Tier) // 2 - 0.5 = 1.5
		assert.Equal(t, esgview.ToneNegative, row.StatusTone)
		assert.True(t, row.Verified)
		assert.Equal(t, "BBB", row.Rating)
		assert.Equal(t, "https://news.example.com/2330", row.EvidenceURL)

		// Absent evidence fields degrade to placeholders, never errors.
		second := detail.External[1]
		assert.Equal(t, "-", second.EvidencePreview)
		assert.Equal(t, "待確認", second.Status)
		assert.Equal(t, esgview.ToneNeutral, second.StatusTone)
		assert.Equal(t, esgview.TierNone, second.Net.Tier)
	})

	t.Run("topic grid marks heavy and normal", func(t *testing.T) {
		t.Parallel()

		assert.True(t, detail.TopicsAvailable)
		assert.Len(t, detail.Topics, 4)
		assert.Equal(t, esgview.WeightHeavy, detail.Topics[0].Weight)  // 溫室氣體排放
		assert.Equal(t, esgview.WeightNormal, detail.Topics[2].Weight) // 勞工安全
	})
}

func TestComposer_Compose_EmptyClaims(t *testing.T) {
	t.Parallel()

	detail := esgview.NewComposer().Compose(esgview.Company{Name: "空殼"}, nil)

	assert.Empty(t, detail.Internal)
	assert.Empty(t, detail.External)
}

func TestComposer_Compose_UnknownIndustry(t *testing.T) {
	t.Parallel()

	company := esgview.Company{Name: "新光金", Industry: "金融業"}
	detail := esgview.NewComposer().Compose(company, weightTable())

	assert.True(t, detail.TopicsAvailable)
	for _, cell := range detail.Topics {
		assert.Equal(t, esgview.WeightUndefined, cell.Weight, "topic %s", cell.Topic)
	}
}

func TestComposer_Compose_NoTable(t *testing.T) {
	t.Parallel()

	detail := esgview.NewComposer().Compose(esgview.Company{Industry: "半導體業"}, nil)

	assert.False(t, detail.TopicsAvailable)
	assert.Empty(t, detail.Topics)
}

func TestDetail_InternalFor(t *testing.T) {
	t.Parallel()

	detail := esgview.Detail{
		Internal: []esgview.InternalRow{
			{Category: "E", Topic: "a"},
			{Category: "S", Topic: "b"},
			{Category: "e ", Topic: "c"},
		},
	}

	assert.Len(t, detail.InternalFor(""), 3)

	narrowed := detail.InternalFor("E")
	assert.Len(t, narrowed, 2)
	assert.Equal(t, "a", narrowed[0].Topic)
	assert.Equal(t, "c", narrowed[1].Topic)

	assert.Empty(t, detail.InternalFor("G"))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", esgview.Preview("", 15))
	assert.Equal(t, "short", esgview.Preview("short", 15))
	// Truncation counts runes, not bytes.
	assert.Equal(t, "一二三...", esgview.Preview("一二三四五", 3))
}

func TestStatusTone(t *testing.T) {
	t.Parallel()

	// 不一致 contains 一致; the negative marker must win.
	assert.Equal(t, esgview.ToneNegative, esgview.StatusTone("與外部報導不一致"))
	assert.Equal(t, esgview.TonePositive, esgview.StatusTone("與外部報導一致"))
	assert.Equal(t, esgview.ToneNeutral, esgview.StatusTone("待確認"))
}
