package esgview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustainlab/esgview"
)

func sasbTable() *esgview.WeightTable {
	return &esgview.WeightTable{
		Entries: []esgview.WeightEntry{
			{Aspect: "環境", Topic: "溫室氣體排放", Weights: map[string]int{"半導體業": 2, "水泥工業": 2}},
			{Aspect: "環境", Topic: "水資源管理", Weights: map[string]int{"半導體業": 1}},
			{Aspect: "社會", Topic: "勞工安全", Weights: map[string]int{"水泥工業": 2}},
		},
	}
}

func TestWeightTable_Topics(t *testing.T) {
	t.Parallel()

	got := sasbTable().Topics()

	assert.Equal(t, []string{"溫室氣體排放", "水資源管理", "勞工安全"}, got,
		"topics keep table order")
}

func TestWeightTable_HasIndustry(t *testing.T) {
	t.Parallel()

	table := sasbTable()

	assert.True(t, table.HasIndustry("半導體業"))
	assert.True(t, table.HasIndustry("水泥工業"))
	assert.False(t, table.HasIndustry("金融業"))
	assert.False(t, table.HasIndustry(""))
}

func TestWeightTable_Weight(t *testing.T) {
	t.Parallel()

	table := sasbTable()

	t.Run("defined weight", func(t *testing.T) {
		t.Parallel()
		w, ok := table.Weight("溫室氣體排放", "半導體業")
		assert.True(t, ok)
		assert.Equal(t, 2, w)
	})

	t.Run("industry without weight for the topic", func(t *testing.T) {
		t.Parallel()
		_, ok := table.Weight("勞工安全", "半導體業")
		assert.False(t, ok)
	})

	t.Run("unknown topic", func(t *testing.T) {
		t.Parallel()
		_, ok := table.Weight("不存在", "半導體業")
		assert.False(t, ok)
	})
}
