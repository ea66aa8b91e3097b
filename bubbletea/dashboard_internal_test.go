package bubbletea

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainlab/esgview"
	"github.com/sustainlab/esgview/mock"
)

func step(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func keywordModel() tea.Model {
	src := &mock.KeywordSource{
		KeywordsFn: func(context.Context, string, int) ([]esgview.Keyword, error) {
			return nil, nil
		},
	}
	companies := []esgview.Company{
		{Name: "台積電", StockID: "2330", Industry: "半導體業", Year: 2025},
		{Name: "聯電", StockID: "2303", Industry: "半導體業", Year: 2024},
	}

	var m tea.Model = NewModel(companies, WithKeywordSource(src))
	return step(m,
		tea.WindowSizeMsg{Width: 120, Height: 40},
		tea.KeyMsg{Type: tea.KeyEnter}, // search everything
	)
}

func TestHandleKeywords_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	m := step(keywordModel(), tea.KeyMsg{Type: tea.KeyEnter}) // select 台積電
	staleSeq := m.(Model).selection
	require.Equal(t, kwLoading, m.(Model).kwPhase)

	// Back out and pick the second company before the first fetch lands.
	m = step(m,
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	cur := m.(Model)
	require.Equal(t, kwLoading, cur.kwPhase)
	require.NotEqual(t, staleSeq, cur.selection)

	// The late response for 台積電 arrives now.
	m = step(m, keywordsMsg{seq: staleSeq, words: []esgview.Keyword{{Name: "舊資料", Value: 1}}})

	got := m.(Model)
	assert.Equal(t, kwLoading, got.kwPhase, "a late response for a previous selection must be discarded")
	assert.Empty(t, got.kwWords)
	assert.NotContains(t, m.View(), "舊資料")

	// The current selection's own response still lands normally.
	m = step(m, keywordsMsg{seq: cur.selection, words: []esgview.Keyword{{Name: "新資料", Value: 2}}})

	got = m.(Model)
	assert.Equal(t, kwReady, got.kwPhase)
	assert.Contains(t, m.View(), "新資料")
}

func TestHandleKeywords_ResponseAfterCloseDiscarded(t *testing.T) {
	t.Parallel()

	m := step(keywordModel(), tea.KeyMsg{Type: tea.KeyEnter}) // select 台積電
	require.Equal(t, kwLoading, m.(Model).kwPhase)

	m = step(m, tea.KeyMsg{Type: tea.KeyEsc})
	cur := m.(Model)
	require.Equal(t, viewList, cur.activeView)

	// Even a response carrying the current sequence is dropped outside the
	// detail view.
	m = step(m, keywordsMsg{seq: cur.selection, words: []esgview.Keyword{{Name: "舊資料", Value: 1}}})

	got := m.(Model)
	assert.Equal(t, kwIdle, got.kwPhase)
	assert.Empty(t, got.kwWords)
	assert.NotContains(t, m.View(), "舊資料")
}
