package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sustainlab/esgview"
)

// defaultAccents is the fallback palette used when no theme is supplied.
func defaultAccents() esgview.Accents {
	return esgview.Accents{
		High:         esgview.ColorPair{Foreground: "1"},
		Medium:       esgview.ColorPair{Foreground: "3"},
		Low:          esgview.ColorPair{Foreground: "11"},
		None:         esgview.ColorPair{Foreground: "2"},
		Unscored:     esgview.ColorPair{Foreground: "8"},
		Consistent:   esgview.ColorPair{Foreground: "2"},
		Inconsistent: esgview.ColorPair{Foreground: "1"},
		Verified:     esgview.ColorPair{Foreground: "4"},
		UIBackground: "0",
		UIForeground: "7",
		Muted:        "8",
	}
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

func (m Model) pairStyle(p esgview.ColorPair) lipgloss.Style {
	s := m.newStyle()
	if p.Foreground != "" {
		s = s.Foreground(lipgloss.Color(p.Foreground))
	}
	if p.Background != "" {
		s = s.Background(lipgloss.Color(p.Background))
	}
	return s
}

func (m Model) mutedStyle() lipgloss.Style {
	return m.newStyle().Foreground(lipgloss.Color(m.accents.Muted))
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.lkPhase {
	case lookupPending:
		return m.renderLookupPending()
	case lookupConfirm:
		return m.renderLookupConfirm()
	case lookupNotice:
		return m.renderLookupNotice()
	}

	if m.activeView == viewDetail {
		if !m.ready {
			return "載入中..."
		}
		return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
	}
	return m.renderListView()
}

// renderListView renders the search line, result table and pagination footer.
func (m Model) renderListView() string {
	var b strings.Builder

	b.WriteString("搜尋: " + m.searchInput.View() + "\n\n")

	if !m.searched {
		b.WriteString(m.mutedStyle().Render("輸入公司名稱或股票代號後按 Enter 查詢"))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.page.Items) == 0 {
		b.WriteString(m.mutedStyle().Render("查無資料"))
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("  %-12s %-6s %-10s %-6s %-8s %-6s %-6s %-6s",
		"公司", "代號", "產業", "年度", "總分", "E", "S", "G")
	b.WriteString(m.mutedStyle().Render(header))
	b.WriteString("\n")

	for i, c := range m.page.Items {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		row := fmt.Sprintf("%s%-12s %-6s %-10s %-6d %s  %s  %s  %s",
			prefix, c.Name, orDash(c.StockID), c.Industry, c.Year,
			m.scoreCell(c.Total, true), m.scoreCell(c.E, false),
			m.scoreCell(c.S, false), m.scoreCell(c.G, false))
		if i == m.cursor {
			row = m.newStyle().Bold(true).Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	// The footer disappears with the table rather than showing page 0/0.
	if m.page.TotalPages > 0 {
		b.WriteString("\n")
		b.WriteString(m.mutedStyle().Render(fmt.Sprintf(
			"第 %d 頁 / 共 %d 頁 (共 %d 筆)",
			m.page.Number, m.page.TotalPages, m.page.TotalItems)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.mutedStyle().Render("j/k:移動  h/l:換頁  /:搜尋  enter:明細  q:離開"))
	b.WriteString("\n")
	return b.String()
}

// scoreCell formats a percentage score in its tier's accent; withLabel adds
// the tier label shown on the total column.
func (m Model) scoreCell(score float64, withLabel bool) string {
	label := m.composer.ScoreLabel(score)
	text := fmt.Sprintf("%.1f", score)
	if withLabel {
		text += " " + label.Label
	}
	return m.pairStyle(label.Accent(m.accents)).Render(text)
}

func (m Model) renderLookupPending() string {
	return fmt.Sprintf("\n  %s 查詢 %s (%d) 中...\n",
		m.spinner.View(), m.lkReq.CompanyCode, m.lkReq.Year)
}

func (m Model) renderLookupConfirm() string {
	msg := "此公司尚未分析"
	if m.lkResp != nil && m.lkResp.Message != "" {
		msg = m.lkResp.Message
	}
	var b strings.Builder
	b.WriteString("\n  " + msg + "\n\n")
	b.WriteString("  是否擷取並分析該公司報告書？這可能需要數分鐘。\n\n")
	b.WriteString(m.mutedStyle().Render("  y:確認  n:取消"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLookupNotice() string {
	var status esgview.LookupStatus
	msg := ""
	if m.lkResp != nil {
		status = m.lkResp.Status
		msg = m.lkResp.Message
	}

	var b strings.Builder
	b.WriteString("\n")
	switch status {
	case esgview.LookupProcessing:
		b.WriteString("  分析進行中，請稍後再查詢。\n")
	case esgview.LookupNotFound:
		b.WriteString("  查無此公司。\n")
	case esgview.LookupFailed:
		b.WriteString("  查詢失敗。\n")
	default:
		b.WriteString("  查詢發生錯誤。\n")
	}
	if msg != "" {
		b.WriteString("  " + m.mutedStyle().Render(msg) + "\n")
	}
	b.WriteString("\n")
	if status == esgview.LookupFailed {
		b.WriteString(m.mutedStyle().Render("  r:重試  esc:返回"))
	} else {
		b.WriteString(m.mutedStyle().Render("  esc:返回"))
	}
	b.WriteString("\n")
	return b.String()
}

// renderDetailContent renders the four detail panels into one scrollable
// document.
func (m Model) renderDetailContent() string {
	if m.detail == nil {
		return ""
	}
	d := m.detail

	var b strings.Builder
	b.WriteString(m.renderDetailHeader(d.Company))
	b.WriteString("\n")
	b.WriteString(m.renderInternalPanel(d))
	b.WriteString("\n")
	b.WriteString(m.renderExternalPanel(d))
	b.WriteString("\n")
	b.WriteString(m.renderTopicPanel(d))
	b.WriteString("\n")
	b.WriteString(m.renderKeywordPanel())
	return b.String()
}

func (m Model) renderDetailHeader(c esgview.Company) string {
	title := m.newStyle().Bold(true).
		Render(fmt.Sprintf("%s (%s) %s %d 年度", c.Name, orDash(c.StockID), c.Industry, c.Year))

	label := m.composer.ScoreLabel(c.Total)
	total := m.pairStyle(label.Accent(m.accents)).
		Render(fmt.Sprintf("總分 %.1f (%s)", c.Total, label.Label))

	scores := fmt.Sprintf("E %.1f / S %.1f / G %.1f", c.E, c.S, c.G)

	lines := []string{title, total + "  " + m.mutedStyle().Render(scores)}
	if c.URL != "" {
		lines = append(lines, m.mutedStyle().Render("報告書: "+c.URL))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderInternalPanel(d *esgview.Detail) string {
	var b strings.Builder
	b.WriteString(m.panelTitle("報告書聲明", m.activePanel == panelInternal))
	if m.field != "" {
		b.WriteString("  " + m.mutedStyle().Render("篩選: "+m.field+" (c 清除)"))
	}
	b.WriteString("\n")

	rows := d.InternalFor(m.field)
	if len(rows) == 0 {
		b.WriteString(m.mutedStyle().Render("  查無資料"))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range rows {
		cursor := m.activePanel == panelInternal && i == m.detailCursor
		risk := m.pairStyle(row.Risk.Accent(m.accents)).Render(row.Risk.Label)
		expanded := m.expandedInternal[i]

		text := row.Preview
		if expanded {
			text = row.Claim
		}
		line := fmt.Sprintf("%s[%s] %-18s p.%-4s %s  %s",
			cursorPrefix(cursor), row.Category, row.Topic, row.Page, risk, text)
		if cursor {
			line = m.newStyle().Bold(true).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if expanded && row.Factor != "-" {
			b.WriteString(m.mutedStyle().Render("      漂綠因子: " + row.Factor))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderExternalPanel(d *esgview.Detail) string {
	var b strings.Builder
	b.WriteString(m.panelTitle("外部佐證", m.activePanel == panelExternal))
	b.WriteString("\n")

	if len(d.External) == 0 {
		b.WriteString(m.mutedStyle().Render("  查無資料"))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range d.External {
		cursor := m.activePanel == panelExternal && i == m.detailCursor
		expanded := m.expandedExternal[i]

		status := m.statusStyle(row.StatusTone).Render(row.Status)
		net := m.pairStyle(row.Net.Accent(m.accents)).Render(row.Net.Label)
		badge := ""
		if row.Verified {
			badge = " " + m.pairStyle(m.accents.Verified).Render("✓ 已驗證")
		}

		claim := row.ClaimPreview
		evidence := row.EvidencePreview
		if expanded {
			claim = orDash(row.Claim)
			evidence = orDash(row.Evidence)
		}

		line := fmt.Sprintf("%s[%s] %s  %s  %s%s",
			cursorPrefix(cursor), row.Category, claim, status, net, badge)
		if cursor {
			line = m.newStyle().Bold(true).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("      " + m.mutedStyle().Render("佐證: ") + evidence)
		b.WriteString("\n")
		if expanded {
			if row.EvidenceURL != "" {
				b.WriteString(m.mutedStyle().Render("      來源: " + row.EvidenceURL))
				b.WriteString("\n")
			}
			b.WriteString(m.mutedStyle().Render("      外部評級: " + row.Rating))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderTopicPanel(d *esgview.Detail) string {
	var b strings.Builder
	b.WriteString(m.panelTitle("SASB 議題權重", false))
	b.WriteString("\n")

	if !d.TopicsAvailable {
		b.WriteString(m.mutedStyle().Render("  參考資料載入失敗，無法顯示議題權重"))
		b.WriteString("\n")
		return b.String()
	}

	for _, cell := range d.Topics {
		switch cell.Weight {
		case esgview.WeightHeavy:
			b.WriteString("  ● " + cell.Topic)
		case esgview.WeightNormal:
			b.WriteString("  ○ " + cell.Topic)
		default:
			b.WriteString(m.mutedStyle().Render("  - " + cell.Topic + " (未定義)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderKeywordPanel() string {
	var b strings.Builder
	b.WriteString(m.panelTitle("關鍵詞", false))
	b.WriteString("\n")

	switch m.kwPhase {
	case kwLoading:
		b.WriteString("  " + m.spinner.View() + " 載入中...")
	case kwMissing:
		b.WriteString(m.mutedStyle().Render("  資料缺漏：缺少股票代號或年度"))
	case kwUnavailable:
		b.WriteString(m.mutedStyle().Render("  無法載入關鍵詞資料"))
	case kwReady:
		if len(m.kwWords) == 0 {
			b.WriteString(m.mutedStyle().Render("  查無資料"))
		} else {
			for _, w := range m.kwWords {
				b.WriteString(fmt.Sprintf("  %-12s %s\n", w.Name,
					m.mutedStyle().Render(fmt.Sprintf("%.0f", w.Value))))
			}
			return b.String()
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) panelTitle(title string, active bool) string {
	s := m.newStyle().Bold(true)
	if active {
		return s.Render("▸ " + title)
	}
	return s.Render("  " + title)
}

func (m Model) statusStyle(tone esgview.Tone) lipgloss.Style {
	switch tone {
	case esgview.TonePositive:
		return m.pairStyle(m.accents.Consistent)
	case esgview.ToneNegative:
		return m.pairStyle(m.accents.Inconsistent)
	default:
		return m.pairStyle(esgview.ColorPair{Foreground: m.accents.Muted})
	}
}

// statusBarView renders the detail view's status bar with position info.
func (m Model) statusBarView() string {
	barStyle := m.newStyle().
		Background(lipgloss.Color(m.accents.UIBackground)).
		Foreground(lipgloss.Color(m.accents.UIForeground))

	dimStyle := m.newStyle().
		Background(lipgloss.Color(m.accents.UIBackground)).
		Foreground(lipgloss.Color(m.accents.Muted))

	panel := "報告書聲明"
	if m.activePanel == panelExternal {
		panel = "外部佐證"
	}
	pos := fmt.Sprintf("%s %d/%d", panel, m.detailCursor+1, m.activePanelLen())

	sep := barStyle.Render(" │ ")
	content := barStyle.Render(pos) + sep +
		barStyle.Render(m.scrollPosition()) + sep +
		dimStyle.Render("j/k:移動  tab:切換  e/s/g:篩選  c:清除  enter:展開  esc:返回") +
		barStyle.Render("  ")

	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		padding := barStyle.Render(strings.Repeat(" ", m.width-contentWidth))
		content = padding + content
	}
	return content
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	return fmt.Sprintf("%2d%%", int(m.viewport.ScrollPercent()*100))
}

func cursorPrefix(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
