// Package bubbletea provides the terminal dashboard for browsing ESG
// greenwashing-risk scores using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sustainlab/esgview"
	"go.uber.org/zap"
)

// view identifies the active top-level view.
type view int

// Top-level views.
const (
	viewList view = iota
	viewDetail
)

// lookupPhase tracks the remote-lookup sub-state layered over the list view.
type lookupPhase int

const (
	lookupIdle    lookupPhase = iota
	lookupPending             // request in flight
	lookupConfirm             // validation_needed: waiting for y/n
	lookupNotice              // terminal outcome message on screen
)

// keywordPhase tracks the keyword panel's degraded states. The three
// terminal states render distinctly: missing identifying fields, failed
// resource load, and data ready.
type keywordPhase int

const (
	kwIdle keywordPhase = iota
	kwLoading
	kwMissing
	kwUnavailable
	kwReady
)

// panel identifies which comparison panel has focus in the detail view.
type panel int

const (
	panelInternal panel = iota
	panelExternal
)

// lookupResultMsg delivers the backend's answer to a pending lookup.
type lookupResultMsg struct {
	resp *esgview.LookupResponse
	err  error
}

// keywordsMsg delivers a keyword resource load. seq ties it to the selection
// that requested it so stale responses never render over a newer selection.
type keywordsMsg struct {
	seq   int
	words []esgview.Keyword
	err   error
}

// Model is the Bubble Tea model for the dashboard. Every user intent is a
// pure (Model, Msg) -> Model step; rendering is a function of the model.
type Model struct {
	// Data
	companies []esgview.Company
	table     *esgview.WeightTable
	composer  *esgview.Composer
	keywords  esgview.KeywordSource
	lookup    esgview.LookupService
	logger    *zap.Logger
	accents   esgview.Accents
	keymap    KeyMap
	pageSize  int
	matchName bool

	// List state
	searchInput textinput.Model
	searching   bool
	searched    bool
	criteria    esgview.Criteria
	filtered    []esgview.Company
	pageNum     int
	page        esgview.Page[esgview.Company]
	cursor      int

	// Lookup state
	lkPhase  lookupPhase
	lkReq    esgview.LookupRequest
	lkResp   *esgview.LookupResponse
	snapshot *listSnapshot

	// Detail state
	activeView       view
	detail           *esgview.Detail
	field            string
	activePanel      panel
	detailCursor     int
	expandedInternal map[int]bool
	expandedExternal map[int]bool
	selection        int // incremented on every selection change; guards keyword fetches
	kwPhase          keywordPhase
	kwWords          []esgview.Keyword

	// UI state
	spinner  spinner.Model
	viewport viewport.Model
	renderer *lipgloss.Renderer
	width    int
	height   int
	ready    bool
}

// listSnapshot preserves the list state across a lookup so canceling returns
// to the pre-search state.
type listSnapshot struct {
	searched bool
	criteria esgview.Criteria
	filtered []esgview.Company
	pageNum  int
	cursor   int
	input    string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer  *lipgloss.Renderer
	table     *esgview.WeightTable
	composer  *esgview.Composer
	keywords  esgview.KeywordSource
	lookup    esgview.LookupService
	logger    *zap.Logger
	theme     esgview.Theme
	keymap    *KeyMap
	pageSize  int
	matchName bool
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithWeightTable sets the SASB reference table. A nil table leaves the
// topic-weight panel in its unavailable state.
func WithWeightTable(t *esgview.WeightTable) ModelOption {
	return func(cfg *modelConfig) {
		cfg.table = t
	}
}

// WithComposer sets a custom detail composer (classification bands, preview
// length).
func WithComposer(c *esgview.Composer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.composer = c
	}
}

// WithKeywordSource sets the source for per-company keyword resources.
func WithKeywordSource(s esgview.KeywordSource) ModelOption {
	return func(cfg *modelConfig) {
		cfg.keywords = s
	}
}

// WithLookupService enables remote company lookup when a local search comes
// up empty.
func WithLookupService(s esgview.LookupService) ModelOption {
	return func(cfg *modelConfig) {
		cfg.lookup = s
	}
}

// WithLogger sets the logger for degradation events.
func WithLogger(l *zap.Logger) ModelOption {
	return func(cfg *modelConfig) {
		cfg.logger = l
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t esgview.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithKeyMap sets custom key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(cfg *modelConfig) {
		cfg.keymap = &k
	}
}

// WithPageSize overrides the list page size.
func WithPageSize(n int) ModelOption {
	return func(cfg *modelConfig) {
		cfg.pageSize = n
	}
}

// WithTickerOnlySearch restricts the search text to ticker codes, excluding
// company names.
func WithTickerOnlySearch() ModelOption {
	return func(cfg *modelConfig) {
		cfg.matchName = false
	}
}

// NewModel creates a dashboard over the given companies.
func NewModel(companies []esgview.Company, opts ...ModelOption) Model {
	cfg := &modelConfig{
		pageSize:  esgview.DefaultPageSize,
		matchName: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.composer == nil {
		cfg.composer = esgview.NewComposer()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	var accents esgview.Accents
	if cfg.theme != nil {
		accents = cfg.theme.Accents()
	} else {
		accents = defaultAccents()
	}

	keymap := DefaultKeyMap()
	if cfg.keymap != nil {
		keymap = *cfg.keymap
	}

	input := textinput.New()
	input.Placeholder = "公司名稱或股票代號 (industry:/year: 篩選)"
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		renderer:         cfg.renderer,
		companies:        companies,
		table:            cfg.table,
		composer:         cfg.composer,
		keywords:         cfg.keywords,
		lookup:           cfg.lookup,
		logger:           cfg.logger,
		accents:          accents,
		keymap:           keymap,
		pageSize:         cfg.pageSize,
		matchName:        cfg.matchName,
		searchInput:      input,
		searching:        true,
		pageNum:          1,
		spinner:          sp,
		expandedInternal: map[int]bool{},
		expandedExternal: map[int]bool{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		if m.lkPhase == lookupPending || m.kwPhase == kwLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.syncViewport()
			return m, cmd
		}
		return m, nil

	case lookupResultMsg:
		return m.handleLookupResult(msg)

	case keywordsMsg:
		return m.handleKeywords(msg)
	}

	if m.activeView == viewDetail && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Lookup sub-states capture input before anything else.
	switch m.lkPhase {
	case lookupPending:
		return m, nil
	case lookupConfirm:
		return m.handleConfirmKeys(msg)
	case lookupNotice:
		return m.handleNoticeKeys(msg)
	}

	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch m.activeView {
	case viewDetail:
		return m.handleDetailKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.performSearch()
	case "esc":
		if m.searched {
			m.searching = false
			m.searchInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.page.Items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keymap.PrevPage):
		m.changePage(-1)
		return m, nil

	case key.Matches(msg, m.keymap.NextPage):
		m.changePage(1)
		return m, nil

	case key.Matches(msg, m.keymap.Select):
		if m.cursor < len(m.page.Items) {
			return m.selectCompany(m.page.Items[m.cursor])
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Back):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keymap.FieldE):
		m.applyFieldFilter("E")
		return m, nil

	case key.Matches(msg, m.keymap.FieldS):
		m.applyFieldFilter("S")
		return m, nil

	case key.Matches(msg, m.keymap.FieldG):
		m.applyFieldFilter("G")
		return m, nil

	case key.Matches(msg, m.keymap.ClearField):
		m.applyFieldFilter("")
		return m, nil

	case key.Matches(msg, m.keymap.SwitchPanel):
		if m.activePanel == panelInternal {
			m.activePanel = panelExternal
		} else {
			m.activePanel = panelInternal
		}
		m.detailCursor = 0
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		if m.detailCursor > 0 {
			m.detailCursor--
			m.syncViewport()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.detailCursor < m.activePanelLen()-1 {
			m.detailCursor++
			m.syncViewport()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Select):
		m.toggleExpanded()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		// Re-issue with explicit consent to the expensive fetch.
		req := m.lkReq
		req.AutoFetch = true
		m.lkReq = req
		m.lkPhase = lookupPending
		m.lkResp = nil
		return m, tea.Batch(m.spinner.Tick, m.lookupCmd(req))

	case key.Matches(msg, m.keymap.Cancel):
		m.restoreSnapshot()
		return m, nil
	}
	return m, nil
}

func (m Model) handleNoticeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Retry):
		if m.lkResp != nil && m.lkResp.Status == esgview.LookupFailed {
			m.lkPhase = lookupPending
			m.lkResp = nil
			return m, tea.Batch(m.spinner.Tick, m.lookupCmd(m.lkReq))
		}
		return m, nil

	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Select):
		m.restoreSnapshot()
		return m, nil

	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	statusBarHeight := 1
	m.width = msg.Width
	m.height = msg.Height

	if !m.ready {
		m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - statusBarHeight
	}
	m.syncViewport()
	return *m, nil
}

func (m Model) handleLookupResult(msg lookupResultMsg) (tea.Model, tea.Cmd) {
	// A result landing after the user left the pending state is stale.
	if m.lkPhase != lookupPending {
		return m, nil
	}

	if msg.err != nil || msg.resp == nil {
		m.logger.Warn("company lookup failed", zap.Error(msg.err))
		m.lkResp = &esgview.LookupResponse{
			Status:  esgview.LookupError,
			Message: "查詢失敗：後端回應無法解析",
		}
		m.lkPhase = lookupNotice
		return m, nil
	}

	m.lkResp = msg.resp
	switch msg.resp.Status {
	case esgview.LookupCompleted:
		if msg.resp.Data == nil {
			m.lkResp = &esgview.LookupResponse{
				Status:  esgview.LookupError,
				Message: "查詢失敗：回應缺少資料",
			}
			m.lkPhase = lookupNotice
			return m, nil
		}
		m.filtered = []esgview.Company{*msg.resp.Data}
		m.searched = true
		m.pageNum = 1
		m.cursor = 0
		m.refreshPage()
		m.lkPhase = lookupIdle
		m.snapshot = nil
		return m, nil

	case esgview.LookupValidationNeeded:
		m.lkPhase = lookupConfirm
		return m, nil

	default:
		// processing, not_found, failed, error: terminal notices. Only
		// failed offers retry.
		m.lkPhase = lookupNotice
		return m, nil
	}
}

func (m Model) handleKeywords(msg keywordsMsg) (tea.Model, tea.Cmd) {
	// Discard anything that does not belong to the current selection.
	if msg.seq != m.selection || m.activeView != viewDetail {
		return m, nil
	}

	if msg.err != nil {
		m.logger.Warn("keyword resource unavailable", zap.Error(msg.err))
		m.kwPhase = kwUnavailable
	} else {
		m.kwPhase = kwReady
		m.kwWords = msg.words
	}
	m.syncViewport()
	return m, nil
}

// performSearch runs the local filter and, when it comes up empty for a
// code+year query, falls through to the remote lookup.
func (m Model) performSearch() (tea.Model, tea.Cmd) {
	if m.activeView == viewDetail {
		m.closeDetail()
	}

	// Captured before the search mutates anything so a canceled lookup
	// restores the pre-search state.
	before := m.takeSnapshot()

	criteria := ParseQuery(m.searchInput.Value())
	criteria.MatchName = m.matchName

	m.criteria = criteria
	m.filtered = esgview.Filter(m.companies, criteria)
	m.searched = true
	m.pageNum = 1
	m.cursor = 0
	m.refreshPage()
	m.searching = false
	m.searchInput.Blur()

	if len(m.filtered) == 0 && m.lookup != nil {
		if req, ok := lookupRequestFrom(criteria); ok {
			m.snapshot = before
			m.lkReq = req
			m.lkResp = nil
			m.lkPhase = lookupPending
			return m, tea.Batch(m.spinner.Tick, m.lookupCmd(req))
		}
	}
	return m, nil
}

// lookupRequestFrom resolves criteria to a single company+year backend
// lookup: an all-digit search term plus a numeric year filter.
func lookupRequestFrom(c esgview.Criteria) (esgview.LookupRequest, bool) {
	code := strings.TrimSpace(c.Search)
	if code == "" || c.Year == "" {
		return esgview.LookupRequest{}, false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return esgview.LookupRequest{}, false
		}
	}
	year, err := strconv.Atoi(c.Year)
	if err != nil {
		return esgview.LookupRequest{}, false
	}
	return esgview.LookupRequest{Year: year, CompanyCode: code}, true
}

func (m Model) lookupCmd(req esgview.LookupRequest) tea.Cmd {
	svc := m.lookup
	return func() tea.Msg {
		resp, err := svc.Lookup(context.Background(), req)
		return lookupResultMsg{resp: resp, err: err}
	}
}

func (m Model) keywordsCmd(seq int, stockID string, year int) tea.Cmd {
	src := m.keywords
	return func() tea.Msg {
		words, err := src.Keywords(context.Background(), stockID, year)
		return keywordsMsg{seq: seq, words: words, err: err}
	}
}

// selectCompany enters the detail view, tearing down any previous detail
// state first.
func (m Model) selectCompany(c esgview.Company) (tea.Model, tea.Cmd) {
	m.teardownDetail()

	d := m.composer.Compose(c, m.table)
	m.detail = &d
	m.activeView = viewDetail

	// New selection: older keyword responses no longer match m.selection
	// and will be discarded on arrival.
	m.selection++

	var cmd tea.Cmd
	switch {
	case c.StockID == "" || c.Year == 0:
		m.kwPhase = kwMissing // no fetch attempted
	case m.keywords == nil:
		m.kwPhase = kwUnavailable
	default:
		m.kwPhase = kwLoading
		cmd = tea.Batch(m.spinner.Tick, m.keywordsCmd(m.selection, c.StockID, c.Year))
	}

	m.syncViewport()
	if m.ready {
		m.viewport.GotoTop()
	}
	return m, cmd
}

func (m *Model) teardownDetail() {
	m.detail = nil
	m.field = ""
	m.activePanel = panelInternal
	m.detailCursor = 0
	m.expandedInternal = map[int]bool{}
	m.expandedExternal = map[int]bool{}
	m.kwPhase = kwIdle
	m.kwWords = nil
}

func (m *Model) closeDetail() {
	m.teardownDetail()
	m.activeView = viewList
	// Invalidate in-flight keyword fetches for the closed selection.
	m.selection++
}

// applyFieldFilter narrows the internal panel to one E/S/G field. Expansion
// state is keyed by row position within the narrowed set, so it resets here.
func (m *Model) applyFieldFilter(field string) {
	m.field = field
	m.detailCursor = 0
	m.expandedInternal = map[int]bool{}
	m.syncViewport()
}

func (m *Model) toggleExpanded() {
	expanded := m.expandedInternal
	if m.activePanel == panelExternal {
		expanded = m.expandedExternal
	}
	if m.detailCursor < m.activePanelLen() {
		expanded[m.detailCursor] = !expanded[m.detailCursor]
		m.syncViewport()
	}
}

func (m Model) activePanelLen() int {
	if m.detail == nil {
		return 0
	}
	if m.activePanel == panelExternal {
		return len(m.detail.External)
	}
	return len(m.detail.InternalFor(m.field))
}

func (m *Model) refreshPage() {
	m.page = esgview.Paginate(m.filtered, m.pageNum, m.pageSize)
	if m.cursor >= len(m.page.Items) {
		m.cursor = 0
	}
}

// changePage moves by delta pages; navigation past either boundary is a
// no-op.
func (m *Model) changePage(delta int) {
	next := m.pageNum + delta
	if next < 1 || next > m.page.TotalPages {
		return
	}
	m.pageNum = next
	m.cursor = 0
	m.refreshPage()
}

func (m Model) takeSnapshot() *listSnapshot {
	return &listSnapshot{
		searched: m.searched,
		criteria: m.criteria,
		filtered: m.filtered,
		pageNum:  m.pageNum,
		cursor:   m.cursor,
		input:    m.searchInput.Value(),
	}
}

// restoreSnapshot returns to the pre-search state after a canceled or
// dismissed lookup.
func (m *Model) restoreSnapshot() {
	m.lkPhase = lookupIdle
	m.lkResp = nil
	if m.snapshot == nil {
		return
	}
	s := m.snapshot
	m.snapshot = nil
	m.searched = s.searched
	m.criteria = s.criteria
	m.filtered = s.filtered
	m.pageNum = s.pageNum
	m.cursor = s.cursor
	m.searchInput.SetValue(s.input)
	m.refreshPage()
	if !m.searched {
		m.searching = true
		m.searchInput.Focus()
	}
}

// syncViewport re-renders the detail content into the viewport.
func (m *Model) syncViewport() {
	if !m.ready || m.activeView != viewDetail || m.detail == nil {
		return
	}
	m.viewport.SetContent(m.renderDetailContent())
}
