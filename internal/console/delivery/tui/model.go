package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"admin-console/internal/console"
	"admin-console/pkg/notice"
)

const (
	noticeRefresh = 500 * time.Millisecond
	chromeHeight  = 8
)

type (
	// loadedMsg reports a finished load. seq orders loads issued by the view.
	loadedMsg struct {
		seq uint64
		err error
	}
	// mutatedMsg reports a finished create or update submit.
	mutatedMsg struct {
		kind console.ModalKind
		ok   bool
		err  error
	}
	// confirmedMsg reports a finished delete.
	confirmedMsg struct {
		token string
		ok    bool
		err   error
	}
	tickMsg time.Time
)

// Model is the bubbletea view of one console page. The page owns all
// state; the model keeps only what it renders and the open form.
type Model struct {
	ctx   context.Context
	page  console.PageHandle
	info  console.EntityInfo
	feed  *notice.Feed
	keys  KeyMap
	table table.Model
	help  help.Model

	snap    console.Snapshot
	ids     []int64
	form    *form
	confirm *console.Confirmation
	status  string
	loadSeq uint64
	width   int
}

// New creates the view of page. feed must be the notifier the page was
// built with so its notices show up in the status line.
func New(ctx context.Context, page console.PageHandle, feed *notice.Feed) Model {
	t := table.New(table.WithFocused(true), table.WithHeight(15))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)

	m := Model{
		ctx:   ctx,
		page:  page,
		info:  page.Info(),
		feed:  feed,
		keys:  DefaultKeyMap,
		table: t,
		help:  help.New(),
		// Init issues load 1.
		loadSeq: 1,
	}
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	initial := m.info.InitialParams()
	return tea.Batch(m.loadCmd(m.loadSeq, func(ctx context.Context) error {
		return m.page.Load(ctx, initial)
	}), tick())
}

func tick() tea.Cmd {
	return tea.Tick(noticeRefresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) load(run func(ctx context.Context) error) tea.Cmd {
	m.loadSeq++
	return m.loadCmd(m.loadSeq, run)
}

func (m Model) loadCmd(seq uint64, run func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return loadedMsg{seq: seq, err: run(ctx)}
	}
}

func (m Model) submitCmd(kind console.ModalKind, raw []byte) tea.Cmd {
	ctx, page := m.ctx, m.page
	return func() tea.Msg {
		var ok bool
		var err error
		if kind == console.ModalCreate {
			ok, err = page.SubmitCreateJSON(ctx, raw)
		} else {
			ok, err = page.SubmitUpdateJSON(ctx, raw)
		}
		return mutatedMsg{kind: kind, ok: ok, err: err}
	}
}

func (m Model) confirmCmd(token string) tea.Cmd {
	ctx, page := m.ctx, m.page
	return func() tea.Msg {
		ok, err := page.Confirm(ctx, token)
		return confirmedMsg{token: token, ok: ok, err: err}
	}
}

// sync re-reads the page snapshot into the table.
func (m *Model) sync() {
	m.snap = m.page.Snapshot()
	cols, rows, ids := tableContent(m.snap)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.ids = ids
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m Model) cursorID() (int64, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.ids) {
		return 0, false
	}
	return m.ids[c], true
}

func (m *Model) fail(err error) {
	if err != nil {
		m.status = err.Error()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-chromeHeight))
		return m, nil

	case tickMsg:
		return m, tick()

	case loadedMsg:
		m.sync()
		if msg.seq == m.loadSeq {
			m.status = ""
			m.fail(msg.err)
		}
		return m, nil

	case mutatedMsg:
		m.sync()
		if m.form != nil && m.form.kind == msg.kind && !m.snap.UI.Visible(msg.kind) {
			m.form = nil
		}
		m.fail(msg.err)
		return m, nil

	case confirmedMsg:
		m.sync()
		if msg.ok && m.confirm != nil && m.confirm.Token == msg.token {
			m.confirm = nil
		}
		m.fail(msg.err)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case m.confirm != nil:
			return m.updateConfirm(msg)
		case m.form != nil:
			return m.updateForm(msg)
		case m.snap.UI.DetailVisible:
			return m.updateDetail(msg)
		default:
			return m.updateTable(msg)
		}
	}
	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		if err := m.page.OpenCreate(); err != nil {
			m.fail(err)
			return m, nil
		}
		return m.openForm(console.ModalCreate)

	case key.Matches(msg, m.keys.Edit):
		id, ok := m.cursorID()
		if !ok {
			return m, nil
		}
		if err := m.page.OpenUpdate(id); err != nil {
			m.fail(err)
			return m, nil
		}
		return m.openForm(console.ModalUpdate)

	case key.Matches(msg, m.keys.Detail):
		if id, ok := m.cursorID(); ok {
			m.fail(m.page.OpenDetail(id))
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if id, ok := m.cursorID(); ok {
			m.fail(m.toggle(id))
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.cursorID(); ok {
			m.askConfirm(m.page.RequestRemove([]int64{id}))
		}
		return m, nil

	case key.Matches(msg, m.keys.BatchDelete):
		m.askConfirm(m.page.RequestBatchRemove())
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.load(m.page.Refresh)
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		if cur := m.currentPage(); cur > 1 {
			return m.goToPage(cur - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.hasNextPage() {
			return m.goToPage(m.currentPage() + 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) goToPage(current int) (tea.Model, tea.Cmd) {
	params := m.snap.Params.WithPage(current)
	page := m.page
	cmd := m.load(func(ctx context.Context) error { return page.Load(ctx, params) })
	return m, cmd
}

func (m *Model) toggle(id int64) error {
	var ids []int64
	found := false
	for _, s := range m.snap.Selected {
		if s == id {
			found = true
			continue
		}
		ids = append(ids, s)
	}
	if !found {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		m.page.ClearSelection()
		return nil
	}
	return m.page.Select(ids)
}

func (m *Model) askConfirm(c console.Confirmation, err error) {
	if err != nil {
		m.fail(err)
		return
	}
	m.confirm = &c
	m.sync()
}

func (m Model) openForm(kind console.ModalKind) (tea.Model, tea.Cmd) {
	m.sync()
	title := m.info.Title + " · 新建"
	if kind == console.ModalUpdate {
		title = m.info.Title + " · 编辑"
	}
	f, err := newForm(kind, title, m.info.Form, m.snap.Current)
	if err != nil {
		m.closeModal(kind)
		m.fail(err)
		return m, nil
	}
	m.form = f
	return m, f.setFocus(0)
}

func (m *Model) closeModal(kind console.ModalKind) {
	switch kind {
	case console.ModalCreate:
		m.page.CloseCreate()
	case console.ModalUpdate:
		m.page.CloseUpdate()
	case console.ModalDetail:
		m.page.CloseDetail()
	}
	m.sync()
}

func (m Model) currentPage() int {
	if m.snap.Params.Current != nil {
		return *m.snap.Params.Current
	}
	if m.snap.Pagination.Current != nil {
		return *m.snap.Pagination.Current
	}
	return 1
}

func (m Model) hasNextPage() bool {
	if !m.info.Paginate {
		return false
	}
	size := m.snap.Params.PageSize
	if size == nil {
		size = m.snap.Pagination.PageSize
	}
	if m.snap.Pagination.Total == nil || size == nil {
		return len(m.snap.Rows) > 0
	}
	return m.currentPage()*(*size) < *m.snap.Pagination.Total
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Detail):
		m.closeModal(console.ModalDetail)
	case key.Matches(msg, m.keys.Edit):
		if m.snap.UI.CurrentID == nil {
			return m, nil
		}
		if err := m.page.OpenUpdate(*m.snap.UI.CurrentID); err != nil {
			m.fail(err)
			return m, nil
		}
		return m.openForm(console.ModalUpdate)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		kind := m.form.kind
		m.form = nil
		m.closeModal(kind)
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		return m, m.form.setFocus(m.form.focus + 1)
	case "shift+tab", "up":
		return m, m.form.setFocus(m.form.focus - 1)
	case "enter":
		if !m.form.last() {
			return m, m.form.setFocus(m.form.focus + 1)
		}
		raw, err := m.form.payload()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		return m, m.submitCmd(m.form.kind, raw)
	}
	return m, m.form.update(msg)
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.confirmCmd(m.confirm.Token)
	case "n", "N", "esc":
		m.fail(m.page.Cancel(m.confirm.Token))
		m.confirm = nil
		m.sync()
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.info.Title) + "  " + labelStyle.Render(m.pageInfo()) + "\n")

	switch {
	case m.confirm != nil:
		b.WriteString(m.confirmView())
	case m.form != nil:
		b.WriteString(m.form.view())
	case m.snap.UI.DetailVisible:
		b.WriteString(panelStyle.Render(titleStyle.Render("详情") + "\n\n" + describe(m.snap.Detail)))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n" + m.statusLine() + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) pageInfo() string {
	parts := []string{}
	if n := len(m.snap.Selected); n > 0 {
		parts = append(parts, fmt.Sprintf("已选择 %d 项", n))
	}
	if m.info.Paginate {
		parts = append(parts, fmt.Sprintf("第 %d 页", m.currentPage()))
	}
	if t := m.snap.Pagination.Total; t != nil {
		parts = append(parts, fmt.Sprintf("共 %d 条", *t))
	}
	if m.snap.Busy {
		parts = append(parts, "处理中…")
	}
	return strings.Join(parts, " · ")
}

func (m Model) statusLine() string {
	if m.status != "" {
		return errorStyle.Render(m.status)
	}
	if m.snap.Error != "" {
		return errorStyle.Render(m.snap.Error)
	}
	if m.feed == nil {
		return ""
	}
	n, ok := m.feed.Latest()
	if !ok {
		return ""
	}
	switch n.Level {
	case notice.LevelError:
		return errorStyle.Render(n.Message)
	case notice.LevelSuccess:
		return successStyle.Render(n.Message)
	default:
		return loadingStyle.Render(n.Message)
	}
}

func (m Model) confirmView() string {
	c := m.confirm
	body := dangerStyle.Render(c.Title) + "\n\n" + c.Content + "\n" +
		labelStyle.Render(fmt.Sprintf("ids: %v", c.IDs)) + "\n\n" +
		"[y] 确认   [n] 取消"
	return panelStyle.Render(body)
}
