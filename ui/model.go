package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AnTengye/contractdash/form"
	"github.com/AnTengye/contractdash/model"
	"github.com/AnTengye/contractdash/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Notices shown after a successful mutation.
const (
	NoticeUpdated = "Contract updated successfully"
	NoticeCreated = "New contract created successfully"
)

// DefaultNoticeTTL is how long a notice stays on screen.
const DefaultNoticeTTL = 3 * time.Second

// RemoteSearchDebounce is the typing pause after which a remote search is sent.
const RemoteSearchDebounce = 250 * time.Millisecond

const requestTimeout = 10 * time.Second

type (
	contractsMsg struct {
		query     string
		contracts []model.Contract
	}
	savedMsg struct {
		notice    string
		contracts []model.Contract
	}
	errMsg      struct{ err error }
	clearNotice struct{ seq int }
	searchTick  struct{ seq int }
)

// Options configures a dashboard.
type Options struct {
	DarkMode  bool
	NoticeTTL time.Duration
	// SearchDebounce delays the search after each keystroke. Zero searches
	// on every keystroke.
	SearchDebounce time.Duration
}

// Model is the terminal dashboard.
type Model struct {
	backend   Backend
	state     UIState
	styles    Styles
	keys      keyMap
	help      help.Model
	noticeTTL time.Duration
	debounce  time.Duration
	searchSeq int

	width  int
	height int

	contracts []model.Contract // last search result
	shown     []model.Contract // after status filter and sort
	table     table.Model
	search    textinput.Model
	modal     *formModal
}

// New builds a dashboard over backend.
func New(backend Backend, opts Options) Model {
	ttl := opts.NoticeTTL
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}

	si := textinput.New()
	si.Placeholder = "Search by client name or contract ID..."
	si.Prompt = "🔍 "
	si.CharLimit = 64
	si.Width = 48

	m := Model{
		backend:   backend,
		state:     NewUIState(opts.DarkMode),
		styles:    StylesFor(opts.DarkMode),
		keys:      defaultKeyMap(),
		help:      help.New(),
		noticeTTL: ttl,
		debounce:  opts.SearchDebounce,
		search:    si,
	}
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(15),
		table.WithStyles(m.styles.Table),
	)
	return m
}

// Run starts the dashboard on the alternate screen and blocks until it exits.
func Run(backend Backend, opts Options) error {
	_, err := tea.NewProgram(New(backend, opts), tea.WithAltScreen()).Run()
	return err
}

// State returns the current presentation state.
func (m Model) State() UIState { return m.state }

// Shown returns the contracts currently rendered in the table.
func (m Model) Shown() []model.Contract { return m.shown }

func (m Model) Init() tea.Cmd {
	return m.searchCmd(m.state.Query)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-12, 3))
		m.help.Width = msg.Width
		return m, nil

	case contractsMsg:
		// A slower reply for an older query must not overwrite a newer one.
		if msg.query != m.state.Query {
			return m, nil
		}
		m.contracts = msg.contracts
		m.state.Err = ""
		m.refresh()
		return m, nil

	case savedMsg:
		m.closeModal()
		m.contracts = msg.contracts
		m.refresh()
		seq := m.state.SetNotice(msg.notice)
		return m, tea.Tick(m.noticeTTL, func(time.Time) tea.Msg { return clearNotice{seq: seq} })

	case clearNotice:
		m.state.ClearNotice(msg.seq)
		return m, nil

	case searchTick:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		return m, m.searchCmd(m.state.Query)

	case errMsg:
		var verr *form.ValidationError
		if m.modal != nil && errors.As(msg.err, &verr) {
			m.modal.setErrors(verr.Fields)
			return m, nil
		}
		m.state.Err = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.modal != nil:
			return m.updateForm(msg)
		case m.state.SearchFocused:
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.state.SearchFocused = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Sort):
		m.state.CycleSort()
		m.refresh()
	case key.Matches(msg, m.keys.Order):
		m.state.Order = m.state.Order.Toggle()
		m.refresh()
	case key.Matches(msg, m.keys.Status):
		idx := int(msg.Runes[0] - '1')
		m.state.ToggleStatus(model.Statuses[idx])
		m.refresh()
	case key.Matches(msg, m.keys.ClearStatus):
		m.state.ClearStatusFilter()
		m.refresh()
	case key.Matches(msg, m.keys.Theme):
		m.state.DarkMode = !m.state.DarkMode
		m.styles = StylesFor(m.state.DarkMode)
		m.table.SetStyles(m.styles.Table)
	case key.Matches(msg, m.keys.Edit):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.modal = newEditModal(c)
		m.state.EditVisible = true
		m.table.Blur()
	case key.Matches(msg, m.keys.New):
		m.modal = newCreateModal()
		m.state.CreateVisible = true
		m.table.Blur()
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.state.SearchFocused = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	q := m.search.Value()
	if q == m.state.Query {
		return m, cmd
	}
	m.state.Query = q
	if m.debounce <= 0 {
		return m, tea.Batch(cmd, m.searchCmd(q))
	}
	m.searchSeq++
	seq := m.searchSeq
	return m, tea.Batch(cmd, tea.Tick(m.debounce, func(time.Time) tea.Msg { return searchTick{seq: seq} }))
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state.Err = ""
		m.closeModal()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.modal.move(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.modal.move(-1)
		return m, nil
	case key.Matches(msg, m.keys.Cycle) && m.modal.focusedField() == form.FieldStatus:
		delta := 1
		if msg.Type == tea.KeyUp {
			delta = -1
		}
		m.modal.cycleStatus(delta)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.state.Err = ""
		cmd := m.submit()
		return m, cmd
	}
	return m, m.modal.updateInput(msg)
}

// submit validates locally and only calls the backend when the form is valid.
func (m Model) submit() tea.Cmd {
	md := m.modal
	md.sync()
	switch md.kind {
	case editForm:
		patch, res := md.form.Patch()
		md.result = res
		if !res.Valid() {
			return nil
		}
		return m.updateCmd(md.id, patch)
	default:
		in, res := md.form.Contract()
		md.result = res
		if !res.Valid() {
			return nil
		}
		return m.createCmd(in)
	}
}

func (m *Model) closeModal() {
	m.modal = nil
	m.state.EditVisible = false
	m.state.CreateVisible = false
	m.table.Focus()
}

func (m Model) selected() (model.Contract, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.shown) {
		return model.Contract{}, false
	}
	return m.shown[i], true
}

// refresh reapplies the status filter and sort to the last search result.
func (m *Model) refresh() {
	m.shown = m.state.ViewQuery().Apply(m.contracts)
	rows := make([]table.Row, 0, len(m.shown))
	for _, c := range m.shown {
		rows = append(rows, table.Row{
			c.ID,
			c.ClientName,
			string(c.Status),
			view.FormatValue(c.Value),
			c.StartDate.String(),
		})
	}
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m Model) columns() []table.Column {
	cols := []struct {
		title string
		field view.SortField
		width int
	}{
		{"Contract ID", view.SortID, 16},
		{"Client Name", view.SortClientName, 24},
		{"Status", view.SortNone, 12},
		{"Contract Value", view.SortValue, 18},
		{"Start Date", view.SortStartDate, 12},
	}
	out := make([]table.Column, len(cols))
	for i, c := range cols {
		title := c.title
		if c.field != view.SortNone && c.field == m.state.SortBy {
			if m.state.Order == view.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		out[i] = table.Column{Title: title, Width: c.width}
	}
	return out
}

func (m Model) searchCmd(query string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		contracts, err := backend.Search(ctx, query)
		if err != nil {
			return errMsg{fmt.Errorf("search: %w", err)}
		}
		return contractsMsg{query: query, contracts: contracts}
	}
}

func (m Model) updateCmd(id string, patch model.ContractPatch) tea.Cmd {
	backend, query := m.backend, m.state.Query
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := backend.Update(ctx, id, patch); err != nil {
			return errMsg{err}
		}
		return reload(ctx, backend, query, NoticeUpdated)
	}
}

func (m Model) createCmd(in model.NewContract) tea.Cmd {
	backend, query := m.backend, m.state.Query
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := backend.Create(ctx, in); err != nil {
			return errMsg{err}
		}
		return reload(ctx, backend, query, NoticeCreated)
	}
}

func reload(ctx context.Context, backend Backend, query, notice string) tea.Msg {
	contracts, err := backend.Search(ctx, query)
	if err != nil {
		return errMsg{fmt.Errorf("reload: %w", err)}
	}
	return savedMsg{notice: notice, contracts: contracts}
}

func (m Model) View() string {
	s := m.styles
	var sb strings.Builder

	theme := "☀ light"
	if m.state.DarkMode {
		theme = "☾ dark"
	}
	sb.WriteString(s.Title.Render("Contract Management Dashboard") + "  " + s.Muted.Render(theme))
	sb.WriteString("\n\n")

	searchBox := s.Muted.Render(m.search.View())
	if m.state.SearchFocused {
		searchBox = m.search.View()
	}
	sb.WriteString(searchBox + "  " + m.renderStatusChips())
	sb.WriteString("\n\n")

	if m.modal != nil {
		sb.WriteString(m.modal.view(s))
		sb.WriteString("\n")
		if m.state.Err != "" {
			sb.WriteString(s.Error.Render("✗ " + m.state.Err))
		}
		sb.WriteString("\n")
		sb.WriteString(m.help.ShortHelpView(m.keys.formHelp()))
		return s.App.Render(sb.String())
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("Showing %d of %d contracts", len(m.shown), len(m.contracts))))
	sb.WriteString("\n")

	switch {
	case m.state.Err != "":
		sb.WriteString(s.Error.Render("✗ " + m.state.Err))
	case m.state.Notice != "":
		sb.WriteString(s.Success.Render("✓ " + m.state.Notice))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.ShortHelpView(m.keys.browseHelp()))
	return s.App.Render(sb.String())
}

func (m Model) renderStatusChips() string {
	chips := make([]string, 0, len(model.Statuses))
	for i, st := range model.Statuses {
		label := fmt.Sprintf("%d %s", i+1, st)
		if m.state.StatusFilter[st] {
			chips = append(chips, m.styles.ChipOn.Render(label))
			continue
		}
		chips = append(chips, m.styles.Chip.Inherit(m.styles.Statuses[st]).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
