package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediashelf/mediashelf/internal/client"
	"github.com/mediashelf/mediashelf/internal/domain"
)

const (
	pageSize       = 10
	requestTimeout = 10 * time.Second
)

// Messages
type pageLoadedMsg struct {
	result     client.ListResult
	appendPage bool
}

type loadFailedMsg struct {
	err     error
	initial bool
}

type mutationDoneMsg struct{ created bool }

type mutationFailedMsg struct{ err error }

type deleteDoneMsg struct{ id int64 }

type deleteFailedMsg struct{ err error }

// Model is the Bubble Tea model for the media browser: a scrollable record
// table, a filter bar, and a modal create/edit form.
type Model struct {
	api *client.Client

	records    []domain.MediaRecord
	page       int
	hasMore    bool
	totalCount int64
	selected   int

	loading    bool
	loadedOnce bool
	fallback   bool

	filters        filterBar
	filtersFocused bool

	form    *formModel
	confirm *domain.MediaRecord

	status string
	errMsg string

	width  int
	height int
}

// NewModel builds the browser model around an API client.
func NewModel(api *client.Client) Model {
	return Model{
		api:     api,
		filters: newFilterBar(),
		page:    1,
		loading: true,
	}
}

// Init requests the first page.
func (m Model) Init() tea.Cmd {
	return m.fetchPage(1, false)
}

// fetchPage builds the command loading one page with the current filters.
// Callers flip m.loading before dispatching it.
func (m Model) fetchPage(page int, appendPage bool) tea.Cmd {
	api := m.api
	filters := m.filters.Filters()
	initial := !m.loadedOnce
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := api.ListMedia(ctx, page, pageSize, filters)
		if err != nil {
			return loadFailedMsg{err: err, initial: initial}
		}
		return pageLoadedMsg{result: result, appendPage: appendPage}
	}
}

func (m Model) submitForm() tea.Cmd {
	api := m.api
	input := m.form.Input()
	editing := m.form.editing
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if editing != nil {
			_, err = api.UpdateMedia(ctx, editing.ID, input)
		} else {
			_, err = api.CreateMedia(ctx, input)
		}
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{created: editing == nil}
	}
}

func (m Model) deleteRecord(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := api.DeleteMedia(ctx, id); err != nil {
			return deleteFailedMsg{err: err}
		}
		return deleteDoneMsg{id: id}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case formSubmitMsg:
		if m.form == nil || m.form.submitting {
			return m, nil
		}
		m.form.submitting = true
		m.form.errMsg = ""
		return m, m.submitForm()

	case pageLoadedMsg:
		m.loading = false
		m.loadedOnce = true
		m.fallback = false
		if msg.appendPage {
			m.records = mergeByID(m.records, msg.result.Media)
		} else {
			m.records = msg.result.Media
			if m.selected >= len(m.records) {
				m.selected = 0
			}
		}
		m.page = msg.result.Pagination.CurrentPage
		m.hasMore = msg.result.Pagination.HasNextPage
		m.totalCount = msg.result.Pagination.TotalCount
		if m.selected >= len(m.records) && len(m.records) > 0 {
			m.selected = len(m.records) - 1
		}
		m.errMsg = ""
		return m, nil

	case loadFailedMsg:
		m.loading = false
		// Demonstration fallback, only for the very first load with an
		// empty table. Later failures just surface a message.
		if msg.initial && !m.loadedOnce && len(m.records) == 0 {
			m.records = sampleRecords()
			m.fallback = true
			m.hasMore = false
			m.totalCount = int64(len(m.records))
			m.status = "backend unreachable, showing sample data"
			return m, nil
		}
		m.errMsg = fmt.Sprintf("load failed: %v", msg.err)
		return m, nil

	case mutationDoneMsg:
		if msg.created {
			m.status = "created"
		} else {
			m.status = "saved"
		}
		m.form = nil
		m.loading = true
		m.loadedOnce = true
		return m, m.fetchPage(1, false)

	case mutationFailedMsg:
		if m.form != nil {
			m.form.submitting = false
			m.form.errMsg = fmt.Sprintf("save failed: %v", msg.err)
		}
		return m, nil

	case deleteDoneMsg:
		m.confirm = nil
		m.records = removeByID(m.records, msg.id)
		if m.totalCount > 0 {
			m.totalCount--
		}
		if m.selected >= len(m.records) && m.selected > 0 {
			m.selected--
		}
		m.status = "deleted"
		return m, nil

	case deleteFailedMsg:
		m.confirm = nil
		m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation takes priority over everything else.
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			id := m.confirm.ID
			return m, m.deleteRecord(id)
		case "n", "N", "esc":
			m.confirm = nil
		}
		return m, nil
	}

	if m.form != nil {
		if msg.String() == "esc" && !m.form.submitting {
			m.form = nil
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.form.Update(msg)
	}

	if m.filtersFocused {
		switch msg.String() {
		case "esc":
			m.filtersFocused = false
			m.filters.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x":
			m.filters.Clear()
			m.filtersFocused = false
			m.filters.Blur()
			m.loading = true
			return m, m.fetchPage(1, false)
		}
		var cmd tea.Cmd
		var changed bool
		m.filters, cmd, changed = m.filters.Update(msg)
		if changed {
			// The list always reacts to filter changes by reloading
			// from page 1, discarding accumulated pages.
			m.loading = true
			return m, tea.Batch(cmd, m.fetchPage(1, false))
		}
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.records)-1 {
			m.selected++
		} else {
			// Bottom of the list: load the next page, guarded by the
			// in-flight flag.
			return m.loadMore()
		}

	case "n":
		m.form = newForm(nil)
		m.errMsg = ""

	case "enter", "e":
		if record, ok := m.selectedRecord(); ok {
			copied := record
			m.form = newForm(&copied)
			m.errMsg = ""
		}

	case "d":
		if record, ok := m.selectedRecord(); ok {
			copied := record
			m.confirm = &copied
		}

	case "r":
		m.loading = true
		return m, m.fetchPage(1, false)

	case "/":
		m.filtersFocused = true
		m.filters.focus = filterFieldSearch
		return m, m.filters.Focus()

	case "f":
		m.filtersFocused = true
		m.filters.focus = filterFieldType
		return m, m.filters.Focus()
	}

	return m, nil
}

// loadMore requests the next page if one exists and nothing is in flight.
func (m Model) loadMore() (tea.Model, tea.Cmd) {
	if !m.hasMore || m.loading || m.fallback {
		return m, nil
	}
	m.loading = true
	return m, m.fetchPage(m.page+1, true)
}

func (m Model) selectedRecord() (domain.MediaRecord, bool) {
	if m.fallback {
		return domain.MediaRecord{}, false
	}
	if m.selected < 0 || m.selected >= len(m.records) {
		return domain.MediaRecord{}, false
	}
	return m.records[m.selected], true
}

// mergeByID appends incoming records, skipping identifiers already present,
// so overlapping pages never produce duplicate rows.
func mergeByID(existing, incoming []domain.MediaRecord) []domain.MediaRecord {
	seen := make(map[int64]struct{}, len(existing))
	for _, r := range existing {
		seen[r.ID] = struct{}{}
	}
	for _, r := range incoming {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		existing = append(existing, r)
	}
	return existing
}

func removeByID(records []domain.MediaRecord, id int64) []domain.MediaRecord {
	out := records[:0]
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// View renders the TUI.
func (m Model) View() string {
	if m.form != nil {
		return m.form.View()
	}
	if m.confirm != nil {
		return confirmBoxStyle.Render(fmt.Sprintf(
			"Delete %q?\n\n[Y] Delete  [N] Cancel", m.confirm.Title))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Media Shelf ") + "  " + m.statusLine() + "\n\n")
	b.WriteString(m.filters.View(m.filtersFocused) + "\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n" + helpStyle.Render(
		"[↑/↓] Move  [Enter] Edit  [N] New  [D] Delete  [/] Search  [F] Type  [R] Reload  [Q] Quit"))
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.loading:
		return statusStyle.Render("loading...")
	case m.errMsg != "":
		return errorStyle.Render(m.errMsg)
	case m.fallback:
		return errorStyle.Render(m.status)
	case m.status != "":
		return successStyle.Render(m.status)
	default:
		return statusStyle.Render(fmt.Sprintf("%d records", m.totalCount))
	}
}

func (m Model) renderTable() string {
	if len(m.records) == 0 {
		if m.loading {
			return statusStyle.Render("  Loading...") + "\n"
		}
		return statusStyle.Render("  No media found. Press [N] to add one.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-4s %-28s %-9s %-22s %-11s %s",
		"ID", "TITLE", "TYPE", "DIRECTOR", "YEAR", "DURATION")) + "\n")

	for i, r := range m.records {
		if i == m.selected && !m.filtersFocused {
			row := fmt.Sprintf("%-4d %-28s %-9s %-22s %-11s %s",
				r.ID, clip(r.Title, 28), clip(string(r.Type), 9), clip(r.Director, 22), clip(r.YearTime, 11), r.Duration)
			b.WriteString(selectedRowStyle.Render("▶ "+row) + "\n")
			continue
		}
		typeCol := badgeStyle(r.Type.Known(), r.Type == domain.MediaTypeMovie).
			Render(fmt.Sprintf("%-9s", clip(string(r.Type), 9)))
		b.WriteString(fmt.Sprintf("  %-4d %-28s ", r.ID, clip(r.Title, 28)))
		b.WriteString(typeCol)
		b.WriteString(fmt.Sprintf(" %-22s %-11s %s\n", clip(r.Director, 22), clip(r.YearTime, 11), r.Duration))
	}

	if m.hasMore {
		b.WriteString(statusStyle.Render("  ↓ more below, keep scrolling") + "\n")
	}
	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

// Run starts the browser in the alternate screen.
func Run(api *client.Client) error {
	p := tea.NewProgram(NewModel(api), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
