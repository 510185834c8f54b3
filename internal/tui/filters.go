package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediashelf/mediashelf/internal/client"
	"github.com/mediashelf/mediashelf/internal/domain"
)

// typeChoices is the cycle order of the type selector. The first entry is
// the sentinel meaning "no type constraint".
var typeChoices = []string{client.TypeAll, string(domain.MediaTypeMovie), string(domain.MediaTypeTVShow)}

const (
	filterFieldSearch = iota
	filterFieldType
	filterFieldYear
	filterFieldCount
)

// filterBar holds the search/type/year filter state. It does not trigger
// fetches itself; the composing model reacts to reported changes.
type filterBar struct {
	search  textinput.Model
	year    textinput.Model
	typeIdx int
	focus   int
}

func newFilterBar() filterBar {
	search := textinput.New()
	search.Placeholder = "title, director, or location"
	search.Prompt = ""
	search.CharLimit = 64
	search.Width = 30

	year := textinput.New()
	year.Placeholder = "e.g. 2010"
	year.Prompt = ""
	year.CharLimit = 16
	year.Width = 12

	return filterBar{search: search, year: year}
}

// Filters reports the current filter triple.
func (f filterBar) Filters() client.Filters {
	return client.Filters{
		Search: f.search.Value(),
		Type:   typeChoices[f.typeIdx],
		Year:   f.year.Value(),
	}
}

// Active reports whether any filter constrains the list.
func (f filterBar) Active() bool {
	return f.search.Value() != "" || f.typeIdx != 0 || f.year.Value() != ""
}

// Clear resets all three filters to empty/sentinel.
func (f *filterBar) Clear() {
	f.search.SetValue("")
	f.year.SetValue("")
	f.typeIdx = 0
}

// Focus gives keyboard focus to the current field.
func (f *filterBar) Focus() tea.Cmd {
	return f.applyFocus()
}

// Blur removes keyboard focus from all fields.
func (f *filterBar) Blur() {
	f.search.Blur()
	f.year.Blur()
}

func (f *filterBar) applyFocus() tea.Cmd {
	f.search.Blur()
	f.year.Blur()
	switch f.focus {
	case filterFieldSearch:
		return f.search.Focus()
	case filterFieldYear:
		return f.year.Focus()
	}
	return nil
}

// Update consumes a key event and reports whether the filter triple changed.
func (f filterBar) Update(msg tea.KeyMsg) (filterBar, tea.Cmd, bool) {
	before := f.Filters()

	switch msg.String() {
	case "tab":
		f.focus = (f.focus + 1) % filterFieldCount
		return f, f.applyFocus(), false
	case "shift+tab":
		f.focus = (f.focus + filterFieldCount - 1) % filterFieldCount
		return f, f.applyFocus(), false
	}

	var cmd tea.Cmd
	switch f.focus {
	case filterFieldSearch:
		f.search, cmd = f.search.Update(msg)
	case filterFieldYear:
		f.year, cmd = f.year.Update(msg)
	case filterFieldType:
		switch msg.String() {
		case "left", "h":
			f.typeIdx = (f.typeIdx + len(typeChoices) - 1) % len(typeChoices)
		case "right", "l", " ", "enter":
			f.typeIdx = (f.typeIdx + 1) % len(typeChoices)
		}
	}

	return f, cmd, f.Filters() != before
}

// View renders the filter bar on one line.
func (f filterBar) View(focused bool) string {
	typeLabel := typeChoices[f.typeIdx]
	if focused && f.focus == filterFieldType {
		typeLabel = "‹" + typeLabel + "›"
	}

	line := labelStyle.Render("Search: ") + f.search.View() +
		"  " + labelStyle.Render("Type: ") + typeLabel +
		"  " + labelStyle.Render("Year: ") + f.year.View()
	if f.Active() {
		line += "  " + filteredTagStyle.Render("[filtered]")
	}
	return line
}
