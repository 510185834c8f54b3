package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediashelf/mediashelf/internal/domain"
)

// Form field order. The type selector sits between title and director, as
// on the original form.
const (
	formFieldTitle = iota
	formFieldType
	formFieldDirector
	formFieldBudget
	formFieldLocation
	formFieldDuration
	formFieldYearTime
	formFieldCount
)

var formLabels = [formFieldCount]string{
	"Title", "Type", "Director", "Budget", "Location", "Duration", "Year/Time",
}

// formTypeChoices excludes the ALL sentinel: records always carry a type.
var formTypeChoices = []string{string(domain.MediaTypeMovie), string(domain.MediaTypeTVShow)}

// formModel is the modal create/edit form. editing is nil for create.
type formModel struct {
	editing    *domain.MediaRecord
	inputs     map[int]*textinput.Model
	typeIdx    int
	focus      int
	submitting bool
	errMsg     string
}

// newForm builds the form. With a record it pre-fills every field; without
// one it resets to defaults (type defaulting to MOVIE).
func newForm(record *domain.MediaRecord) *formModel {
	f := &formModel{
		editing: record,
		inputs:  make(map[int]*textinput.Model, formFieldCount-1),
	}
	for field := 0; field < formFieldCount; field++ {
		if field == formFieldType {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Width = 36
		f.inputs[field] = &ti
	}

	if record != nil {
		f.inputs[formFieldTitle].SetValue(record.Title)
		f.inputs[formFieldDirector].SetValue(record.Director)
		f.inputs[formFieldBudget].SetValue(record.Budget)
		f.inputs[formFieldLocation].SetValue(record.Location)
		f.inputs[formFieldDuration].SetValue(record.Duration)
		f.inputs[formFieldYearTime].SetValue(record.YearTime)
		if record.Type == domain.MediaTypeTVShow {
			f.typeIdx = 1
		}
	}

	f.inputs[formFieldTitle].Focus()
	return f
}

// Input collects the current field values.
func (f *formModel) Input() domain.MediaInput {
	return domain.MediaInput{
		Title:    f.inputs[formFieldTitle].Value(),
		Type:     formTypeChoices[f.typeIdx],
		Director: f.inputs[formFieldDirector].Value(),
		Budget:   f.inputs[formFieldBudget].Value(),
		Location: f.inputs[formFieldLocation].Value(),
		Duration: f.inputs[formFieldDuration].Value(),
		YearTime: f.inputs[formFieldYearTime].Value(),
	}
}

func (f *formModel) setFocus(field int) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for idx, input := range f.inputs {
		if idx == field {
			cmd = input.Focus()
		} else {
			input.Blur()
		}
	}
	return cmd
}

// formSubmitMsg asks the composing model to issue the create/update call.
type formSubmitMsg struct{}

// Update handles form keys. Enter on the last field (or anywhere with a
// complete form) submits; submission is suppressed while a request is in
// flight.
func (f *formModel) Update(msg tea.KeyMsg) tea.Cmd {
	if f.submitting {
		return nil
	}

	switch msg.String() {
	case "tab", "down":
		return f.setFocus((f.focus + 1) % formFieldCount)
	case "shift+tab", "up":
		return f.setFocus((f.focus + formFieldCount - 1) % formFieldCount)
	case "enter":
		return func() tea.Msg { return formSubmitMsg{} }
	}

	if f.focus == formFieldType {
		switch msg.String() {
		case "left", "h":
			f.typeIdx = (f.typeIdx + len(formTypeChoices) - 1) % len(formTypeChoices)
		case "right", "l", " ":
			f.typeIdx = (f.typeIdx + 1) % len(formTypeChoices)
		}
		return nil
	}

	input := f.inputs[f.focus]
	updated, cmd := input.Update(msg)
	*input = updated
	return cmd
}

// View renders the modal.
func (f *formModel) View() string {
	var b strings.Builder

	title := "Add New Media"
	if f.editing != nil {
		title = "Edit Media"
	}
	b.WriteString(titleStyle.Render(" "+title+" ") + "\n\n")

	for field := 0; field < formFieldCount; field++ {
		marker := "  "
		if field == f.focus {
			marker = "▶ "
		}
		b.WriteString(marker + labelStyle.Render(padLabel(formLabels[field])))
		if field == formFieldType {
			choice := formTypeChoices[f.typeIdx]
			if field == f.focus {
				choice = "‹" + choice + "›"
			}
			b.WriteString(choice)
		} else {
			b.WriteString(f.inputs[field].View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case f.submitting:
		b.WriteString(statusStyle.Render("Saving..."))
	case f.errMsg != "":
		b.WriteString(errorStyle.Render(f.errMsg))
	default:
		b.WriteString(helpStyle.Render("[Enter] Save  [Tab] Next field  [Esc] Cancel"))
	}

	return formBoxStyle.Render(b.String())
}

func padLabel(label string) string {
	const width = 11
	if len(label) >= width {
		return label + " "
	}
	return label + strings.Repeat(" ", width-len(label))
}
