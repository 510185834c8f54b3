package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediashelf/mediashelf/internal/domain"
)

func TestNewFormDefaults(t *testing.T) {
	f := newForm(nil)

	assert.Nil(t, f.editing)
	assert.Equal(t, formFieldTitle, f.focus)

	input := f.Input()
	assert.Equal(t, string(domain.MediaTypeMovie), input.Type)
	assert.Empty(t, input.Title)
	assert.Empty(t, input.Director)
}

func TestNewFormPrefillsFromRecord(t *testing.T) {
	existing := record(5, "Breaking Bad")
	existing.Type = domain.MediaTypeTVShow
	existing.Director = "Vince Gilligan"
	existing.YearTime = "2008-2013"

	f := newForm(&existing)

	require.NotNil(t, f.editing)
	input := f.Input()
	assert.Equal(t, "Breaking Bad", input.Title)
	assert.Equal(t, string(domain.MediaTypeTVShow), input.Type)
	assert.Equal(t, "Vince Gilligan", input.Director)
	assert.Equal(t, "2008-2013", input.YearTime)
}

func TestFormNavigationWraps(t *testing.T) {
	f := newForm(nil)

	for i := 0; i < formFieldCount; i++ {
		assert.Equal(t, i, f.focus)
		f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, formFieldTitle, f.focus)

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, formFieldYearTime, f.focus)
}

func TestFormTypeCycle(t *testing.T) {
	f := newForm(nil)
	f.setFocus(formFieldType)

	f.Update(key("right"))
	assert.Equal(t, string(domain.MediaTypeTVShow), f.Input().Type)

	f.Update(key("right"))
	assert.Equal(t, string(domain.MediaTypeMovie), f.Input().Type)
}

func TestFormEnterSubmits(t *testing.T) {
	f := newForm(nil)

	cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(formSubmitMsg)
	assert.True(t, ok, "enter should produce a submit message")
}

func TestFormIgnoresKeysWhileSubmitting(t *testing.T) {
	f := newForm(nil)
	f.submitting = true

	assert.Nil(t, f.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Nil(t, f.Update(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, formFieldTitle, f.focus)
}

func TestFilterBarTypeCycleReportsChange(t *testing.T) {
	f := newFilterBar()
	f.focus = filterFieldType

	f, _, changed := f.Update(key("right"))
	assert.True(t, changed)
	assert.Equal(t, string(domain.MediaTypeMovie), f.Filters().Type)

	// Tab moves focus without touching the filter triple.
	f, _, changed = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, changed)
	assert.Equal(t, filterFieldYear, f.focus)
}

func TestFilterBarClear(t *testing.T) {
	f := newFilterBar()
	f.search.SetValue("nolan")
	f.year.SetValue("2010")
	f.typeIdx = 2
	require.True(t, f.Active())

	f.Clear()
	assert.False(t, f.Active())
	assert.Equal(t, "ALL", f.Filters().Type)
}
