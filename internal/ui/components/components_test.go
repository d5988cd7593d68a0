package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/riskcheck/internal/questionnaire"
)

type picked string

func TestMenu_NavigationAndEnter(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "New client", Action: func() tea.Cmd { return func() tea.Msg { return picked("new") } }},
		{Label: "Quit", Action: func() tea.Cmd { return func() tea.Msg { return picked("quit") } }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "disabled item is skipped")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, picked("new"), cmd())
	}
}

func TestMenu_Hotkey(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "New client", Hotkey: "r", Action: func() tea.Cmd { return func() tea.Msg { return picked("new") } }},
		{Label: "Quit", Hotkey: "q", Action: func() tea.Cmd { return func() tea.Msg { return picked("quit") } }},
	})

	m, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	assert.Equal(t, 1, m.Selected)
	if assert.NotNil(t, cmd) {
		assert.Equal(t, picked("quit"), cmd())
	}
	assert.Contains(t, m.View(), "Quit (q)")
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar(3, 13, 40)
	assert.Equal(t, "3/13", p.Label())
	assert.InDelta(t, 3.0/13.0, p.Percent(), 1e-9)
	assert.True(t, strings.HasSuffix(p.View(), "3/13") || strings.Contains(p.View(), "3/13"))

	assert.Equal(t, 0.0, NewProgressBar(1, 0, 10).Percent())
	assert.Equal(t, 1.0, NewProgressBar(20, 13, 10).Percent())
}

func TestTextInput_RejectedMarker(t *testing.T) {
	ti := NewTextInput(PlaceholderFor(questionnaire.KindNumber))
	ti.Clear(PlaceholderFor(questionnaire.KindNumber), true)
	assert.True(t, ti.Rejected())
	assert.Contains(t, ti.View(), "✗")

	ti, _ = ti.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.False(t, ti.Rejected())
	assert.Equal(t, "1", ti.Value())
}

func TestPlaceholderFor(t *testing.T) {
	assert.Contains(t, PlaceholderFor(questionnaire.KindYesNo), "yes")
	assert.Contains(t, PlaceholderFor(questionnaire.KindNumber), "number")
	assert.NotEmpty(t, PlaceholderFor(questionnaire.KindText))
}
