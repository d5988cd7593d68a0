package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/questionnaire"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// AnswerCharLimit bounds a single answer.
const AnswerCharLimit = 120

// TextInput wraps bubbles/textinput for interview answers. It does not
// filter keystrokes: numbers are extracted from free text by the parser.
type TextInput struct {
	Model    textinput.Model
	rejected bool
}

// NewTextInput creates a focused answer input.
func NewTextInput(placeholder string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = AnswerCharLimit
	ti.Prompt = "› "
	ti.Focus()

	return TextInput{Model: ti}
}

// PlaceholderFor suggests an answer shape for a field kind.
func PlaceholderFor(kind questionnaire.Kind) string {
	switch kind {
	case questionnaire.KindNumber:
		return "a number, e.g. 12 or -25"
	case questionnaire.KindYesNo:
		return "yes / no"
	default:
		return "type your answer"
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Typing clears the rejected marker.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.rejected = false
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.rejected {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Rejected reports whether the last submission was refused.
func (t TextInput) Rejected() bool {
	return t.rejected
}

// Clear empties the input for the next answer and sets its placeholder.
func (t *TextInput) Clear(placeholder string, rejected bool) {
	t.Model.SetValue("")
	t.Model.Placeholder = placeholder
	t.rejected = rejected
}
