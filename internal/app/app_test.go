package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/screens/interview"
	"github.com/abhisek/riskcheck/internal/screens/result"
	"github.com/abhisek/riskcheck/internal/screens/welcome"
)

var mediumAnswers = []string{
	"Logistics", "12", "3", "2", "2", "10", "incident",
	"0", "no", "5", "no", "9", "no",
}

func step(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

// typeAnswer types text and presses enter. Keystroke commands (cursor
// blinks) are dropped; the enter command is returned unexecuted.
func typeAnswer(t *testing.T, m AppModel, text string) (AppModel, tea.Cmd) {
	t.Helper()
	for _, r := range text {
		m, _ = step(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestStartsOnWelcome(t *testing.T) {
	m := NewAppModel(Options{})
	if _, ok := m.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.Active())
	}

	m, cmd := step(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	m, _ = step(t, m, cmd())
	if _, ok := m.Active().(*interview.InterviewScreen); !ok {
		t.Fatalf("expected interview after keypress, got %T", m.Active())
	}
}

func TestFullFlow(t *testing.T) {
	m := NewAppModel(Options{SkipWelcome: true})

	var cmd tea.Cmd
	for _, a := range mediumAnswers {
		m, cmd = typeAnswer(t, m, a)
	}
	if cmd == nil {
		t.Fatal("final answer should trigger evaluation")
	}

	// evaluation result, then navigation to the result screen
	m, cmd = step(t, m, cmd())
	if cmd == nil {
		t.Fatal("evaluation should produce a navigation command")
	}
	m, _ = step(t, m, cmd())

	res, ok := m.Active().(*result.ResultScreen)
	if !ok {
		t.Fatalf("expected result screen, got %T", m.Active())
	}
	if got := res.Result().Tier.String(); got != "medium" {
		t.Errorf("expected medium, got %s", got)
	}

	m, cmd = step(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("r should start a new interview")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	m, _ = step(t, m, msg)
	next, ok := m.Active().(*interview.InterviewScreen)
	if !ok {
		t.Fatalf("expected new interview, got %T", m.Active())
	}
	if next.Status() != "0/13" {
		t.Errorf("new interview should start empty, got %s", next.Status())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := NewAppModel(Options{SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg")
	}
}

func TestViewFrames(t *testing.T) {
	m := NewAppModel(Options{SkipWelcome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)

	content := m.render()
	for _, want := range []string{"Riskcheck", "Account interview", "0/13", "Send"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := NewAppModel(Options{SkipWelcome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = updated.(AppModel)

	if !strings.Contains(m.render(), "too small") {
		t.Error("expected too-small message")
	}
}
