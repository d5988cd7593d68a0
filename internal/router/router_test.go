package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskcheck/internal/screen"
)

// recorder counts what reaches it and can hand over to another screen.
type recorder struct {
	name    string
	inits   int
	updates int
	handoff screen.Screen
}

func (s *recorder) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *recorder) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	if s.handoff != nil {
		return s.handoff, nil
	}
	return s, nil
}

func (s *recorder) View(w, h int) string { return s.name }
func (s *recorder) Title() string        { return s.name }

func TestReplaceMsgSwapsAndInits(t *testing.T) {
	welcome := &recorder{name: "welcome"}
	interview := &recorder{name: "interview"}
	r := New(welcome)

	r.Update(ReplaceScreenMsg{Screen: interview})

	if r.Active() != interview {
		t.Fatalf("expected interview active, got %q", r.Active().Title())
	}
	if interview.inits != 1 {
		t.Errorf("expected one Init on the new screen, got %d", interview.inits)
	}
	if welcome.updates != 0 {
		t.Errorf("navigation should not reach the old screen, got %d updates", welcome.updates)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	interview := &recorder{name: "interview"}
	r := New(interview)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if interview.updates != 2 {
		t.Errorf("expected 2 forwarded messages, got %d", interview.updates)
	}
	if got := r.View(80, 24); got != "interview" {
		t.Errorf("expected view %q, got %q", "interview", got)
	}
}

func TestUpdateKeepsReturnedScreen(t *testing.T) {
	result := &recorder{name: "result"}
	r := New(&recorder{name: "interview", handoff: result})

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if r.Active() != result {
		t.Errorf("expected the screen returned by Update to become active, got %q", r.Active().Title())
	}
	if result.inits != 0 {
		t.Errorf("a returned screen is not re-initialised, got %d inits", result.inits)
	}
}

func TestEmptyRouter(t *testing.T) {
	r := New(nil)

	if cmd := r.Update(tea.KeyPressMsg{Code: 'x'}); cmd != nil {
		t.Error("expected no command without an active screen")
	}
	if r.View(80, 24) != "" {
		t.Error("expected empty view without an active screen")
	}
}
