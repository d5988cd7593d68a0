// Package interview implements the chat-style screen that collects the
// answers for one client account.
package interview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/riskcheck/internal/chat"
	"github.com/abhisek/riskcheck/internal/logging"
	"github.com/abhisek/riskcheck/internal/questionnaire"
	"github.com/abhisek/riskcheck/internal/risk"
	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/screen"
	"github.com/abhisek/riskcheck/internal/ui/components"
	"github.com/abhisek/riskcheck/internal/ui/layout"
)

// Options are the dependencies of an interview screen.
type Options struct {
	Logger *zap.Logger

	// Result builds the screen shown once the account is classified.
	Result func(risk.Result) screen.Screen

	// NewSessionID overrides uuid generation, for tests.
	NewSessionID func() string
}

// InterviewScreen implements screen.Screen for answer collection.
type InterviewScreen struct {
	opts        Options
	builder     *questionnaire.Builder
	transcript  []Entry
	input       components.TextInput
	sessionID   string
	log         *zap.Logger
	confirmQuit bool
	evaluating  bool
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an interview screen positioned at the first question.
func New(opts Options) *InterviewScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NewSessionID == nil {
		opts.NewSessionID = func() string { return uuid.New().String() }
	}
	s := &InterviewScreen{opts: opts}
	s.start("interview started")
	return s
}

// start resets all interview state under a fresh session id.
func (s *InterviewScreen) start(event string) {
	if s.builder == nil {
		s.builder = questionnaire.NewBuilder()
	} else {
		s.builder = s.builder.Reset()
	}
	s.sessionID = s.opts.NewSessionID()
	s.log = s.opts.Logger.With(logging.SessionFields(s.sessionID, "tui")...)
	s.log.Info(event)

	first, _ := s.builder.Current()
	s.transcript = []Entry{
		{From: SpeakerBot, Text: chat.Intro},
		{From: SpeakerBot, Text: "👉 " + first.Prompt},
	}
	s.input = components.NewTextInput(components.PlaceholderFor(first.Kind))
	s.confirmQuit = false
	s.evaluating = false
}

func (s *InterviewScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *InterviewScreen) Title() string {
	return "Account interview"
}

// Status shows how many answers have been collected.
func (s *InterviewScreen) Status() string {
	return components.NewProgressBar(s.builder.Position(), s.builder.Len(), 0).Label()
}

// SessionID identifies the interview in logs.
func (s *InterviewScreen) SessionID() string {
	return s.sessionID
}

// Transcript returns the chat so far.
func (s *InterviewScreen) Transcript() []Entry {
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: "Start over"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		return s.handleEvaluated(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.log.Info("interview abandoned", zap.Int("answered", s.builder.Position()))
			return s, tea.Quit
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "ctrl+r":
		s.start("interview reset")
		return s, s.input.Init()
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.evaluating {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit hands the typed answer to the builder. Blank input is ignored.
func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	if s.evaluating {
		return s, nil
	}
	raw := s.input.Value()
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}
	outcome := s.builder.Submit(raw)
	if outcome.Field.Key == "" {
		return s, nil
	}

	s.transcript = append(s.transcript, Entry{From: SpeakerOperator, Text: raw})

	if !outcome.Accepted {
		s.log.Info("answer rejected", zap.String("field", string(outcome.Field.Key)))
		s.transcript = append(s.transcript, Entry{From: SpeakerBot, Text: outcome.Retry})
		s.input.Clear(components.PlaceholderFor(outcome.Field.Kind), true)
		return s, nil
	}

	if outcome.Next != nil {
		s.transcript = append(s.transcript, Entry{From: SpeakerBot, Text: "👉 " + outcome.Next.Prompt})
		s.input.Clear(components.PlaceholderFor(outcome.Next.Kind), false)
		return s, nil
	}

	rec, ok := s.builder.Record()
	if !ok {
		return s, nil
	}
	s.log.Info("record completed")
	s.evaluating = true
	s.input.Clear("", false)
	return s, evaluate(s.sessionID, rec)
}

func evaluate(sessionID string, rec questionnaire.Record) tea.Cmd {
	return func() tea.Msg {
		return evaluatedMsg{SessionID: sessionID, Record: rec, Result: risk.Evaluate(rec)}
	}
}

func (s *InterviewScreen) handleEvaluated(msg evaluatedMsg) (screen.Screen, tea.Cmd) {
	// A reset while evaluating discards the record; its result is stale.
	if !s.evaluating || msg.SessionID != s.sessionID {
		s.log.Debug("stale evaluation dropped", zap.String("from_session", msg.SessionID))
		return s, nil
	}
	s.evaluating = false
	res := msg.Result
	s.log.Info("evaluation complete",
		zap.String("tier", res.Tier.String()),
		zap.Strings("signals", res.Codes()))

	if s.opts.Result == nil {
		return s, nil
	}
	next := s.opts.Result(res)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *InterviewScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderChat(width, height)
}
