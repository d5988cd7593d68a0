// Package chat runs the interview over a plain line-oriented stream, one
// answer per line.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/riskcheck/internal/logging"
	"github.com/abhisek/riskcheck/internal/questionnaire"
	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/risk"
)

// Intro greets the operator before the first question.
const Intro = `Hi! I'm the account risk assistant.

I'll ask you a few questions about one client account and then give you:
- the risk level (Low / Medium / High)
- the red and yellow signals detected
- a short explanation
- recommended actions`

// Another is shown after each result.
const Another = "Type \"reset\" to analyze another client."

// ResetWord restarts the interview in line mode.
const ResetWord = "reset"

// MaxLineBytes bounds a single answer line.
const MaxLineBytes = 1 << 20

// ErrIncomplete is returned when input ends in the middle of an interview.
var ErrIncomplete = errors.New("input ended before the interview was complete")

// Options configures a line-mode session.
type Options struct {
	Format report.Format
	Logger *zap.Logger

	// NewSessionID overrides uuid generation, for tests.
	NewSessionID func() string
}

// Session is one line-mode conversation. It may run several interviews in
// a row when the operator resets after a result.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	builder *questionnaire.Builder
	log     *zap.Logger
	results []risk.Result
}

// NewSession wires a session to in and out.
func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NewSessionID == nil {
		opts.NewSessionID = func() string { return uuid.New().String() }
	}
	if opts.Format == "" {
		opts.Format = report.FormatText
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	return &Session{
		in:   sc,
		out:  out,
		opts: opts,
	}
}

// Run converses until input ends or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	return NewSession(in, out, opts).Run(ctx)
}

// Results returns every result produced so far.
func (s *Session) Results() []risk.Result {
	return s.results
}

// Run prints the intro and processes lines until EOF. ctx is checked
// between lines only; a read blocked on in is not interrupted.
func (s *Session) Run(ctx context.Context) error {
	s.println(Intro)
	s.println("")
	s.start("interview started")

	for s.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.handle(strings.TrimSpace(s.in.Text())); err != nil {
			return err
		}
	}
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if s.builder.Position() > 0 && !s.builder.Done() {
		s.log.Warn("input closed mid-interview",
			zap.Int("answered", s.builder.Position()),
			zap.Int("total", s.builder.Len()))
		return fmt.Errorf("%d of %d answers collected: %w",
			s.builder.Position(), s.builder.Len(), ErrIncomplete)
	}
	return nil
}

func (s *Session) handle(line string) error {
	if line == "" {
		return nil
	}
	if strings.EqualFold(line, ResetWord) {
		s.println("")
		s.start("interview reset")
		return nil
	}
	if s.builder.Done() {
		s.println(Another)
		return nil
	}

	outcome := s.builder.Submit(line)
	if !outcome.Accepted {
		s.log.Info("answer rejected", zap.String("field", string(outcome.Field.Key)))
		s.println(outcome.Retry)
		return nil
	}
	if outcome.Next != nil {
		s.println("👉 " + outcome.Next.Prompt)
		return nil
	}
	return s.finish()
}

func (s *Session) finish() error {
	rec, ok := s.builder.Record()
	if !ok {
		return fmt.Errorf("record incomplete: missing %v", rec.Missing())
	}
	s.log.Info("record completed")

	res := risk.Evaluate(rec)
	s.log.Info("evaluation complete",
		zap.String("tier", res.Tier.String()),
		zap.Strings("signals", res.Codes()))
	s.results = append(s.results, res)

	s.println("")
	if err := report.Write(s.out, s.opts.Format, res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	s.println("")
	s.println(Another)
	return nil
}

// start begins a fresh interview with a new session id.
func (s *Session) start(event string) {
	if s.builder == nil {
		s.builder = questionnaire.NewBuilder()
	} else {
		s.builder = s.builder.Reset()
	}
	s.log = s.opts.Logger.With(logging.SessionFields(s.opts.NewSessionID(), "line")...)
	s.log.Info(event)

	first, _ := s.builder.Current()
	s.println("👉 " + first.Prompt)
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
