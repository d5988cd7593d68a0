// Package report renders risk results for operators.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/riskcheck/internal/risk"
)

// NoSignals is printed in place of the signal list when nothing fired.
const NoSignals = "None"

// Format selects how a result is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be text or json", s)
	}
}

// SignalLines returns one "code — text" line per signal, critical first.
func SignalLines(r risk.Result) []string {
	sigs := r.Signals()
	lines := make([]string, len(sigs))
	for i, s := range sigs {
		lines[i] = fmt.Sprintf("%s — %s", s.Code, s.Text)
	}
	return lines
}

// Text renders the result as plain text.
func Text(r risk.Result) string {
	signals := NoSignals
	if lines := SignalLines(r); len(lines) > 0 {
		signals = strings.Join(lines, "\n")
	}

	actions := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		actions[i] = "- " + a
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Risk level:\n[ %s ]\n\n", r.Tier.DisplayName())
	fmt.Fprintf(&b, "Signals detected:\n%s\n\n", signals)
	fmt.Fprintf(&b, "Explanation:\n%s\n\n", r.Explanation)
	fmt.Fprintf(&b, "Recommended actions:\n%s\n", strings.Join(actions, "\n"))
	return b.String()
}

// Write renders r to w in the requested format.
func Write(w io.Writer, format Format, r risk.Result) error {
	switch format {
	case FormatJSON:
		return JSON(w, r)
	default:
		_, err := io.WriteString(w, Text(r))
		return err
	}
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r risk.Result) error {
	// Empty lists encode as [] rather than null.
	out := r
	if out.Critical == nil {
		out.Critical = []risk.Signal{}
	}
	if out.Warning == nil {
		out.Warning = []risk.Signal{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
