package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/riskcheck/internal/risk"
)

func highResult() risk.Result {
	return risk.EvaluateAccount(risk.Account{
		AccountAgeMonths:   3,
		Tickets30d:         4,
		TicketsPrevMonth:   2,
		OpenTickets:        2,
		AvgResolutionHours: 10,
		VolumeChangePct:    0,
		Satisfaction:       9,
	})
}

func TestText_WithSignals(t *testing.T) {
	got := Text(highResult())

	want := `Risk level:
[ High ]

Signals detected:
R1 — 2 or more open tickets without resolution
A1 — Ticket increase vs previous month
A5 — Account younger than 6 months

Explanation:
The account shows signals that usually correlate with operational friction and/or churn risk:
• 2 or more open tickets without resolution
• Ticket increase vs previous month
• Account younger than 6 months

Recommended actions:
- Immediate personalized contact
- Prioritize ticket resolution
- Propose a corrective plan
- Commercial incentive or renegotiation
`
	assert.Equal(t, want, got)
}

func TestText_NoSignals(t *testing.T) {
	res := risk.EvaluateAccount(risk.Account{
		AccountAgeMonths: 24,
		Satisfaction:     10,
	})
	got := Text(res)

	assert.Contains(t, got, "[ Low ]")
	assert.Contains(t, got, "Signals detected:\nNone\n")
	assert.Contains(t, got, "No relevant signals were detected")
	assert.Contains(t, got, "- Regular follow-up")
}

func TestJSON_EncodesTierAndEmptyLists(t *testing.T) {
	res := risk.EvaluateAccount(risk.Account{AccountAgeMonths: 24, Satisfaction: 10})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "low", decoded["tier"])
	assert.Equal(t, []any{}, decoded["critical_signals"])
	assert.Equal(t, []any{}, decoded["warning_signals"])
}

func TestJSON_RoundTrip(t *testing.T) {
	res := highResult()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, res))

	var back risk.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, res, back)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, highResult()))
	assert.True(t, strings.HasPrefix(buf.String(), "Risk level:\n[ High ]"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" json ", FormatJSON, false},
		{"yaml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
