package interview

import (
	"github.com/abhisek/riskcheck/internal/questionnaire"
	"github.com/abhisek/riskcheck/internal/risk"
)

// Speaker identifies who wrote a transcript entry.
type Speaker int

const (
	SpeakerBot Speaker = iota
	SpeakerOperator
)

// Entry is one message of the chat transcript.
type Entry struct {
	From Speaker
	Text string
}

// evaluatedMsg carries the result of evaluating a completed record.
// SessionID ties it to the interview that produced the record.
type evaluatedMsg struct {
	SessionID string
	Record    questionnaire.Record
	Result    risk.Result
}
