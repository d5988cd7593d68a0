package risk

import "fmt"

// Severity is the class a signal belongs to.
type Severity string

const (
	SeverityCritical Severity = "critical" // red
	SeverityWarning  Severity = "warning"  // yellow
)

// Signal is a named condition detected in an account.
type Signal struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Tier is the overall risk classification.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// AllTiers returns all tiers from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}

// String returns the lowercase tier name used in logs and JSON.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierLow:
		return "Low"
	case TierMedium:
		return "Medium"
	case TierHigh:
		return "High"
	default:
		return t.String()
	}
}

// MarshalText encodes the tier as its lowercase name.
func (t Tier) MarshalText() ([]byte, error) {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
}

// UnmarshalText parses a lowercase tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	for _, tier := range AllTiers() {
		if tier.String() == string(b) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", string(b))
}

// Result is the engine output for one account. It is never mutated after
// Evaluate returns it.
type Result struct {
	Tier        Tier     `json:"tier"`
	Critical    []Signal `json:"critical_signals"`
	Warning     []Signal `json:"warning_signals"`
	Explanation string   `json:"explanation"`
	Actions     []string `json:"actions"`
}

// Signals returns critical signals followed by warning signals.
func (r Result) Signals() []Signal {
	out := make([]Signal, 0, len(r.Critical)+len(r.Warning))
	out = append(out, r.Critical...)
	return append(out, r.Warning...)
}

// Codes returns the codes of all fired signals in output order.
func (r Result) Codes() []string {
	sigs := r.Signals()
	codes := make([]string, len(sigs))
	for i, s := range sigs {
		codes[i] = s.Code
	}
	return codes
}
