package risk

import (
	"strings"

	"github.com/abhisek/riskcheck/internal/questionnaire"
)

const (
	explanationLeadIn = "The account shows signals that usually correlate with operational friction and/or churn risk:"
	explanationStable = "No relevant signals were detected with the information provided."
)

// actionsByTier holds the fixed recommendations for each tier.
var actionsByTier = map[Tier][]string{
	TierLow: {
		"Regular follow-up",
		"Monthly performance report",
		"Offer route or service optimization",
	},
	TierMedium: {
		"Proactive contact from the account executive",
		"Review SLA and response times",
		"Preventive service adjustment",
	},
	TierHigh: {
		"Immediate personalized contact",
		"Prioritize ticket resolution",
		"Propose a corrective plan",
		"Commercial incentive or renegotiation",
	},
}

// Evaluate classifies a complete answer record. It reads only its
// argument and is safe for concurrent use.
func Evaluate(rec questionnaire.Record) Result {
	return EvaluateAccount(AccountFrom(rec))
}

// EvaluateAccount runs the rule table against a and builds the result.
func EvaluateAccount(a Account) Result {
	critical := runRules(CriticalRules(), &a)
	warning := runRules(WarningRules(), &a)
	tier := Classify(len(critical), len(warning))

	return Result{
		Tier:        tier,
		Critical:    critical,
		Warning:     warning,
		Explanation: Explain(critical, warning),
		Actions:     ActionsFor(tier),
	}
}

// Classify maps red/yellow signal counts to a tier. High is checked
// first: one red with two or more yellows is High, not Medium.
func Classify(red, yellow int) Tier {
	switch {
	case red >= 2 || (red == 1 && yellow >= 2):
		return TierHigh
	case red == 1 || yellow >= 2:
		return TierMedium
	default:
		return TierLow
	}
}

// Explain renders the business explanation: a lead-in followed by one
// bullet per signal, critical first.
func Explain(critical, warning []Signal) string {
	if len(critical) == 0 && len(warning) == 0 {
		return explanationStable
	}
	lines := make([]string, 0, 1+len(critical)+len(warning))
	lines = append(lines, explanationLeadIn)
	for _, s := range critical {
		lines = append(lines, "• "+s.Text)
	}
	for _, s := range warning {
		lines = append(lines, "• "+s.Text)
	}
	return strings.Join(lines, "\n")
}

// ActionsFor returns a copy of the recommended actions for tier.
func ActionsFor(tier Tier) []string {
	actions := actionsByTier[tier]
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}
