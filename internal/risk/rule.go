package risk

// Rule detects one signal. Rules are stateless and evaluated independently;
// every rule whose Check returns true fires.
type Rule interface {
	Code() string
	Severity() Severity
	Text() string
	Check(a *Account) bool
}

// CriticalRules returns the red rules in evaluation (and output) order.
func CriticalRules() []Rule {
	return []Rule{
		&OpenTicketsRule{},
		&PaymentDelaysRule{},
		&CriticalComplaintRule{},
		&VolumeCollapseRule{},
		&ResolutionTimeRule{},
	}
}

// WarningRules returns the yellow rules in evaluation (and output) order.
func WarningRules() []Rule {
	return []Rule{
		&TicketTrendRule{},
		&FirstPaymentDelayRule{},
		&VolumeDropRule{},
		&SatisfactionRule{},
		&NewAccountRule{},
	}
}

// Rules returns the full rule table: critical rules first, then warnings.
func Rules() []Rule {
	return append(CriticalRules(), WarningRules()...)
}

// runRules returns the signals of all matching rules, preserving order.
func runRules(rules []Rule, a *Account) []Signal {
	var fired []Signal
	for _, r := range rules {
		if r.Check(a) {
			fired = append(fired, Signal{Code: r.Code(), Text: r.Text()})
		}
	}
	return fired
}
