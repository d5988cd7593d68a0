package risk

const (
	// VolumeDropPct is the variation (inclusive) at or below which A3 fires,
	// as long as R4 does not.
	VolumeDropPct = -15.0

	// SatisfactionRiskMax is the highest satisfaction score (inclusive) in the risk zone.
	SatisfactionRiskMax = 7.0

	// NewAccountMonths is the account age (exclusive) under which A5 fires.
	NewAccountMonths = 6.0
)

// TicketTrendRule flags more tickets this month than last.
type TicketTrendRule struct{}

func (r *TicketTrendRule) Code() string       { return "A1" }
func (r *TicketTrendRule) Severity() Severity { return SeverityWarning }
func (r *TicketTrendRule) Text() string       { return "Ticket increase vs previous month" }

func (r *TicketTrendRule) Check(a *Account) bool {
	return a.Tickets30d > a.TicketsPrevMonth
}

// FirstPaymentDelayRule flags a single recent payment delay.
type FirstPaymentDelayRule struct{}

func (r *FirstPaymentDelayRule) Code() string       { return "A2" }
func (r *FirstPaymentDelayRule) Severity() Severity { return SeverityWarning }
func (r *FirstPaymentDelayRule) Text() string       { return "1 recent payment delay" }

func (r *FirstPaymentDelayRule) Check(a *Account) bool {
	return a.PaymentDelays == 1
}

// VolumeDropRule flags a moderate usage drop in (-30, -15].
type VolumeDropRule struct{}

func (r *VolumeDropRule) Code() string       { return "A3" }
func (r *VolumeDropRule) Severity() Severity { return SeverityWarning }
func (r *VolumeDropRule) Text() string       { return "Usage drop between 15% and 30%" }

func (r *VolumeDropRule) Check(a *Account) bool {
	return a.VolumeChangePct > VolumeCollapsePct && a.VolumeChangePct <= VolumeDropPct
}

// SatisfactionRule flags satisfaction in the risk zone.
type SatisfactionRule struct{}

func (r *SatisfactionRule) Code() string       { return "A4" }
func (r *SatisfactionRule) Severity() Severity { return SeverityWarning }
func (r *SatisfactionRule) Text() string       { return "Satisfaction in the risk zone (7 or below)" }

func (r *SatisfactionRule) Check(a *Account) bool {
	return a.Satisfaction <= SatisfactionRiskMax
}

// NewAccountRule flags accounts still on the onboarding learning curve.
type NewAccountRule struct{}

func (r *NewAccountRule) Code() string       { return "A5" }
func (r *NewAccountRule) Severity() Severity { return SeverityWarning }
func (r *NewAccountRule) Text() string       { return "Account younger than 6 months" }

func (r *NewAccountRule) Check(a *Account) bool {
	return a.AccountAgeMonths < NewAccountMonths
}
