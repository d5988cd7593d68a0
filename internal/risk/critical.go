package risk

const (
	// OpenTicketsThreshold is the minimum unresolved ticket count for R1.
	OpenTicketsThreshold = 2

	// PaymentDelaysThreshold is the minimum delay count (last 3 cycles) for R2.
	PaymentDelaysThreshold = 2

	// VolumeCollapsePct is the variation (inclusive) at or below which R4 fires.
	VolumeCollapsePct = -30.0

	// ResolutionSLAHours is the average resolution time (exclusive) above which R5 fires.
	ResolutionSLAHours = 72.0
)

// OpenTicketsRule flags an unresolved operational backlog.
type OpenTicketsRule struct{}

func (r *OpenTicketsRule) Code() string       { return "R1" }
func (r *OpenTicketsRule) Severity() Severity { return SeverityCritical }
func (r *OpenTicketsRule) Text() string       { return "2 or more open tickets without resolution" }

func (r *OpenTicketsRule) Check(a *Account) bool {
	return a.OpenTickets >= OpenTicketsThreshold
}

// PaymentDelaysRule flags recurring payment inconsistency.
type PaymentDelaysRule struct{}

func (r *PaymentDelaysRule) Code() string       { return "R2" }
func (r *PaymentDelaysRule) Severity() Severity { return SeverityCritical }
func (r *PaymentDelaysRule) Text() string       { return "2 or more recent payment delays" }

func (r *PaymentDelaysRule) Check(a *Account) bool {
	return a.PaymentDelays >= PaymentDelaysThreshold
}

// CriticalComplaintRule flags a formal escalation.
type CriticalComplaintRule struct{}

func (r *CriticalComplaintRule) Code() string       { return "R3" }
func (r *CriticalComplaintRule) Severity() Severity { return SeverityCritical }
func (r *CriticalComplaintRule) Text() string       { return "Critical complaint or formal escalation" }

func (r *CriticalComplaintRule) Check(a *Account) bool {
	return a.CriticalComplaint
}

// VolumeCollapseRule flags a critical drop in service usage.
type VolumeCollapseRule struct{}

func (r *VolumeCollapseRule) Code() string       { return "R4" }
func (r *VolumeCollapseRule) Severity() Severity { return SeverityCritical }
func (r *VolumeCollapseRule) Text() string       { return "Usage drop of 30% or more" }

func (r *VolumeCollapseRule) Check(a *Account) bool {
	return a.VolumeChangePct <= VolumeCollapsePct
}

// ResolutionTimeRule flags an SLA breach on average resolution time.
type ResolutionTimeRule struct{}

func (r *ResolutionTimeRule) Code() string       { return "R5" }
func (r *ResolutionTimeRule) Severity() Severity { return SeverityCritical }
func (r *ResolutionTimeRule) Text() string       { return "Average resolution time above 72 hours" }

func (r *ResolutionTimeRule) Check(a *Account) bool {
	return a.AvgResolutionHours > ResolutionSLAHours
}
