package risk

import "github.com/abhisek/riskcheck/internal/questionnaire"

// Account is the typed view of a complete answer record that the rules read.
type Account struct {
	ClientType         string
	AccountAgeMonths   float64
	Tickets30d         float64
	TicketsPrevMonth   float64
	OpenTickets        float64
	AvgResolutionHours float64
	TicketType         string
	PaymentDelays      float64
	Renegotiations     bool
	VolumeChangePct    float64
	DemandSwings       bool
	Satisfaction       float64
	CriticalComplaint  bool
}

// AccountFrom projects a record onto an Account. The record must be
// complete; absent answers read as zero values.
func AccountFrom(rec questionnaire.Record) Account {
	return Account{
		ClientType:         rec.Text(questionnaire.KeyClientType),
		AccountAgeMonths:   rec.Number(questionnaire.KeyAccountAgeMonths),
		Tickets30d:         rec.Number(questionnaire.KeyTickets30d),
		TicketsPrevMonth:   rec.Number(questionnaire.KeyTicketsPrevMonth),
		OpenTickets:        rec.Number(questionnaire.KeyOpenTickets),
		AvgResolutionHours: rec.Number(questionnaire.KeyAvgResolutionHours),
		TicketType:         rec.Text(questionnaire.KeyTicketType),
		PaymentDelays:      rec.Number(questionnaire.KeyPaymentDelays),
		Renegotiations:     rec.Bool(questionnaire.KeyRenegotiations),
		VolumeChangePct:    rec.Number(questionnaire.KeyVolumeChangePct),
		DemandSwings:       rec.Bool(questionnaire.KeyDemandSwings),
		Satisfaction:       rec.Number(questionnaire.KeySatisfaction),
		CriticalComplaint:  rec.Bool(questionnaire.KeyCriticalComplaint),
	}
}
