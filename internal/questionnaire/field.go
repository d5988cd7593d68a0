package questionnaire

// Kind selects the parser applied to a field's raw answer.
type Kind int

const (
	KindNumber Kind = iota // Signed integer or decimal, e.g. "-25%" or "10,5"
	KindYesNo              // sí / no style answers
	KindText               // Any non-empty text
)

// String returns the kind name used in logs and answer documents.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindYesNo:
		return "yes/no"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Key identifies a field in an answer record.
type Key string

const (
	KeyClientType         Key = "clientType"
	KeyAccountAgeMonths   Key = "accountAgeMonths"
	KeyTickets30d         Key = "tickets30d"
	KeyTicketsPrevMonth   Key = "ticketsPrevMonth"
	KeyOpenTickets        Key = "openTickets"
	KeyAvgResolutionHours Key = "avgResolutionHours"
	KeyTicketType         Key = "ticketType"
	KeyPaymentDelays      Key = "paymentDelays"
	KeyRenegotiations     Key = "renegotiations"
	KeyVolumeChangePct    Key = "volumeChangePct"
	KeyDemandSwings       Key = "demandSwings"
	KeySatisfaction       Key = "satisfaction"
	KeyCriticalComplaint  Key = "criticalComplaint"
)

// Field is one question of the interview.
type Field struct {
	Key    Key
	Prompt string
	Kind   Kind
}

// fields is the interview in collection order. The previous-month ticket
// count exists so the ticket trend can be compared.
var fields = [...]Field{
	{Key: KeyClientType, Prompt: "Client type: Logistics / Staff transport / Corporate", Kind: KindText},
	{Key: KeyAccountAgeMonths, Prompt: "Account age (months). E.g. 10", Kind: KindNumber},
	{Key: KeyTickets30d, Prompt: "Number of tickets in the last 30 days. E.g. 5", Kind: KindNumber},
	{Key: KeyTicketsPrevMonth, Prompt: "Number of tickets in the previous month (for comparison). E.g. 3", Kind: KindNumber},
	{Key: KeyOpenTickets, Prompt: "Number of open / unresolved tickets. E.g. 2", Kind: KindNumber},
	{Key: KeyAvgResolutionHours, Prompt: "Average resolution time (hours). E.g. 80", Kind: KindNumber},
	{Key: KeyTicketType, Prompt: "Predominant ticket type: incident / request", Kind: KindText},
	{Key: KeyPaymentDelays, Prompt: "Payment delays in the last 3 billing cycles (0 to 3). E.g. 2", Kind: KindNumber},
	{Key: KeyRenegotiations, Prompt: "Any prior renegotiation history? (yes / no)", Kind: KindYesNo},
	{Key: KeyVolumeChangePct, Prompt: "Service volume change (%) vs previous period. E.g. -25 or 10", Kind: KindNumber},
	{Key: KeyDemandSwings, Prompt: "Any abrupt changes in demand? (yes / no)", Kind: KindYesNo},
	{Key: KeySatisfaction, Prompt: "Reported satisfaction level (1-10). E.g. 7", Kind: KindNumber},
	{Key: KeyCriticalComplaint, Prompt: "Recent critical complaints or formal escalation? (yes / no)", Kind: KindYesNo},
}

// Fields returns the interview fields in collection order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields[:])
	return out
}

// FieldCount is the number of answers a complete record holds.
const FieldCount = len(fields)

// LookupField returns the field definition for key.
func LookupField(key Key) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
