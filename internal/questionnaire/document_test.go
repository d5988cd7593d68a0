package questionnaire

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `{
  "clientType": "Logistics",
  "accountAgeMonths": 12,
  "tickets30d": "3",
  "ticketsPrevMonth": 2,
  "openTickets": 2,
  "avgResolutionHours": "10,5",
  "ticketType": "incident",
  "paymentDelays": 0,
  "renegotiations": "no",
  "volumeChangePct": "-25%",
  "demandSwings": false,
  "satisfaction": 9,
  "criticalComplaint": "sí"
}`

func TestLoadRecord_Valid(t *testing.T) {
	rec, err := LoadRecord(strings.NewReader(fullDocument))
	require.NoError(t, err)
	require.True(t, rec.Complete())

	assert.Equal(t, 3.0, rec.Number(KeyTickets30d))
	assert.Equal(t, 10.5, rec.Number(KeyAvgResolutionHours))
	assert.Equal(t, -25.0, rec.Number(KeyVolumeChangePct))
	assert.True(t, rec.Bool(KeyCriticalComplaint))
	assert.False(t, rec.Bool(KeyDemandSwings))
	assert.Equal(t, "Logistics", rec.Text(KeyClientType))
}

func TestLoadRecord_MissingField(t *testing.T) {
	doc := strings.Replace(fullDocument, `"openTickets": 2,`, "", 1)
	_, err := LoadRecord(strings.NewReader(doc))
	require.Error(t, err)

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadRecord_UnknownField(t *testing.T) {
	doc := strings.Replace(fullDocument, `"clientType"`, `"region": "north", "clientType"`, 1)
	_, err := LoadRecord(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadRecord_UnparsableAnswers(t *testing.T) {
	doc := strings.Replace(fullDocument, `"renegotiations": "no"`, `"renegotiations": "maybe"`, 1)
	doc = strings.Replace(doc, `"tickets30d": "3"`, `"tickets30d": "several"`, 1)

	_, err := LoadRecord(strings.NewReader(doc))
	require.Error(t, err)

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, []Key{KeyTickets30d, KeyRenegotiations}, recErr.Keys)
	assert.True(t, errors.Is(err, ErrUnparsable))
}

func TestLoadRecord_WrongJSONTypeForKind(t *testing.T) {
	doc := strings.Replace(fullDocument, `"demandSwings": false`, `"demandSwings": 1`, 1)
	_, err := LoadRecord(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadRecord_BlankText(t *testing.T) {
	doc := strings.Replace(fullDocument, `"ticketType": "incident"`, `"ticketType": "   "`, 1)
	_, err := LoadRecord(strings.NewReader(doc))

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, []Key{KeyTicketType}, recErr.Keys)
}

func TestLoadRecord_NotJSON(t *testing.T) {
	_, err := LoadRecord(strings.NewReader("openTickets=2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode JSON")
}

func TestDocumentSchema_RequiresEveryField(t *testing.T) {
	s := DocumentSchema()
	required, ok := s["required"].([]any)
	require.True(t, ok)
	assert.Len(t, required, FieldCount)
}

const fullYAML = `
clientType: Staff transport
accountAgeMonths: 4
tickets30d: 1
ticketsPrevMonth: 1
openTickets: 0
avgResolutionHours: "10,5"
ticketType: request
paymentDelays: 1
renegotiations: "no"
volumeChangePct: -20%
demandSwings: false
satisfaction: 8
criticalComplaint: "no"
`

func TestLoadRecordYAML_Valid(t *testing.T) {
	rec, err := LoadRecordYAML(strings.NewReader(fullYAML))
	require.NoError(t, err)
	require.True(t, rec.Complete())

	assert.Equal(t, 4.0, rec.Number(KeyAccountAgeMonths))
	assert.Equal(t, 10.5, rec.Number(KeyAvgResolutionHours))
	assert.Equal(t, -20.0, rec.Number(KeyVolumeChangePct))
	assert.Equal(t, "Staff transport", rec.Text(KeyClientType))
	assert.False(t, rec.Bool(KeyRenegotiations))
}

func TestLoadRecordYAML_Invalid(t *testing.T) {
	_, err := LoadRecordYAML(strings.NewReader("clientType: [unclosed"))
	require.Error(t, err)

	var recErr *RecordError
	assert.True(t, errors.As(err, &recErr))
}

func TestLoadRecord_TrailingContent(t *testing.T) {
	for _, tail := range []string{` {"openTickets": 99}`, ` garbage`, `}`} {
		_, err := LoadRecord(strings.NewReader(fullDocument + tail))
		require.Error(t, err, "tail %q", tail)

		var recErr *RecordError
		assert.True(t, errors.As(err, &recErr))
	}

	_, err := LoadRecord(strings.NewReader(fullDocument + "\n\n  "))
	assert.NoError(t, err)
}

func TestLoadRecordYAML_MultipleDocuments(t *testing.T) {
	_, err := LoadRecordYAML(strings.NewReader(fullYAML + "---\nopenTickets: 99\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single answer document")
}

func TestLoadRecord_NumericTextAnswer(t *testing.T) {
	doc := strings.Replace(fullDocument, `"clientType": "Logistics"`, `"clientType": 123`, 1)
	rec, err := LoadRecord(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "123", rec.Text(KeyClientType))

	yamlDoc := strings.Replace(fullYAML, "ticketType: request", "ticketType: 7.5", 1)
	rec, err = LoadRecordYAML(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, "7.5", rec.Text(KeyTicketType))
}
