package questionnaire

import "fmt"

// Outcome describes what happened to a submitted answer.
type Outcome struct {
	// Field is the field the answer was submitted for.
	Field Field

	// Accepted is false when the parser rejected the answer. The builder
	// does not advance and nothing is recorded in that case.
	Accepted bool

	// Value is the parsed answer (zero when rejected).
	Value Value

	// Retry is the re-prompt to show after a rejection.
	Retry string

	// Next is the field that now awaits an answer. Only set when accepted
	// and the record is not yet complete.
	Next *Field

	// Complete is true when this answer filled the last field.
	Complete bool
}

// Builder walks the interview fields one at a time and accumulates a
// record. It is owned by a single collector; it is not safe for concurrent use.
type Builder struct {
	pos    int
	record Record
}

// NewBuilder returns a builder positioned at the first field.
func NewBuilder() *Builder {
	return &Builder{record: make(Record, FieldCount)}
}

// Reset discards all progress by returning a fresh builder. The receiver
// and any records it already handed out are left untouched.
func (b *Builder) Reset() *Builder {
	return NewBuilder()
}

// Current returns the field awaiting an answer. ok is false once the
// record is complete.
func (b *Builder) Current() (Field, bool) {
	if b.pos >= len(fields) {
		return Field{}, false
	}
	return fields[b.pos], true
}

// Position returns the 0-based index of the current field.
func (b *Builder) Position() int {
	return b.pos
}

// Len returns the total number of fields.
func (b *Builder) Len() int {
	return len(fields)
}

// Done reports whether every field has been answered.
func (b *Builder) Done() bool {
	return b.pos >= len(fields)
}

// Submit applies the current field's parser to raw. On rejection the
// position is unchanged; on acceptance the value is stored and the
// builder advances by one field.
func (b *Builder) Submit(raw string) Outcome {
	field, ok := b.Current()
	if !ok {
		return Outcome{}
	}

	v, ok := Parse(field.Kind, raw)
	if !ok {
		return Outcome{Field: field, Retry: RetryPrompt(field)}
	}

	b.record[field.Key] = v
	b.pos++

	out := Outcome{Field: field, Accepted: true, Value: v}
	if next, ok := b.Current(); ok {
		out.Next = &next
	} else {
		out.Complete = true
	}
	return out
}

// Record returns a copy of the collected answers. ok is true only when
// the record is complete and may be handed to the risk engine.
func (b *Builder) Record() (Record, bool) {
	rec := b.record.Clone()
	return rec, b.Done() && rec.Complete()
}

// RetryPrompt is the fixed message shown after an unparsable answer.
func RetryPrompt(f Field) string {
	return fmt.Sprintf("I couldn't understand your answer. Please try again.\n👉 %s", f.Prompt)
}
