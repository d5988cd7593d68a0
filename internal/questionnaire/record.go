package questionnaire

import (
	"encoding/json"
	"strconv"
)

// Value is a parsed answer. Only the member matching Kind is meaningful.
type Value struct {
	Kind Kind
	Num  float64
	Bool bool
	Text string
}

// NumberValue wraps a numeric answer.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// BoolValue wraps a yes/no answer.
func BoolValue(b bool) Value { return Value{Kind: KindYesNo, Bool: b} }

// TextValue wraps a free-text answer.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// String renders the value the way an operator would have typed it.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindYesNo:
		if v.Bool {
			return "yes"
		}
		return "no"
	default:
		return v.Text
	}
}

// MarshalJSON encodes the value as a plain JSON number, bool or string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindYesNo:
		return json.Marshal(v.Bool)
	default:
		return json.Marshal(v.Text)
	}
}

// Record holds the answers collected so far, keyed by field.
type Record map[Key]Value

// Complete reports whether every field has a value of the right kind.
func (r Record) Complete() bool {
	return len(r.Missing()) == 0
}

// Missing returns the keys that still need an answer, in field order.
func (r Record) Missing() []Key {
	var missing []Key
	for _, f := range fields {
		v, ok := r[f.Key]
		if !ok || v.Kind != f.Kind {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

// Number returns the numeric answer for key (0 if absent).
func (r Record) Number(key Key) float64 {
	return r[key].Num
}

// Bool returns the yes/no answer for key (false if absent).
func (r Record) Bool(key Key) bool {
	return r[key].Bool
}

// Text returns the free-text answer for key ("" if absent).
func (r Record) Text(key Key) string {
	return r[key].Text
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
