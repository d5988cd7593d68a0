package questionnaire

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

var (
	affirmatives = map[string]bool{"si": true, "sí": true, "s": true, "yes": true, "y": true}
	negatives    = map[string]bool{"no": true, "n": true}
)

// Parse converts a raw answer into a value of the given kind.
// The second return value is false when the answer is rejected.
func Parse(kind Kind, raw string) (Value, bool) {
	switch kind {
	case KindNumber:
		n, ok := ParseNumber(raw)
		if !ok {
			return Value{}, false
		}
		return NumberValue(n), true
	case KindYesNo:
		b, ok := ParseYesNo(raw)
		if !ok {
			return Value{}, false
		}
		return BoolValue(b), true
	case KindText:
		s, ok := ParseText(raw)
		if !ok {
			return Value{}, false
		}
		return TextValue(s), true
	default:
		return Value{}, false
	}
}

// ParseNumber extracts the first number in s. A decimal comma is accepted,
// so "10,5" parses as 10.5 and "-25%" as -25.
func ParseNumber(s string) (float64, bool) {
	normalized := strings.Replace(s, ",", ".", 1)
	match := numberPattern.FindString(normalized)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseYesNo accepts si/sí/s/yes/y and no/n, case-insensitively.
// Anything else is rejected rather than defaulted.
func ParseYesNo(s string) (bool, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if affirmatives[t] {
		return true, true
	}
	if negatives[t] {
		return false, true
	}
	return false, false
}

// ParseText returns the trimmed answer, rejecting blank input.
func ParseText(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", false
	}
	return t, true
}
