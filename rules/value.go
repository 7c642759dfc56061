package rules

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// intPattern is the strict integer form: optional sign, no leading zeros,
// no whitespace, no decimal point.
var intPattern = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)

// Canonical renders v in the string form validators compare against.
//
// Strings, []byte and json.Number are used as-is. Integer kinds render in
// base 10. Floats render in the shortest form that round-trips, never with an
// exponent, so 12.5 becomes "12.5" and 3.0 becomes "3". Any other type is not
// a column value and reports ok == false.
func Canonical(v any) (s string, ok bool) {
	ok = true
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	case json.Number:
		s = t.String()
	case int:
		s = strconv.FormatInt(int64(t), 10)
	case int8:
		s = strconv.FormatInt(int64(t), 10)
	case int16:
		s = strconv.FormatInt(int64(t), 10)
	case int32:
		s = strconv.FormatInt(int64(t), 10)
	case int64:
		s = strconv.FormatInt(t, 10)
	case uint:
		s = strconv.FormatUint(uint64(t), 10)
	case uint8:
		s = strconv.FormatUint(uint64(t), 10)
	case uint16:
		s = strconv.FormatUint(uint64(t), 10)
	case uint32:
		s = strconv.FormatUint(uint64(t), 10)
	case uint64:
		s = strconv.FormatUint(t, 10)
	case float32:
		s = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		ok = false
	}
	return s, ok
}

// display is the value as it appears inside a message.
func display(v any) string {
	s, ok := Canonical(v)
	if ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// integerText returns the canonical form of v when it is written as a strict
// integer, whether or not it fits in int64.
func integerText(v any) (s string, ok bool) {
	s, ok = Canonical(v)
	if !ok || !intPattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// ParseInt applies the strict integer rules shared by the integer
// validators. Integral floats are accepted; values outside int64 are not.
func ParseInt(v any) (n int64, ok bool) {
	var s string
	var err error

	s, ok = Canonical(v)
	if !ok {
		goto end
	}
	if !intPattern.MatchString(s) {
		ok = false
		goto end
	}
	n, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		n, ok = 0, false
		goto end
	}
end:
	return n, ok
}
