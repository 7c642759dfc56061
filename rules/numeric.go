package rules

import (
	"regexp"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ValidateDecimal checks v against DECIMAL(maxDigits,d).
//
// The canonical form of v, sign included, may be at most maxDigits characters long
// plus one for the decimal point, and may have at most d fractional digits.
// A value with no decimal point has zero fractional digits.
func ValidateDecimal(v any, maxDigits, d int) Result {
	return fixedPoint(DecimalColumn, v, maxDigits, d, false)
}

// ValidateFloat checks v like ValidateDecimal, except that a leading minus
// sign does not count toward maxDigits.
func ValidateFloat(v any, maxDigits, d int) Result {
	return fixedPoint(FloatColumn, v, maxDigits, d, true)
}

func fixedPoint(ct ColumnType, v any, maxDigits, d int, ignoreSign bool) (r Result) {
	var digits, fraction string
	var hasPoint bool
	var limit int

	s, ok := Canonical(v)
	s = strings.TrimPrefix(s, "+")
	if !ok || !decimalPattern.MatchString(s) {
		r = Invalid("%s: Value '%s' is not a decimal format.", ct, display(v))
		goto end
	}

	digits = s
	if ignoreSign {
		digits = strings.TrimPrefix(s, "-")
	}
	_, fraction, hasPoint = strings.Cut(digits, ".")

	limit = maxDigits
	if hasPoint {
		limit++
	}
	if len(digits) > limit {
		r = Invalid("%s: Value '%s' is longer than maximum (%d).", ct, s, maxDigits)
		goto end
	}
	if len(fraction) > d {
		r = Invalid("%s: Value '%s' decimals are longer than %d.", ct, s, d)
		goto end
	}
	r = Valid
end:
	return r
}
