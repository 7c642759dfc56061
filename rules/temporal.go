package rules

import (
	"regexp"
)

const (
	// dateExpr is calendar-naive: 2024-02-30 matches.
	dateExpr = `(19|20)\d{2}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])`

	// clockExpr allows the MySQL TIME hour range 0 to 838.
	clockExpr = `(\d{1,2}|[0-7]\d{2}|8[0-2]\d|83[0-8]):[0-5]\d:[0-5]\d`

	fractionExpr = `(\.\d{1,6})?`
)

var (
	datePattern      = regexp.MustCompile(`^` + dateExpr + `$`)
	timePattern      = regexp.MustCompile(`^-?` + clockExpr + `$`)
	timestampPattern = regexp.MustCompile(`^` + dateExpr + ` ` + clockExpr + fractionExpr + `$`)
)

// ValidateDate matches YYYY-MM-DD for years 1900 through 2099. Day of month
// is not checked against the month's length.
func ValidateDate(s string) Result {
	if !datePattern.MatchString(s) {
		return Invalid("%s: Value '%s' is not a valid date in format YYYY-MM-DD.", DateColumn, s)
	}
	return Valid
}

// ValidateTime matches [-]HHH:MM:SS with an hour of 0 to 838.
func ValidateTime(s string) Result {
	if !timePattern.MatchString(s) {
		return Invalid("%s: Value '%s' is not a valid time format.", TimeColumn, s)
	}
	return Valid
}

// ValidateTimestamp matches a date and an unsigned time separated by one
// space, with up to six optional fractional second digits.
func ValidateTimestamp(s string) Result {
	if !timestampPattern.MatchString(s) {
		return Invalid("%s: Value '%s' is not a valid timestamp.", TimestampColumn, s)
	}
	return Valid
}
