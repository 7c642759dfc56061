package rules

import (
	"unicode/utf8"
)

const (
	DefaultCharLength = 255
	MaxVarcharLength  = 65535
	MaxTextLength     = 65535
	MaxTinyTextLength = 255
)

// ValidateChar checks the character count of s against CHAR(length). A
// length of zero or less means DefaultCharLength.
func ValidateChar(s string, length int) Result {
	if length <= 0 {
		length = DefaultCharLength
	}
	if utf8.RuneCountInString(s) > length {
		return Invalid("%s: Value '%s' is too long for CHAR(%d).", CharColumn, s, length)
	}
	return Valid
}

// ValidateVarchar checks the character count of s against VARCHAR(length) and
// then its byte length against MaxVarcharLength. A length of zero or less
// means DefaultCharLength.
func ValidateVarchar(s string, length int) Result {
	if length <= 0 {
		length = DefaultCharLength
	}
	if utf8.RuneCountInString(s) > length {
		return Invalid("%s: Value '%s' is too long for VARCHAR(%d).", VarcharColumn, s, length)
	}
	if len(s) > MaxVarcharLength {
		return Invalid("%s: Value is too long for a VARCHAR type. Use MEDIUMTEXT.", VarcharColumn)
	}
	return Valid
}

// ValidateText limits s to MaxTextLength bytes.
func ValidateText(s string) Result {
	if len(s) > MaxTextLength {
		return Invalid("%s: Value for text field is over 65,535 characters.", TextColumn)
	}
	return Valid
}

// ValidateTinyText limits s to MaxTinyTextLength bytes.
func ValidateTinyText(s string) Result {
	if len(s) > MaxTinyTextLength {
		return Invalid("%s: Value for text field is over 255 characters.", TinyTextColumn)
	}
	return Valid
}
