package rules

// DefaultMediumIntUnsigned is the signedness assumed for a MEDIUMINT column
// declared without SIGNED or UNSIGNED.
const DefaultMediumIntUnsigned = true

type intRange struct {
	min, max int64
}

var (
	tinyIntSigned     = intRange{min: -128, max: 127}
	tinyIntUnsigned   = intRange{min: 0, max: 255}
	smallIntSigned    = intRange{min: -32768, max: 32767}
	smallIntUnsigned  = intRange{min: 0, max: 65535}
	mediumIntSigned   = intRange{min: -8388608, max: 8388607}
	mediumIntUnsigned = intRange{min: 0, max: 16777215}
)

func (r intRange) contains(n int64) bool {
	return n >= r.min && n <= r.max
}

// ValidateInt reports whether v is a strict integer. The 32-bit range of an
// INT column is not enforced.
func ValidateInt(v any) Result {
	return integerOnly(IntColumn, v)
}

// ValidateBigInt reports whether v is a strict integer that fits in 64 bits.
// Signedness is not checked; see ParseColumn.
func ValidateBigInt(v any) Result {
	return integerOnly(BigIntColumn, v)
}

// ValidateTinyInt checks v against [-128,127], or [0,255] when unsigned.
func ValidateTinyInt(v any, unsigned bool) Result {
	if unsigned {
		return integerInRange(TinyIntColumn, v, unsigned, tinyIntUnsigned)
	}
	return integerInRange(TinyIntColumn, v, unsigned, tinyIntSigned)
}

// ValidateSmallInt checks v against [-32768,32767], or [0,65535] when
// unsigned.
func ValidateSmallInt(v any, unsigned bool) Result {
	if unsigned {
		return integerInRange(SmallIntColumn, v, unsigned, smallIntUnsigned)
	}
	return integerInRange(SmallIntColumn, v, unsigned, smallIntSigned)
}

// ValidateMediumInt checks v against [-8388608,8388607], or [0,16777215] when
// unsigned. Columns declared without a signedness modifier use
// DefaultMediumIntUnsigned.
func ValidateMediumInt(v any, unsigned bool) Result {
	if unsigned {
		return integerInRange(MediumIntColumn, v, unsigned, mediumIntUnsigned)
	}
	return integerInRange(MediumIntColumn, v, unsigned, mediumIntSigned)
}

func integerOnly(ct ColumnType, v any) Result {
	if _, ok := ParseInt(v); ok {
		return Valid
	}
	if s, ok := integerText(v); ok {
		return Invalid("%s: Value '%s' is out of range.", ct, s)
	}
	return notInteger(ct, v)
}

func integerInRange(ct ColumnType, v any, unsigned bool, rng intRange) (r Result) {
	var text string
	var isInt bool

	sign := "signed"
	if unsigned {
		sign = "unsigned"
	}
	n, ok := ParseInt(v)
	if !ok {
		text, isInt = integerText(v)
		if !isInt {
			r = notInteger(ct, v)
			goto end
		}
		r = Invalid("%s %s: Value '%s' is out of range.", ct, sign, text)
		goto end
	}
	if rng.contains(n) {
		r = Valid
		goto end
	}
	r = Invalid("%s %s: Value '%d' is out of range.", ct, sign, n)
end:
	return r
}

func notInteger(ct ColumnType, v any) Result {
	return Invalid("%s: Value '%s' is not an integer.", ct, display(v))
}
