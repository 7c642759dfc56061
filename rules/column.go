package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrUnknownColumnType = errors.New("unknown column type")
	ErrInvalidColumnDecl = errors.New("invalid column declaration")
)

type ColumnType string

const (
	IntColumn       ColumnType = "INT"
	IntegerColumn   ColumnType = "INTEGER"
	TinyIntColumn   ColumnType = "TINYINT"
	SmallIntColumn  ColumnType = "SMALLINT"
	MediumIntColumn ColumnType = "MEDIUMINT"
	BigIntColumn    ColumnType = "BIGINT"
	DateColumn      ColumnType = "DATE"
	TimeColumn      ColumnType = "TIME"
	TimestampColumn ColumnType = "TIMESTAMP"
	DateTimeColumn  ColumnType = "DATETIME"
	CharColumn      ColumnType = "CHAR"
	VarcharColumn   ColumnType = "VARCHAR"
	DecimalColumn   ColumnType = "DECIMAL"
	NumericColumn   ColumnType = "NUMERIC"
	FloatColumn     ColumnType = "FLOAT"
	TextColumn      ColumnType = "TEXT"
	TinyTextColumn  ColumnType = "TINYTEXT"
)

// Default precision and scale of a DECIMAL declared without them.
const (
	DefaultDecimalPrecision = 10
	DefaultDecimalScale     = 0
)

// Normalize folds aliases onto the type that validates them.
func (ct ColumnType) Normalize() ColumnType {
	switch ct {
	case IntegerColumn:
		return IntColumn
	case DateTimeColumn:
		return TimestampColumn
	case NumericColumn:
		return DecimalColumn
	}
	return ct
}

func (ct ColumnType) isInteger() bool {
	switch ct {
	case IntColumn, TinyIntColumn, SmallIntColumn, MediumIntColumn, BigIntColumn:
		return true
	}
	return false
}

// Column is a parsed column declaration such as VARCHAR(64) or
// TINYINT UNSIGNED.
type Column struct {
	Type      ColumnType
	Unsigned  bool // enforced for TINYINT, SMALLINT and MEDIUMINT
	Length    int // CHAR and VARCHAR
	Precision int // DECIMAL and FLOAT total digits
	Scale     int // DECIMAL and FLOAT fractional digits
}

var declPattern = regexp.MustCompile(`(?i)^\s*([a-z]+)\s*(?:\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\))?\s*(unsigned|signed)?\s*$`)

// ParseColumn parses a MySQL style column declaration.
//
// Integer display widths such as INT(11) are accepted and ignored.
// UNSIGNED is recorded but not enforced for INT and BIGINT, whose validators
// only check that the value is an integer that fits in 64 bits. A
// MEDIUMINT without a signedness modifier is unsigned, see
// DefaultMediumIntUnsigned. DECIMAL defaults to (10,0); FLOAT requires both
// precision and scale.
func ParseColumn(decl string) (c Column, err error) {
	var m []string
	var hasArgs, hasScale bool
	var sign string

	m = declPattern.FindStringSubmatch(decl)
	if m == nil {
		err = fmt.Errorf("%w: %q", ErrInvalidColumnDecl, decl)
		goto end
	}
	c.Type = ColumnType(strings.ToUpper(m[1])).Normalize()
	hasArgs = m[2] != ""
	hasScale = m[3] != ""
	sign = strings.ToUpper(m[4])

	if sign != "" && !c.Type.isInteger() && c.Type != DecimalColumn && c.Type != FloatColumn {
		err = fmt.Errorf("%w: %s cannot be %s", ErrInvalidColumnDecl, c.Type, sign)
		goto end
	}
	c.Unsigned = sign == "UNSIGNED"

	switch c.Type {
	case IntColumn, TinyIntColumn, SmallIntColumn, BigIntColumn:
		if hasScale {
			err = fmt.Errorf("%w: %q", ErrInvalidColumnDecl, decl)
		}
	case MediumIntColumn:
		if hasScale {
			err = fmt.Errorf("%w: %q", ErrInvalidColumnDecl, decl)
			goto end
		}
		if sign == "" {
			c.Unsigned = DefaultMediumIntUnsigned
		}
	case CharColumn, VarcharColumn:
		if hasScale {
			err = fmt.Errorf("%w: %q", ErrInvalidColumnDecl, decl)
			goto end
		}
		c.Length = DefaultCharLength
		if hasArgs {
			c.Length, _ = strconv.Atoi(m[2])
		}
		if c.Length == 0 {
			err = fmt.Errorf("%w: %s length must be positive", ErrInvalidColumnDecl, c.Type)
		}
	case DecimalColumn, FloatColumn:
		c.Precision, c.Scale = DefaultDecimalPrecision, DefaultDecimalScale
		if c.Type == FloatColumn && !hasScale {
			err = fmt.Errorf("%w: FLOAT requires (precision,scale)", ErrInvalidColumnDecl)
			goto end
		}
		if hasArgs {
			c.Precision, _ = strconv.Atoi(m[2])
			c.Scale = 0
		}
		if hasScale {
			c.Scale, _ = strconv.Atoi(m[3])
		}
		if c.Precision == 0 || c.Scale > c.Precision {
			err = fmt.Errorf("%w: %s(%d,%d)", ErrInvalidColumnDecl, c.Type, c.Precision, c.Scale)
		}
	case DateColumn, TextColumn, TinyTextColumn:
		if hasArgs {
			err = fmt.Errorf("%w: %s takes no arguments", ErrInvalidColumnDecl, c.Type)
		}
	case TimeColumn, TimestampColumn:
		// Fractional second precision is accepted and ignored.
		if hasScale {
			err = fmt.Errorf("%w: %q", ErrInvalidColumnDecl, decl)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownColumnType, m[1])
	}
end:
	if err != nil {
		c = Column{}
	}
	return c, err
}

// MustParseColumn is ParseColumn for declarations known at compile time.
func MustParseColumn(decl string) Column {
	c, err := ParseColumn(decl)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the declaration in canonical form.
func (c Column) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Type))
	switch c.Type {
	case CharColumn, VarcharColumn:
		fmt.Fprintf(&sb, "(%d)", c.Length)
	case DecimalColumn, FloatColumn:
		fmt.Fprintf(&sb, "(%d,%d)", c.Precision, c.Scale)
	}
	switch {
	case c.Unsigned:
		sb.WriteString(" UNSIGNED")
	case c.Type == MediumIntColumn:
		sb.WriteString(" SIGNED")
	}
	return sb.String()
}

// Validate checks v with the validator for the column's type. Text and
// temporal columns compare the Canonical form of v.
func (c Column) Validate(v any) (r Result) {
	var s string
	var ok bool

	switch c.Type {
	case IntColumn:
		r = ValidateInt(v)
		goto end
	case TinyIntColumn:
		r = ValidateTinyInt(v, c.Unsigned)
		goto end
	case SmallIntColumn:
		r = ValidateSmallInt(v, c.Unsigned)
		goto end
	case MediumIntColumn:
		r = ValidateMediumInt(v, c.Unsigned)
		goto end
	case BigIntColumn:
		r = ValidateBigInt(v)
		goto end
	case DecimalColumn:
		r = ValidateDecimal(v, c.Precision, c.Scale)
		goto end
	case FloatColumn:
		r = ValidateFloat(v, c.Precision, c.Scale)
		goto end
	}

	s, ok = Canonical(v)
	if !ok {
		r = Invalid("%s: Value '%s' is not a scalar value.", c.Type, display(v))
		goto end
	}
	switch c.Type {
	case DateColumn:
		r = ValidateDate(s)
	case TimeColumn:
		r = ValidateTime(s)
	case TimestampColumn:
		r = ValidateTimestamp(s)
	case CharColumn:
		r = ValidateChar(s, c.Length)
	case VarcharColumn:
		r = ValidateVarchar(s, c.Length)
	case TextColumn:
		r = ValidateText(s)
	case TinyTextColumn:
		r = ValidateTinyText(s)
	default:
		r = Invalid("%s: Value '%s' has no validator for this column type.", c.Type, s)
	}
end:
	return r
}
