package rules

import (
	"errors"
	"math"
	"testing"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		name          string
		decl          string
		expected      Column
		expectedError error
	}{
		{name: "int", decl: "INT", expected: Column{Type: IntColumn}},
		{name: "integer alias with display width", decl: "integer(11)", expected: Column{Type: IntColumn}},
		{name: "tinyint unsigned", decl: "TINYINT UNSIGNED", expected: Column{Type: TinyIntColumn, Unsigned: true}},
		{name: "tinyint default signed", decl: "tinyint(4)", expected: Column{Type: TinyIntColumn}},
		{name: "smallint unsigned", decl: "smallint unsigned", expected: Column{Type: SmallIntColumn, Unsigned: true}},
		{name: "mediumint defaults unsigned", decl: "MEDIUMINT", expected: Column{Type: MediumIntColumn, Unsigned: true}},
		{name: "mediumint explicitly signed", decl: "MEDIUMINT SIGNED", expected: Column{Type: MediumIntColumn}},
		{name: "bigint", decl: "BIGINT(20) UNSIGNED", expected: Column{Type: BigIntColumn, Unsigned: true}},
		{name: "varchar", decl: "VARCHAR(64)", expected: Column{Type: VarcharColumn, Length: 64}},
		{name: "varchar spaced", decl: " varchar ( 64 ) ", expected: Column{Type: VarcharColumn, Length: 64}},
		{name: "char default length", decl: "CHAR", expected: Column{Type: CharColumn, Length: DefaultCharLength}},
		{name: "decimal", decl: "DECIMAL(5,2)", expected: Column{Type: DecimalColumn, Precision: 5, Scale: 2}},
		{name: "decimal precision only", decl: "DECIMAL(8)", expected: Column{Type: DecimalColumn, Precision: 8}},
		{name: "decimal defaults", decl: "DECIMAL", expected: Column{Type: DecimalColumn, Precision: 10}},
		{name: "numeric alias", decl: "NUMERIC(4, 1)", expected: Column{Type: DecimalColumn, Precision: 4, Scale: 1}},
		{name: "float", decl: "FLOAT(7,3)", expected: Column{Type: FloatColumn, Precision: 7, Scale: 3}},
		{name: "datetime alias", decl: "DATETIME", expected: Column{Type: TimestampColumn}},
		{name: "timestamp with fsp", decl: "TIMESTAMP(6)", expected: Column{Type: TimestampColumn}},
		{name: "date", decl: "date", expected: Column{Type: DateColumn}},
		{name: "text", decl: "TEXT", expected: Column{Type: TextColumn}},
		{name: "tinytext", decl: "TINYTEXT", expected: Column{Type: TinyTextColumn}},
		// Error cases
		{name: "unknown type", decl: "BLOB", expectedError: ErrUnknownColumnType},
		{name: "garbage", decl: "VARCHAR(", expectedError: ErrInvalidColumnDecl},
		{name: "empty", decl: "", expectedError: ErrInvalidColumnDecl},
		{name: "float without scale", decl: "FLOAT", expectedError: ErrInvalidColumnDecl},
		{name: "scale over precision", decl: "DECIMAL(2,3)", expectedError: ErrInvalidColumnDecl},
		{name: "zero length varchar", decl: "VARCHAR(0)", expectedError: ErrInvalidColumnDecl},
		{name: "unsigned text", decl: "TEXT UNSIGNED", expectedError: ErrInvalidColumnDecl},
		{name: "date with args", decl: "DATE(3)", expectedError: ErrInvalidColumnDecl},
		{name: "varchar with scale", decl: "VARCHAR(3,1)", expectedError: ErrInvalidColumnDecl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColumn(tt.decl)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c != tt.expected {
				t.Errorf("ParseColumn(%q) = %+v, want %+v", tt.decl, c, tt.expected)
			}
		})
	}
}

func TestColumn_StringRoundTrip(t *testing.T) {
	decls := []string{"INT", "TINYINT UNSIGNED", "MEDIUMINT SIGNED", "MEDIUMINT UNSIGNED", "VARCHAR(32)", "DECIMAL(5,2)", "FLOAT(6,1)", "TIMESTAMP"}
	for _, decl := range decls {
		t.Run(decl, func(t *testing.T) {
			c := MustParseColumn(decl)
			if c.String() != decl {
				t.Errorf("String() = %q, want %q", c.String(), decl)
			}
			again, err := ParseColumn(c.String())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if again != c {
				t.Errorf("round trip = %+v, want %+v", again, c)
			}
		})
	}
}

func TestColumn_Validate(t *testing.T) {
	tests := []struct {
		decl  string
		value any
		valid bool
	}{
		{decl: "INT UNSIGNED", value: -5, valid: true},
		{decl: "BIGINT UNSIGNED", value: uint64(math.MaxUint64), valid: false},
		{decl: "TINYINT UNSIGNED", value: 200, valid: true},
		{decl: "TINYINT", value: 200, valid: false},
		{decl: "SMALLINT", value: "-32768", valid: true},
		{decl: "MEDIUMINT", value: -1, valid: false},
		{decl: "INT", value: "7", valid: true},
		{decl: "BIGINT", value: "7.5", valid: false},
		{decl: "DECIMAL(5,2)", value: 12.34, valid: true},
		{decl: "FLOAT(5,2)", value: "-123.45", valid: true},
		{decl: "DATE", value: "2024-06-01", valid: true},
		{decl: "TIME", value: "25:00:00", valid: true},
		{decl: "DATETIME", value: "2024-06-01 25:00:00.5", valid: true},
		{decl: "CHAR(2)", value: "abc", valid: false},
		{decl: "CHAR(2)", value: 42, valid: true},
		{decl: "VARCHAR(3)", value: 1234, valid: false},
		{decl: "TEXT", value: []byte("hello"), valid: true},
		{decl: "TINYTEXT", value: struct{}{}, valid: false},
		{decl: "DATE", value: nil, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			r := MustParseColumn(tt.decl).Validate(tt.value)
			if r.OK() != tt.valid {
				t.Errorf("%s.Validate(%#v) = %q, want valid=%v", tt.decl, tt.value, r, tt.valid)
			}
		})
	}
}

func TestMustParseColumn_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an unknown column type")
		}
	}()
	MustParseColumn("GEOMETRY")
}
