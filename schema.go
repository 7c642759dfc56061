package easydb

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/mikeschinkel/go-easydb/rules"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	tablePattern      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

// SchemaColumn declares one column of a Schema.
type SchemaColumn struct {
	Name   Identifier
	Column rules.Column
}

// Schema is the set of columns a table accepts. It is the whitelist for
// FilterColumns and the source of the rules each value is checked against.
type Schema struct {
	table   string
	columns []SchemaColumn
	index   map[Identifier]int
	metrics *Metrics
}

// NewSchema checks that table and every column name are plain identifiers and
// that no name repeats.
func NewSchema(table string, columns ...SchemaColumn) (s *Schema, err error) {
	var errs []error

	if !tablePattern.MatchString(table) {
		errs = append(errs, NewErr(ErrInvalidSchema, "table", table))
	}
	s = &Schema{
		table:   table,
		columns: columns,
		index:   make(map[Identifier]int, len(columns)),
	}
	for i, c := range columns {
		if !identifierPattern.MatchString(string(c.Name)) {
			errs = append(errs, NewErr(ErrInvalidSchema, "column", c.Name))
			continue
		}
		if _, dup := s.index[c.Name]; dup {
			errs = append(errs, NewErr(ErrInvalidSchema, "duplicate_column", c.Name))
			continue
		}
		s.index[c.Name] = i
	}
	err = CombineErrs(errs)
	if err != nil {
		s = nil
	}
	return s, err
}

type schemaFile struct {
	Table   string `yaml:"table"`
	Columns []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"columns"`
}

// ParseSchema reads a YAML schema:
//
//	table: users
//	columns:
//	  - name: id
//	    type: INT UNSIGNED
//	  - name: email
//	    type: VARCHAR(255)
func ParseSchema(data []byte) (*Schema, error) {
	var sf schemaFile
	var errs []error

	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	columns := make([]SchemaColumn, 0, len(sf.Columns))
	for _, c := range sf.Columns {
		col, err := rules.ParseColumn(c.Type)
		if err != nil {
			errs = append(errs, NewErr(ErrInvalidSchema, "column", c.Name, err))
			continue
		}
		columns = append(columns, SchemaColumn{Name: Identifier(c.Name), Column: col})
	}
	if err := CombineErrs(errs); err != nil {
		return nil, err
	}
	return NewSchema(sf.Table, columns...)
}

func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return ParseSchema(data)
}

// WithMetrics returns a copy of s that records each check in m.
func (s *Schema) WithMetrics(m *Metrics) *Schema {
	c := *s
	c.metrics = m
	return &c
}

func (s *Schema) Table() string {
	return s.table
}

// Columns returns the column names in declaration order.
func (s *Schema) Columns() []Identifier {
	names := make([]Identifier, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}

func (s *Schema) Lookup(name Identifier) (col rules.Column, ok bool) {
	i, ok := s.index[name]
	if !ok {
		return col, false
	}
	return s.columns[i].Column, true
}

// Filter drops every entry of ps that is not a column of s.
func (s *Schema) Filter(ps Params) Params {
	return FilterColumns(ps, s.Columns())
}

// Validate checks every entry of ps that names a column of s and returns one
// error listing all invalid values. Unknown names are ignored.
func (s *Schema) Validate(ps Params) error {
	var errs []error
	for _, p := range ps {
		col, ok := s.Lookup(p.Name)
		if !ok {
			continue
		}
		r := col.Validate(p.Value)
		s.metrics.observe(s.table, col.Type, r)
		if r.OK() {
			continue
		}
		errs = append(errs, NewErr(ErrInvalidColumn, "column", p.Name, r.Err()))
	}
	return CombineErrs(errs)
}

// Upsert filters ps to the schema's columns, validates what remains and
// renders the REPLACE INTO statement for it. The filtered Params are returned
// for binding.
func (s *Schema) Upsert(ps Params) (query SQLQuery, filtered Params, err error) {
	filtered = s.Filter(ps)
	if len(filtered) == 0 {
		err = NewErr(ErrMissingParam, "table", s.table, "reason", "no schema columns given")
		goto end
	}
	err = s.Validate(filtered)
	if err != nil {
		filtered = nil
		goto end
	}
	query = UpsertStatement(filtered, s.table)
end:
	return query, filtered, err
}
