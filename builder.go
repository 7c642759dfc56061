package easydb

import (
	"strings"
	"time"
)

// TimestampLayout is the MySQL DATETIME text form.
const TimestampLayout = "2006-01-02 15:04:05"

// ColumnList renders each name as a backtick quoted identifier, comma
// separated, in the order of ps. Names are not escaped.
func ColumnList(ps Params) string {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('`')
		sb.WriteString(string(p.Name))
		sb.WriteByte('`')
	}
	return sb.String()
}

// PlaceholderList renders each name as a :name placeholder in the same order
// as ColumnList.
func PlaceholderList(ps Params) string {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte(':')
		sb.WriteString(string(p.Name))
	}
	return sb.String()
}

// UpsertStatement renders
//
//	REPLACE INTO <table> (<columns>) VALUES (<placeholders>)
//
// table is inserted verbatim. It is a formatting helper, not an injection
// guard: table and column names must come from trusted code.
func UpsertStatement(ps Params, table string) SQLQuery {
	var sb strings.Builder
	sb.WriteString("REPLACE INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(ColumnList(ps))
	sb.WriteString(") VALUES (")
	sb.WriteString(PlaceholderList(ps))
	sb.WriteString(")")
	return SQLQuery(sb.String())
}

// FilterColumns returns the entries of ps whose name is in allowed, in their
// original order. Other entries are dropped without error.
func FilterColumns(ps Params, allowed []Identifier) (out Params) {
	set := make(map[Identifier]struct{}, len(allowed))
	for _, name := range allowed {
		set[name] = struct{}{}
	}
	out = make(Params, 0, len(ps))
	for _, p := range ps {
		if _, ok := set[p.Name]; !ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CurrentTimestamp returns the local wall-clock time in TimestampLayout.
func CurrentTimestamp() string {
	return FormatTimestamp(time.Now())
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
