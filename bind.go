package easydb

import (
	"encoding/json"
)

// BindParams rewrites the :name placeholders of sqlText with formatFunc and
// returns the positional arguments for them, taken from ps. Every missing
// name is reported in one error.
//
//	query, args, err := easydb.BindParams(easydb.UpsertStatement(ps, "users"), ps, db.Placeholder())
//	if err != nil {
//		return err
//	}
//	_, err = db.ExecContext(ctx, string(query), args...)
func BindParams(sqlText SQLQuery, ps Params, formatFunc FormatParamFunc) (query SQLQuery, args []any, err error) {
	var st Statement
	var errs []error

	st, err = ParsePlaceholders(sqlText, formatFunc)
	if err != nil {
		goto end
	}
	args = make([]any, 0, len(st.Names))
	for _, name := range st.Names {
		value, ok := ps.Lookup(name)
		if !ok {
			errs = append(errs, NewErr(ErrMissingParam, "name", name))
			continue
		}
		args = append(args, bindValue(value))
	}
	err = CombineErrs(errs)
	if err != nil {
		args = nil
		goto end
	}
	query = st.SQL
end:
	return query, args, err
}

// bindValue sends integral json.Numbers as integers and other numbers as
// strings. Everything else is left to database/sql's conversion.
func bindValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	return n.String()
}

// QuestionMark is the FormatParamFunc for MySQL and SQLite.
func QuestionMark(int) string {
	return "?"
}
