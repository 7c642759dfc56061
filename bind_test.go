package easydb

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBindParams(t *testing.T) {
	ps := Params{
		{Name: "id", Value: 7},
		{Name: "email", Value: "a@example.com"},
		{Name: "score", Value: json.Number("12")},
		{Name: "ratio", Value: json.Number("0.5")},
	}

	query, args, err := BindParams(UpsertStatement(ps, "users"), ps, QuestionMark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantSQL := SQLQuery("REPLACE INTO users (`id`, `email`, `score`, `ratio`) VALUES (?, ?, ?, ?)")
	if query != wantSQL {
		t.Errorf("SQL mismatch:\nexpected: %q\nactual:   %q", wantSQL, query)
	}
	wantArgs := []any{7, "a@example.com", int64(12), "0.5"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %#v, want %#v", args, wantArgs)
	}
}

func TestBindParams_Missing(t *testing.T) {
	_, args, err := BindParams("SELECT * FROM t WHERE a = :a AND b = :b AND c = :c", Params{{Name: "b", Value: 1}}, QuestionMark)
	if !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected error %v, got %v", ErrMissingParam, err)
	}
	if args != nil {
		t.Errorf("args should be nil on error, got %v", args)
	}
	for _, name := range []string{"name=a", "name=c"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
}

func TestBindParams_NilFormat(t *testing.T) {
	_, _, err := BindParams("SELECT :a", Params{{Name: "a", Value: 1}}, nil)
	if !errors.Is(err, ErrFormatParamFuncRequired) {
		t.Fatalf("expected error %v, got %v", ErrFormatParamFuncRequired, err)
	}
}
