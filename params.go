package easydb

import (
	"sort"
)

// Param is one named value destined for a column.
type Param struct {
	Name  Identifier
	Value any
}

// Params is an ordered set of named values. Names are unique; the order is
// the order columns and placeholders are rendered in.
type Params []Param

// NewParams builds Params from a map. Go maps are unordered, so names are
// sorted to keep rendering deterministic.
func NewParams(m map[string]any) (ps Params) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	ps = make(Params, len(names))
	for i, name := range names {
		ps[i] = Param{Name: Identifier(name), Value: m[name]}
	}
	return ps
}

// With returns ps with name set to value. An existing entry keeps its
// position; a new one is appended. ps itself is not modified.
func (ps Params) With(name Identifier, value any) Params {
	out := make(Params, len(ps), len(ps)+1)
	copy(out, ps)
	for i, p := range out {
		if p.Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Param{Name: name, Value: value})
}

func (ps Params) Lookup(name Identifier) (value any, ok bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

func (ps Params) Names() []Identifier {
	names := make([]Identifier, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Map copies ps into a map, losing the order.
func (ps Params) Map() map[string]any {
	m := make(map[string]any, len(ps))
	for _, p := range ps {
		m[string(p.Name)] = p.Value
	}
	return m
}
