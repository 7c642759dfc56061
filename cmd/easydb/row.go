package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikeschinkel/go-easydb"
)

// readRow reads a YAML or JSON object into Params, keeping the key order of
// the file. Numbers, dates and booleans keep their literal text, so 12.50
// and an unquoted 2024-01-15 are checked as written.
func readRow(path string) (ps easydb.Params, err error) {
	var doc yaml.Node
	var m *yaml.Node
	var data []byte

	data, err = os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("reading row file: %w", err)
		goto end
	}
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		err = fmt.Errorf("parsing row file %s: %w", path, err)
		goto end
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		err = fmt.Errorf("row file %s: expected an object of column values", path)
		goto end
	}
	m = doc.Content[0]
	ps = make(easydb.Params, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		var v any
		v, err = scalarValue(m.Content[i+1])
		if err != nil {
			err = fmt.Errorf("row file %s: column %s: %w", path, m.Content[i].Value, err)
			goto end
		}
		ps = ps.With(easydb.Identifier(m.Content[i].Value), v)
	}
end:
	return ps, err
}

func scalarValue(n *yaml.Node) (v any, err error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: value is not a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!int", "!!float":
		v = json.Number(n.Value)
	case "!!null":
		v = nil
	case "!!str", "!!timestamp", "!!bool":
		v = n.Value
	default:
		err = n.Decode(&v)
	}
	return v, err
}
