package valedictory

import (
	"bytes"
	"context"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// CleanJSON decodes a JSON document and validates it with v. Numbers are
// decoded as json.Number so integer/float strictness survives decoding
// ("1" and "1.0" stay distinguishable). The document must be a JSON object.
func CleanJSON(ctx context.Context, v *Validator, data []byte) (map[string]any, error) {
	return CleanJSONReader(ctx, v, bytes.NewReader(data))
}

// CleanJSONReader is CleanJSON over an io.Reader.
func CleanJSONReader(ctx context.Context, v *Validator, r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &Error{Kind: CodeParseError, Message: err.Error()}
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, &Error{Kind: CodeInvalidType, Message: "expected a JSON object at the document root"}
	}
	return v.Clean(ctx, m)
}

// CleanYAML decodes a YAML document and validates it with v. The document
// must be a mapping; yaml.v3 surfaces numbers as int or float64, which the
// numeric fields accept with the same strictness rules.
func CleanYAML(ctx context.Context, v *Validator, data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Kind: CodeParseError, Message: err.Error()}
	}
	return v.Clean(ctx, doc)
}
