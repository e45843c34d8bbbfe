package jsonschema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Encode serializes s with sorted keys, two-space indentation and a trailing
// newline so generated files diff cleanly under version control.
func Encode(s Schema) ([]byte, error) {
	b, err := json.MarshalIndentWithOption(s, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return nil, fmt.Errorf("jsonschema: encode: %w", err)
	}
	return append(b, '\n'), nil
}

// Decode parses a JSON document into a Schema.
func Decode(data []byte) (Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("jsonschema: decode: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("jsonschema: decode: document is not an object")
	}
	return s, nil
}
