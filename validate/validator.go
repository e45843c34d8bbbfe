// Package validate checks answer payloads against generated schemas.
package validate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	sjs "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/frameschema/jsonschema"
)

const resourceURL = "file:///frameschema/schema.json"

// Validator is a compiled schema.
type Validator struct {
	schema *sjs.Schema
}

// Compile prepares s for validation. Generated schemas use draft 7
// keywords, so $schema markers are dropped and draft 7 is assumed.
func Compile(s jsonschema.Schema) (*Validator, error) {
	doc := stripSchemaMarkers(s.Clone())
	data, err := jsonschema.Encode(doc)
	if err != nil {
		return nil, err
	}
	c := sjs.NewCompiler()
	c.Draft = sjs.Draft7
	if err := c.AddResource(resourceURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("validate: add schema: %w", err)
	}
	compiled, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("validate: compile schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks decoded JSON answers. It returns nil when they conform and
// the list of problems otherwise.
func (v *Validator) Validate(answers any) []string {
	err := v.schema.Validate(answers)
	if err == nil {
		return nil
	}
	var ve *sjs.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	return leafMessages(ve)
}

// ValidateJSON decodes data and validates it. Numbers keep their exact
// decimal text, so integer bounds are checked without float rounding.
func (v *Validator) ValidateJSON(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var answers any
	if err := dec.Decode(&answers); err != nil {
		return nil, fmt.Errorf("validate: decode answers: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("validate: decode answers: trailing data after the document")
	}
	return v.Validate(answers), nil
}

func leafMessages(ve *sjs.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{fmt.Sprintf("%s: %s", loc, ve.Message)}
	}
	var out []string
	for _, c := range ve.Causes {
		out = append(out, leafMessages(c)...)
	}
	return out
}

func stripSchemaMarkers(v any) jsonschema.Schema {
	var walk func(any)
	walk = func(v any) {
		switch t := v.(type) {
		case jsonschema.Schema:
			delete(t, "$schema")
			for _, c := range t {
				walk(c)
			}
		case []any:
			for _, c := range t {
				walk(c)
			}
		}
	}
	walk(v)
	return v.(jsonschema.Schema)
}
