// Package jsonschema holds the JSON-Schema-shaped documents produced by the
// compiler, the merge primitive used to compose them, and their encoding.
package jsonschema

import "sort"

// DraftURI is the meta-schema identifier stamped on generated documents.
const DraftURI = "http://json-schema.org/schema#"

// Schema is a JSON-Schema-shaped mapping. Nested values are Schema,
// map[string]any, []any, []string or JSON scalars.
type Schema map[string]any

// Empty returns a strict object schema with no properties yet.
func Empty(name string) Schema {
	return Schema{
		"title":                name + " Schema",
		"$schema":              DraftURI,
		"type":                 "object",
		"additionalProperties": false,
		"properties":           Schema{},
		"required":             []string{},
	}
}

// Properties returns the properties mapping, or nil when absent.
func (s Schema) Properties() Schema {
	m, _ := asMap(s["properties"])
	return m
}

// Required returns the required list as strings.
func (s Schema) Required() []string { return Strings(s["required"]) }

// Clone returns a deep copy of s.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	return clone(s).(Schema)
}

// Strings converts a []string or []any of strings into []string. Other
// element types are skipped.
func Strings(v any) []string {
	switch t := v.(type) {
	case []string:
		return append(make([]string, 0, len(t)), t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// SortedSet returns the sorted, deduplicated copy of names.
func SortedSet(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func asMap(v any) (Schema, bool) {
	switch t := v.(type) {
	case Schema:
		return t, true
	case map[string]any:
		return Schema(t), true
	default:
		return nil, false
	}
}

func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, true
	default:
		return nil, false
	}
}

func clone(v any) any {
	switch t := v.(type) {
	case Schema:
		out := make(Schema, len(t))
		for k, vv := range t {
			out[k] = clone(vv)
		}
		return out
	case map[string]any:
		out := make(Schema, len(t))
		for k, vv := range t {
			out[k] = clone(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = clone(t[i])
		}
		return out
	case []string:
		return append(make([]string, 0, len(t)), t...)
	default:
		return v
	}
}
