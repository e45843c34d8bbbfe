package jsonschema

import (
	"fmt"

	frameschema "github.com/reoring/frameschema"
)

// Merge deep-merges b into a copy of a. Mapping values recurse, list values
// concatenate in order without deduplication and any other value is
// overwritten by b's. Neither operand is modified.
//
// Both operands must be mappings, and a mapping or list in a can only be
// merged with a value of the same shape; anything else is a type_mismatch.
func Merge(a, b any) (Schema, error) {
	am, aok := asMap(a)
	bm, bok := asMap(b)
	if !aok || !bok {
		return nil, &frameschema.Error{
			Code:    frameschema.CodeTypeMismatch,
			Message: fmt.Sprintf("cannot merge %s and %s", shapeOf(a), shapeOf(b)),
		}
	}
	return mergeAt("", am, bm)
}

func mergeAt(path string, a, b Schema) (Schema, error) {
	out := make(Schema, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		at := path + "/" + k
		switch cur := out[k].(type) {
		case Schema, map[string]any:
			dm, _ := asMap(cur)
			sm, ok := asMap(v)
			if !ok {
				return nil, mismatch(at, cur, v)
			}
			m, err := mergeAt(at, dm, sm)
			if err != nil {
				return nil, err
			}
			out[k] = m
		case []string, []any:
			l, err := concat(at, cur, v)
			if err != nil {
				return nil, err
			}
			out[k] = l
		default:
			out[k] = clone(v)
		}
	}
	return out, nil
}

func concat(path string, a, b any) (any, error) {
	if as, ok := a.([]string); ok {
		if bs, ok := b.([]string); ok {
			out := make([]string, 0, len(as)+len(bs))
			out = append(out, as...)
			return append(out, bs...), nil
		}
	}
	al, _ := asList(a)
	bl, ok := asList(b)
	if !ok {
		return nil, mismatch(path, a, b)
	}
	out := make([]any, 0, len(al)+len(bl))
	out = append(out, al...)
	for _, v := range bl {
		out = append(out, clone(v))
	}
	return out, nil
}

func mismatch(path string, a, b any) error {
	return &frameschema.Error{
		Code:    frameschema.CodeTypeMismatch,
		Message: fmt.Sprintf("cannot merge %s into %s at %s", shapeOf(b), shapeOf(a), path),
	}
}

func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case Schema, map[string]any:
		return "mapping"
	case []any, []string:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
