package compiler

import (
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

// pseudoFields drive the UI only and are never validated.
var pseudoFields = []string{"id", "lot", "lotName"}

// Schema compiles a whole question set into the strict object schema titled
// "<name> Schema". Nothing is returned when any question fails.
func Schema(name string, set *question.Set) (jsonschema.Schema, error) {
	qs := set.Without(pseudoFields...).All()

	props := jsonschema.Schema{}
	extra := jsonschema.Schema{}
	for _, q := range qs {
		f, err := Question(q)
		if err != nil {
			return nil, err
		}
		for id, s := range f.Properties {
			props[id] = s
		}
		if extra, err = jsonschema.Merge(extra, f.Addition); err != nil {
			return nil, err
		}
		if k, _ := q.Kind(); k.Flattens() {
			continue
		}
		if req := q.RequiredFormFields(); len(req) > 0 {
			if extra, err = jsonschema.Merge(extra, jsonschema.Schema{"required": req}); err != nil {
				return nil, err
			}
		}
	}

	s := jsonschema.Empty(name)
	s["properties"] = props
	s, err := jsonschema.Merge(s, extra)
	if err != nil {
		return nil, err
	}
	s["required"] = jsonschema.SortedSet(s.Required())

	for _, c := range []jsonschema.Schema{AnyOf(qs), Dependencies(qs)} {
		if s, err = jsonschema.Merge(s, c); err != nil {
			return nil, err
		}
	}
	return s, nil
}
