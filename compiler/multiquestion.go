package compiler

import (
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

// flatMultiquestion lifts the nested questions into the enclosing object.
// The nested required fields are only forced when the multiquestion itself
// is mandatory.
func flatMultiquestion(q *question.Question) (Fragment, error) {
	props, add, err := nestedFragments(q)
	if err != nil {
		return Fragment{}, err
	}
	if !q.Optional {
		if req := q.NestedRequired(); len(req) > 0 {
			add, err = jsonschema.Merge(add, jsonschema.Schema{"required": req})
			if err != nil {
				return Fragment{}, err
			}
		}
	}
	return Fragment{Properties: props, Addition: add}, nil
}

// dynamicList collects the nested questions into the item schema of an array
// named after q. Item constraints hold for every entry, so the inner required
// list ignores whether the list itself is optional.
func dynamicList(q *question.Question) (Fragment, error) {
	props, add, err := nestedFragments(q)
	if err != nil {
		return Fragment{}, err
	}
	item, err := jsonschema.Merge(jsonschema.Schema{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             q.NestedRequired(),
	}, add)
	if err != nil {
		return Fragment{}, err
	}
	if len(item.Required()) == 0 {
		delete(item, "required")
	}
	return single(q, jsonschema.Schema{
		"type":     "array",
		"minItems": minCount(q),
		"items":    item,
	}), nil
}

// nestedFragments compiles every nested question of q. Nested additions are
// merged without their own required lists, which q recomputes through
// NestedRequired.
func nestedFragments(q *question.Question) (jsonschema.Schema, jsonschema.Schema, error) {
	props := jsonschema.Schema{}
	add := jsonschema.Schema{}
	for _, nq := range q.Questions {
		f, err := Question(nq)
		if err != nil {
			return nil, nil, err
		}
		for id, s := range f.Properties {
			props[id] = s
		}
		if len(f.Addition) == 0 {
			continue
		}
		extra := f.Addition.Clone()
		delete(extra, "required")
		if add, err = jsonschema.Merge(add, extra); err != nil {
			return nil, nil, err
		}
	}
	for _, nq := range q.Questions {
		if len(nq.Followup) == 0 {
			continue
		}
		f, err := followups(q, nq)
		if err != nil {
			return nil, nil, err
		}
		if add, err = jsonschema.Merge(add, f); err != nil {
			return nil, nil, err
		}
	}
	return props, add, nil
}
