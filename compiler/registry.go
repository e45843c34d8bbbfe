// Package compiler turns framework questions into JSON Schema.
//
// Each question is compiled into a Fragment: the properties it adds to the
// enclosing object and, for composite questions, an addition holding extra
// object-level constraints (required, allOf, ...). Schema assembles the
// fragments of a whole question set into one strict object schema.
package compiler

import (
	frameschema "github.com/reoring/frameschema"
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

// Fragment is the contribution of one question to its enclosing object.
// Addition is empty for simple kinds.
type Fragment struct {
	Properties jsonschema.Schema
	Addition   jsonschema.Schema
}

// Question compiles q, including assurance wrapping of every property it
// produces.
func Question(q *question.Question) (Fragment, error) {
	f, err := build(q)
	if err != nil {
		return Fragment{}, err
	}
	if q.AssuranceApproach == "" {
		return f, nil
	}
	for id, v := range f.Properties {
		w, err := withAssurance(q, v)
		if err != nil {
			return Fragment{}, err
		}
		f.Properties[id] = w
	}
	return f, nil
}

func build(q *question.Question) (Fragment, error) {
	k, ok := q.Kind()
	if !ok {
		return Fragment{}, frameschema.Errorf(frameschema.CodeUnknownQuestionType, q.ID, "type %q", q.Type)
	}
	switch k {
	case question.KindText, question.KindTextboxLarge:
		return single(q, textProperty(q)), nil
	case question.KindUpload:
		return single(q, jsonschema.Schema{"type": "string", "format": "uri"}), nil
	case question.KindDate:
		return single(q, jsonschema.Schema{"type": "string", "format": "date"}), nil
	case question.KindBoolean:
		return single(q, booleanProperty(q)), nil
	case question.KindCheckboxes:
		return single(q, checkboxesProperty(q)), nil
	case question.KindCheckboxTree:
		return single(q, checkboxTreeProperty(q)), nil
	case question.KindRadios:
		return single(q, jsonschema.Schema{"enum": question.Keys(q.Options)}), nil
	case question.KindList:
		return single(q, listProperty(q)), nil
	case question.KindBooleanList:
		return single(q, booleanListProperty(q)), nil
	case question.KindPricing:
		return Fragment{Properties: pricingProperties(q), Addition: jsonschema.Schema{}}, nil
	case question.KindNumber:
		return single(q, numberProperty(q)), nil
	case question.KindMultiquestion:
		return flatMultiquestion(q)
	case question.KindDynamicList:
		return dynamicList(q)
	}
	return Fragment{}, frameschema.Errorf(frameschema.CodeUnknownQuestionType, q.ID, "no builder for %s", k)
}

func single(q *question.Question, s jsonschema.Schema) Fragment {
	return Fragment{
		Properties: jsonschema.Schema{q.ID: s},
		Addition:   jsonschema.Schema{},
	}
}

// minCount is the minimum length of an answer: optional questions accept
// empty answers.
func minCount(q *question.Question) int {
	if q.Optional {
		return 0
	}
	return 1
}

func textProperty(q *question.Question) jsonschema.Schema {
	s := jsonschema.Schema{
		"type":      "string",
		"minLength": minCount(q),
	}
	if q.Limits.Format != "" {
		s["format"] = q.Limits.Format
	}
	for k, v := range ParseLimits(q, false) {
		s[k] = v
	}
	return s
}

func booleanProperty(q *question.Question) jsonschema.Schema {
	if q.RequiredValue != nil {
		return jsonschema.Schema{"enum": []any{q.RequiredValue}}
	}
	return jsonschema.Schema{"type": "boolean"}
}

func checkboxesProperty(q *question.Question) jsonschema.Schema {
	maxItems := len(q.Options)
	if q.NumberOfItems != nil {
		maxItems = *q.NumberOfItems
	}
	return jsonschema.Schema{
		"type":        "array",
		"uniqueItems": true,
		"minItems":    minCount(q),
		"maxItems":    maxItems,
		"items":       jsonschema.Schema{"enum": question.Keys(q.Options)},
	}
}

func checkboxTreeProperty(q *question.Question) jsonschema.Schema {
	s := jsonschema.Schema{
		"type":        "array",
		"uniqueItems": true,
		"minItems":    minCount(q),
		"items":       jsonschema.Schema{"enum": sortedValues(question.Keys(question.Leaves(q.Options)))},
	}
	// the size of the tree says nothing useful about how many leaves to allow
	if q.NumberOfItems != nil {
		s["maxItems"] = *q.NumberOfItems
	}
	return s
}

const (
	listItemMaxLength = 100
	listItemMaxWords  = 10
	listMaxItems      = 10
)

func listProperty(q *question.Question) jsonschema.Schema {
	items := jsonschema.Schema{
		"type":      "string",
		"maxLength": listItemMaxLength,
		"pattern":   WordPattern(listItemMaxWords),
	}
	for k, v := range ParseLimits(q, true) {
		items[k] = v
	}
	return jsonschema.Schema{
		"type":     "array",
		"minItems": minCount(q),
		"maxItems": itemCap(q),
		"items":    items,
	}
}

func booleanListProperty(q *question.Question) jsonschema.Schema {
	return jsonschema.Schema{
		"type":     "array",
		"minItems": minCount(q),
		"maxItems": itemCap(q),
		"items":    jsonschema.Schema{"type": "boolean"},
	}
}

func itemCap(q *question.Question) int {
	if q.NumberOfItems != nil {
		return *q.NumberOfItems
	}
	return listMaxItems
}

const defaultNumberMax = 100

func numberProperty(q *question.Question) jsonschema.Schema {
	l := q.Limits
	minimum, maximum := 0.0, float64(defaultNumberMax)
	if l.MinValue != nil {
		minimum = *l.MinValue
	}
	if l.MaxValue != nil {
		maximum = *l.MaxValue
	}
	if l.IntegerOnly {
		return jsonschema.Schema{"type": "integer", "minimum": minimum, "maximum": maximum}
	}
	return jsonschema.Schema{"type": "number", "minimum": minimum, "exclusiveMaximum": maximum}
}
