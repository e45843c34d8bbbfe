package compiler

import (
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

const (
	draft07 = "http://json-schema.org/draft-07/schema#"
	draft04 = "http://json-schema.org/draft-04/schema#"
)

// AssessmentSchema builds the "definite pass" schema of a framework
// declaration. Questions with assessment.passIfIn restrict their answer to
// those values; baseline questions live in definitions.baseline and
// discretionary ones sit beside the reference.
//
// Top-level questions and the nested questions of multiquestions are
// considered.
func AssessmentSchema(framework string, set *question.Set) jsonschema.Schema {
	baseline := jsonschema.Schema{}
	discretionary := jsonschema.Schema{}
	for _, q := range set.All() {
		candidates := []*question.Question{q}
		if k, _ := q.Kind(); k == question.KindMultiquestion {
			candidates = q.Questions
		}
		for _, c := range candidates {
			a := c.Assessment
			if a == nil || a.PassIfIn == nil {
				continue
			}
			p := jsonschema.Schema{"enum": append([]any{}, a.PassIfIn...)}
			if a.Discretionary {
				discretionary[c.ID] = p
			} else {
				baseline[c.ID] = p
			}
		}
	}

	return jsonschema.Schema{
		"$schema": draft07,
		"title":   framework + " Declaration Assessment Schema (Definite Pass Schema)",
		"type":    "object",
		"allOf": []any{
			jsonschema.Schema{"$ref": "#/definitions/baseline"},
			jsonschema.Schema{"properties": discretionary},
		},
		"definitions": jsonschema.Schema{
			"baseline": jsonschema.Schema{
				"$schema":    draft04,
				"title":      framework + " Declaration Assessment Schema (Baseline Schema)",
				"type":       "object",
				"properties": baseline,
			},
		},
	}
}
