package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

func TestAssessmentSchema(t *testing.T) {
	set := question.NewSet(
		&question.Question{ID: "bankrupt", Type: "boolean",
			Assessment: &question.Assessment{PassIfIn: []any{false}, Discretionary: true}},
		&question.Question{ID: "termsAndConditions", Type: "boolean",
			Assessment: &question.Assessment{PassIfIn: []any{true}}},
		&question.Question{ID: "informational", Type: "text"},
		&question.Question{ID: "group", Type: "multiquestion", Questions: question.Nested{
			{ID: "employersInsurance", Type: "radios", Assessment: &question.Assessment{PassIfIn: []any{"Yes", "Not applicable"}}},
			{ID: "untouched", Type: "text", Assessment: &question.Assessment{Discretionary: true}},
		}},
	)

	assert.Equal(t, jsonschema.Schema{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title":   "g-cloud-12 Declaration Assessment Schema (Definite Pass Schema)",
		"type":    "object",
		"allOf": []any{
			jsonschema.Schema{"$ref": "#/definitions/baseline"},
			jsonschema.Schema{"properties": jsonschema.Schema{
				"bankrupt": jsonschema.Schema{"enum": []any{false}},
			}},
		},
		"definitions": jsonschema.Schema{
			"baseline": jsonschema.Schema{
				"$schema": "http://json-schema.org/draft-04/schema#",
				"title":   "g-cloud-12 Declaration Assessment Schema (Baseline Schema)",
				"type":    "object",
				"properties": jsonschema.Schema{
					"termsAndConditions": jsonschema.Schema{"enum": []any{true}},
					"employersInsurance": jsonschema.Schema{"enum": []any{"Yes", "Not applicable"}},
				},
			},
		},
	}, AssessmentSchema("g-cloud-12", set))
}
