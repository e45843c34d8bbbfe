package compiler

import (
	frameschema "github.com/reoring/frameschema"
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

// followups builds one oneOf pair per followup target of trigger, all under
// a single allOf. Either the trigger holds a value outside the followup values
// and the target is null, or the trigger holds a followup value and both are
// required.
func followups(parent, trigger *question.Question) (jsonschema.Schema, error) {
	domain, err := followupDomain(trigger)
	if err != nil {
		return nil, err
	}
	k, _ := trigger.Kind()
	pairs := make([]any, 0, len(trigger.Followup))
	for _, id := range trigger.FollowupIDs() {
		target, ok := parent.Nested(id)
		if !ok {
			return nil, frameschema.Errorf(frameschema.CodeMissingFollowupTarget, trigger.ID,
				"followup %q is not a question of %q", id, parent.ID)
		}
		values := append([]any(nil), trigger.Followup[id]...)
		rest := complement(domain, values)

		var without, with jsonschema.Schema
		if k == question.KindCheckboxes {
			without = jsonschema.Schema{"items": jsonschema.Schema{"enum": rest}}
			with = jsonschema.Schema{"not": jsonschema.Schema{"items": jsonschema.Schema{"enum": rest}}}
		} else {
			without = jsonschema.Schema{"enum": rest}
			with = jsonschema.Schema{"enum": values}
		}

		present := jsonschema.Schema{
			"properties": jsonschema.Schema{trigger.ID: with},
		}
		req := append(trigger.RequiredFormFields(), target.RequiredFormFields()...)
		if len(req) > 0 {
			present["required"] = req
		}
		pairs = append(pairs, jsonschema.Schema{
			"oneOf": []any{
				jsonschema.Schema{
					"properties": jsonschema.Schema{
						trigger.ID: without,
						id:         jsonschema.Schema{"type": "null"},
					},
				},
				present,
			},
		})
	}
	return jsonschema.Schema{"allOf": pairs}, nil
}

// followupDomain is every value trigger can take.
func followupDomain(trigger *question.Question) ([]any, error) {
	k, _ := trigger.Kind()
	switch k {
	case question.KindBoolean:
		return []any{true, false}, nil
	case question.KindRadios, question.KindCheckboxes:
		return question.Keys(trigger.Options), nil
	default:
		return nil, frameschema.Errorf(frameschema.CodeUnsupportedFollowupType, trigger.ID,
			"followup needs options, %q has none", trigger.Type)
	}
}
