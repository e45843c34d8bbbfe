package compiler

import (
	"sort"

	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

// AnyOf builds one anyOf entry per composite question with an any_of label,
// requiring all the fields of its nested questions. Entries are ordered by
// question id. The result is empty when no question has a label.
func AnyOf(qs []*question.Question) jsonschema.Schema {
	groups := make(map[string]jsonschema.Schema)
	for _, q := range qs {
		if q.AnyOf == "" {
			continue
		}
		var fields []string
		for _, nq := range q.Questions {
			if len(nq.Fields) == 0 {
				fields = append(fields, nq.ID)
				continue
			}
			for _, r := range nq.FieldRoles() {
				fields = append(fields, nq.Fields[r])
			}
		}
		sort.Strings(fields)
		if fields == nil {
			fields = []string{}
		}
		groups[q.ID] = jsonschema.Schema{"required": fields, "title": q.AnyOf}
	}
	if len(groups) == 0 {
		return jsonschema.Schema{}
	}
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, groups[id])
	}
	return jsonschema.Schema{"anyOf": out}
}

// Dependencies makes the fields of every labelled flat multiquestion depend
// on each other, so answering one of them means answering all of them.
func Dependencies(qs []*question.Question) jsonschema.Schema {
	deps := jsonschema.Schema{}
	for _, q := range qs {
		if k, _ := q.Kind(); k != question.KindMultiquestion || q.AnyOf == "" {
			continue
		}
		fields := q.FormFields()
		if len(fields) < 2 {
			continue
		}
		for _, f := range fields {
			others := make([]string, 0, len(fields)-1)
			for _, o := range fields {
				if o != f {
					others = append(others, o)
				}
			}
			deps[f] = jsonschema.SortedSet(others)
		}
	}
	if len(deps) == 0 {
		return jsonschema.Schema{}
	}
	return jsonschema.Schema{"dependencies": deps}
}
