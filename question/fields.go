package question

import "sort"

// Pricing roles in the order their properties are built.
const (
	RolePrice         = "price"
	RoleMinimumPrice  = "minimum_price"
	RoleMaximumPrice  = "maximum_price"
	RolePriceUnit     = "price_unit"
	RolePriceInterval = "price_interval"
	RoleHoursForPrice = "hours_for_price"
)

// PricingRoles lists the roles a pricing question understands.
var PricingRoles = []string{
	RolePrice, RoleMinimumPrice, RoleMaximumPrice,
	RolePriceUnit, RolePriceInterval, RoleHoursForPrice,
}

// FieldRoles returns the declared field roles: known roles first in build
// order, then any other declared roles sorted by name.
func (q *Question) FieldRoles() []string {
	var out []string
	known := make(map[string]struct{}, len(PricingRoles))
	for _, r := range PricingRoles {
		known[r] = struct{}{}
		if _, ok := q.Fields[r]; ok {
			out = append(out, r)
		}
	}
	var rest []string
	for r := range q.Fields {
		if _, ok := known[r]; !ok {
			rest = append(rest, r)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// FormFields are the answer property names this question produces.
func (q *Question) FormFields() []string {
	k, _ := q.Kind()
	switch {
	case len(q.Fields) > 0:
		out := make([]string, 0, len(q.Fields))
		for _, r := range q.FieldRoles() {
			out = append(out, q.Fields[r])
		}
		return out
	case k == KindMultiquestion:
		var out []string
		for _, nq := range q.Questions {
			out = append(out, nq.FormFields()...)
		}
		return out
	default:
		return []string{q.ID}
	}
}

// RequiredFormFields are the form fields an answer must contain. Optional
// questions require nothing.
func (q *Question) RequiredFormFields() []string {
	if q.Optional {
		return nil
	}
	k, _ := q.Kind()
	switch {
	case len(q.Fields) > 0:
		var out []string
		for _, r := range q.FieldRoles() {
			if !q.OptionalField(r) {
				out = append(out, q.Fields[r])
			}
		}
		return out
	case k == KindMultiquestion:
		return q.NestedRequired()
	default:
		return []string{q.ID}
	}
}

// NestedRequired returns the sorted required form fields of the nested
// questions, ignoring q's own optionality. Followup targets are left out: they
// are only required conditionally.
func (q *Question) NestedRequired() []string {
	followups := q.FollowupTargets()
	seen := make(map[string]struct{})
	var out []string
	for _, nq := range q.Questions {
		for _, f := range nq.RequiredFormFields() {
			if _, skip := followups[f]; skip {
				continue
			}
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// FollowupTargets collects the ids any nested question declares as followup.
func (q *Question) FollowupTargets() map[string]struct{} {
	out := make(map[string]struct{})
	for _, nq := range q.Questions {
		for id := range nq.Followup {
			out[id] = struct{}{}
		}
	}
	return out
}

// FollowupIDs returns the followup target ids of q, sorted.
func (q *Question) FollowupIDs() []string {
	out := make([]string, 0, len(q.Followup))
	for id := range q.Followup {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
