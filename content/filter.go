package content

import "github.com/reoring/frameschema/question"

// Filter is the context depends rules are evaluated against, e.g.
// {"lot": "scs"}.
type Filter map[string]string

// Match reports whether every rule is satisfied. A rule on a key the filter
// does not set is ignored, so an empty filter matches everything.
func (f Filter) Match(deps []question.Dependency) bool {
	for _, d := range deps {
		v, ok := f[d.On]
		if !ok {
			continue
		}
		if !contains(d.Being, v) {
			return false
		}
	}
	return true
}

// Apply returns q with nested questions that do not match removed, or nil
// when q itself does not match. q is not modified.
func (f Filter) Apply(q *question.Question) *question.Question {
	if !f.Match(q.Depends) {
		return nil
	}
	if len(q.Questions) == 0 {
		return q
	}
	cp := *q
	cp.Questions = make(question.Nested, 0, len(q.Questions))
	for _, nq := range q.Questions {
		if kept := f.Apply(nq); kept != nil {
			cp.Questions = append(cp.Questions, kept)
		}
	}
	return &cp
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
