package question

// Set is an ordered id → Question mapping, as produced by a content provider.
type Set struct {
	order []string
	byID  map[string]*Question
}

// NewSet builds a Set keeping the given order. A later question with an id
// already present replaces the earlier one in place.
func NewSet(qs ...*Question) *Set {
	s := &Set{byID: make(map[string]*Question, len(qs))}
	for _, q := range qs {
		s.Add(q)
	}
	return s
}

// Add appends q, or replaces the question with the same id.
func (s *Set) Add(q *Question) {
	if s.byID == nil {
		s.byID = make(map[string]*Question)
	}
	if _, ok := s.byID[q.ID]; !ok {
		s.order = append(s.order, q.ID)
	}
	s.byID[q.ID] = q
}

// Get returns the question with the given id.
func (s *Set) Get(id string) (*Question, bool) {
	q, ok := s.byID[id]
	return q, ok
}

// Delete removes id when present.
func (s *Set) Delete(id string) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// All returns the questions in order.
func (s *Set) All() []*Question {
	out := make([]*Question, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len is the number of questions.
func (s *Set) Len() int { return len(s.order) }

// Without returns a copy of s minus the given ids.
func (s *Set) Without(ids ...string) *Set {
	out := NewSet(s.All()...)
	for _, id := range ids {
		out.Delete(id)
	}
	return out
}
