// Package question defines the content model that schemas are compiled from:
// questions, their option trees, limits, validators and nested questions.
package question

import "fmt"

// Question is one field definition from framework content. Presentation-only
// keys (question text, hints, page titles) are ignored when decoding.
type Question struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Name     string `yaml:"name"`
	Optional bool   `yaml:"optional"`

	Options     []Option     `yaml:"options"`
	Limits      Limits       `yaml:"limits"`
	Validations []Validation `yaml:"validations"`

	MaxLength        int `yaml:"max_length"`
	MaxLengthInWords int `yaml:"max_length_in_words"`
	// NumberOfItems caps array answers. Nil means the kind's default cap;
	// an explicit 0 is kept.
	NumberOfItems *int `yaml:"number_of_items"`

	// Fields maps a pricing role (price, minimum_price, ...) to the property
	// name that carries it.
	Fields                  map[string]string `yaml:"fields"`
	OptionalFields          []string          `yaml:"optional_fields"`
	DecimalPlaceRestriction bool              `yaml:"decimal_place_restriction"`

	AssuranceApproach string `yaml:"assuranceApproach"`
	AnyOf             string `yaml:"any_of"`
	RequiredValue     any    `yaml:"required_value"`

	// Followup maps a sibling question id to the values of this question that
	// make the sibling required.
	Followup map[string][]any `yaml:"followup"`

	Questions  Nested       `yaml:"questions"`
	Depends    []Dependency `yaml:"depends"`
	Assessment *Assessment  `yaml:"assessment"`

	ref bool
}

// Option is a node of an option list. Options with children only group
// other options; checkbox trees select leaves.
type Option struct {
	Label       string   `yaml:"label"`
	Value       any      `yaml:"value"`
	Description string   `yaml:"description"`
	Options     []Option `yaml:"options"`
}

// Limits are the direct numeric and format limits of a question.
type Limits struct {
	MinValue    *float64 `yaml:"min_value"`
	MaxValue    *float64 `yaml:"max_value"`
	IntegerOnly bool     `yaml:"integer_only"`
	Format      string   `yaml:"format"`
}

// Validation is a named validator with the message shown when it fails.
type Validation struct {
	Name    string `yaml:"name"`
	Message string `yaml:"message"`
}

// Dependency restricts a section or question to contexts where On has one
// of the Being values (for example lot in [scs, saas]).
type Dependency struct {
	On    string   `yaml:"on"`
	Being []string `yaml:"being"`
}

// Assessment describes how a declaration answer is assessed.
type Assessment struct {
	PassIfIn      []any `yaml:"passIfIn"`
	Discretionary bool  `yaml:"discretionary"`
}

// Kind resolves the question type tag.
func (q *Question) Kind() (Kind, bool) { return ParseKind(q.Type) }

// IsReference reports whether q was declared only by id inside a parent's
// questions list and still needs to be loaded.
func (q *Question) IsReference() bool { return q.ref }

// Ref returns a placeholder for a nested question declared by id.
func Ref(id string) *Question { return &Question{ID: id, ref: true} }

// Nested returns the nested question with the given id.
func (q *Question) Nested(id string) (*Question, bool) {
	for _, nq := range q.Questions {
		if nq.ID == id {
			return nq, true
		}
	}
	return nil, false
}

// OptionalField reports whether the pricing role is listed as optional.
func (q *Question) OptionalField(role string) bool {
	for _, r := range q.OptionalFields {
		if r == role {
			return true
		}
	}
	return false
}

// Key is the submitted value for the option: its value, or its label when no
// value is declared.
func (o Option) Key() any {
	if o.Value != nil {
		return o.Value
	}
	return o.Label
}

// Leaf reports whether the option has no children.
func (o Option) Leaf() bool { return len(o.Options) == 0 }

// Keys returns the keys of opts in order.
func Keys(opts []Option) []any {
	out := make([]any, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Key())
	}
	return out
}

// Leaves flattens an option tree post-order, keeping only leaf options.
func Leaves(opts []Option) []Option {
	var out []Option
	var walk func([]Option)
	walk = func(level []Option) {
		for _, o := range level {
			if o.Leaf() {
				out = append(out, o)
				continue
			}
			walk(o.Options)
		}
	}
	walk(opts)
	return out
}

func (q *Question) String() string { return fmt.Sprintf("%s(%s)", q.ID, q.Type) }
