package compiler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

// Validator naming convention understood by ParseLimits.
const characterLimitValidator = "under_character_limit"

var (
	wordLimitName  = regexp.MustCompile(`^under_(\d+)_words`)
	characterCount = regexp.MustCompile(`\d[\d,]*`)
)

// WordPattern matches at most n whitespace separated tokens.
func WordPattern(n int) string {
	return fmt.Sprintf(`^(?:\S+\s+){0,%d}\S+$`, n-1)
}

// ParseLimits derives maxLength and pattern constraints from q's validators
// and direct limits. max_length and max_length_in_words win over validators.
//
// Word validators are named under_<N>_words. The character validator is
// under_character_limit and carries its limit as the first number of its
// message, thousands separators allowed ("no more than 1,000 characters").
//
// In items mode the constraints apply to list entries, so an optional
// question does not make an empty entry acceptable.
func ParseLimits(q *question.Question, forItems bool) jsonschema.Schema {
	out := jsonschema.Schema{}

	chars := q.MaxLength
	if chars <= 0 {
		chars = characterLimit(q.Validations)
	}
	if chars > 0 {
		out["maxLength"] = chars
	}

	words := q.MaxLengthInWords
	if words <= 0 {
		words = wordLimit(q.Validations)
	}
	if words > 0 {
		p := WordPattern(words)
		if q.Optional && !forItems {
			p = "^$|(" + p + ")"
		}
		out["pattern"] = p
	}
	return out
}

func wordLimit(vs []question.Validation) int {
	for _, v := range vs {
		m := wordLimitName.FindStringSubmatch(v.Name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}

func characterLimit(vs []question.Validation) int {
	for _, v := range vs {
		if v.Name != characterLimitValidator {
			continue
		}
		m := characterCount.FindString(v.Message)
		if m == "" {
			continue
		}
		if n, err := strconv.Atoi(strings.ReplaceAll(m, ",", "")); err == nil {
			return n
		}
	}
	return 0
}
