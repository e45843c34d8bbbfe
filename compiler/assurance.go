package compiler

import (
	"sort"

	frameschema "github.com/reoring/frameschema"
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

const (
	serviceProviderAssertion = "Service provider assertion"
	contractualCommitment    = "Contractual commitment"
	independentValidation    = "Independent validation of assertion"
	independentTesting       = "Independent testing of implementation"
	cesgAssured              = "CESG-assured components"
	serviceDesign            = "Assurance of service design"
)

var assuranceTiers = map[string][]string{
	"2answers-type1": {serviceProviderAssertion, independentValidation},
	"3answers-type1": {serviceProviderAssertion, contractualCommitment, independentValidation},
	"3answers-type2": {serviceProviderAssertion, independentValidation, independentTesting},
	"3answers-type3": {serviceProviderAssertion, independentTesting, cesgAssured},
	"3answers-type4": {serviceProviderAssertion, independentValidation, independentTesting},
	"4answers-type1": {serviceProviderAssertion, independentValidation, independentTesting, cesgAssured},
	"4answers-type2": {serviceProviderAssertion, contractualCommitment, independentValidation, cesgAssured},
	"4answers-type3": {serviceProviderAssertion, independentTesting, serviceDesign, cesgAssured},
	"5answers-type1": {serviceProviderAssertion, contractualCommitment, independentValidation, independentTesting, cesgAssured},
}

// AssuranceTiers lists the known tier names, sorted.
func AssuranceTiers() []string {
	out := make([]string, 0, len(assuranceTiers))
	for k := range assuranceTiers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Assurance returns the permitted classifications of a tier, in order.
func Assurance(tier string) ([]string, bool) {
	v, ok := assuranceTiers[tier]
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// withAssurance moves value under the "value" key of an object that also
// carries the assurance classification of the answer.
func withAssurance(q *question.Question, value any) (jsonschema.Schema, error) {
	tier, ok := Assurance(q.AssuranceApproach)
	if !ok {
		return nil, frameschema.Errorf(frameschema.CodeUnknownAssuranceTier, q.ID, "tier %q", q.AssuranceApproach)
	}
	return jsonschema.Schema{
		"type":     "object",
		"required": []string{"value", "assurance"},
		"properties": jsonschema.Schema{
			"assurance": jsonschema.Schema{"enum": tier},
			"value":     value,
		},
	}, nil
}
