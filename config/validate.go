package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks that every schema type has a manifest and that every
// target is complete and unique.
func (c *Config) Validate() error {
	var ic issueCollector

	for name, m := range c.Manifests {
		field := "manifests." + name
		if name == AssessmentType {
			ic.add(field, fmt.Sprintf("%q is reserved for the assessment manifest", name))
		}
		if strings.TrimSpace(m.QuestionSet) == "" {
			ic.add(field+".question_set", "is required")
		}
		if strings.TrimSpace(m.Manifest) == "" {
			ic.add(field+".manifest", "is required")
		}
	}
	if c.Assessment != (Manifest{}) {
		if strings.TrimSpace(c.Assessment.QuestionSet) == "" {
			ic.add("assessment.question_set", "is required")
		}
		if strings.TrimSpace(c.Assessment.Manifest) == "" {
			ic.add("assessment.manifest", "is required")
		}
	}

	for _, st := range c.SchemaTypes() {
		if _, ok := c.Manifests[st]; !ok {
			ic.add("schemas."+st, "has no manifest")
		}
		seen := make(map[string]struct{})
		for i, t := range c.Schemas[st] {
			prefix := fmt.Sprintf("schemas.%s[%d]", st, i)
			if strings.TrimSpace(t.Name) == "" {
				ic.add(prefix+".name", "is required")
			}
			if strings.TrimSpace(t.Framework) == "" {
				ic.add(prefix+".framework", "is required")
			}
			if strings.TrimSpace(t.Lot) == "" {
				ic.add(prefix+".lot", "is required")
			}
			key := t.Framework + "/" + t.Lot
			if _, dup := seen[key]; dup {
				ic.add(prefix, fmt.Sprintf("duplicate target %s", key))
			}
			seen[key] = struct{}{}
		}
	}
	return ic.result()
}
