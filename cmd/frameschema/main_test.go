package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/frameschema/jsonschema"
)

var fixtureFlags = []string{
	"-config", filepath.Join("..", "..", "testdata", "frameschema.yml"),
	"-content-root", filepath.Join("..", "..", "testdata"),
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func withFixture(sub string, args ...string) []string {
	out := append([]string{sub}, fixtureFlags...)
	return append(out, args...)
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := run()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage:")

	code, _, _ = run("bogus")
	assert.Equal(t, 2, code)

	code, stdout, _ := run("help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "generate-all")

	code, _, _ = run("generate", "-framework", "example-framework")
	assert.Equal(t, 2, code)

	code, _, _ = run("generate", "-no-such-flag")
	assert.Equal(t, 2, code)
}

func TestRun_GenerateToStdout(t *testing.T) {
	code, stdout, stderr := run(withFixture("generate", "-framework", "example-framework", "-lot", "cloud-support")...)
	require.Equal(t, 0, code, stderr)
	s, err := jsonschema.Decode([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "Example Cloud support Service Schema", s["title"])
	assert.Contains(t, stderr, "generated schema")
}

func TestRun_GenerateUnknownTarget(t *testing.T) {
	code, _, stderr := run(withFixture("generate", "-framework", "example-framework", "-lot", "nope")...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no services schema configured")
}

func TestRun_GenerateAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "schemas")
	code, _, stderr := run(withFixture("generate-all", "-output-path", dir)...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown_question_type")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRun_GenerateAllUnknownType(t *testing.T) {
	code, _, stderr := run(withFixture("generate-all", "-output-path", t.TempDir(), "-type", "briefs")...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `no schemas configured for type "briefs"`)
}

func TestRun_AssessmentToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "assessment.json")
	code, _, stderr := run(withFixture("assessment", "-framework", "example-framework", "-o", out)...)
	require.Equal(t, 0, code, stderr)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	s, err := jsonschema.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "example-framework Declaration Assessment Schema (Definite Pass Schema)", s["title"])
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.json")
	code, _, stderr := run(withFixture("generate", "-framework", "example-framework", "-lot", "cloud-support", "-o", schema)...)
	require.Equal(t, 0, code, stderr)

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"serviceName": "Support",
		"serviceSummary": "Round the clock support",
		"onboardingDays": 3,
		"priceMin": "20",
		"priceUnit": "User",
		"supportTypes": ["Email", "engineer"],
		"supportEmail": "help@example.com",
		"supportPhone": "0100 000000",
		"serviceDefinitionDocumentURL": "https://example.com/doc.pdf"
	}`), 0o644))
	code, stdout, stderr := run("check", "-schema", schema, "-answers", good)
	require.Equal(t, 0, code, stdout+stderr)
	assert.Equal(t, "ok\n", stdout)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"serviceName": ""}`), 0o644))
	code, stdout, stderr = run("check", "-schema", schema, "-answers", bad)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stdout)
	assert.Contains(t, stderr, "problem(s)")
}
